package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

const singletonSource = `public class AppConfig {
    private static AppConfig instance;

    private AppConfig() {
    }

    public static AppConfig getInstance() {
        if (instance == null) {
            instance = new AppConfig();
        }
        return instance;
    }
}`

const springServiceSource = `@Service
public class UserService {
    @Autowired
    private UserRepository repository;

    public User load(Long id) {
        return repository.findById(id).orElseThrow();
    }
}`

func findMatch(matches []models.PatternMatch, key models.PatternKey) (models.PatternMatch, bool) {
	for _, m := range matches {
		if m.Pattern == key {
			return m, true
		}
	}
	return models.PatternMatch{}, false
}

func TestDetectPatterns_Singleton(t *testing.T) {
	matches := DetectPatterns(lexical.Extract(singletonSource))

	match, ok := findMatch(matches, models.PatternSingleton)
	require.True(t, ok, "singleton rule should fire")
	assert.Equal(t, 0.95, match.Confidence)
	assert.Equal(t, "Singleton Design Pattern", match.Theory)
}

func TestDetectPatterns_SpringServiceCoDetection(t *testing.T) {
	matches := DetectPatterns(lexical.Extract(springServiceSource))

	_, ok := findMatch(matches, models.PatternDependencyInjection)
	assert.True(t, ok, "dependency injection rule should fire on @Autowired")

	_, ok = findMatch(matches, models.PatternServiceLayer)
	assert.True(t, ok, "service layer rule should fire on @Service")

	_, ok = findMatch(matches, models.PatternCoreAnnotationsDI)
	assert.True(t, ok, "core annotations rule should fire on stereotype plus @Autowired")
}

func TestDetectPatterns_BuilderNeedsFluentChain(t *testing.T) {
	source := `public class Pizza {
    public static class Builder {
        public Builder size(int s) { this.size = s; return this; }
        public Builder cheese(boolean c) { this.cheese = c; return this; }
        public Pizza build() { return new Pizza(this); }
    }
}`
	matches := DetectPatterns(lexical.Extract(source))

	match, ok := findMatch(matches, models.PatternBuilder)
	require.True(t, ok)
	assert.Equal(t, 0.93, match.Confidence)
}

func TestDetectPatterns_RestfulAPIRequiresTwoMappings(t *testing.T) {
	one := `@RestController
public class PingController {
    @GetMapping("/ping")
    public String ping() { return "pong"; }
}`
	two := `@RestController
public class UserController {
    @GetMapping("/users")
    public List<User> list() { return service.all(); }

    @PostMapping("/users")
    public User create(@RequestBody User u) { return service.save(u); }
}`

	_, ok := findMatch(DetectPatterns(lexical.Extract(one)), models.PatternRESTfulAPI)
	assert.False(t, ok, "a single mapping is not a RESTful API surface")

	_, ok = findMatch(DetectPatterns(lexical.Extract(two)), models.PatternRESTfulAPI)
	assert.True(t, ok)
}

func TestDetectPatterns_NoMatchesOnPlainText(t *testing.T) {
	matches := DetectPatterns(lexical.Extract("int x = 1;"))

	// Only the low-bar basic constructs rule can fire on trivial input.
	for _, m := range matches {
		assert.Equal(t, models.PatternBasicConstructs, m.Pattern)
	}
	assert.NotNil(t, matches)
}

func TestDetectPatterns_Deterministic(t *testing.T) {
	f := lexical.Extract(springServiceSource)

	first := DetectPatterns(f)
	second := DetectPatterns(f)

	assert.Equal(t, first, second)

	// Same source re-extracted gives the same ordered result too.
	third := DetectPatterns(lexical.Extract(springServiceSource))
	assert.Equal(t, first, third)
}

func TestPatterns_TableShape(t *testing.T) {
	rules := Patterns()
	require.Len(t, rules, 48)

	seen := make(map[models.PatternKey]bool, len(rules))
	for _, rule := range rules {
		assert.False(t, seen[rule.Key], "duplicate rule key %s", rule.Key)
		seen[rule.Key] = true
		assert.Greater(t, rule.Confidence, 0.0)
		assert.LessOrEqual(t, rule.Confidence, 1.0)
		assert.NotNil(t, rule.Match)
		assert.NotEmpty(t, rule.Theory)
	}
}
