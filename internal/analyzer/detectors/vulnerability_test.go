package detectors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

func TestDetectVulnerability_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		wantKey      models.VulnerabilityKey
		wantSeverity models.Severity
	}{
		{
			name:         "sql concatenation",
			source:       `String query = "SELECT * FROM users WHERE name = '" + name + "'";`,
			wantKey:      models.VulnSQLInjection,
			wantSeverity: models.SeverityHigh,
		},
		{
			name: "unescaped html response",
			source: `@GetMapping("/greet")
public String greet(String name) {
    return "<h1>Hello " + name;
}`,
			wantKey:      models.VulnXSS,
			wantSeverity: models.SeverityHigh,
		},
		{
			name:         "file path concatenation",
			source:       `File f = new File(baseDir + userInput);`,
			wantKey:      models.VulnPathTraversal,
			wantSeverity: models.SeverityHigh,
		},
		{
			name: "unhardened xml parser",
			source: `DocumentBuilderFactory factory = DocumentBuilderFactory.newInstance();
Document doc = factory.newDocumentBuilder().parse(input);`,
			wantKey:      models.VulnXXE,
			wantSeverity: models.SeverityMedium,
		},
		{
			name: "length check as authentication",
			source: `if (password.length() > 4) {
    session.setAuthenticated(true);
}`,
			wantKey:      models.VulnAuthBypass,
			wantSeverity: models.SeverityCritical,
		},
		{
			name: "raw object deserialization",
			source: `ObjectInputStream in = new ObjectInputStream(socket.getInputStream());
Object payload = in.readObject();`,
			wantKey:      models.VulnInsecureDeserialization,
			wantSeverity: models.SeverityCritical,
		},
		{
			name:         "nothing suspicious",
			source:       `public class Empty { }`,
			wantKey:      models.VulnNone,
			wantSeverity: models.SeverityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			finding := DetectVulnerability(lexical.Extract(tt.source))
			assert.Equal(t, tt.wantKey, finding.Vulnerability)
			assert.Equal(t, tt.wantSeverity, finding.Severity)
			assert.NotEmpty(t, finding.Description)
		})
	}
}

func TestDetectVulnerability_FirstMatchWins(t *testing.T) {
	// Satisfies both the SQL rule and the XXE rule; the earlier SQL rule
	// must decide the verdict.
	source := `String query = "SELECT * FROM docs WHERE id = " + id;
DocumentBuilderFactory factory = DocumentBuilderFactory.newInstance();`

	finding := DetectVulnerability(lexical.Extract(source))
	assert.Equal(t, models.VulnSQLInjection, finding.Vulnerability)
}

func TestDetectVulnerability_SecureImplementation(t *testing.T) {
	source := `public void register(@Valid UserForm form) {
    user.setPassword(encoder.encode(form.getPassword()));
}`

	finding := DetectVulnerability(lexical.Extract(source))
	assert.Equal(t, models.VulnNone, finding.Vulnerability)
	assert.Equal(t, 0.95, finding.Confidence)
	assert.Contains(t, finding.Description, "Secure implementation")
}

func TestDetectVulnerability_DefaultVerdictConfidence(t *testing.T) {
	finding := DetectVulnerability(lexical.Extract("int x = 1;"))

	assert.Equal(t, models.VulnNone, finding.Vulnerability)
	assert.Equal(t, 0.50, finding.Confidence)
	assert.Equal(t, "No obvious vulnerabilities detected", finding.Description)
}

func TestVulnerabilities_TableOrder(t *testing.T) {
	rules := Vulnerabilities()
	assert.Len(t, rules, 7)
	assert.Equal(t, models.VulnSQLInjection, rules[0].Key)
	assert.Equal(t, models.VulnNone, rules[len(rules)-1].Key)
}
