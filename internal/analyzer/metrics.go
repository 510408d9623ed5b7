package analyzer

import (
	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

// cohesionBranch is one entry in the cohesion selection cascade. The
// cascade is an ordered list with first-match-wins; the order is part of
// the scoring contract and must not change.
type cohesionBranch struct {
	match func(p metricPatterns) bool
	value float64
}

var cohesionCascade = []cohesionBranch{
	{func(p metricPatterns) bool { return p.singleton }, 0.92},
	{func(p metricPatterns) bool { return p.factory }, 0.85},
	{func(p metricPatterns) bool { return p.builder }, 0.88},
	{func(p metricPatterns) bool { return p.prototype }, 0.82},
	{func(p metricPatterns) bool { return p.abstractFactory }, 0.80},
	{func(p metricPatterns) bool { return p.adapter || p.decorator || p.proxy }, 0.78},
	{func(p metricPatterns) bool { return p.composite || p.facade || p.bridge }, 0.75},
	{func(p metricPatterns) bool { return p.flyweight }, 0.73},
	{func(p metricPatterns) bool { return p.strategy || p.observer || p.command }, 0.77},
	{func(p metricPatterns) bool { return p.serviceLayer }, 0.75},
	{func(p metricPatterns) bool { return p.springMVC || p.restfulAPI }, 0.70},
	{func(p metricPatterns) bool { return p.exceptionHandling || p.springError }, 0.80},
	{func(p metricPatterns) bool { return p.reactive }, 0.76},
}

// metricPatterns holds the pattern booleans the metric formulas consume.
// Several of them differ slightly from the detection rules of the same
// name (facade, service layer, Spring MVC, exception handling, reactive);
// the scoring cascade was tuned against these variants, so they are kept
// separate from the detector table.
type metricPatterns struct {
	singleton         bool
	factory           bool
	builder           bool
	prototype         bool
	abstractFactory   bool
	adapter           bool
	decorator         bool
	proxy             bool
	composite         bool
	facade            bool
	bridge            bool
	flyweight         bool
	strategy          bool
	observer          bool
	command           bool
	serviceLayer      bool
	springMVC         bool
	restfulAPI        bool
	exceptionHandling bool
	springError       bool
	reactive          bool
}

func derivePatterns(f *lexical.Features) metricPatterns {
	var p metricPatterns

	p.singleton = f.Has("private ") && f.Has("()") &&
		((f.Has("static") && f.HasLower("instance")) || f.Has("private static")) &&
		(f.Has("getInstance") || f.Has("instance()"))

	hasFactoryKeywords := f.Has("getCar") || f.Has("getProduct") ||
		f.Has("createButton") || f.Has("create") || f.Has("Factory")
	hasSwitchReturn := f.Has("switch") && f.Has("return new")
	hasIfReturn := f.NumIf >= 2 && f.Has("return new")
	p.factory = (hasFactoryKeywords && (hasSwitchReturn || hasIfReturn)) ||
		(f.Has("Factory") && f.Has("return new") && f.NumStatic >= 1)

	hasBuildMethod := f.Has("build()") || f.Has(".build()")
	p.builder = ((f.Has("Builder") || f.HasLower("builder")) && f.NumClasses >= 2 &&
		hasBuildMethod && f.Has("return this")) ||
		(f.Count("return this") >= 2 && hasBuildMethod)

	p.prototype = f.Has(".clone()") || f.Has("clone()") ||
		(f.Has("@Override") && f.HasLower("clone")) ||
		f.Has("Cloneable") || f.Has("implements Cloneable") ||
		(f.Has("(this)") && f.NumMethods >= 1)

	p.abstractFactory = f.Has("AbstractFactory") ||
		(f.HasLower("abstract") && f.Has("Factory")) ||
		(f.Has("interface") && f.Has("Factory") &&
			(f.Count("create") >= 2 || f.Count("Factory") >= 2) && f.NumInterfaces >= 1)

	p.adapter = f.Has("Adapter") ||
		((f.HasLower("adaptee") || f.HasLower("wrapped")) && f.Has("implements")) ||
		((f.Has("adaptee.") || f.Has(".playVlc") || f.Has("legacy.")) && f.Has("implements"))

	p.decorator = f.Has("Decorator") ||
		((f.HasLower("component") || f.Has("Component")) &&
			f.Has("component.") && f.Has("implements") && f.NumClasses >= 1)

	p.proxy = f.Has("Proxy") ||
		(f.HasLower("real") && (f.Has("Subject") || f.Has("Image")) &&
			(f.Has("checkAccess") || (f.HasLower("check") && f.HasLower("access")))) ||
		(f.HasLower("real.") && f.Has("implements"))

	hasChildren := f.HasLower("children") || f.Has("List<Component>")
	p.composite = f.Has("Composite") ||
		(hasChildren && f.Has(".add(")) ||
		(f.Has("for") && f.HasLower("children"))

	simplifies := f.NumMethods >= 2 && (f.Count("System") >= 2 || f.Count(".") >= 5)
	p.facade = f.Has("Facade") || (simplifies && f.NumClasses <= 3)

	p.bridge = f.Has("Bridge") ||
		((f.HasLower("implementation") || f.Has("DrawingAPI")) &&
			f.Has("abstract") && (f.Has("Shape") || f.Has("class")))

	p.flyweight = f.Has("Flyweight") ||
		((f.HasLower("cache") || f.Has("Map<") || f.Has("HashMap")) &&
			(f.Has("containsKey") || (f.Has("get") && f.Has("put"))))

	p.strategy = f.Has("Strategy") ||
		(f.Has("Context") && (f.Has("setStrategy") || f.HasLower("strategy")))

	p.observer = f.Has("Observer") ||
		((f.Has("List<Observer>") || f.HasLower("observers")) &&
			(f.HasLower("notify") || f.HasLower("update") ||
				f.HasLower("attach") || f.HasLower("register")))

	p.command = f.Has("Command") ||
		((f.Has("execute()") || f.Has("execute(")) &&
			(f.HasLower("receiver") || (f.Has("Light") && f.Has("Command"))))

	p.serviceLayer = f.Has("@Service") ||
		(f.Has("@Transactional") && f.Has("@Autowired"))

	hasRestController := f.Has("@RestController") || f.Has("@Controller")
	hasMapping := f.Has("@GetMapping") || f.Has("@PostMapping") || f.Has("@RequestMapping")
	hasPathVariable := f.Has("@PathVariable") || f.Has("@RequestBody")
	p.springMVC = hasRestController && (hasMapping || hasPathVariable)

	numAPIMethods := f.Count("@GetMapping") + f.Count("@PostMapping") + f.Count("@PutMapping")
	p.restfulAPI = numAPIMethods >= 2 || (hasRestController && f.Has("@RequestMapping"))

	hasExceptionHandler := f.Has("@ExceptionHandler")
	hasControllerAdvice := f.Has("@RestControllerAdvice") || f.Has("@ControllerAdvice")
	p.exceptionHandling = hasExceptionHandler || hasControllerAdvice ||
		(f.Has("try") && f.Has("catch")) || f.Has("throws")

	p.springError = hasControllerAdvice || (hasExceptionHandler && f.Has("@"))

	p.reactive = (f.Has("Mono<") || f.Has("Flux<")) &&
		(f.Has("WebClient") || f.Has("webClient") ||
			f.Has(".bodyToMono") || f.Has(".retrieve()"))

	return p
}

var networkIndicators = []string{"HttpClient", "RestTemplate", "WebClient", "webClient", "http", ".get()", ".post()"}

var sqlKeywords = []string{"select", "insert", "update", "delete", "create table", "drop table", "SELECT", "INSERT"}

// ComputeMetrics derives the fixed metric record from the features. Pure:
// identical input yields a bit-identical record.
func ComputeMetrics(f *lexical.Features) models.CodeMetrics {
	p := derivePatterns(f)

	cohesion := 0.60
	for _, branch := range cohesionCascade {
		if branch.match(p) {
			cohesion = branch.value
			break
		}
	}

	cyclomatic := 1 + f.NumIf + f.NumFor + f.NumWhile + f.NumSwitch
	if f.NumSwitch > 0 {
		cyclomatic += f.Count("case ") - 1
	}
	if f.Has("try") && f.Has("catch") {
		cyclomatic += f.Count("catch")
	}
	if cyclomatic > 50 {
		cyclomatic = 50
	}

	cognitive := cyclomatic * 2
	if cognitive > 100 {
		cognitive = 100
	}

	nesting := f.Count("    ") / 4
	if nesting < 1 {
		nesting = 1
	}

	numSQL := 0
	for _, kw := range sqlKeywords {
		numSQL += f.Count(kw)
	}
	numNetwork := 0
	for _, ind := range networkIndicators {
		numNetwork += f.Count(ind)
	}

	usesEncryption := 0
	if f.Has("BCryptPasswordEncoder") || f.Has("encoder.encode") ||
		f.Has("Cipher") || f.HasLower("encrypt") {
		usesEncryption = 1
	}

	return models.CodeMetrics{
		CyclomaticComplexity: cyclomatic,
		CognitiveComplexity:  cognitive,
		NestingDepth:         nesting,
		LinesOfCode:          f.NonEmptyLines,
		NumMethods:           atLeast(1, f.NumMethods),
		NumClasses:           atLeast(1, f.NumClasses),
		NumParameters:        f.NumParameters,
		CodeDuplication:      0.0, // placeholder, not measured
		TestCoverage:         0.5, // placeholder, not measured
		CommentRatio:         float64(f.CommentLines) / float64(atLeast(1, f.TotalLines)),
		InheritanceDepth:     f.Count("extends") + f.Count("implements"),
		Coupling:             atLeast(2, f.Count("import")),
		Cohesion:             cohesion,
		NumSQLQueries:        numSQL,
		NumFileOperations:    f.Count("File") + f.Count("FileReader") + f.Count("FileWriter"),
		NumNetworkCalls:      numNetwork,
		InputValidationRatio: inputValidationRatio(f),
		UsesEncryption:       usesEncryption,
		NumAnnotations:       f.Count("@"),
		DIUsage:              diUsage(f),
	}
}

// inputValidationRatio is a fixed priority cascade over validation and
// injection indicators.
func inputValidationRatio(f *lexical.Features) float64 {
	sqlConcat := (f.Has("+") || f.HasLower("concat")) && (f.Has("SELECT") || f.HasLower("select"))
	stringQuery := f.Has(`"SELECT`) && f.Has("+")

	switch {
	case f.Has("@Valid") || f.HasLower("validate") || f.HasLower("sanitize"):
		return 0.8
	case f.Has("?") && (f.HasLower("query") || f.Has("SELECT")):
		return 0.7 // prepared-statement placeholders
	case f.Has("StringEscapeUtils") || f.HasLower("normalize"):
		return 0.6
	case sqlConcat || stringQuery:
		return 0.1
	default:
		return 0.1
	}
}

// diUsage scores dependency-injection adoption, checked in priority order.
func diUsage(f *lexical.Features) float64 {
	switch {
	case f.Has("@Autowired"):
		return 0.8
	case f.Has("@Inject"):
		return 0.7
	case f.Has("@Component") || f.Has("@Service"):
		return 0.5
	default:
		return 0.2
	}
}

func atLeast(floor, n int) int {
	if n < floor {
		return floor
	}
	return n
}
