package models

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// RiskLevel is the aggregate security risk of one report. The labels are
// coarser than the finding severities: any CRITICAL finding maps to HIGH
// risk, any HIGH finding to MEDIUM. Consumers depend on these exact labels.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// PatternKey identifies one pattern rule. Keys are stable: they key the
// description, reference and category tables and appear in serialized output.
type PatternKey string

const (
	PatternSingleton             PatternKey = "singleton_design_pattern"
	PatternFactory               PatternKey = "factory_design_pattern"
	PatternBuilder               PatternKey = "builder_design_pattern"
	PatternPrototype             PatternKey = "prototype_design_pattern"
	PatternAbstractFactory       PatternKey = "abstract_factory_design_pattern"
	PatternAdapter               PatternKey = "adapter_design_pattern"
	PatternDecorator             PatternKey = "decorator_design_pattern"
	PatternProxy                 PatternKey = "proxy_design_pattern"
	PatternComposite             PatternKey = "composite_design_pattern"
	PatternFacade                PatternKey = "facade_design_pattern"
	PatternBridge                PatternKey = "bridge_design_pattern"
	PatternFlyweight             PatternKey = "flyweight_design_pattern"
	PatternStrategy              PatternKey = "strategy_design_pattern"
	PatternObserver              PatternKey = "observer_design_pattern"
	PatternCommand               PatternKey = "command_design_pattern"
	PatternTemplateMethod        PatternKey = "template_method_design_pattern"
	PatternIterator              PatternKey = "iterator_design_pattern"
	PatternState                 PatternKey = "state_design_pattern"
	PatternChainOfResponsibility PatternKey = "chain_of_responsibility_design_pattern"
	PatternMediator              PatternKey = "mediator_design_pattern"
	PatternMemento               PatternKey = "memento_design_pattern"
	PatternVisitor               PatternKey = "visitor_design_pattern"
	PatternInterpreter           PatternKey = "interpreter_design_pattern"
	PatternDependencyInjection   PatternKey = "dependency_injection"
	PatternSpringMVC             PatternKey = "spring_mvc_pattern"
	PatternRESTfulAPI            PatternKey = "restful_api_pattern"
	PatternRepository            PatternKey = "repository_pattern"
	PatternServiceLayer          PatternKey = "service_layer_pattern"
	PatternDTO                   PatternKey = "dto_pattern"
	PatternAOP                   PatternKey = "aop_pattern"
	PatternOOPFundamentals       PatternKey = "oop_fundamentals"
	PatternCollections           PatternKey = "collections_framework"
	PatternExceptionHandling     PatternKey = "exception_handling"
	PatternConditionalFlow       PatternKey = "conditional_control_flow"
	PatternLoops                 PatternKey = "loops_and_iteration"
	PatternBasicConstructs       PatternKey = "basic_programming_constructs"
	PatternOptional              PatternKey = "optional_null_safety"
	PatternFunctional            PatternKey = "functional_programming"
	PatternSpringErrorHandling   PatternKey = "spring_boot_error_handling"
	PatternReactive              PatternKey = "reactive_programming"
	PatternUtilityLibraries      PatternKey = "utility_libraries"
	PatternLombokJPA             PatternKey = "lombok_jpa_annotations"
	PatternCoreAnnotationsDI     PatternKey = "core_annotations_di"
	PatternWebMVCAnnotations     PatternKey = "web_mvc_annotations"
	PatternHTTPProcessing        PatternKey = "http_request_processing"
	PatternOpenAPI               PatternKey = "openapi_documentation"
	PatternSpringDataJPA         PatternKey = "spring_data_jpa"
	PatternBatchETL              PatternKey = "batch_processing_etl"
)

// VulnerabilityKey identifies one vulnerability rule. VulnNone is the
// fall-through outcome and never appears in a report's findings list.
type VulnerabilityKey string

const (
	VulnSQLInjection            VulnerabilityKey = "sql_injection"
	VulnXSS                     VulnerabilityKey = "xss"
	VulnPathTraversal           VulnerabilityKey = "path_traversal"
	VulnXXE                     VulnerabilityKey = "xxe"
	VulnAuthBypass              VulnerabilityKey = "authentication_bypass"
	VulnInsecureDeserialization VulnerabilityKey = "insecure_deserialization"
	VulnNone                    VulnerabilityKey = "none"
)

// PatternMatch is one pattern rule firing on one analysis call.
type PatternMatch struct {
	Pattern    PatternKey `json:"pattern"`
	Confidence float64    `json:"confidence"`
	Theory     string     `json:"theory"`
}

// VulnerabilityFinding is the single outcome of the vulnerability decision
// list, including the "none" outcome.
type VulnerabilityFinding struct {
	Vulnerability VulnerabilityKey `json:"vulnerability"`
	Severity      Severity         `json:"severity"`
	Confidence    float64          `json:"confidence"`
	Description   string           `json:"description"`
}

// CodeMetrics is the fixed record of numeric quality signals derived from
// the source text. CodeDuplication and TestCoverage are placeholders, not
// measurements: the analyzer has no duplicate detector and no coverage data,
// so they are pinned to 0.0 and 0.5.
type CodeMetrics struct {
	CyclomaticComplexity int     `json:"cyclomatic_complexity"`
	CognitiveComplexity  int     `json:"cognitive_complexity"`
	NestingDepth         int     `json:"nesting_depth"`
	LinesOfCode          int     `json:"lines_of_code"`
	NumMethods           int     `json:"num_methods"`
	NumClasses           int     `json:"num_classes"`
	NumParameters        int     `json:"num_parameters"`
	CodeDuplication      float64 `json:"code_duplication"`
	TestCoverage         float64 `json:"test_coverage"`
	CommentRatio         float64 `json:"comment_ratio"`
	InheritanceDepth     int     `json:"inheritance_depth"`
	Coupling             int     `json:"coupling"`
	Cohesion             float64 `json:"cohesion"`
	NumSQLQueries        int     `json:"num_sql_queries"`
	NumFileOperations    int     `json:"num_file_operations"`
	NumNetworkCalls      int     `json:"num_network_calls"`
	InputValidationRatio float64 `json:"input_validation_ratio"`
	UsesEncryption       int     `json:"uses_encryption"`
	NumAnnotations       int     `json:"num_annotations"`
	DIUsage              float64 `json:"dependency_injection_usage"`
}

// DetectedConcept is the user-facing form of a PatternMatch.
type DetectedConcept struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Theory         string   `json:"theory"`
	ReferenceLinks []string `json:"referenceLinks"`
	MatchedWords   []string `json:"matchedWords"`
	LinesOfCode    int      `json:"linesOfCode"`
}

// Vulnerability is the user-facing form of a VulnerabilityFinding.
type Vulnerability struct {
	Type        string   `json:"type"`
	Severity    string   `json:"severity"`
	Description string   `json:"description"`
	Remediation string   `json:"remediation"`
	References  []string `json:"references"`
}

// SecurityAnalysis groups the risk level with the finding list. The list
// holds zero or one entry; it is a list for output uniformity.
type SecurityAnalysis struct {
	OverallRisk     RiskLevel       `json:"overallRisk"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities"`
}

// AnalysisReport is the complete result of one analysis call. It is built
// once, never mutated afterwards, and never persisted.
type AnalysisReport struct {
	DetectedConcepts []DetectedConcept `json:"detectedConcepts"`
	ComplexityScore  int               `json:"complexityScore"`
	QualityScore     int               `json:"qualityScore"`
	LinesOfCode      int               `json:"linesOfCode"`
	Recommendations  []string          `json:"recommendations"`
	Security         SecurityAnalysis  `json:"securityAnalysis"`
	Metrics          CodeMetrics       `json:"metrics"`
}
