package analyzer

import (
	"strings"

	"javacheck/internal/models"
)

// Static lookup tables for the report layer. All of them are built once
// and never mutated. Several tables carry entries keyed by names the rule
// set never emits; they are part of the lookup contract and kept as-is.

// patternDescriptions maps a pattern key to its short description.
var patternDescriptions = map[models.PatternKey]string{
	"singleton_design_pattern":               "Ensures a class has only one instance and provides global access to it through static method or field.",
	"factory_design_pattern":                 "Creates objects without exposing instantiation logic and refers to newly created object using common interface.",
	"builder_design_pattern":                 "Constructs complex objects step by step and allows different types and representations using same construction code.",
	"observer_design_pattern":                "Defines subscription mechanism to notify multiple objects about events happening to observed object.",
	"strategy_design_pattern":                "Defines family of algorithms, encapsulates each one, and makes them interchangeable at runtime.",
	"adapter_design_pattern":                 "Allows objects with incompatible interfaces to collaborate by wrapping existing class with new interface.",
	"decorator_design_pattern":               "Attaches new behaviors to objects by placing them inside wrapper objects containing behaviors.",
	"facade_design_pattern":                  "Provides simplified interface to complex subsystem, library, or framework reducing coupling.",
	"proxy_design_pattern":                   "Provides placeholder or surrogate for another object to control access, lazy loading, or add functionality.",
	"command_design_pattern":                 "Encapsulates request as object, allowing parameterization, queuing, logging, and undo operations.",
	"template_method_design_pattern":         "Defines skeleton of algorithm in superclass, letting subclasses override specific steps without changing structure.",
	"chain_of_responsibility_design_pattern": "Passes requests along chain of handlers until one handles it, decoupling sender from receiver.",
	"state_design_pattern":                   "Allows object to alter behavior when internal state changes, appearing as if object changed class.",
	"mediator_design_pattern":                "Defines how set of objects interact, promoting loose coupling by preventing direct references.",
	"visitor_design_pattern":                 "Separates algorithms from object structure, allowing new operations without modifying existing classes.",
	"iterator_design_pattern":                "Provides way to access elements of aggregate object sequentially without exposing underlying representation.",
	"composite_design_pattern":               "Composes objects into tree structures to represent part-whole hierarchies uniformly.",
	"bridge_design_pattern":                  "Separates abstraction from implementation, allowing both to vary independently without affecting each other.",
	"flyweight_design_pattern":               "Minimizes memory usage by sharing efficiently common data among multiple objects.",
	"prototype_design_pattern":               "Creates objects by cloning existing instance rather than creating new ones from scratch.",
	"abstract_factory_design_pattern":        "Provides interface for creating families of related objects without specifying concrete classes.",
	"interpreter_design_pattern":             "Defines grammar representation for language and interpreter to process sentences in that language.",
	"memento_design_pattern":                 "Captures and externalizes object internal state for restoration without violating encapsulation.",
	"spring_mvc_annotations":                 "Provides annotations for MVC web development including request mapping, validation, and response handling.",
	"core_annotations_di":                    "Implements dependency injection through annotations for bean management and lifecycle control.",
	"web_mvc_annotations":                    "Enables web application development with controller mapping, parameter binding, and view resolution.",
	"spring_data_jpa":                        "Simplifies database access with repository patterns, query generation, and transaction management.",
	"spring_security_oauth2":                 "Implements OAuth2 authentication and authorization for secure API access and token management.",
	"reactive_programming":                   "Enables non-blocking, asynchronous programming with reactive streams and backpressure handling.",
	"spring_boot_error_handling":             "Provides comprehensive error handling strategies with global exception management and custom responses.",
	"batch_processing_etl":                   "Implements batch processing patterns for ETL operations with chunk processing and job management.",
	"utility_libraries":                      "Integrates utility libraries for common functionality like validation, mapping, and data transformation.",
	"lombok_jpa_annotations":                 "Reduces boilerplate code using Lombok annotations with JPA entity management and relationship mapping.",
	"microservices_communication":            "Implements communication patterns between microservices using HTTP, messaging, and service discovery.",
	"http_request_processing":                "Handles HTTP request processing with filters, interceptors, and content negotiation.",
	"openapi_documentation":                  "Generates API documentation using OpenAPI/Swagger specifications with interactive interface.",
	"object_oriented_fundamentals":           "Applies object-oriented programming principles including encapsulation, inheritance, and polymorphism.",
	"collections_framework":                  "Utilizes Java Collections API for data structure management and manipulation with streams.",
	"exception_handling":                     "Implements comprehensive exception handling strategies with custom exceptions and error recovery.",
	"concurrency_multithreading":             "Manages concurrent execution with thread safety, synchronization, and parallel processing.",
	"lambda_expressions":                     "Uses functional programming with lambda expressions for concise and expressive code.",
	"stream_api":                             "Processes collections using Stream API for filtering, mapping, and reduction operations.",
	"optional_null_safety":                   "Prevents null pointer exceptions using Optional wrapper for safer null handling.",
	"modern_syntax":                          "Applies modern Java syntax features including var keyword, switch expressions, and text blocks.",
	"aws_sdk_integration":                    "Integrates AWS services using SDK for cloud-native application development and deployment.",
}

const defaultPatternDescription = "Advanced programming concept or design pattern implementation."

// PatternDescription returns the short description for a pattern key.
func PatternDescription(key models.PatternKey) string {
	if d, ok := patternDescriptions[key]; ok {
		return d
	}
	return defaultPatternDescription
}

var patternReferences = map[models.PatternKey][]string{
	"singleton_design_pattern": {
		"https://refactoring.guru/design-patterns/singleton",
		"https://www.baeldung.com/java-singleton",
		"https://docs.oracle.com/javase/tutorial/java/javaOO/initial.html",
	},
	"factory_design_pattern": {
		"https://refactoring.guru/design-patterns/factory-method",
		"https://www.baeldung.com/java-factory-pattern",
		"https://docs.oracle.com/javase/tutorial/java/javaOO/objectcreation.html",
	},
	"builder_design_pattern": {
		"https://refactoring.guru/design-patterns/builder",
		"https://www.baeldung.com/java-builder-pattern",
		"https://docs.oracle.com/javase/tutorial/java/javaOO/objectcreation.html",
	},
	"observer_design_pattern": {
		"https://refactoring.guru/design-patterns/observer",
		"https://www.baeldung.com/java-observer-pattern",
		"https://docs.oracle.com/javase/7/docs/api/java/util/Observer.html",
	},
	"strategy_design_pattern": {
		"https://refactoring.guru/design-patterns/strategy",
		"https://www.baeldung.com/java-strategy-pattern",
	},
	"spring_mvc_annotations": {
		"https://docs.spring.io/spring-framework/docs/current/reference/html/web.html",
		"https://www.baeldung.com/spring-mvc-tutorial",
		"https://spring.io/guides/gs/serving-web-content/",
	},
	"core_annotations_di": {
		"https://docs.spring.io/spring-framework/docs/current/reference/html/core.html#beans",
		"https://www.baeldung.com/spring-dependency-injection",
		"https://spring.io/guides/gs/managing-transactions/",
	},
	"spring_data_jpa": {
		"https://docs.spring.io/spring-data/jpa/docs/current/reference/html/",
		"https://www.baeldung.com/spring-data-jpa-tutorial",
		"https://spring.io/guides/gs/accessing-data-jpa/",
	},
	"object_oriented_fundamentals": {
		"https://docs.oracle.com/javase/tutorial/java/concepts/",
		"https://www.baeldung.com/java-oop",
		"https://docs.oracle.com/javase/tutorial/java/javaOO/",
	},
}

var defaultReferences = []string{
	"https://docs.oracle.com/javase/tutorial/",
	"https://www.baeldung.com/java-tutorial",
	"https://spring.io/guides",
}

// PatternReferences returns reference links for a pattern, with a generic
// fallback for unlisted keys.
func PatternReferences(key models.PatternKey) []string {
	if refs, ok := patternReferences[key]; ok {
		return refs
	}
	return defaultReferences
}

var securityReferences = map[models.VulnerabilityKey][]string{
	models.VulnSQLInjection: {
		"https://owasp.org/www-community/attacks/SQL_Injection",
		"https://www.baeldung.com/sql-injection",
		"https://cheatsheetseries.owasp.org/cheatsheets/SQL_Injection_Prevention_Cheat_Sheet.html",
	},
	models.VulnXSS: {
		"https://owasp.org/www-community/attacks/xss/",
		"https://cheatsheetseries.owasp.org/cheatsheets/Cross_Site_Scripting_Prevention_Cheat_Sheet.html",
		"https://www.baeldung.com/spring-prevent-xss",
	},
	models.VulnXXE: {
		"https://owasp.org/www-community/vulnerabilities/XML_External_Entity_(XXE)_Processing",
		"https://cheatsheetseries.owasp.org/cheatsheets/XML_External_Entity_Prevention_Cheat_Sheet.html",
		"https://www.baeldung.com/spring-xml-injection",
	},
	models.VulnPathTraversal: {
		"https://owasp.org/www-community/attacks/Path_Traversal",
		"https://cheatsheetseries.owasp.org/cheatsheets/Input_Validation_Cheat_Sheet.html",
		"https://www.baeldung.com/spring-security-path-traversal",
	},
	models.VulnAuthBypass: {
		"https://owasp.org/www-community/attacks/Authentication_bypass",
		"https://cheatsheetseries.owasp.org/cheatsheets/Authentication_Cheat_Sheet.html",
		"https://www.baeldung.com/spring-security-authentication",
	},
	models.VulnInsecureDeserialization: {
		"https://owasp.org/www-community/vulnerabilities/Deserialization_of_untrusted_data",
		"https://cheatsheetseries.owasp.org/cheatsheets/Deserialization_Cheat_Sheet.html",
		"https://www.baeldung.com/java-deserialization-security",
	},
	"weak_cryptography": {
		"https://owasp.org/www-community/vulnerabilities/Insecure_Cryptographic_Storage",
		"https://cheatsheetseries.owasp.org/cheatsheets/Cryptographic_Storage_Cheat_Sheet.html",
		"https://www.baeldung.com/java-encryption",
	},
}

var defaultSecurityReferences = []string{
	"https://owasp.org/www-community/",
	"https://cheatsheetseries.owasp.org/",
}

// SecurityReferences returns OWASP/CWE-style links for a vulnerability
// type, with a generic OWASP fallback.
func SecurityReferences(key models.VulnerabilityKey) []string {
	if refs, ok := securityReferences[key]; ok {
		return refs
	}
	return defaultSecurityReferences
}

var vulnerabilityDisplayNames = map[models.VulnerabilityKey]string{
	models.VulnSQLInjection:            "SQL Injection",
	models.VulnXSS:                     "XSS",
	models.VulnXXE:                     "XXE",
	models.VulnPathTraversal:           "Path Traversal",
	models.VulnAuthBypass:              "Authentication Bypass",
	models.VulnInsecureDeserialization: "Insecure Deserialization",
	"weak_cryptography":                "Weak Cryptography",
}

// FormatVulnerabilityType converts a vulnerability key to display form.
func FormatVulnerabilityType(key models.VulnerabilityKey) string {
	if name, ok := vulnerabilityDisplayNames[key]; ok {
		return name
	}
	return titleCase(strings.ReplaceAll(string(key), "_", " "))
}

// displayNameFixups are applied in order after title-casing, so e.g.
// "Openapi" becomes "OpenAPI" via the "Api" rule.
var displayNameFixups = [][2]string{
	{"Api", "API"},
	{"Http", "HTTP"},
	{"Jpa", "JPA"},
	{"Di", "DI"},
	{"Etl", "ETL"},
	{"Mvc", "MVC"},
	{"Openapi", "OpenAPI"},
}

// FormatPatternName converts a pattern key to display form, e.g.
// singleton_design_pattern -> Singleton Design Pattern.
func FormatPatternName(key models.PatternKey) string {
	name := string(key)
	if name == "" || name == "unknown" {
		return name
	}
	display := titleCase(strings.ReplaceAll(name, "_", " "))
	for _, fixup := range displayNameFixups {
		display = strings.ReplaceAll(display, fixup[0], fixup[1])
	}
	return display
}

func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// patternKeywords lists the evidence words reported per pattern. Patterns
// without an entry fall back to the generic keyword set.
var patternKeywords = map[models.PatternKey][]string{
	"singleton_design_pattern":     {"singleton", "instance", "static", "private"},
	"factory_design_pattern":       {"factory", "create", "newinstance", "builder"},
	"observer_design_pattern":      {"observer", "notify", "update", "listener"},
	"spring_mvc_annotations":       {"controller", "requestmapping", "autowired", "service"},
	"core_annotations_di":          {"autowired", "component", "service", "repository"},
	"spring_data_jpa":              {"repository", "entity", "jpa", "transactional"},
	"object_oriented_fundamentals": {"class", "public", "private", "protected"},
	"aws_sdk_integration":          {"aws", "sdk", "client", "service"},
}

var defaultKeywords = []string{"class", "public", "private"}

const maxMatchedWords = 5

// MatchedWords returns up to five pattern keywords literally present
// (case-insensitively) in the source.
func MatchedWords(lowerSource string, key models.PatternKey) []string {
	if lowerSource == "" {
		return []string{}
	}
	keywords, ok := patternKeywords[key]
	if !ok {
		keywords = defaultKeywords
	}
	matched := make([]string, 0, maxMatchedWords)
	for _, kw := range keywords {
		if strings.Contains(lowerSource, kw) {
			matched = append(matched, kw)
			if len(matched) == maxMatchedWords {
				break
			}
		}
	}
	return matched
}

// Category labels for detected patterns.
const (
	CategoryCreational    = "CREATIONAL DESIGN PATTERNS"
	CategoryStructural    = "STRUCTURAL DESIGN PATTERNS"
	CategoryBehavioral    = "BEHAVIORAL DESIGN PATTERNS"
	CategorySpring        = "SPRING FRAMEWORK PATTERNS"
	CategoryCoreJava      = "CORE JAVA CONCEPTS"
	CategoryModernJava    = "MODERN JAVA FEATURES"
	CategorySpringBoot    = "SPRING BOOT ECOSYSTEM"
	CategoryWebDev        = "WEB DEVELOPMENT"
	CategoryAPIDocs       = "API DOCUMENTATION"
	CategoryDatabase      = "DATABASE INTEGRATION"
	CategoryOtherPatterns = "OTHER PATTERNS"
)

var patternCategories = buildPatternCategories()

func buildPatternCategories() map[models.PatternKey]string {
	sets := []struct {
		category string
		keys     []models.PatternKey
	}{
		{CategoryCreational, []models.PatternKey{
			"singleton_design_pattern", "Singleton Design Pattern",
			"factory_design_pattern", "builder_design_pattern",
			"prototype_design_pattern", "abstract_factory_design_pattern",
			"singleton", "factory", "builder", "prototype", "abstract_factory",
		}},
		{CategoryStructural, []models.PatternKey{
			"adapter_design_pattern", "decorator_design_pattern", "proxy_design_pattern",
			"composite_design_pattern", "facade_design_pattern", "bridge_design_pattern",
			"flyweight_design_pattern",
			"adapter", "decorator", "proxy", "composite", "facade", "bridge", "flyweight",
		}},
		{CategoryBehavioral, []models.PatternKey{
			"strategy_design_pattern", "observer_design_pattern", "command_design_pattern",
			"template_method_design_pattern", "iterator_design_pattern", "state_design_pattern",
			"chain_of_responsibility_design_pattern", "mediator_design_pattern",
			"memento_design_pattern", "visitor_design_pattern", "interpreter_design_pattern",
			"strategy", "observer", "command", "template_method", "iterator",
			"state", "chain_of_responsibility", "mediator", "memento", "visitor", "interpreter",
		}},
		{CategorySpring, []models.PatternKey{
			"dependency_injection", "spring_mvc_pattern", "restful_api_pattern",
			"repository_pattern", "service_layer_pattern", "dto_pattern", "aop_pattern",
			"mvc", "restful_api", "repository", "service_layer", "dto", "aop",
		}},
		{CategoryCoreJava, []models.PatternKey{
			"oop_fundamentals", "collections_framework", "exception_handling",
			"conditional_control_flow", "loops_and_iteration", "basic_programming_constructs",
		}},
		{CategoryModernJava, []models.PatternKey{
			"optional_null_safety", "functional_programming", "stream_api",
		}},
		{CategorySpringBoot, []models.PatternKey{
			"spring_boot_error_handling", "reactive_programming", "utility_libraries",
			"lombok_jpa_annotations",
		}},
		{CategoryWebDev, []models.PatternKey{
			"core_annotations_di", "web_mvc_annotations", "http_request_processing",
		}},
		{CategoryAPIDocs, []models.PatternKey{
			"openapi_documentation",
		}},
		{CategoryDatabase, []models.PatternKey{
			"spring_data_jpa", "batch_processing_etl",
		}},
	}

	categories := make(map[models.PatternKey]string)
	for _, set := range sets {
		for _, key := range set.keys {
			categories[key] = set.category
		}
	}
	return categories
}

// CategorizePattern maps a pattern key to one of the fixed category
// labels; unknown keys land in OTHER PATTERNS.
func CategorizePattern(key models.PatternKey) string {
	if c, ok := patternCategories[key]; ok {
		return c
	}
	return CategoryOtherPatterns
}
