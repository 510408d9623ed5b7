package detectors

import (
	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

// frameworkRules covers the Spring, core-Java, modern-Java, Spring Boot
// ecosystem, web, API documentation and database idioms. Most of these
// rules are annotation-driven and correspondingly high-confidence.
func frameworkRules() []PatternRule {
	return []PatternRule{
		{
			Key:        models.PatternDependencyInjection,
			Confidence: 0.94,
			Theory:     "Dependency Injection",
			Match: func(f *lexical.Features) bool {
				return f.Has("@Autowired") || f.Has("@Inject")
			},
		},
		{
			Key:        models.PatternSpringMVC,
			Confidence: 0.93,
			Theory:     "Spring MVC Pattern",
			Match: func(f *lexical.Features) bool {
				hasRestController := f.Has("@RestController") || f.Has("@Controller")
				hasMapping := f.Has("@GetMapping") || f.Has("@PostMapping") || f.Has("@RequestMapping")
				return hasRestController && hasMapping
			},
		},
		{
			Key:        models.PatternRESTfulAPI,
			Confidence: 0.92,
			Theory:     "RESTful API Pattern",
			Match: func(f *lexical.Features) bool {
				numAPIMethods := f.Count("@GetMapping") + f.Count("@PostMapping") + f.Count("@PutMapping")
				hasRestController := f.Has("@RestController") || f.Has("@Controller")
				return numAPIMethods >= 2 || (hasRestController && f.Has("@RequestMapping"))
			},
		},
		{
			Key:        models.PatternRepository,
			Confidence: 0.93,
			Theory:     "Repository Pattern",
			Match: func(f *lexical.Features) bool {
				return f.Has("@Repository") || f.Has("JpaRepository") || f.Has("CrudRepository")
			},
		},
		{
			Key:        models.PatternServiceLayer,
			Confidence: 0.91,
			Theory:     "Service Layer Pattern",
			Match: func(f *lexical.Features) bool {
				return f.Has("@Service")
			},
		},
		{
			Key:        models.PatternDTO,
			Confidence: 0.89,
			Theory:     "DTO Pattern",
			Match: func(f *lexical.Features) bool {
				hasGettersSetters := (f.Has("getUsername") || f.Has("get")) &&
					(f.Has("setUsername") || f.Has("set"))
				return f.Has("DTO") ||
					(hasGettersSetters && f.NumMethods >= 2 && f.NumMethods <= 10)
			},
		},
		{
			Key:        models.PatternAOP,
			Confidence: 0.92,
			Theory:     "AOP Pattern",
			Match: func(f *lexical.Features) bool {
				hasBeforeAfter := f.Has("@Before") || f.Has("@After")
				return f.Has("@Aspect") || (hasBeforeAfter && f.Has("JoinPoint"))
			},
		},
		{
			Key:        models.PatternOOPFundamentals,
			Confidence: 0.88,
			Theory:     "OOP Fundamentals",
			Match: func(f *lexical.Features) bool {
				return (f.Has("extends") || f.Has("@Override")) && f.NumClasses >= 1
			},
		},
		{
			Key:        models.PatternCollections,
			Confidence: 0.90,
			Theory:     "Collections Framework",
			Match: func(f *lexical.Features) bool {
				hasList := f.Has("ArrayList") || f.Has("List<")
				hasSet := f.Has("HashSet") || f.Has("Set<")
				hasMap := f.Has("HashMap") || f.Has("Map<")
				hasCollectionOps := f.Has(".add(") || f.Has(".put(")
				return (hasList || hasSet || hasMap) && hasCollectionOps
			},
		},
		{
			Key:        models.PatternExceptionHandling,
			Confidence: 0.92,
			Theory:     "Exception Handling",
			Match: func(f *lexical.Features) bool {
				return f.Has("@ExceptionHandler") || f.Has("@RestControllerAdvice") ||
					f.Has("@ControllerAdvice")
			},
		},
		{
			Key:        models.PatternConditionalFlow,
			Confidence: 0.86,
			Theory:     "Conditional Control Flow",
			Match: func(f *lexical.Features) bool {
				return (f.Has("switch") && f.Has("case")) ||
					(f.Has("else if") && f.NumIf >= 1)
			},
		},
		{
			Key:        models.PatternLoops,
			Confidence: 0.85,
			Theory:     "Loops And Iteration",
			Match: func(f *lexical.Features) bool {
				return f.NumFor >= 1 || f.Has("forEach")
			},
		},
		{
			Key:        models.PatternBasicConstructs,
			Confidence: 0.80,
			Theory:     "Basic Programming Constructs",
			Match: func(f *lexical.Features) bool {
				return f.NumMethods <= 5 && f.NumClasses <= 2
			},
		},
		{
			Key:        models.PatternOptional,
			Confidence: 0.91,
			Theory:     "Optional Null Safety",
			Match: func(f *lexical.Features) bool {
				return f.Has("Optional<") || f.Has("Optional.") || f.Has(".orElse")
			},
		},
		{
			Key:        models.PatternFunctional,
			Confidence: 0.90,
			Theory:     "Functional Programming",
			Match: func(f *lexical.Features) bool {
				return f.Has("->") || f.Has(".stream()") || f.Has("Collectors")
			},
		},
		{
			Key:        models.PatternSpringErrorHandling,
			Confidence: 0.93,
			Theory:     "Spring Boot Error Handling",
			Match: func(f *lexical.Features) bool {
				return f.Has("@ControllerAdvice") ||
					(f.Has("@ExceptionHandler") && f.Has("@"))
			},
		},
		{
			Key:        models.PatternReactive,
			Confidence: 0.92,
			Theory:     "Reactive Programming",
			Match: func(f *lexical.Features) bool {
				return (f.Has("Mono<") || f.Has("Flux<")) &&
					(f.Has("WebClient") || f.Has("webClient"))
			},
		},
		{
			Key:        models.PatternUtilityLibraries,
			Confidence: 0.84,
			Theory:     "Utility Libraries",
			Match: func(f *lexical.Features) bool {
				return f.Has("Utils") || f.Has("Helper")
			},
		},
		{
			Key:        models.PatternLombokJPA,
			Confidence: 0.91,
			Theory:     "Lombok JPA Annotations",
			Match: func(f *lexical.Features) bool {
				return f.Has("@Data") || f.Has("@Entity") || f.Has("@Id") ||
					f.Has("@GeneratedValue")
			},
		},
		{
			Key:        models.PatternCoreAnnotationsDI,
			Confidence: 0.90,
			Theory:     "Core Annotations DI",
			Match: func(f *lexical.Features) bool {
				hasStereotype := f.Has("@Component") || f.Has("@Service") || f.Has("@Repository")
				return hasStereotype && (f.Has("@Autowired") || f.Has("@Value"))
			},
		},
		{
			Key:        models.PatternWebMVCAnnotations,
			Confidence: 0.89,
			Theory:     "Web MVC Annotations",
			Match: func(f *lexical.Features) bool {
				return f.Has("@Controller") || f.Has("@RequestParam")
			},
		},
		{
			Key:        models.PatternHTTPProcessing,
			Confidence: 0.88,
			Theory:     "HTTP Request Processing",
			Match: func(f *lexical.Features) bool {
				return f.Has("@RequestBody") || f.Has("@ResponseBody") || f.Has("ResponseEntity")
			},
		},
		{
			Key:        models.PatternOpenAPI,
			Confidence: 0.91,
			Theory:     "OpenAPI Documentation",
			Match: func(f *lexical.Features) bool {
				return f.Has("@Api") || f.Has("@ApiOperation") || f.Has("@ApiResponse")
			},
		},
		{
			Key:        models.PatternSpringDataJPA,
			Confidence: 0.92,
			Theory:     "Spring Data JPA",
			Match: func(f *lexical.Features) bool {
				return f.Has("@Entity") || f.Has("JpaRepository") || f.Has("@Query")
			},
		},
		{
			Key:        models.PatternBatchETL,
			Confidence: 0.89,
			Theory:     "Batch Processing ETL",
			Match: func(f *lexical.Features) bool {
				return f.Has("@EnableBatchProcessing") || f.Has("JobBuilderFactory") ||
					f.Has(".chunk(")
			},
		},
	}
}
