package detectors

import (
	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

// VulnerabilityRule is one entry in the security decision list.
type VulnerabilityRule struct {
	Key         models.VulnerabilityKey
	Severity    models.Severity
	Confidence  float64
	Description string
	Match       func(f *lexical.Features) bool
}

// vulnerabilityRules is evaluated in order with first-match-wins. The
// ordering is a contract: inputs often satisfy several raw predicates at
// once (SQL concatenation plus an unhardened XML parser must report SQL
// injection, not XXE), so reordering changes results.
var vulnerabilityRules = []VulnerabilityRule{
	{
		Key:         models.VulnSQLInjection,
		Severity:    models.SeverityHigh,
		Confidence:  0.92,
		Description: "SQL Injection vulnerability detected - unsafe string concatenation in SQL query",
		Match: func(f *lexical.Features) bool {
			sqlConcat := (f.Has("+") || f.HasLower("concat")) &&
				(f.Has("SELECT") || f.HasLower("select"))
			stringQuery := f.Has(`"SELECT`) && f.Has("+")
			return sqlConcat || stringQuery
		},
	},
	{
		Key:         models.VulnXSS,
		Severity:    models.SeverityHigh,
		Confidence:  0.90,
		Description: "XSS vulnerability detected - unescaped HTML output",
		Match: func(f *lexical.Features) bool {
			return (f.Has("@GetMapping") && f.Has(`return "<`)) ||
				(f.Has("<div>") && f.Has("+"))
		},
	},
	{
		Key:         models.VulnPathTraversal,
		Severity:    models.SeverityHigh,
		Confidence:  0.88,
		Description: "Path Traversal vulnerability detected - unsafe file path handling",
		Match: func(f *lexical.Features) bool {
			return ((f.Has("File(") || f.Has("Paths.get")) && f.Has("+")) ||
				(f.HasLower("uploads") && f.Has("+"))
		},
	},
	{
		Key:         models.VulnXXE,
		Severity:    models.SeverityMedium,
		Confidence:  0.85,
		Description: "XXE vulnerability detected - unprotected XML parsing",
		Match: func(f *lexical.Features) bool {
			return (f.Has("DocumentBuilderFactory") || f.Has("parseXML")) &&
				!f.Has("setFeature")
		},
	},
	{
		Key:         models.VulnAuthBypass,
		Severity:    models.SeverityCritical,
		Confidence:  0.87,
		Description: "Authentication Bypass vulnerability detected - weak authentication logic",
		Match: func(f *lexical.Features) bool {
			return f.Has("password.length()") || f.Has(`.equals("admin")`) ||
				(f.Has(".length() >") && f.HasLower("password"))
		},
	},
	{
		Key:         models.VulnInsecureDeserialization,
		Severity:    models.SeverityCritical,
		Confidence:  0.89,
		Description: "Insecure Deserialization vulnerability detected - unsafe object deserialization",
		Match: func(f *lexical.Features) bool {
			return f.Has("ObjectInputStream") && f.Has(".readObject()")
		},
	},
	{
		Key:         models.VulnNone,
		Severity:    models.SeverityLow,
		Confidence:  0.95,
		Description: "Secure implementation detected - proper password hashing and validation",
		Match: func(f *lexical.Features) bool {
			return (f.Has("BCryptPasswordEncoder") || f.Has("encoder.encode")) &&
				f.Has("@Valid")
		},
	},
}

// Vulnerabilities returns the decision list in evaluation order.
func Vulnerabilities() []VulnerabilityRule {
	return vulnerabilityRules
}

// DetectVulnerability walks the decision list and returns the first
// matching verdict, or the default "none" verdict when nothing matches.
// Exactly one branch fires for any input.
func DetectVulnerability(f *lexical.Features) models.VulnerabilityFinding {
	for _, rule := range vulnerabilityRules {
		if rule.Match(f) {
			return models.VulnerabilityFinding{
				Vulnerability: rule.Key,
				Severity:      rule.Severity,
				Confidence:    rule.Confidence,
				Description:   rule.Description,
			}
		}
	}
	return models.VulnerabilityFinding{
		Vulnerability: models.VulnNone,
		Severity:      models.SeverityLow,
		Confidence:    0.50,
		Description:   "No obvious vulnerabilities detected",
	}
}
