package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"javacheck/internal/models"
)

func TestFormatPatternName(t *testing.T) {
	tests := []struct {
		key  models.PatternKey
		want string
	}{
		{"singleton_design_pattern", "Singleton Design Pattern"},
		{"chain_of_responsibility_design_pattern", "Chain Of Responsibility Design Pattern"},
		{"restful_api_pattern", "Restful API Pattern"},
		{"http_request_processing", "HTTP Request Processing"},
		{"lombok_jpa_annotations", "Lombok JPA Annotations"},
		{"core_annotations_di", "Core Annotations DI"},
		{"batch_processing_etl", "Batch Processing ETL"},
		{"spring_mvc_pattern", "Spring MVC Pattern"},
		{"openapi_documentation", "OpenAPI Documentation"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPatternName(tt.key))
		})
	}
}

func TestCategorizePattern(t *testing.T) {
	assert.Equal(t, CategoryCreational, CategorizePattern("singleton_design_pattern"))
	assert.Equal(t, CategoryBehavioral, CategorizePattern("visitor_design_pattern"))
	assert.Equal(t, CategorySpring, CategorizePattern("dependency_injection"))
	assert.Equal(t, CategoryCoreJava, CategorizePattern("exception_handling"))
	assert.Equal(t, CategoryDatabase, CategorizePattern("spring_data_jpa"))
	assert.Equal(t, CategoryOtherPatterns, CategorizePattern("something_unknown"))
}

func TestPatternDescription_Fallback(t *testing.T) {
	assert.Contains(t, PatternDescription("singleton_design_pattern"), "only one instance")
	assert.Equal(t, defaultPatternDescription, PatternDescription("no_such_pattern"))
}

func TestPatternReferences_Fallback(t *testing.T) {
	refs := PatternReferences("singleton_design_pattern")
	assert.Contains(t, refs[0], "refactoring.guru")

	assert.Equal(t, defaultReferences, PatternReferences("dto_pattern"))
}

func TestSecurityReferences_Fallback(t *testing.T) {
	refs := SecurityReferences(models.VulnSQLInjection)
	assert.Contains(t, refs[0], "owasp.org")

	assert.Equal(t, defaultSecurityReferences, SecurityReferences("unlisted_vuln"))
}

func TestFormatVulnerabilityType(t *testing.T) {
	assert.Equal(t, "SQL Injection", FormatVulnerabilityType(models.VulnSQLInjection))
	assert.Equal(t, "XXE", FormatVulnerabilityType(models.VulnXXE))
	assert.Equal(t, "Weak Hash", FormatVulnerabilityType("weak_hash"))
}

func TestMatchedWords(t *testing.T) {
	source := strings.ToLower(`public class Registry {
    private static Registry instance;
    public static Registry getInstance() { return instance; }
}`)

	words := MatchedWords(source, "singleton_design_pattern")
	assert.Equal(t, []string{"instance", "static", "private"}, words)

	// Unknown keys fall back to the generic keyword set.
	generic := MatchedWords(source, "no_such_pattern")
	assert.Equal(t, []string{"class", "public", "private"}, generic)

	assert.Empty(t, MatchedWords("", "singleton_design_pattern"))
}

func TestMatchedWords_Cap(t *testing.T) {
	source := "controller requestmapping autowired service repository entity jpa transactional"

	// The spring_data_jpa keyword list has four entries, all present.
	words := MatchedWords(source, "spring_data_jpa")
	assert.Len(t, words, 4)
	assert.LessOrEqual(t, len(words), 5)
}
