package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"javacheck/internal/models"
)

const singletonSource = `public class AppConfig {
    private static AppConfig instance;

    // Lazily created.
    private AppConfig() {
    }

    public static AppConfig getInstance() {
        if (instance == null) {
            instance = new AppConfig();
        }
        return instance;
    }
}`

const sqlInjectionSource = `public class UserDao {
    public ResultSet find(String name) throws Exception {
        String query = "SELECT * FROM users WHERE name = '" + name + "'";
        return statement.executeQuery(query);
    }
}`

const deserializationSource = `public class Loader {
    public Object load(InputStream s) throws Exception {
        ObjectInputStream in = new ObjectInputStream(s);
        return in.readObject();
    }
}`

func TestAnalyze_SingletonReport(t *testing.T) {
	report := NewEngine().Analyze(singletonSource)

	var concept *models.DetectedConcept
	for i := range report.DetectedConcepts {
		if report.DetectedConcepts[i].Name == "Singleton Design Pattern" {
			concept = &report.DetectedConcepts[i]
			break
		}
	}
	require.NotNil(t, concept, "singleton concept should be reported")

	assert.Equal(t, "CREATIONAL DESIGN PATTERNS", concept.Category)
	assert.Contains(t, concept.Description, "only one instance")
	assert.NotEmpty(t, concept.ReferenceLinks)
	assert.LessOrEqual(t, len(concept.MatchedWords), 5)
	assert.Subset(t, []string{"singleton", "instance", "static", "private"}, concept.MatchedWords)
	assert.Equal(t, report.LinesOfCode, concept.LinesOfCode)

	assert.Equal(t, models.RiskLow, report.Security.OverallRisk)
	assert.Empty(t, report.Security.Vulnerabilities)
}

func TestAnalyze_ScoreBounds(t *testing.T) {
	sources := []string{"", "int x = 1;", singletonSource, sqlInjectionSource, deserializationSource}

	for _, source := range sources {
		report := NewEngine().Analyze(source)

		assert.GreaterOrEqual(t, report.QualityScore, 0)
		assert.LessOrEqual(t, report.QualityScore, 100)
		assert.GreaterOrEqual(t, report.ComplexityScore, 0)
		assert.LessOrEqual(t, report.ComplexityScore, 100)
	}
}

func TestAnalyze_RiskMapping(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantRisk models.RiskLevel
	}{
		{"no findings", "public class Empty {}", models.RiskLow},
		{"high finding maps to medium risk", sqlInjectionSource, models.RiskMedium},
		{"critical finding maps to high risk", deserializationSource, models.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := NewEngine().Analyze(tt.source)
			assert.Equal(t, tt.wantRisk, report.Security.OverallRisk)
		})
	}
}

func TestAnalyze_VulnerabilityDetail(t *testing.T) {
	report := NewEngine().Analyze(sqlInjectionSource)

	require.Len(t, report.Security.Vulnerabilities, 1)
	vuln := report.Security.Vulnerabilities[0]

	assert.Equal(t, "SQL Injection", vuln.Type)
	assert.Equal(t, "HIGH", vuln.Severity)
	assert.Equal(t, "Address SQL Injection vulnerability by implementing proper security controls", vuln.Remediation)
	assert.NotEmpty(t, vuln.References)
}

func TestAnalyze_RecommendationOrder(t *testing.T) {
	report := NewEngine().Analyze(sqlInjectionSource)

	require.NotEmpty(t, report.Recommendations)
	assert.Equal(t, "High severity vulnerability detected. Address immediately.", report.Recommendations[0])
	assert.Contains(t, report.Recommendations, "Increase test coverage to at least 70%")

	report = NewEngine().Analyze(deserializationSource)
	require.NotEmpty(t, report.Recommendations)
	assert.Equal(t, "Critical security issue detected! Immediate action required.", report.Recommendations[0])
}

func TestAnalyze_CoverageRecommendationAlwaysPresent(t *testing.T) {
	// Test coverage is pinned to 0.5, which is below the 0.7 bar, so the
	// coverage recommendation fires on every input and the "good
	// practices" default is unreachable.
	for _, source := range []string{"", singletonSource, "public class Empty {}"} {
		report := NewEngine().Analyze(source)
		assert.Contains(t, report.Recommendations, "Increase test coverage to at least 70%")
		assert.NotContains(t, report.Recommendations,
			"Code follows good practices. Continue maintaining quality standards.")
	}
}

func TestAnalyze_LinesOfCodeExcludesBlank(t *testing.T) {
	report := NewEngine().Analyze("public class A {\n\n    int x;\n\n}")
	assert.Equal(t, 3, report.LinesOfCode)
}

func TestAnalyzeFiles_SkipsMissing(t *testing.T) {
	engine := NewEngine()

	reports := engine.AnalyzeFiles([]string{
		"../../testdata/Sample.java",
		"../../testdata/missing.java",
		"../../testdata/VulnerableDao.java",
	})

	require.Len(t, reports, 2)
	assert.Equal(t, "../../testdata/Sample.java", reports[0].Path)
	assert.Equal(t, "../../testdata/VulnerableDao.java", reports[1].Path)

	assert.Equal(t, models.RiskLow, reports[0].Report.Security.OverallRisk)
	assert.Equal(t, models.RiskMedium, reports[1].Report.Security.OverallRisk)
}
