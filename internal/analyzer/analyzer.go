package analyzer

import (
	"fmt"
	"math"
	"os"

	"javacheck/internal/analyzer/detectors"
	"javacheck/internal/lexical"
	"javacheck/internal/models"
)

// Engine runs the full analysis pipeline: feature extraction, pattern
// rules, the vulnerability decision list, metrics, then aggregation into
// one report. It holds no state and is safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Analyze evaluates one Java source text. It is total: any input,
// including empty or non-Java text, produces a well-formed report.
func (e *Engine) Analyze(source string) *models.AnalysisReport {
	features := lexical.Extract(source)

	matches := detectors.DetectPatterns(features)
	finding := detectors.DetectVulnerability(features)
	metrics := ComputeMetrics(features)

	qualityScore := int(math.Round(
		(1-math.Min(metrics.CodeDuplication, 1.0))*25 +
			metrics.TestCoverage*25 +
			math.Min(metrics.CommentRatio/0.3, 1.0)*25 +
			metrics.Cohesion*25))
	complexityScore := metrics.CyclomaticComplexity
	if complexityScore > 100 {
		complexityScore = 100
	}
	linesOfCode := features.NonEmptyLines

	concepts := make([]models.DetectedConcept, 0, len(matches))
	for _, match := range matches {
		concepts = append(concepts, models.DetectedConcept{
			Name:           FormatPatternName(match.Pattern),
			Category:       CategorizePattern(match.Pattern),
			Description:    PatternDescription(match.Pattern),
			Theory:         match.Theory,
			ReferenceLinks: PatternReferences(match.Pattern),
			MatchedWords:   MatchedWords(features.Lower, match.Pattern),
			LinesOfCode:    linesOfCode,
		})
	}

	vulnerabilities := make([]models.Vulnerability, 0, 1)
	if finding.Vulnerability != models.VulnNone {
		displayType := FormatVulnerabilityType(finding.Vulnerability)
		vulnerabilities = append(vulnerabilities, models.Vulnerability{
			Type:        displayType,
			Severity:    finding.Severity.String(),
			Description: finding.Description,
			Remediation: fmt.Sprintf("Address %s vulnerability by implementing proper security controls", displayType),
			References:  SecurityReferences(finding.Vulnerability),
		})
	}

	return &models.AnalysisReport{
		DetectedConcepts: concepts,
		ComplexityScore:  complexityScore,
		QualityScore:     qualityScore,
		LinesOfCode:      linesOfCode,
		Recommendations:  buildRecommendations(vulnerabilities, complexityScore, qualityScore, metrics),
		Security: models.SecurityAnalysis{
			OverallRisk:     overallRisk(vulnerabilities),
			Vulnerabilities: vulnerabilities,
		},
		Metrics: metrics,
	}
}

// FileReport pairs an analyzed path with its report.
type FileReport struct {
	Path   string
	Report *models.AnalysisReport
}

// AnalyzeFiles analyzes each path independently. Unreadable files are
// skipped so one bad path does not abort the run.
func (e *Engine) AnalyzeFiles(paths []string) []FileReport {
	reports := make([]FileReport, 0, len(paths))
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		reports = append(reports, FileReport{
			Path:   path,
			Report: e.Analyze(string(source)),
		})
	}
	return reports
}

// overallRisk collapses finding severities into the coarser report-level
// labels: CRITICAL maps down to HIGH, HIGH to MEDIUM.
func overallRisk(vulnerabilities []models.Vulnerability) models.RiskLevel {
	anyHigh := false
	for _, v := range vulnerabilities {
		switch v.Severity {
		case "CRITICAL":
			return models.RiskHigh
		case "HIGH":
			anyHigh = true
		}
	}
	if anyHigh {
		return models.RiskMedium
	}
	return models.RiskLow
}

// buildRecommendations emits advice strings in a fixed order: security
// first, then complexity, quality, and coverage. The consumer renders
// them verbatim.
func buildRecommendations(vulnerabilities []models.Vulnerability, complexityScore, qualityScore int, metrics models.CodeMetrics) []string {
	recommendations := make([]string, 0, 5)

	criticalCount := 0
	highCount := 0
	for _, v := range vulnerabilities {
		switch v.Severity {
		case "CRITICAL":
			criticalCount++
		case "HIGH":
			highCount++
		}
	}

	if criticalCount > 0 {
		recommendations = append(recommendations, "Critical security issue detected! Immediate action required.")
	}
	if highCount > 0 {
		recommendations = append(recommendations, "High severity vulnerability detected. Address immediately.")
	}
	if complexityScore > 70 {
		recommendations = append(recommendations, "Consider breaking down complex methods into smaller, more manageable functions")
	}
	if qualityScore < 60 {
		recommendations = append(recommendations, "Add proper exception handling with try-catch blocks")
	}
	if metrics.TestCoverage < 0.7 {
		recommendations = append(recommendations, "Increase test coverage to at least 70%")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Code follows good practices. Continue maintaining quality standards.")
	}
	return recommendations
}
