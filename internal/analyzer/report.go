package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"javacheck/internal/config"
	"javacheck/internal/models"

	"github.com/fatih/color"
)

// ReportGenerator handles formatting and displaying analysis reports
type ReportGenerator struct {
	format string
	config *config.Config
}

// NewReportGenerator creates a new report generator
func NewReportGenerator(format string) *ReportGenerator {
	return &ReportGenerator{
		format: format,
		config: config.DefaultConfig(),
	}
}

func NewReportGeneratorWithConfig(cfg *config.Config) *ReportGenerator {
	return &ReportGenerator{
		format: cfg.Output.Format,
		config: cfg,
	}
}

// Generate creates a formatted report from per-file analysis results
func (r *ReportGenerator) Generate(reports []FileReport) string {
	switch r.format {
	case "json":
		return r.generateJSON(reports)
	default:
		return r.generateConsole(reports)
	}
}

type fileSection struct {
	File string `json:"file"`
	*models.AnalysisReport
}

// generateJSON creates a JSON report
func (r *ReportGenerator) generateJSON(reports []FileReport) string {
	sections := make([]fileSection, 0, len(reports))
	for _, fr := range reports {
		sections = append(sections, fileSection{File: fr.Path, AnalysisReport: fr.Report})
	}
	data, err := json.MarshalIndent(struct {
		Files []fileSection `json:"files"`
	}{Files: sections}, "", "  ")
	if err != nil {
		return fmt.Sprintf("Error generating JSON report: %v", err)
	}
	return string(data)
}

// generateConsole creates a colorized console report
func (r *ReportGenerator) generateConsole(reports []FileReport) string {
	var report strings.Builder

	useColors := true
	verbose := false
	showRecommendations := true

	if r.config != nil {
		useColors = r.config.Output.Colors
		verbose = r.config.Output.Verbose
		showRecommendations = r.config.Output.ShowRecommendations
	}

	// Header
	if useColors {
		report.WriteString(color.CyanString("🔍 JavaCheck Analysis Report\n"))
		report.WriteString(color.WhiteString("═══════════════════════════════════════\n\n"))
	} else {
		report.WriteString("JavaCheck Analysis Report\n")
		report.WriteString("=======================================\n\n")
	}

	if verbose && r.config != nil {
		r.writeConfigInfo(&report, useColors)
	}

	r.writeSummary(&report, reports, useColors)

	for _, fr := range reports {
		r.writeFileSection(&report, fr, useColors, showRecommendations)
	}

	return report.String()
}

func (r *ReportGenerator) writeConfigInfo(report *strings.Builder, useColors bool) {
	if useColors {
		report.WriteString(color.WhiteString("📋 Configuration:\n"))
		report.WriteString(fmt.Sprintf("   Include patterns: %s\n",
			color.CyanString(strings.Join(r.config.Files.IncludePatterns, ", "))))
		report.WriteString(fmt.Sprintf("   Score thresholds: %s\n",
			color.CyanString("%d/%d/%d",
				r.config.Analysis.ScoreThresholds.Excellent,
				r.config.Analysis.ScoreThresholds.Good,
				r.config.Analysis.ScoreThresholds.Fair)))
	} else {
		report.WriteString("Configuration:\n")
		report.WriteString(fmt.Sprintf("   Include patterns: %s\n", strings.Join(r.config.Files.IncludePatterns, ", ")))
		report.WriteString(fmt.Sprintf("   Score thresholds: %d/%d/%d\n",
			r.config.Analysis.ScoreThresholds.Excellent,
			r.config.Analysis.ScoreThresholds.Good,
			r.config.Analysis.ScoreThresholds.Fair))
	}
	report.WriteString("\n")
}

func (r *ReportGenerator) writeSummary(report *strings.Builder, reports []FileReport, useColors bool) {
	totalConcepts := 0
	totalVulnerabilities := 0
	for _, fr := range reports {
		totalConcepts += len(fr.Report.DetectedConcepts)
		totalVulnerabilities += len(fr.Report.Security.Vulnerabilities)
	}

	if useColors {
		report.WriteString(color.WhiteString("📊 Summary:\n"))
	} else {
		report.WriteString("Summary:\n")
	}
	report.WriteString(fmt.Sprintf("   Files analyzed: %d\n", len(reports)))
	report.WriteString(fmt.Sprintf("   Concepts detected: %d\n", totalConcepts))
	report.WriteString(fmt.Sprintf("   Vulnerabilities found: %d\n", totalVulnerabilities))
	report.WriteString("\n")
}

func (r *ReportGenerator) writeFileSection(report *strings.Builder, fr FileReport, useColors, showRecommendations bool) {
	if useColors {
		report.WriteString(color.WhiteString("📄 %s\n", fr.Path))
	} else {
		report.WriteString(fmt.Sprintf("File: %s\n", fr.Path))
	}
	report.WriteString(strings.Repeat("─", 50) + "\n")

	r.writeQualityScore(report, fr.Report, useColors)
	report.WriteString(fmt.Sprintf("   Complexity: %d/100   Lines of code: %d\n\n",
		fr.Report.ComplexityScore, fr.Report.LinesOfCode))

	r.writeConcepts(report, fr.Report, useColors)
	r.writeSecurity(report, fr.Report, useColors)

	if showRecommendations {
		r.writeRecommendations(report, fr.Report, useColors)
	}
	report.WriteString("\n")
}

// writeQualityScore writes the quality score with color coding
func (r *ReportGenerator) writeQualityScore(report *strings.Builder, result *models.AnalysisReport, useColors bool) {
	score := result.QualityScore
	var scoreColor func(a ...interface{}) string
	var emoji string
	excellent, good, fair := 90, 75, 50
	if r.config != nil {
		excellent = r.config.Analysis.ScoreThresholds.Excellent
		good = r.config.Analysis.ScoreThresholds.Good
		fair = r.config.Analysis.ScoreThresholds.Fair
	}

	switch {
	case score >= excellent:
		scoreColor = color.New(color.FgGreen).SprintFunc()
		emoji = "🌟"
	case score >= good:
		scoreColor = color.New(color.FgYellow).SprintFunc()
		emoji = "⚡"
	case score >= fair:
		scoreColor = color.New(color.FgHiYellow).SprintFunc()
		emoji = "⚠️"
	default:
		scoreColor = color.New(color.FgRed).SprintFunc()
		emoji = "🚨"
	}

	if useColors {
		scoreText := scoreColor(fmt.Sprintf("%d", score))
		report.WriteString(fmt.Sprintf("%s Quality Score: %s/100\n", emoji, scoreText))
	} else {
		report.WriteString(fmt.Sprintf("Quality Score: %d/100\n", score))
	}
}

func (r *ReportGenerator) writeConcepts(report *strings.Builder, result *models.AnalysisReport, useColors bool) {
	if len(result.DetectedConcepts) == 0 {
		if useColors {
			report.WriteString(color.WhiteString("   No patterns detected.\n\n"))
		} else {
			report.WriteString("   No patterns detected.\n\n")
		}
		return
	}

	if useColors {
		report.WriteString(color.WhiteString("🧩 Detected Concepts:\n"))
	} else {
		report.WriteString("Detected Concepts:\n")
	}
	for _, concept := range result.DetectedConcepts {
		if useColors {
			report.WriteString(fmt.Sprintf("   %s %s\n",
				color.CyanString(concept.Name),
				color.WhiteString("[%s]", concept.Category)))
			report.WriteString(fmt.Sprintf("      %s\n", concept.Description))
			if len(concept.MatchedWords) > 0 {
				report.WriteString(color.WhiteString("      Matched: %s\n", strings.Join(concept.MatchedWords, ", ")))
			}
		} else {
			report.WriteString(fmt.Sprintf("   %s [%s]\n", concept.Name, concept.Category))
			report.WriteString(fmt.Sprintf("      %s\n", concept.Description))
			if len(concept.MatchedWords) > 0 {
				report.WriteString(fmt.Sprintf("      Matched: %s\n", strings.Join(concept.MatchedWords, ", ")))
			}
		}
	}
	report.WriteString("\n")
}

func (r *ReportGenerator) writeSecurity(report *strings.Builder, result *models.AnalysisReport, useColors bool) {
	risk := result.Security.OverallRisk
	if useColors {
		emoji, riskColor := r.getSeverityDisplay(string(risk))
		report.WriteString(fmt.Sprintf("%s Security Risk: %s\n", emoji, riskColor(string(risk))))
	} else {
		report.WriteString(fmt.Sprintf("Security Risk: %s\n", risk))
	}

	if len(result.Security.Vulnerabilities) == 0 {
		if useColors {
			report.WriteString(color.GreenString("   🎉 No obvious vulnerabilities detected!\n\n"))
		} else {
			report.WriteString("   No obvious vulnerabilities detected!\n\n")
		}
		return
	}

	for _, vuln := range result.Security.Vulnerabilities {
		if useColors {
			emoji, severityColor := r.getSeverityDisplay(vuln.Severity)
			report.WriteString(fmt.Sprintf("   %s %s %s\n",
				emoji, severityColor(vuln.Severity), color.WhiteString(vuln.Type)))
			report.WriteString(color.WhiteString("      💭 %s\n", vuln.Description))
			report.WriteString(color.GreenString("      💡 %s\n", vuln.Remediation))
		} else {
			report.WriteString(fmt.Sprintf("   %s %s\n", vuln.Severity, vuln.Type))
			report.WriteString(fmt.Sprintf("      Issue: %s\n", vuln.Description))
			report.WriteString(fmt.Sprintf("      Remediation: %s\n", vuln.Remediation))
		}
	}
	report.WriteString("\n")
}

func (r *ReportGenerator) writeRecommendations(report *strings.Builder, result *models.AnalysisReport, useColors bool) {
	if len(result.Recommendations) == 0 {
		return
	}
	if useColors {
		report.WriteString(color.WhiteString("💡 Recommendations:\n"))
	} else {
		report.WriteString("Recommendations:\n")
	}
	for _, rec := range result.Recommendations {
		if useColors {
			report.WriteString(color.GreenString("   • %s\n", rec))
		} else {
			report.WriteString(fmt.Sprintf("   - %s\n", rec))
		}
	}
}

// getSeverityDisplay returns emoji and color function for a severity level
func (r *ReportGenerator) getSeverityDisplay(severity string) (string, func(a ...interface{}) string) {
	switch severity {
	case "CRITICAL":
		return "🚨", color.New(color.FgRed, color.Bold).SprintFunc()
	case "HIGH":
		return "❌", color.New(color.FgRed).SprintFunc()
	case "MEDIUM":
		return "⚠️", color.New(color.FgYellow).SprintFunc()
	case "LOW":
		return "ℹ️", color.New(color.FgBlue).SprintFunc()
	default:
		return "❓", color.New(color.FgWhite).SprintFunc()
	}
}
