package analyzer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"javacheck/internal/config"
)

func sampleReports() []FileReport {
	engine := NewEngine()
	return []FileReport{
		{Path: "AppConfig.java", Report: engine.Analyze(singletonSource)},
		{Path: "UserDao.java", Report: engine.Analyze(sqlInjectionSource)},
	}
}

func TestReportGenerator_JSON(t *testing.T) {
	gen := NewReportGenerator("json")
	out := gen.Generate(sampleReports())

	var doc struct {
		Files []struct {
			File         string `json:"file"`
			QualityScore int    `json:"qualityScore"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Files, 2)
	assert.Equal(t, "AppConfig.java", doc.Files[0].File)
	assert.Equal(t, "UserDao.java", doc.Files[1].File)
}

func TestReportGenerator_ConsolePlain(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Colors = false
	gen := NewReportGeneratorWithConfig(cfg)

	out := gen.Generate(sampleReports())

	assert.Contains(t, out, "JavaCheck Analysis Report")
	assert.Contains(t, out, "Files analyzed: 2")
	assert.Contains(t, out, "Quality Score:")
	assert.Contains(t, out, "File: UserDao.java")
	assert.Contains(t, out, "SQL Injection")
	assert.Contains(t, out, "Recommendations:")
}

func TestReportGenerator_RecommendationsToggle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Colors = false
	cfg.Output.ShowRecommendations = false
	gen := NewReportGeneratorWithConfig(cfg)

	out := gen.Generate(sampleReports())
	assert.NotContains(t, out, "Recommendations:")
}

func TestReportGenerator_EmptyFileList(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Colors = false
	gen := NewReportGeneratorWithConfig(cfg)

	out := gen.Generate(nil)
	assert.Contains(t, out, "Files analyzed: 0")
	assert.False(t, strings.Contains(out, "Quality Score:"))
}
