package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"javacheck/internal/analyzer"
	"javacheck/internal/config"
	"javacheck/internal/watcher"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	formatFlag         string
	watchFlag          bool
	configFlag         string
	generateConfigFlag bool
	outputFlag         string
	failBelowFairFlag  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "javacheck [files or directories]",
	Short: "A Java source analyzer that detects design patterns and vulnerabilities",
	Long: `javacheck is a static analysis tool that scans Java source code for
design patterns, framework usage, code metrics and common security issues.

Examples:
  javacheck .                              # Analyze current directory
  javacheck Main.java Service.java         # Analyze specific files
  javacheck --format=json .                # Output results in JSON format
  javacheck --config=.javacheck.yml .      # Use custom config
  javacheck --watch src/                   # Re-analyze on file changes
  javacheck --generate-config              # Generate sample config file`,
	Run: runAnalysis,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "console", "Output format (console, json)")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch mode for development")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().BoolVar(&generateConfigFlag, "generate-config", false, "Generate sample configuration file")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.Flags().BoolVar(&failBelowFairFlag, "fail-below-fair", false, "Exit non-zero when a file scores below the fair threshold")
}

func runAnalysis(cmd *cobra.Command, args []string) {
	if generateConfigFlag {
		generateConfig()
		return
	}

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		color.Red("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if outputFlag != "" {
		cfg.Output.OutputFile = outputFlag
	}
	if failBelowFairFlag {
		cfg.Analysis.FailBelowFair = true
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	if watchFlag {
		runWatch(cfg, args)
		return
	}

	exitCode := analyzeOnce(cfg, args)
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// analyzeOnce runs one full analysis pass and returns the process exit code.
func analyzeOnce(cfg *config.Config, args []string) int {
	javaFiles := collectAll(cfg, args)
	if len(javaFiles) == 0 {
		color.Yellow("⚠️  No Java files found to analyze\n")
		return 0
	}

	engine := analyzer.NewEngine()
	reportGen := analyzer.NewReportGeneratorWithConfig(cfg)

	if cfg.Output.Verbose {
		color.Cyan("🔍 Analyzing %d Java files...\n", len(javaFiles))
		if configFlag != "" {
			color.Cyan("📋 Using configuration: %s\n", configFlag)
		}
		color.Cyan("🎯 Include patterns: %s\n\n", strings.Join(cfg.Files.IncludePatterns, ", "))
	} else {
		color.Cyan("🔍 Analyzing %d Java files...\n\n", len(javaFiles))
	}

	reports := engine.AnalyzeFiles(javaFiles)
	report := reportGen.Generate(reports)

	if cfg.Output.OutputFile != "" {
		if err := writeReportToFile(report, cfg.Output.OutputFile); err != nil {
			color.Red("Failed to write report to file: %v\n", err)
		} else {
			color.Green("📄 Report saved to: %s\n", cfg.Output.OutputFile)
		}
	} else {
		fmt.Print(report)
	}

	if cfg.Analysis.FailBelowFair {
		for _, fr := range reports {
			if fr.Report.QualityScore < cfg.Analysis.ScoreThresholds.Fair {
				return 1
			}
		}
	}
	return 0
}

// runWatch re-runs the analysis whenever a watched Java file changes.
func runWatch(cfg *config.Config, args []string) {
	fw, err := watcher.NewFileWatcher(cfg)
	if err != nil {
		color.Red("Failed to start watch mode: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	analyzeOnce(cfg, args)

	err = fw.Watch(args, func(changed []string) error {
		color.Cyan("\n🔁 Changes detected in %d file(s), re-analyzing...\n\n", len(changed))
		analyzeOnce(cfg, args)
		return nil
	})
	if err != nil {
		color.Red("Failed to watch paths: %v\n", err)
		os.Exit(1)
	}

	color.Cyan("👀 Watching %d directories for changes (Ctrl+C to stop)\n", len(fw.GetWatchedPaths()))
	select {}
}

func collectAll(cfg *config.Config, args []string) []string {
	var javaFiles []string
	for _, arg := range args {
		files, err := collectJavaFiles(cfg, arg)
		if err != nil {
			color.Red("Error collecting files from %s: %v\n", arg, err)
			continue
		}
		javaFiles = append(javaFiles, files...)
	}
	return javaFiles
}

func writeReportToFile(report, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(filePath, []byte(report), 0644)
}

func generateConfig() {
	configPath := ".javacheck.yml"
	if err := config.GenerateConfig(configPath); err != nil {
		color.Red("Failed to generate config file: %v\n", err)
		os.Exit(1)
	}
	color.Green("✅ Generated sample configuration file: %s\n", configPath)
	color.Cyan("📝 Edit this file to customize javacheck behavior\n")
	color.Cyan("🚀 Run 'javacheck --config=%s .' to use it\n", configPath)
}

// collectJavaFiles recursively finds all .java files in the given path
func collectJavaFiles(cfg *config.Config, path string) ([]string, error) {
	var javaFiles []string

	maxSize := int64(0)
	if cfg != nil {
		maxSize = int64(cfg.Files.MaxFileSize) * 1024
	}

	err := filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip build output, .git, and other common directories
		if info.IsDir() {
			name := info.Name()
			if name == "target" || name == "build" || name == ".git" || name == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(filePath, ".java") {
			return nil
		}
		if maxSize > 0 && info.Size() > maxSize {
			return nil
		}

		javaFiles = append(javaFiles, filePath)
		return nil
	})

	return javaFiles, err
}
