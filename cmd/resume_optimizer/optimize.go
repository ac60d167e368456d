package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
)

var optimizeCommand = &cobra.Command{
	Use:   "optimize",
	Short: "Optimize a resume against a job posting",
	Long: `Parses a resume, acquires a job requirement from a URL, a description file, or a stored template, scores the match, and writes an optimized plain-text resume with suggestions.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runOptimizeCmd,
}

var (
	optConfigPath  string
	optResume      string
	optJob         string
	optJobURL      string
	optTemplateID  string
	optTemplateDir string
	optOutput      string
	optUseBrowser  bool
	optVerbose     bool
	optDatabaseURL string
)

func init() {
	// Config file flag (processed first)
	optimizeCommand.Flags().StringVar(&optConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	optimizeCommand.Flags().StringVarP(&optResume, "resume", "r", "", "Path to the resume file (pdf, docx, txt, html)")
	optimizeCommand.Flags().StringVarP(&optJob, "job", "j", "", "Path to a job description text file")
	optimizeCommand.Flags().StringVar(&optJobURL, "job-url", "", "URL to fetch the job posting from")
	optimizeCommand.Flags().StringVarP(&optTemplateID, "template", "t", "", "ID of a stored job template")
	optimizeCommand.Flags().StringVar(&optTemplateDir, "template-dir", "", "Directory holding job templates")
	optimizeCommand.Flags().StringVarP(&optOutput, "output", "o", "", "Path for the optimized resume output")
	optimizeCommand.Flags().BoolVar(&optUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	optimizeCommand.Flags().BoolVarP(&optVerbose, "verbose", "v", false, "Print detailed debug information")

	// Database URL for history persistence
	optimizeCommand.Flags().StringVar(&optDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(optimizeCommand)
}

func runOptimizeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if optConfigPath != "" {
		loadedCfg, err := config.LoadConfig(optConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if optVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", optConfigPath)
		}
	}

	// CLI overrides: only apply a flag that was explicitly set.
	if cmd.Flags().Changed("resume") {
		cfg.Resume = optResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = optJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = optJobURL
	}
	if cmd.Flags().Changed("template") {
		cfg.TemplateID = optTemplateID
	}
	if cmd.Flags().Changed("template-dir") {
		cfg.TemplateDir = optTemplateDir
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = optOutput
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = optUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = optVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = optDatabaseURL
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		TemplateDir: config.DefaultTemplateDir,
		Output:      "optimized_resume.txt",
	})

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	sources := 0
	for _, set := range []bool{cfg.Job != "", cfg.JobURL != "", cfg.TemplateID != ""} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("one of --job, --job-url, or --template must be provided (via flag or config)")
	}
	if sources > 1 {
		return fmt.Errorf("--job, --job-url, and --template are mutually exclusive; provide only one")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		ResumePath:  cfg.Resume,
		JobPath:     cfg.Job,
		JobURL:      cfg.JobURL,
		TemplateID:  cfg.TemplateID,
		TemplateDir: cfg.TemplateDir,
		Output:      cfg.Output,
		UseBrowser:  cfg.UseBrowser,
		Verbose:     cfg.Verbose,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Match score: %.1f\n", result.Score.FinalScore)
	fmt.Printf("Optimized resume written to: %s\n", result.OutputPath)
	return nil
}
