// Package pipeline provides the high-level orchestration for the resume
// optimization process.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-optimizer/internal/compose"
	"github.com/jonathan/resume-optimizer/internal/document"
	"github.com/jonathan/resume-optimizer/internal/extract"
	"github.com/jonathan/resume-optimizer/internal/history"
	"github.com/jonathan/resume-optimizer/internal/jobposting"
	"github.com/jonathan/resume-optimizer/internal/match"
	"github.com/jonathan/resume-optimizer/internal/observability"
	"github.com/jonathan/resume-optimizer/internal/suggest"
	"github.com/jonathan/resume-optimizer/internal/template"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// RunOptions holds configuration for running the pipeline.
// Exactly one of JobPath, JobURL, or TemplateID selects the job source.
type RunOptions struct {
	ResumePath  string
	JobPath     string
	JobURL      string
	TemplateID  string
	TemplateDir string
	Output      string
	UseBrowser  bool
	Verbose     bool
	DatabaseURL string
}

// Result carries every artifact the pipeline produced.
type Result struct {
	Job         types.JobRequirement
	Candidate   types.CandidateRecord
	Score       types.ScoreBreakdown
	Suggestions types.SuggestionSet
	Content     string
	OutputPath  string
	HistoryID   uuid.UUID
}

// Run executes the full optimization pipeline: acquire the resume and the
// job in parallel, extract and score, generate suggestions, compose the
// output document, and optionally persist a history record.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if opts.ResumePath == "" {
		return nil, fmt.Errorf("resume path is required")
	}
	if err := validateJobSource(opts); err != nil {
		return nil, err
	}

	printer := observability.NewPrinter(os.Stdout)
	result := &Result{}

	// Resume parsing and job acquisition are independent; the job side may
	// block on the network, so run both concurrently.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := document.ParseFile(opts.ResumePath)
		if err != nil {
			return fmt.Errorf("parsing resume: %w", err)
		}
		result.Candidate = extract.Candidate(doc)
		return nil
	})
	g.Go(func() error {
		job, err := acquireJob(gCtx, opts)
		if err != nil {
			return fmt.Errorf("acquiring job: %w", err)
		}
		result.Job = job
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintJobRequirement(&result.Job)
		printer.PrintCandidate(&result.Candidate)
	}

	result.Score = match.Score(result.Job, result.Candidate)
	result.Suggestions = suggest.Generate(result.Job, result.Candidate)
	result.Content = compose.Document(result.Job, result.Candidate, result.Score, result.Suggestions)

	if opts.Verbose {
		printer.PrintScoreBreakdown(&result.Score)
		printer.PrintSuggestions(&result.Suggestions)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(result.Content), 0o644); err != nil {
			return nil, fmt.Errorf("writing output: %w", err)
		}
		result.OutputPath = opts.Output
	}

	// History persistence is best-effort: a broken database must not void
	// an otherwise successful run.
	if opts.DatabaseURL != "" {
		if err := saveHistory(ctx, opts, result); err != nil {
			fmt.Printf("Warning: failed to save history: %v\n", err)
		}
	}

	return result, nil
}

func validateJobSource(opts RunOptions) error {
	sources := 0
	for _, set := range []bool{opts.JobPath != "", opts.JobURL != "", opts.TemplateID != ""} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("exactly one of job path, job URL, or template ID is required")
	}
	return nil
}

func acquireJob(ctx context.Context, opts RunOptions) (types.JobRequirement, error) {
	switch {
	case opts.JobURL != "":
		return jobposting.FromURL(ctx, opts.JobURL, &jobposting.Options{
			UseBrowser: opts.UseBrowser,
			Verbose:    opts.Verbose,
		})
	case opts.JobPath != "":
		data, err := os.ReadFile(opts.JobPath)
		if err != nil {
			return types.JobRequirement{}, fmt.Errorf("reading job description: %w", err)
		}
		return jobposting.FromDescription(string(data)), nil
	default:
		store, err := template.NewStore(opts.TemplateDir)
		if err != nil {
			return types.JobRequirement{}, err
		}
		return store.Get(opts.TemplateID)
	}
}

// generationType reports how the job was sourced for the history record.
func generationType(opts RunOptions) history.GenerationType {
	switch {
	case opts.JobURL != "":
		return history.TypeURL
	case opts.TemplateID != "":
		return history.TypeTemplate
	default:
		return history.TypeDescription
	}
}

func saveHistory(ctx context.Context, opts RunOptions, result *Result) error {
	store, err := history.Connect(ctx, opts.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	id, err := store.Save(ctx, generationType(opts), result.Job, result.OutputPath,
		result.Score.FinalScore, result.Suggestions.ContentSuggestions)
	if err != nil {
		return err
	}
	result.HistoryID = id
	return nil
}
