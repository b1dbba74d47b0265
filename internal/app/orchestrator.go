package app

import (
	"context"
	"fmt"
	"time"

	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/config"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/domain"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/fetcher"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/github"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/output"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/repolist"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/source"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/utils"
)

// Orchestrator drives the pipeline: load the repository list, fetch
// every repository sequentially, and write the aggregated index.
type Orchestrator struct {
	cfg      *config.Config
	deps     *source.Dependencies
	loader   *repolist.Loader
	writer   *output.Writer
	logger   *utils.Logger
	progress bool
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config *config.Config
	Logger *utils.Logger
	// Progress enables the traversal progress bar
	Progress bool
}

// RepoResult records the outcome of processing one repository.
type RepoResult struct {
	Author     string
	Repository string
	Err        error
	Duration   time.Duration
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
	}

	httpClient := fetcher.NewClient(fetcher.ClientOptions{
		Timeout:    cfg.HTTP.Timeout,
		MaxRetries: cfg.HTTP.MaxRetries,
		UserAgent:  cfg.HTTP.UserAgent,
	})

	ghClient := github.NewClient(github.ClientOptions{
		Fetcher:    httpClient,
		APIBaseURL: cfg.GitHub.APIBaseURL,
		RawBaseURL: cfg.GitHub.RawBaseURL,
		Token:      cfg.GitHub.Token,
		Logger:     logger,
	})

	deps := &source.Dependencies{
		Fetcher: httpClient,
		GitHub:  ghClient,
		Logger:  logger,
	}

	return &Orchestrator{
		cfg:      cfg,
		deps:     deps,
		loader:   repolist.NewLoader(),
		writer:   output.NewWriter(output.WriterOptions{Path: cfg.Output.File}),
		logger:   logger,
		progress: opts.Progress,
	}, nil
}

// Run executes the full pipeline. With continue_on_error unset, the
// first unrecovered failure aborts the run before anything is written;
// otherwise failures are collected and the index of the successes is
// still written, with a non-nil error summarizing the failures.
func (o *Orchestrator) Run(ctx context.Context) error {
	startTime := time.Now()

	list, err := o.loader.Load(o.cfg.Repositories.File)
	if err != nil {
		return domain.NewRepoError(domain.KindConfig, o.cfg.Repositories.File, err)
	}

	total := list.Count()
	o.logger.Info().
		Int("repositories", total).
		Str("list", o.cfg.Repositories.File).
		Str("output", o.writer.Path()).
		Bool("continue_on_error", o.cfg.Repositories.ContinueOnError).
		Msg("Starting index generation")

	var bar = func(int) {}
	if o.progress {
		pb := utils.NewProgressBar(total, utils.DescIndexing)
		defer pb.Finish()
		bar = func(n int) { _ = pb.Add(n) }
	}

	infos := make([]*domain.ExtensionInfo, 0, total)
	var failures []RepoResult

	for _, entry := range list.Authors {
		o.logger.Info().
			Str("author", entry.Author).
			Int("repositories", len(entry.Repositories)).
			Msg("Processing author")

		for _, repoURL := range entry.Repositories {
			if err := ctx.Err(); err != nil {
				return err
			}

			repoStart := time.Now()
			o.logger.Info().
				Str("author", entry.Author).
				Str("repo", repoURL).
				Msg("Processing repository")

			src := source.ForURL(repoURL, o.deps)
			info, err := src.Fetch(ctx, repoURL)
			bar(1)

			if err != nil {
				if !o.cfg.Repositories.ContinueOnError {
					return fmt.Errorf("repository %s failed: %w", repoURL, err)
				}

				o.logger.Error().
					Err(err).
					Str("author", entry.Author).
					Str("repo", repoURL).
					Msg("Repository failed, continuing")
				failures = append(failures, RepoResult{
					Author:     entry.Author,
					Repository: repoURL,
					Err:        err,
					Duration:   time.Since(repoStart),
				})
				continue
			}

			o.logger.Debug().
				Str("id", info.ID).
				Str("source", src.Name()).
				Dur("duration", time.Since(repoStart)).
				Msg("Repository processed")
			infos = append(infos, info)
		}
	}

	if err := o.writer.Write(infos); err != nil {
		return err
	}

	o.logger.Info().
		Int("saved", len(infos)).
		Int("failed", len(failures)).
		Dur("duration", time.Since(startTime)).
		Msg("Index saved")

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d repositories failed", len(failures), total)
	}

	return nil
}
