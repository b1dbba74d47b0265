package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/app"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/config"
	"github.com/FlashpointProject/FlashpointExtensionIndex/internal/utils"
	"github.com/FlashpointProject/FlashpointExtensionIndex/pkg/version"
)

var verbose bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "extindex",
	Short: "Build the extension index",
	Long: `extindex reads a repository list grouped by author, fetches each
extension's package.json manifest (directly for static hosts, through
the GitHub API for GitHub repositories), and writes the aggregated
extension index as a single JSON file.

Run with no arguments to build the index from repositories.json in the
current directory.`,
	Version: version.Short(),
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	rootCmd.PersistentFlags().String("repos", "repositories.json", "Repository list file")
	rootCmd.PersistentFlags().StringP("output", "o", "extindex.json", "Output index file")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().Bool("continue-on-error", false, "Collect per-repository failures instead of aborting")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("repositories.file", rootCmd.PersistentFlags().Lookup("repos"))
	_ = viper.BindPFlag("output.file", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("http.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("repositories.continue_on_error", rootCmd.PersistentFlags().Lookup("continue-on-error"))

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn().Msg("Interrupted, shutting down")
		cancel()
	}()

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:   cfg,
		Logger:   logger,
		Progress: !verbose,
	})
	if err != nil {
		return err
	}

	return orchestrator.Run(ctx)
}
