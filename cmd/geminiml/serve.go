package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpTheAideveloper/geminimultilingual/internal/cleanup"
	"github.com/cpTheAideveloper/geminimultilingual/internal/config"
	"github.com/cpTheAideveloper/geminimultilingual/internal/files"
	"github.com/cpTheAideveloper/geminimultilingual/internal/gemini"
	"github.com/cpTheAideveloper/geminimultilingual/internal/logger"
	"github.com/cpTheAideveloper/geminimultilingual/internal/server"
	"github.com/cpTheAideveloper/geminimultilingual/internal/translator"
	"github.com/cpTheAideveloper/geminimultilingual/internal/version"
)

type serveOptions struct {
	addr        string
	modelName   string
	logFilePath string
	allowEnv    bool
	envOnly     bool
	debug       bool
}

func newServeCmd() *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the translation web app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addServeFlags(cmd, &opts)
	return cmd
}

// addServeFlags seeds defaults from GEMINIML_* environment variables, so an
// explicit flag always overrides the environment.
func addServeFlags(cmd *cobra.Command, opts *serveOptions) {
	cfg := config.LoadServe()
	cmd.Flags().StringVar(&opts.addr, "addr", cfg.Addr, "Address to listen on (env GEMINIML_ADDR)")
	cmd.Flags().StringVar(&opts.modelName, "model", cfg.Model, "Gemini model name (env GEMINIML_MODEL)")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", cfg.LogFile, "Path to save machine-readable JSONL logs (env GEMINIML_LOG_FILE)")
	cmd.Flags().BoolVar(&opts.allowEnv, "allow-env", false, "Allow reading the API key from GEMINI_API_KEY")
	cmd.Flags().BoolVar(&opts.envOnly, "env-only", false, "Use only GEMINI_API_KEY for the API key")
	cmd.Flags().BoolVar(&opts.debug, "debug", cfg.Debug, "Enable debug logging (env GEMINIML_DEBUG)")
}

func runServe(cmd *cobra.Command, opts *serveOptions) error {
	logLevel := logger.LevelInfo
	if opts.debug {
		logLevel = logger.LevelDebug
	}
	var logFileW io.Writer
	if opts.logFilePath != "" {
		if err := files.RejectSymlinkPath(opts.logFilePath); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register(f.Close)
		logFileW = f
	}
	logger.Init(logLevel, logFileW)

	actualKey, source, err := resolveAPIKey(opts.allowEnv, opts.envOnly)
	if err != nil {
		return err
	}
	logger.Info("Using API Key", "service", "gemini", "source", source)

	ctx, stop := signalContext()
	defer stop()

	client, err := gemini.NewClient(ctx, actualKey, opts.modelName)
	if err != nil {
		return err
	}
	cleanup.Register(client.Close)

	srv := server.New(opts.addr, translator.New(client), logger.Default())
	logger.Info("Starting geminiml", "addr", opts.addr, "model", opts.modelName, "version", version.Version)
	return srv.Run(ctx)
}
