package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cpTheAideveloper/geminimultilingual/internal/apperrors"
	"github.com/cpTheAideveloper/geminimultilingual/internal/cleanup"
	"github.com/cpTheAideveloper/geminimultilingual/internal/files"
	"github.com/cpTheAideveloper/geminimultilingual/internal/gemini"
	"github.com/cpTheAideveloper/geminimultilingual/internal/language"
	"github.com/cpTheAideveloper/geminimultilingual/internal/logger"
	"github.com/cpTheAideveloper/geminimultilingual/internal/metadata"
	"github.com/cpTheAideveloper/geminimultilingual/internal/translator"
)

type translateOptions struct {
	targets     []string
	modelName   string
	logFilePath string
	allowEnv    bool
	envOnly     bool
	debug       bool
}

func newTranslateCmd() *cobra.Command {
	opts := translateOptions{}
	cmd := &cobra.Command{
		Use:   "translate \"<text>\"",
		Short: "Translate a short text into three languages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				_ = cmd.Usage()
				return fmt.Errorf("text to translate is required")
			}
			return runTranslate(cmd, args, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addTranslateFlags(cmd, &opts)
	return cmd
}

func addTranslateFlags(cmd *cobra.Command, opts *translateOptions) {
	cmd.Flags().StringSliceVar(&opts.targets, "to", []string{"es", "fr", "de"}, "Exactly three target languages, as codes or names")
	cmd.Flags().StringVar(&opts.modelName, "model", metadata.DefaultModelID, "Gemini model name")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	cmd.Flags().BoolVar(&opts.allowEnv, "allow-env", false, "Allow reading the API key from GEMINI_API_KEY")
	cmd.Flags().BoolVar(&opts.envOnly, "env-only", false, "Use only GEMINI_API_KEY for the API key")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

func runTranslate(cmd *cobra.Command, args []string, opts *translateOptions) error {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Warning: expected 1 argument but got %d. Did you forget quotes around the text?\n", len(args))
		fmt.Fprintf(os.Stderr, "  Translating: %s\n", args[0])
	}

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

	codes := make([]string, 0, len(opts.targets))
	for _, target := range opts.targets {
		code, err := resolveLanguageCode(target)
		if err != nil {
			return err
		}
		codes = append(codes, code)
	}

	// Same submission rules as the web API, checked before any credential
	// or network work.
	req := translator.Request{Text: args[0], TargetLanguages: codes}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%s", apperrors.PublicMessage(err))
	}

	startTime := time.Now()

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

	result, err := translator.New(client).Translate(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			logger.Warn("Translation canceled", "error", err)
			return nil
		}
		return err
	}

	out := cmd.OutOrStdout()
	for _, code := range codes {
		name := code
		if lang, ok := language.GetLanguage(code); ok {
			name = lang.Name
		}
		fmt.Fprintf(out, "%s [%s]:\n  %s\n", name, code, result.Translations[code])
	}

	printUsageStats(&result.Usage, time.Since(startTime), opts.modelName)
	return nil
}
