package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/cpTheAideveloper/geminimultilingual/internal/auth"
	"github.com/cpTheAideveloper/geminimultilingual/internal/gemini"
	"github.com/cpTheAideveloper/geminimultilingual/internal/language"
	"github.com/cpTheAideveloper/geminimultilingual/internal/logger"
	"github.com/cpTheAideveloper/geminimultilingual/internal/metadata"
)

var (
	isTerminal   = term.IsTerminal
	getKey       = auth.GetKey
	getEnvKey    = auth.GetEnvKey
	getStatus    = auth.GetStatus
	promptForKey = auth.PromptForAPIKey
)

// resolveAPIKey handles the logic for finding the API key.
func resolveAPIKey(allowEnv, envOnly bool) (string, string, error) {
	if envOnly {
		if key, ok := getEnvKey(); ok {
			return key, "Environment Variable", nil
		}
		return "", "", fmt.Errorf("env-only set but GEMINI_API_KEY is not set")
	}

	if key, source := getKey(false); key != "" {
		return key, source, nil
	}

	if allowEnv {
		if key, ok := getEnvKey(); ok {
			return key, "Environment Variable", nil
		}
	}

	if isTerminal(int(os.Stdin.Fd())) {
		key, err := promptForKey("Gemini API Key (press Enter to skip): ")
		if err != nil {
			return "", "", fmt.Errorf("error reading API key: %w", err)
		}
		if strings.TrimSpace(key) != "" {
			return strings.TrimSpace(key), "Terminal Prompt", nil
		}
	}

	if !isTerminal(int(os.Stdin.Fd())) {
		return "", "", fmt.Errorf("no API key available (non-interactive shell); set keychain or use --allow-env")
	}
	if allowEnv {
		return "", "", fmt.Errorf("API key is required; not found in keychain or environment")
	}
	return "", "", fmt.Errorf("API key is required; not found in keychain (environment disabled by default; use --allow-env)")
}

// resolveLanguageCode accepts a catalog code or a language name, matching
// names case-insensitively.
func resolveLanguageCode(input string) (string, error) {
	if lang, ok := language.GetLanguage(input); ok {
		return lang.Code, nil
	}
	needle := strings.TrimSpace(input)
	if needle == "" {
		return "", fmt.Errorf("language is empty")
	}
	for _, entry := range language.GetSupportedLanguages() {
		if strings.EqualFold(entry.Name, needle) {
			return entry.Code, nil
		}
	}
	return "", fmt.Errorf("unsupported language: %s", input)
}

func printUsageStats(usage *gemini.UsageMetadata, duration time.Duration, model string) {
	fmt.Println("\n--- Execution Stats ---")
	fmt.Printf("Time: %s\n", duration)
	fmt.Printf("Model: %s\n", model)
	if usage != nil && usage.TotalTokenCount > 0 {
		fmt.Printf("Tokens: In=%d, Out=%d, Total=%d\n",
			usage.PromptTokenCount, usage.CandidatesTokenCount, usage.TotalTokenCount)

		// Gemini Cost Estimation
		// Reasoning tokens are billed as output tokens.
		// Reasoning Tokens = Total - (Prompt + Candidates)
		reasoningTokens := usage.TotalTokenCount - (usage.PromptTokenCount + usage.CandidatesTokenCount)
		if reasoningTokens < 0 {
			reasoningTokens = 0
		}
		billableOutput := usage.CandidatesTokenCount + reasoningTokens

		pricing, _ := metadata.GeminiPricing(model)
		inRate := pricing.InputPerMillion
		outRate := pricing.OutputPerMillion

		inCost := (float64(usage.PromptTokenCount) / 1_000_000) * inRate
		outCost := (float64(billableOutput) / 1_000_000) * outRate

		fmt.Printf("Estimated Cost: $%.5f (Reasoning Tokens: %d)\n", inCost+outCost, reasoningTokens)
	}
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("Cancellation requested")
		cancel()
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
