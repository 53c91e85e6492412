package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cpTheAideveloper/geminimultilingual/internal/auth"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage the Gemini API key in the OS keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvStatus(cmd)
		},
	}

	cmd.SetUsageTemplate(envUsageTemplate)

	cmd.AddCommand(
		newEnvSetupCmd(),
		newEnvDeleteCmd(),
		newEnvStatusCmd(),
	)
	return cmd
}

func newEnvSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Save API key to keychain (prompt only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvSetup(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newEnvDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete key from keychain",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvDelete(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newEnvStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show key status (default if no action given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnvStatus(cmd)
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runEnvSetup(cmd *cobra.Command) error {
	promptKey, err := auth.PromptForAPIKey("Gemini API Key: ")
	if err != nil {
		return fmt.Errorf("error reading key: %w", err)
	}
	key := strings.TrimSpace(promptKey)
	if key == "" {
		return fmt.Errorf("API key is required for setup")
	}
	if err := auth.SaveKey(key); err != nil {
		return fmt.Errorf("error saving key: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Saved Gemini API key to keychain.")
	return nil
}

func runEnvDelete(cmd *cobra.Command) error {
	if err := auth.DeleteKey(); err != nil {
		return fmt.Errorf("error deleting key: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Deleted Gemini API key from keychain.")
	return nil
}

func runEnvStatus(cmd *cobra.Command) error {
	exists := getStatus()
	if exists {
		fmt.Fprintln(cmd.OutOrStdout(), "Gemini API Key: Found (source=Keychain)")
		return nil
	}
	if envKey, ok := getEnvKey(); ok && envKey != "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Gemini API Key: Found (source=Environment Variable; disabled by default, use --allow-env)")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Gemini API Key: Not Found (keychain empty, env not set)")
	return nil
}
