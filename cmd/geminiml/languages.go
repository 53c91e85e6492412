package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cpTheAideveloper/geminimultilingual/internal/language"
)

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages",
		Run: func(cmd *cobra.Command, args []string) {
			langs := language.GetSupportedLanguages()
			fmt.Fprintln(cmd.OutOrStdout(), "Supported Languages:")
			for _, l := range langs {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-25s [%s]\n", l.Name, l.Code)
			}
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
