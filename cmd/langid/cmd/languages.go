package cmd

import (
	"fmt"

	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/MeKo-Tech/langid/internal/script"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the supported languages",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if _, err := fmt.Fprintf(out, "%-12s %-5s %-5s %s\n", "LANGUAGE", "639-1", "639-3", "SCRIPTS"); err != nil {
			return err
		}
		for _, l := range language.AllLanguages() {
			scripts := ""
			for i, s := range script.ScriptsOf(l) {
				if i > 0 {
					scripts += ", "
				}
				scripts += s.String()
			}
			if _, err := fmt.Fprintf(out, "%-12s %-5s %-5s %s\n",
				l, l.IsoCode639_1(), l.IsoCode639_3(), scripts); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
