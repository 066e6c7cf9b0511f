package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MeKo-Tech/langid/internal/detect"
	"github.com/MeKo-Tech/langid/internal/language"
	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:   "detect [text...]",
	Short: "Detect the language of text",
	Long: `Detect the language of the given text. Multiple arguments are joined
with spaces; with no arguments the text is read from stdin.

Examples:
  langid detect "les langues sont géniales"
  echo "Sprachen sind toll" | langid detect
  langid detect --confidence --format json "languages are awesome"`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().Bool("confidence", false, "print the full probability distribution")
	detectCmd.Flags().Bool("multiple", false, "segment mixed-language input into spans")
	detectCmd.Flags().String("format", "plain", "output format (plain, json)")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	detector, err := buildDetector(GetConfig())
	if err != nil {
		return err
	}

	withConfidence, _ := cmd.Flags().GetBool("confidence")
	multiple, _ := cmd.Flags().GetBool("multiple")
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()

	if multiple {
		spans, err := detector.DetectMultipleLanguagesOf(text)
		if err != nil {
			return err
		}
		return writeSpans(out, text, spans, format)
	}

	best, err := detector.DetectLanguageOf(text)
	if err != nil {
		return err
	}

	if !withConfidence {
		if format == "json" {
			return json.NewEncoder(out).Encode(map[string]any{"language": best})
		}
		_, err = fmt.Fprintln(out, best)
		return err
	}

	values, err := detector.ComputeLanguageConfidenceValues(text)
	if err != nil {
		return err
	}
	if format == "json" {
		return json.NewEncoder(out).Encode(map[string]any{
			"language":   best,
			"confidence": values,
		})
	}
	if _, err := fmt.Fprintln(out, best); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := fmt.Fprintf(out, "  %-12s %.4f\n", v.Language, v.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeSpans(out io.Writer, text string, spans []detect.DetectionResult, format string) error {
	if format == "json" {
		return json.NewEncoder(out).Encode(spans)
	}
	for _, span := range spans {
		name := span.Language.String()
		if span.Language == language.Unknown {
			name = "?"
		}
		if _, err := fmt.Fprintf(out, "%-12s %q\n", name, text[span.StartIndex:span.EndIndex]); err != nil {
			return err
		}
	}
	return nil
}
