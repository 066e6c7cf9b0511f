package batch

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// WriteResult renders a batch result in the requested format: "plain"
// (default), "json" or "csv".
func WriteResult(w io.Writer, result *Result, format string) error {
	switch format {
	case "", "plain":
		return writePlain(w, result)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "csv":
		return writeCSV(w, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writePlain(w io.Writer, result *Result) error {
	for _, f := range result.Files {
		if f.Err != "" {
			if _, err := fmt.Fprintf(w, "%s\terror: %s\n", f.Path, f.Err); err != nil {
				return err
			}
			continue
		}
		confidence := 0.0
		if len(f.Confidence) > 0 {
			confidence = f.Confidence[0].Value
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%.4f\n", f.Path, f.Language, confidence); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d files, %d failed, %v\n",
		len(result.Files), result.Failed, result.Duration)
	return err
}

func writeCSV(w io.Writer, result *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"path", "language", "iso_639_1", "confidence", "error"}); err != nil {
		return err
	}
	for _, f := range result.Files {
		confidence := 0.0
		if len(f.Confidence) > 0 {
			confidence = f.Confidence[0].Value
		}
		record := []string{
			f.Path,
			f.Language.String(),
			f.Language.IsoCode639_1(),
			strconv.FormatFloat(confidence, 'f', 4, 64),
			f.Err,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
