package cmd

import (
	"os"

	"github.com/MeKo-Tech/langid/internal/batch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var batchCmd = &cobra.Command{
	Use:   "batch <path...>",
	Short: "Detect the language of many text files",
	Long: `Process text files or directories of text files and report the
detected language of each.

Examples:
  langid batch notes.txt articles/
  langid batch --recursive --format csv ./corpus > results.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().Int("workers", 0, "number of parallel workers (0 = all cores)")
	batchCmd.Flags().Bool("recursive", false, "descend into subdirectories")
	batchCmd.Flags().StringSlice("extensions", []string{".txt"}, "file extensions to include")
	batchCmd.Flags().String("format", "plain", "output format (plain, json, csv)")
	batchCmd.Flags().String("output", "", "write results to a file instead of stdout")

	_ = viper.BindPFlag("batch.workers", batchCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("batch.recursive", batchCmd.Flags().Lookup("recursive"))
	_ = viper.BindPFlag("batch.extensions", batchCmd.Flags().Lookup("extensions"))
	_ = viper.BindPFlag("batch.format", batchCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	detector, err := buildDetector(cfg)
	if err != nil {
		return err
	}

	result, err := batch.ProcessContext(cmd.Context(), detector, args, batch.Config{
		Workers:    cfg.Batch.Workers,
		Recursive:  cfg.Batch.Recursive,
		Extensions: cfg.Batch.Extensions,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	return batch.WriteResult(out, result, cfg.Batch.Format)
}
