package transcribe

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"speaker-scribe/internal/app"
	"speaker-scribe/internal/app/converter"
	"speaker-scribe/internal/app/converter/export"
	"speaker-scribe/internal/config"
)

var (
	outputDir string
	xlsxPath  string
	progress  bool
)

func init() {
	Cmd.Flags().StringVarP(&outputDir, "output", "o", "",
		"directory for <name>.txt transcripts; when empty transcripts are printed to stdout")
	Cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write every result, including failures, to this .xlsx workbook")
	Cmd.Flags().BoolVar(&progress, "progress", false, "always show progress, even when stderr is not a terminal")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file|dir>...",
	Short: "Transcribe local audio files",
	Long: `Transcribe local audio files

- Directories are expanded to the files they contain
- Each file must be audio and at most 20 MB
- Files are sent one at a time to the configured provider
- --xlsx collects all results in one spreadsheet`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		c, cleanup, err := app.InitializeConverter(cfg, converter.ProgressConfig{
			Enabled: converter.ShouldShowProgress(progress),
			Writer:  os.Stderr,
		})
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		results, doErr := c.Do(ctx, args, outputDir)
		failed := printResults(cmd.OutOrStdout(), cmd.ErrOrStderr(), results)

		if xlsxPath != "" && len(results) > 0 {
			if err := export.ToExcel(results, xlsxPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "spreadsheet -> %s\n", xlsxPath)
		}

		if doErr != nil {
			return doErr
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed", failed, len(results))
		}
		return nil
	},
}

// printResults writes transcripts or their output paths to out and failures to
// errOut, returning the number of failures
func printResults(out, errOut io.Writer, results []converter.Result) int {
	failed := 0
	for _, result := range results {
		switch {
		case result.Err != nil:
			failed++
			fmt.Fprintf(errOut, "%s: %v\n", result.Path, result.Err)
		case result.OutputPath != "":
			fmt.Fprintf(out, "%s -> %s\n", result.Path, result.OutputPath)
		default:
			fmt.Fprintf(out, "==> %s <==\n%s\n\n", result.Path, result.Text)
		}
	}
	return failed
}
