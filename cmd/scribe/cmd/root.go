package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"speaker-scribe/cmd/scribe/cmd/config"
	"speaker-scribe/cmd/scribe/cmd/serve"
	"speaker-scribe/cmd/scribe/cmd/transcribe"
	"speaker-scribe/cmd/scribe/cmd/version"
	appconfig "speaker-scribe/internal/config"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Turn audio recordings into speaker-annotated transcripts",
	Long: `Turn audio recordings into speaker-annotated transcripts.
- Serve a browser page and a JSON API that accept one audio file at a time
- Or transcribe local files in batch from the command line
- Transcripts label each speaker with a timestamp, e.g. "Speaker 1 (00:00): ..."`,
	TraverseChildren: true,
	SilenceUsage:     true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envPath, err := appconfig.LoadEnv()
		if err != nil {
			return err
		}
		if Verbose {
			if envPath == "" {
				envPath = "none"
			}
			fmt.Fprintf(os.Stderr, "env file: %s\n", envPath)
			os.Setenv("SCRIBE_LOG_LEVEL", "debug")
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(config.Cmd)
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
