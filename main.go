package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"instagram_audit/internal/audit"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// The root binary is the original single-command surface, kept so
// `go install instagram_audit` keeps working; cmd/cli carries the full
// flag set (badge selection, snapshot db, strict mode).
func main() {
	baseName := filepath.Base(os.Args[0])

	rootCmd := &cobra.Command{
		Use:   baseName + " -f <export.zip> -o <output_folder>",
		Short: "Audit an Instagram data export ZIP locally",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			viper.SetEnvPrefix("ig_audit")
			viper.AutomaticEnv()
			if viper.GetString("file") == "" {
				return errors.New("missing required flag: -f, --file")
			}
			if viper.GetString("output") == "" {
				return errors.New("missing required flag: -o, --output")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return audit.Run(audit.Options{
				ArchivePath: viper.GetString("file"),
				OutputRoot:  viper.GetString("output"),
			})
		},
	}

	rootCmd.Flags().StringP("file", "f", "", "Path to the Instagram export ZIP archive (required)")
	rootCmd.Flags().StringP("output", "o", "", "Output folder for the report (required)")

	_ = viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
