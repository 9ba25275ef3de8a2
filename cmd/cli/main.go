package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"instagram_audit/internal/audit"
	"instagram_audit/internal/utils"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	baseName := filepath.Base(os.Args[0])

	rootCmd := &cobra.Command{
		Use:   baseName + " -f <export.zip> -o <output_folder> [--badge mutuals,notFollowedBack] [--db <snapshots.db>] [--strict]",
		Short: "Audit an Instagram data export ZIP locally: who follows back, mutuals, pending requests and more",
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
			badgeNamesRaw := viper.GetStringSlice("badge")
			badgeNames := make([]string, 0, len(badgeNamesRaw))
			for _, raw := range badgeNamesRaw {
				for _, piece := range strings.Split(raw, ",") {
					trimmed := strings.TrimSpace(piece)
					if trimmed != "" {
						badgeNames = append(badgeNames, trimmed)
					}
				}
			}
			return audit.Run(audit.Options{
				ArchivePath: viper.GetString("file"),
				OutputRoot:  viper.GetString("output"),
				BadgeNames:  badgeNames,
				DBPath:      viper.GetString("db"),
				Strict:      viper.GetBool("strict"),
			})
		},
	}

	rootCmd.Flags().StringP("file", "f", "", "Path to the Instagram export ZIP archive (required)")
	rootCmd.Flags().StringP("output", "o", "", "Output folder for the report (required)")
	rootCmd.Flags().StringSlice("badge", nil,
		"Badge lists to emit (comma-separated or repeated flag); default is all of them")
	rootCmd.Flags().String("db", "", "SQLite snapshot database; enables diffing against the previous export")
	rootCmd.Flags().Bool("strict", false, "Exit non-zero when the export yields no usable follower data")

	_ = viper.BindPFlag("file", rootCmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("badge", rootCmd.Flags().Lookup("badge"))
	_ = viper.BindPFlag("db", rootCmd.Flags().Lookup("db"))
	_ = viper.BindPFlag("strict", rootCmd.Flags().Lookup("strict"))

	// Support -bg shorthand → --badge
	rootCmd.SetArgs(utils.NormalizeBadgeShorthand(os.Args[1:]))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
