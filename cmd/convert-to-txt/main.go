// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the convert-to-txt CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/convert-to-txt/internal/logging"
	"github.com/pdiddy/convert-to-txt/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the shared CLI logger, silent until the root command
// configures it from the flags.
var log = logging.New()

// rootCmd is the base command for the convert-to-txt CLI.
var rootCmd = &cobra.Command{
	Use:   "convert-to-txt",
	Short: "Convert documents (pdf, djvu, epub, word) to txt",
	Long: `convert-to-txt converts documents to plain text by dispatching to the
external tool that handles the detected format: pdftotext for PDF,
djvutxt for DjVu, unzip for EPUB, textutil or catdoc for legacy Word
documents, and calibre's ebook-convert as the universal fallback for
everything else (docx, rtf) or when a faster tool is not installed.

Inputs that are already plain text are passed through untouched.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		verbose, _ := cmd.Flags().GetBool("verbose")
		return logging.Setup(log, quiet, verbose, types.LoggingConfig{
			Level:  flagOrConfig(cmd, "log-level", "logging.level"),
			Format: flagOrConfig(cmd, "log-format", "logging.format"),
		})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./convert-to-txt.yaml or ~/.config/convert-to-txt/config.yaml)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "enable quiet mode, i.e. nothing will be printed")
	rootCmd.PersistentFlags().Bool("verbose", false, "print various debugging information")
	rootCmd.PersistentFlags().String("log-level", "info", "logging level: debug, info, warning, or error")
	rootCmd.PersistentFlags().String("log-format", "only_msg", "logging format: console, only_msg, or simple")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("convert-to-txt")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "convert-to-txt"))
		}
	}

	viper.SetEnvPrefix("CONVERT_TO_TXT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
