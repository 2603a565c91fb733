// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/convert-to-txt/internal/cache"
	"github.com/pdiddy/convert-to-txt/internal/convert"
	"github.com/pdiddy/convert-to-txt/internal/tool"
	"github.com/pdiddy/convert-to-txt/pkg/types"
)

// flagOrConfig resolves a setting with flag > config file precedence.
func flagOrConfig(cmd *cobra.Command, flagName, viperKey string) string {
	if !cmd.Flags().Changed(flagName) && viper.IsSet(viperKey) {
		return viper.GetString(viperKey)
	}
	v, _ := cmd.Flags().GetString(flagName)
	return v
}

// addConversionFlags registers the flags shared by convert and batch.
func addConversionFlags(cmd *cobra.Command) {
	cmd.Flags().String("djvu", "", "conversion method for djvu documents: djvutxt or ebook-convert")
	cmd.Flags().String("epub", "", "conversion method for epub documents: epubtxt or ebook-convert")
	cmd.Flags().String("msword", "", "conversion method for msword documents: textutil, catdoc, or ebook-convert")
	cmd.Flags().String("pdf", "", "conversion method for pdf documents: pdftotext or ebook-convert")
	cmd.Flags().Duration("timeout", 0, "per-tool invocation timeout (default 10m)")
	cmd.Flags().Bool("cache", false, "reuse cached results for unchanged inputs")
	cmd.Flags().String("cache-dir", "", "directory for the conversion cache (default: user cache dir)")
}

// conversionConfig resolves the conversion settings, with the config
// file filling in flags that were not set on the command line.
func conversionConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.ConvertConfig{
		Methods: types.MethodConfig{
			Djvu:   types.ConvertMethod(flagOrConfig(cmd, "djvu", "methods.djvu")),
			Epub:   types.ConvertMethod(flagOrConfig(cmd, "epub", "methods.epub")),
			Msword: types.ConvertMethod(flagOrConfig(cmd, "msword", "methods.msword")),
			PDF:    types.ConvertMethod(flagOrConfig(cmd, "pdf", "methods.pdf")),
		},
		OutputFile: defaultOutputFile,
	}

	cfg.Timeout, _ = cmd.Flags().GetDuration("timeout")
	if cfg.Timeout == 0 {
		cfg.Timeout = viper.GetDuration("timeout")
	}

	if viper.IsSet("output_file") {
		cfg.OutputFile = viper.GetString("output_file")
	}
	return cfg
}

// cacheConfig resolves the cache settings for conversion commands.
func cacheConfig(cmd *cobra.Command) types.CacheConfig {
	enabled, _ := cmd.Flags().GetBool("cache")
	if !enabled {
		enabled = viper.GetBool("cache.enabled")
	}
	return types.CacheConfig{Enabled: enabled, Dir: cacheDir(cmd)}
}

// newCLIConverter assembles a converter from the resolved settings,
// attaching the cache when enabled. Cache setup failure downgrades to
// a warning; a conversion should not fail because the cache is broken.
func newCLIConverter(cmd *cobra.Command, cfg types.ConvertConfig) *convert.Converter {
	conv := convert.New(tool.NewRegistry(tool.NewRunner(cfg.Timeout)), log)

	if cc := cacheConfig(cmd); cc.Enabled {
		store, err := cache.Open(cc.Dir)
		if err != nil {
			log.Warnf("cache disabled: %v", err)
		} else {
			cobra.OnFinalize(func() { store.Close() })
			conv = conv.WithCache(store)
		}
	}
	return conv
}

// cacheDir resolves the cache directory: flag, then config, then the
// platform's user cache directory.
func cacheDir(cmd *cobra.Command) string {
	if dir := flagOrConfig(cmd, "cache-dir", "cache.dir"); dir != "" {
		return dir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return ".convert-to-txt-cache"
	}
	return filepath.Join(base, "convert-to-txt")
}
