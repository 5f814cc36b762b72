// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the crossref-mcp CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/crossref-mcp/internal/secrets"
	"github.com/pdiddy/crossref-mcp/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds identity values loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, otherwise the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the crossref-mcp CLI.
var rootCmd = &cobra.Command{
	Use:   "crossref-mcp",
	Short: "CrossRef reference validation tools over MCP",
	Long: `crossref-mcp validates bibliographic references against the CrossRef works
API and renders formatted citations (APA or Harvard, markdown or plain text).

Run 'crossref-mcp serve' to expose the validate_references and
format_reference tools to an MCP client over stdio, or 'crossref-mcp lookup'
to resolve a single reference from the terminal.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./crossref-mcp.yaml or ~/.config/crossref-mcp/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("crossref-mcp")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "crossref-mcp"))
		}
	}

	viper.SetEnvPrefix("CROSSREF_MCP")
	viper.AutomaticEnv()

	viper.SetDefault("crossref.timeout", 30*time.Second)
	viper.SetDefault("crossref.max_retries", 0)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the runtime configuration from viper and .secrets/.
// Config-file and environment values win over secrets files.
func loadConfig() types.Config {
	return types.Config{
		Crossref: types.CrossrefConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("crossref.timeout"),
				UserAgent: secretDefault(secrets.KeyUserAgent, viper.GetString("crossref.user_agent")),
			},
			Mailto:     secretDefault(secrets.KeyMailto, viper.GetString("crossref.mailto")),
			MaxRetries: viper.GetInt("crossref.max_retries"),
		},
		Cache: types.CacheConfig{
			Path: viper.GetString("cache.path"),
		},
		Logging: types.LoggingConfig{
			Level:  viper.GetString("logging.level"),
			Format: viper.GetString("logging.format"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
