// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the shelfscope CLI: the books search
// gateway and its terminal client.
package main

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/shelfscope/internal/logger"
	"github.com/pdiddy/shelfscope/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// secretsDir holds one file per credential.
const secretsDir = ".secrets/"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Set

// rootCmd is the base command for the shelfscope CLI.
var rootCmd = &cobra.Command{
	Use:   "shelfscope",
	Short: "Books search gateway with result statistics",
	Long: `shelfscope proxies book searches to the Google Books API and annotates each
page of results with statistics: the most common author, the publication date
range and the upstream response time.

Run the gateway with "serve". Query it once with "search", or interactively
with "browse", which debounces input and pages through results.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Setup(viper.GetString("log.level"), viper.GetString("log.format"), os.Stderr); err != nil {
			return err
		}

		s, err := secrets.Load(secretsDir)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logrus.WithField("names", s.Names()).Debug("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./shelfscope.yaml or ~/.config/shelfscope/shelfscope.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info)")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json (default text)")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("shelfscope")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "shelfscope"))
		}
	}

	setDefaults(viper.GetViper())
	bindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		logrus.WithField("file", viper.ConfigFileUsed()).Info("using config file")
		viper.OnConfigChange(reloadLogLevel)
		viper.WatchConfig()
	}
}

// reloadLogLevel applies log.level after the config file changes.
func reloadLogLevel(e fsnotify.Event) {
	level := viper.GetString("log.level")
	if err := logger.SetLevel(level); err != nil {
		logrus.WithError(err).WithField("file", e.Name).Warn("ignoring log level from changed config")
		return
	}
	logrus.WithFields(logrus.Fields{"file": e.Name, "level": level}).Info("config reloaded")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
