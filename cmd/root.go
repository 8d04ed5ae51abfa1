/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"pathext/mimedb"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pathext",
	Short: "Pathext inspects files through their extension and MIME metadata",
	Long: `Pathext augments plain paths with derived metadata: compound
extension resolution against the system MIME database, classification
(archive, video, audio, font), sizes, permissions and decompression.`,
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
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pathext.yaml)")

	rootCmd.Version = "0.1.0"
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".pathext" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pathext")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// A `globs` entry in the config (or the env variable itself) points
	// the registry at an alternative MIME-globs database. Export it
	// before the first registry load so the override takes effect.
	if os.Getenv(mimedb.GlobsEnv) == "" {
		if globs := viper.GetString("globs"); globs != "" {
			if err := os.Setenv(mimedb.GlobsEnv, globs); err != nil {
				fmt.Fprintln(os.Stderr, "Error setting "+mimedb.GlobsEnv+":", err)
				os.Exit(1)
			}
		}
	}
}
