// Copyright © 2024 The Ember authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	colorFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ember",
	Short: "Ember — a tree-walking scripting-language interpreter",
	Long: `Ember is a small dynamically-typed, class-based scripting language
implemented as a tree-walking interpreter in Go.

Getting started:
  ember run script.ember       Run a source file
  ember repl                   Start an interactive REPL

Language overview:
  Variables are declared with 'var', functions with 'fun', and classes
  with 'class'. Classes support single inheritance via '<' and bind
  'this' inside methods. Control flow is 'if'/'else', 'while', and 'for'.
  'print' writes a value followed by a newline to standard output.

More information:
  Source code:     https://github.com/emberlang/ember`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ember.yaml)")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		`Control colored diagnostic output: "auto", "always", or "never".`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".ember" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".ember")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in. A missing default config file
	// is not an error; failing to read the file named by --config is.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			fmt.Println(err)
			os.Exit(1)
		}
		return
	}
	if !viper.IsSet("color") {
		return
	}
	if colorFlag == "auto" {
		colorFlag = viper.GetString("color")
	}
}
