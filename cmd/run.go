// Copyright © 2024 The Ember authors

package cmd

import (
	"fmt"
	"os"

	"github.com/emberlang/ember/ember"
	"github.com/emberlang/ember/repl"
	"github.com/spf13/cobra"
)

// runCmd represents the run command. Its own argument handling follows
// the Language's external interface contract for 0/1/2-or-more
// arguments rather than cobra's usual exact-arity validation, so `ember
// run` (no script) and `ember run a b` (too many) behave the same as
// the single flat binary the contract describes.
var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run an Ember source file",
	Long:  `Run an Ember source file, exiting 65 on a compile-time error and 70 on a runtime error.`,
	Run: func(cmd *cobra.Command, args []string) {
		switch len(args) {
		case 0:
			repl.RunRepl("ember> ")
		case 1:
			d := ember.New(os.Stdout, os.Stderr)
			code := d.RunFile(args[0])
			if code != ember.ExitSuccess {
				renderDiagnostics(d)
			}
			os.Exit(code)
		default:
			fmt.Println("Usage: ember run [script]")
			os.Exit(ember.ExitUsage)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
