// Copyright © 2024 The Ember authors

package cmd

import (
	"github.com/emberlang/ember/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Ember REPL",
	Long: `Start an interactive read-eval-print loop for Ember.

Line editing and command history are supported. Use Ctrl-D to exit;
Ctrl-C abandons the current line without exiting.

Example REPL session:
  ember> var a = 1;
  ember> print a + 1;
  2
  ember> fun square(x) { return x * x; }
  ember> print square(5);
  25`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl("ember> ")
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
