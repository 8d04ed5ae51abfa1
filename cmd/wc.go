/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"pathext/pathx"

	"github.com/spf13/cobra"
)

// wcCmd represents the wc command
var wcCmd = &cobra.Command{
	Use:   "wc [path ...]",
	Short: "Count lines, words and characters of text files.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runWc(args)
	},
}

func init() {
	rootCmd.AddCommand(wcCmd)
}

func runWc(args []string) {
	for _, arg := range args {
		lines, words, chars, err := pathx.New(arg).ContentInfo()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", arg, err)
			continue
		}
		fmt.Printf("%8d %8d %8d %s\n", lines, words, chars, arg)
	}
}
