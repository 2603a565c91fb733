package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of convert-to-txt",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("convert-to-txt %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
