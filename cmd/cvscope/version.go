package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set by the linker at release time.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cvscope version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("cvscope " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
