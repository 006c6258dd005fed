package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the codesweep version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("codesweep v" + version)
		},
	}
	rootCmd.AddCommand(cmd)
}
