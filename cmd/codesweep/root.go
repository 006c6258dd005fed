package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codesweep",
	Short: "Lightweight security scanner for Python and JS/TS files",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
