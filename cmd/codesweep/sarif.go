package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sarif",
		Short: "SARIF utilities",
	}
	rootCmd.AddCommand(cmd)

	view := &cobra.Command{
		Use:   "view <file>",
		Short: "Pretty-print SARIF results",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			var obj any
			if err := json.NewDecoder(f).Decode(&obj); err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(obj)
		},
	}
	cmd.AddCommand(view)
}
