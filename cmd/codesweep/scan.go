package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/accrava/codesweep/internal/config"
	"github.com/accrava/codesweep/internal/engine"
	"github.com/accrava/codesweep/internal/logging"
	"github.com/accrava/codesweep/internal/report"
	"github.com/accrava/codesweep/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagMaxBytes       int64
	flagJSON           bool
	flagSARIF          bool
	flagBaseline       string
	flagUpdateBaseline bool
	flagDebug          bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan a directory tree for risky code and hardcoded secrets",
		Args:  cobra.ExactArgs(1),
		Run:   runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 1<<20, "skip files larger than this")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit JSON")
	cmd.Flags().BoolVar(&flagSARIF, "sarif", false, "emit SARIF")
	cmd.Flags().StringVar(&flagBaseline, "baseline", "codesweep.baseline.json", "baseline file for suppressing known findings")
	cmd.Flags().BoolVar(&flagUpdateBaseline, "update-baseline", false, "write baseline file")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func runScan(cmd *cobra.Command, args []string) {
	root := args[0]

	// config precedence: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(root); err == nil {
		lcfg = c
	}
	logging.Init(pickBool(flagDebug, cmd.Flags().Changed("debug"), lcfg.Debug, gcfg.Debug))

	cfg := engine.Config{
		Root:     root,
		MaxBytes: pickInt64(flagMaxBytes, cmd.Flags().Changed("max-bytes"), lcfg.MaxBytes, gcfg.MaxBytes),
	}

	rs, err := engine.Scan(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}

	baselinePath := pickString(flagBaseline, cmd.Flags().Changed("baseline"), lcfg.Baseline, gcfg.Baseline)
	baseline, _ := report.LoadBaseline(baselinePath)
	newFindings := report.FilterNewFindings(rs.Findings(), baseline)

	if flagUpdateBaseline {
		if err := report.SaveBaseline(baselinePath, rs.Findings()); err != nil {
			fmt.Fprintln(os.Stderr, "baseline write error:", err)
			os.Exit(2)
		}
	}

	switch {
	case flagSARIF:
		if err := report.WriteSARIF(os.Stdout, version, newFindings); err != nil {
			fmt.Fprintln(os.Stderr, "sarif error:", err)
			os.Exit(2)
		}
	case flagJSON:
		if newFindings == nil {
			newFindings = []types.Finding{} // no `null` in JSON
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(newFindings)
	default:
		filtered := &types.ResultSet{}
		for _, f := range newFindings {
			filtered.Add(f.Path, f.Line, f.Severity, f.Description)
		}
		report.Print(os.Stdout, filtered)
	}

	// exit codes: 0=ok, 1=HIGH findings, 2=error
	if report.ShouldFail(newFindings) {
		os.Exit(1)
	}
}

func pickInt64(flagVal int64, set bool, vals ...*int64) int64 {
	if set {
		return flagVal
	}
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return flagVal
}

func pickBool(flagVal bool, set bool, vals ...*bool) bool {
	if set {
		return flagVal
	}
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return flagVal
}

func pickString(flagVal string, set bool, vals ...*string) string {
	if set {
		return flagVal
	}
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return flagVal
}
