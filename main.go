package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	traceFlag  bool
	traceFile  string
	goalFlag   string
	countFlag  int

	rootCmd = &cobra.Command{
		Use:   "geb",
		Short: "Formal systems from Gödel, Escher, Bach",
		Long: `geb derives theorems in two of Hofstadter's formal systems:
the MU-puzzle string-rewriting system (chapter 1) and the recursive
enumeration of the primes (chapter 3).`,
		SilenceUsage: true,
	}

	muCmd = &cobra.Command{
		Use:   "mu",
		Short: "Derive MU-puzzle theorems from axiom MI until the goal appears",
		RunE:  runMU,
	}

	primesCmd = &cobra.Command{
		Use:   "primes",
		Short: "Enumerate the primes as derived theorems",
		RunE:  runPrimes,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "log every derivation to stderr")
	rootCmd.PersistentFlags().StringVar(&traceFile, "trace-file", "", "also write derivations as JSON to this file")
	muCmd.Flags().StringVar(&goalFlag, "goal", muGoal, "goal theorem that halts the derivation")
	primesCmd.Flags().IntVar(&countFlag, "count", 0, "stop after this many primes (0 = run forever)")
	rootCmd.AddCommand(muCmd, primesCmd)
}

// resolveConfig loads the config file and lets flags that were set on
// the command line override it.
func resolveConfig(cmd *cobra.Command) (config, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if flagChanged(cmd, "trace") {
		cfg.Trace = traceFlag
	}
	if flagChanged(cmd, "trace-file") {
		cfg.TraceFile = traceFile
	}
	if flagChanged(cmd, "goal") {
		cfg.Goal = goalFlag
	}
	if flagChanged(cmd, "count") {
		cfg.Count = countFlag
	}
	if cfg.Goal == "" {
		cfg.Goal = muGoal
	}
	return cfg, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

func runMU(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	trace, closer, err := newTracer(os.Stderr, cfg.Trace, cfg.TraceFile)
	if err != nil {
		return err
	}
	defer closer()
	newMUPuzzle(cfg.Goal, os.Stdout, trace).run()
	return nil
}

func runPrimes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	trace, closer, err := newTracer(os.Stderr, cfg.Trace, cfg.TraceFile)
	if err != nil {
		return err
	}
	defer closer()
	newPrimes(cfg.Count, os.Stdout, trace).run()
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
