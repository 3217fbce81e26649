// Command kanren runs demonstration queries against the kanren engine.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/deosjr/kanren"
	"github.com/deosjr/kanren/internal/facts"
)

//go:embed family.yaml
var defaultFacts []byte

var (
	// Global flags
	verbose   bool
	factsPath string
	timeout   time.Duration

	// run flags
	count int
	jobs  int

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "kanren",
	Short: "Run relational queries with a small miniKanren",
	Long: `kanren evaluates demonstration queries with a miniKanren engine and
prints one reified answer per line, in the order the search finds them.

The family scenarios use the parent relation of a facts file; without
--facts a small built in family tree is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the demonstration scenarios",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var runCmd = &cobra.Command{
	Use:   "run [scenario...]",
	Short: "Run one or more scenarios",
	Long: `Runs the named scenarios concurrently, each one taking up to --count answers.
Every search is bounded by --timeout; boom never finishes on its own.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScenarios,
}

var plusCmd = &cobra.Command{
	Use:   "plus [a] [b]",
	Short: "Add two numbers with the relational binary adder",
	Args:  cobra.ExactArgs(2),
	RunE:  runPlus,
}

var splitCmd = &cobra.Command{
	Use:   "split [sum]",
	Short: "Find every x and y with x + y = sum by running the adder backwards",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&factsPath, "facts", "", "YAML facts file defining the parent relation")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", time.Second, "Search timeout")

	runCmd.Flags().IntVarP(&count, "count", "n", 10, "Maximum number of answers per scenario")
	runCmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Maximum number of concurrent searches (0: no limit)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(plusCmd)
	rootCmd.AddCommand(splitCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func loadParent() (kanren.Relation, error) {
	var (
		f   *facts.Facts
		err error
	)
	if factsPath == "" {
		f, err = facts.Parse(defaultFacts)
	} else {
		f, err = facts.Load(factsPath)
	}
	if err != nil {
		return nil, err
	}
	return f.Relation("parent")
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range scenarioNames() {
		fmt.Fprintf(out, "%-18s %s\n", name, scenarios[name].short)
	}
	return nil
}

func runScenarios(cmd *cobra.Command, args []string) error {
	parent, err := loadParent()
	if err != nil {
		return err
	}
	queries := make([]kanren.Query, len(args))
	for i, name := range args {
		s, ok := scenarios[name]
		if !ok {
			return fmt.Errorf("unknown scenario %q, see kanren list", name)
		}
		queries[i] = s.query(parent)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	start := time.Now()
	results, err := kanren.RunBatch(ctx, count, jobs, queries...)
	if err != nil {
		logger.Warn("search failed", zap.Strings("scenarios", args), zap.Duration("timeout", timeout), zap.Error(err))
		return fmt.Errorf("run: %w", err)
	}
	elapsed := time.Since(start)

	out := cmd.OutOrStdout()
	for i, name := range args {
		logger.Debug("scenario finished",
			zap.String("scenario", name),
			zap.Int("n", count),
			zap.Int("results", len(results[i])),
			zap.Duration("elapsed", elapsed),
		)
		for _, t := range results[i] {
			if len(args) > 1 {
				fmt.Fprintf(out, "%s: %v\n", name, t)
				continue
			}
			fmt.Fprintln(out, t)
		}
	}
	return nil
}

func parseNatural(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid number %q: must not be negative", s)
	}
	return n, nil
}

func runPlus(cmd *cobra.Command, args []string) error {
	a, err := parseNatural(args[0])
	if err != nil {
		return err
	}
	b, err := parseNatural(args[1])
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	terms, err := kanren.RunContext(ctx, 1, func(q kanren.Term) kanren.Goal {
		return kanren.Pluso(kanren.BuildNum(a), kanren.BuildNum(b), q)
	})
	if err != nil {
		return fmt.Errorf("plus %d %d: %w", a, b, err)
	}
	if len(terms) == 0 {
		return fmt.Errorf("plus %d %d: no answer", a, b)
	}
	sum, err := kanren.ParseNum(terms[0])
	if err != nil {
		return err
	}
	logger.Debug("plus", zap.Int("a", a), zap.Int("b", b), zap.Stringer("bits", terms[0]))
	fmt.Fprintln(cmd.OutOrStdout(), sum)
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	sum, err := parseNatural(args[0])
	if err != nil {
		return err
	}
	ctx, cancel := commandContext(cmd)
	defer cancel()

	// there are exactly sum+1 answers
	terms, err := kanren.RunContext(ctx, sum+1, func(q kanren.Term) kanren.Goal {
		return kanren.Fresh2(func(x, y kanren.Term) kanren.Goal {
			return kanren.Both(kanren.Equal(q, kanren.List(x, y)), kanren.Pluso(x, y, kanren.BuildNum(sum)))
		})
	})
	if err != nil {
		return fmt.Errorf("split %d: %w", sum, err)
	}
	out := cmd.OutOrStdout()
	for _, t := range terms {
		x, err := kanren.ParseNum(kanren.Head(t))
		if err != nil {
			return err
		}
		y, err := kanren.ParseNum(kanren.Head(kanren.Tail(t)))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%d + %d\n", x, y)
	}
	return nil
}
