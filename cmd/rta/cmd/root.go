// Package cmd provides the command-line interface of rta.
package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/rta/datarecording"
	"github.com/sarchlab/rta/rta"
	"github.com/sarchlab/rta/tracing"
)

var rootCmd = newRootCmd()

type options struct {
	maxIterations int
	verbose       bool
	traceDB       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "rta",
		Short: "Compute the fixed point of each task in the built-in task set.",
		Long: `rta solves v = C[i] + sum_{j>i} ceil(v/T[j]) * C[j] for the ` +
			`task set T=[50 30 20], C=[15 10 5] and prints the three values ` +
			`in task order.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", 0,
		"abort a task after this many passes, 0 for no limit")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log every pass to stderr")
	cmd.Flags().StringVar(&opts.traceDB, "trace-db", "",
		"record every pass into <trace-db>.sqlite3")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	builder := rta.MakeBuilder().WithMaxIterations(opts.maxIterations)

	var counter *tracing.StepCountTracer
	logger := log.New(cmd.ErrOrStderr(), "", 0)

	if opts.verbose {
		counter = tracing.NewStepCountTracer()
		builder = builder.
			WithHook(tracing.NewLogTracer(logger)).
			WithHook(counter)
	}

	if opts.traceDB != "" {
		recorder, err := datarecording.New(opts.traceDB)
		if err != nil {
			return err
		}
		defer recorder.Close()

		builder = builder.WithHook(tracing.NewDBTracer(recorder))
	}

	result, err := builder.Build().Analyze(rta.DefaultTaskSet())
	if err != nil {
		return err
	}

	if counter != nil {
		for i := 0; i < rta.NumTasks; i++ {
			logger.Printf("task %d: %d steps", i, counter.Steps(i))
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), result[:])

	return nil
}

// Execute runs the root command and exits through atexit so that registered
// recorders get flushed.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
