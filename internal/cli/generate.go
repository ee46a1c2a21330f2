package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yassine-ta/credential-forge/internal/config"
	"github.com/yassine-ta/credential-forge/internal/executor"
	"github.com/yassine-ta/credential-forge/internal/generator"
	"github.com/yassine-ta/credential-forge/internal/output"
	"github.com/yassine-ta/credential-forge/internal/util"
)

func newGenerateCmd() *cobra.Command {
	var count int
	var showStats bool
	var wide bool
	var noHeaders bool

	cmd := &cobra.Command{
		Use:   "generate [type...]",
		Short: "Generate synthetic credentials",
		Long: `Generate synthetic credentials of one or more types.

Each requested credential becomes a task on a scheduler of parallel worker
pools, so large batches are generated concurrently. Custom patterns from
the config file are available alongside the built-in types.`,
		Example: `  # Generate one API key
  credential-forge generate api_key

  # Generate ten GitHub tokens
  credential-forge generate github_token -c 10

  # Generate a mixed batch across two pools
  credential-forge generate api_key jwt_token db_connection -c 5 -e 2

  # Generate as JSON with pool statistics
  credential-forge generate aws_access_key -c 100 -o json --stats`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, count, showStats, wide, noHeaders)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 0, "credentials per type (default from config, 1)")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print per-pool executor statistics")
	cmd.Flags().BoolVar(&wide, "wide", false, "do not truncate credential values")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit table headers")

	return cmd
}

func runGenerate(cmd *cobra.Command, types []string, count int, showStats, wide, noHeaders bool) error {
	logger := slog.Default()

	cfg, err := config.NewManager(cfgFile).Load()
	if err != nil {
		return util.WrapErrorf(err, "loading configuration")
	}

	if count <= 0 {
		count = cfg.Defaults.Count
	}

	// Config values back the persistent flags when those are left unset
	viper.SetDefault("output", cfg.Defaults.OutputFormat)
	viper.SetDefault("no-color", cfg.Defaults.NoColor)

	executors := viper.GetInt("executors")
	if executors <= 0 {
		executors = cfg.Defaults.Executors
	}
	workers := viper.GetInt("workers")
	if workers <= 0 {
		workers = cfg.Defaults.Workers
	}

	gen := generator.New(cfg.Patterns, logger)

	// Reject unknown types before spinning anything up
	for _, credType := range types {
		if !gen.Has(credType) {
			return util.WrapTypeError(credType, util.ErrUnknownType)
		}
	}

	logger.Debug("starting generation",
		"types", types,
		"count", count,
		"executors", executors,
		"workers", workers)

	sched := executor.NewScheduler(executors, workers, logger)
	defer sched.Shutdown()

	handles := make([]*executor.Handle, 0, len(types)*count)
	for _, credType := range types {
		for i := 0; i < count; i++ {
			handle, err := sched.Submit(func() (any, error) {
				return gen.Generate(credType)
			})
			if err != nil {
				return util.WrapErrorf(err, "submitting %s task", credType)
			}
			handles = append(handles, handle)
		}
	}

	sched.WaitForAll()

	results := make([]executor.Result, len(handles))
	for i, handle := range handles {
		results[i] = handle.Wait()
	}

	formatter := newFormatter(output.WithWide(wide), output.WithNoHeaders(noHeaders))
	if err := formatter.FormatResults(os.Stdout, results); err != nil {
		return util.WrapErrorf(err, "formatting results")
	}

	if showStats {
		fmt.Fprintln(os.Stdout, "")
		if err := formatter.FormatStats(os.Stdout, sched.AllStats()); err != nil {
			return util.WrapErrorf(err, "formatting statistics")
		}
	}

	var failures util.MultiError
	for _, res := range results {
		if res.Err != nil && !executor.IsAbandoned(res.Err) {
			failures.Add(res.Err)
		}
	}
	if err := failures.ErrorOrNil(); err != nil {
		return util.WrapErrorf(err, "%d of %d generation tasks failed", len(failures.Errors), len(results))
	}

	return nil
}

// newFormatter builds a formatter from the persistent output flags
func newFormatter(opts ...output.Option) output.Formatter {
	var format output.Format
	switch viper.GetString("output") {
	case "json":
		format = output.FormatJSON
	case "yaml":
		format = output.FormatYAML
	default:
		format = output.FormatTable
	}

	opts = append(opts, output.WithNoColor(viper.GetBool("no-color")))
	return output.NewFormatter(format, opts...)
}
