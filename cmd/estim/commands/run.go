package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"go.orqa.ch/estim/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [jobfiles...]",
		Short: "Estimate the tasks in the given job files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			shots, _ := cmd.Flags().GetInt("shots")
			exact, _ := cmd.Flags().GetBool("exact")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			seed, _ := cmd.Flags().GetUint64("seed")
			jsonLogs, _ := cmd.Flags().GetBool("json")
			debug, _ := cmd.Flags().GetBool("debug")

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				Shots:       shots,
				Exact:       exact,
				Parallelism: parallelism,
				Seed:        seed,
				HasSeed:     cmd.Flags().Changed("seed"),
				JSON:        jsonLogs,
				Debug:       debug,
			})
		},
	}
	cmd.Flags().IntP("shots", "s", -1, "Total shot budget, allocated uniformly across tasks (overrides the job file)")
	cmd.Flags().BoolP("exact", "e", false, "Compute expectation values analytically instead of sampling")
	cmd.Flags().IntP("parallelism", "p", runtime.NumCPU(), "Maximum concurrent backend submissions")
	cmd.Flags().Uint64("seed", 0, "Sampling seed for reproducible runs (overrides the job file)")
	cmd.Flags().Bool("json", false, "Emit logs as JSON")
	cmd.Flags().Bool("debug", false, "Enable debug logging, including pipeline span timings")
	return cmd
}
