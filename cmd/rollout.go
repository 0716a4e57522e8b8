package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fightrl/comboinject/rollout"
)

func RolloutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rollout",
		Short: "Run offline rollouts of the sampler and measure injection rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Record()
			cfg, err := flags.Config()
			if err != nil {
				return err
			}

			level := zerolog.InfoLevel
			if flags.Debug {
				level = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			results := rollout.RunParallel(cmd.Context(), cfg, log, flags.NumRuns, flags.Parallelism)
			failed := 0
			for _, r := range results {
				if r.IsError() {
					failed++
					log.Error().Err(r.Error).Str("run", r.RunID).Msg("rollout failed")
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d rollouts failed", failed, len(results))
			}
			return nil
		},
	}
}
