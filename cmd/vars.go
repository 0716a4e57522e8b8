package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fightrl/comboinject/rollout"
)

var (
	flags *rollout.Flags = rollout.DefaultFlags()

	game         string
	mode         string
	frameSkip    int
	decayHorizon int
	seed         uint64
	catalogPath  string

	characters []string
	superArts  []int

	probJump     float64
	probBasic    float64
	probCombo    float64
	probCancel   float64
	probMovement float64

	numRuns      int
	episodes     int
	horizon      int
	window       int
	parallelism  int
	savePath     string
	recordTraces bool
	debug        bool
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&game, "game", flags.Game, "Game whose move catalog to load")
	cmd.PersistentFlags().StringVar(&mode, "mode", flags.Mode, "Action space mode (discrete or multi_discrete)")
	cmd.PersistentFlags().IntVar(&frameSkip, "frame-skip", flags.FrameSkip, "Simulated frames per environment step")
	cmd.PersistentFlags().IntVar(&decayHorizon, "decay-horizon", flags.DecayHorizon, "Steps over which injection probabilities decay to zero (0 disables)")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Random seed (0 seeds from the clock)")
	cmd.PersistentFlags().StringVar(&catalogPath, "catalog", flags.CatalogPath, "Path to a YAML move catalog overriding the built-in one")

	cmd.PersistentFlags().StringSliceVar(&characters, "characters", flags.Characters, "Characters, one per agent")
	cmd.PersistentFlags().IntSliceVar(&superArts, "super-arts", flags.SuperArts, "Super art index per agent (1-3)")

	cmd.PersistentFlags().Float64Var(&probJump, "prob-jump", flags.ProbJump, "Probability of a jump action")
	cmd.PersistentFlags().Float64Var(&probBasic, "prob-basic", flags.ProbBasic, "Probability of a basic action")
	cmd.PersistentFlags().Float64Var(&probCombo, "prob-combo", flags.ProbCombo, "Probability of a special move combo")
	cmd.PersistentFlags().Float64Var(&probCancel, "prob-cancel", flags.ProbCancel, "Probability a combo is cancelled early")
	cmd.PersistentFlags().Float64Var(&probMovement, "prob-movement", flags.ProbMovement, "Probability of a movement action")

	cmd.PersistentFlags().IntVar(&numRuns, "num-runs", flags.NumRuns, "Number of independent rollouts")
	cmd.PersistentFlags().IntVar(&episodes, "episodes", flags.Episodes, "Number of episodes per rollout")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", flags.Horizon, "Steps per episode")
	cmd.PersistentFlags().IntVar(&window, "window", flags.Window, "Injection rate window in steps")
	cmd.PersistentFlags().IntVar(&parallelism, "parallelism", flags.Parallelism, "Number of parallel rollouts")
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().BoolVar(&recordTraces, "record-traces", flags.RecordTraces, "Record per-step traces as JSONL")
	cmd.PersistentFlags().BoolVar(&debug, "debug", flags.Debug, "Enable debug logging")
}

func UpdateFlags() {
	flags.Game = game
	flags.Mode = mode
	flags.FrameSkip = frameSkip
	flags.DecayHorizon = decayHorizon
	flags.Seed = seed
	flags.CatalogPath = catalogPath

	flags.Characters = characters
	flags.SuperArts = superArts

	flags.ProbJump = probJump
	flags.ProbBasic = probBasic
	flags.ProbCombo = probCombo
	flags.ProbCancel = probCancel
	flags.ProbMovement = probMovement

	flags.NumRuns = numRuns
	flags.Episodes = episodes
	flags.Horizon = horizon
	flags.Window = window
	flags.Parallelism = parallelism
	flags.SavePath = savePath
	flags.RecordTraces = recordTraces
	flags.Debug = debug
}
