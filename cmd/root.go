package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comboinject",
		Short: "Combo injection sampler for fighting game RL environments",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		RolloutCommand(),
		CharactersCommand(),
	)

	return cmd
}
