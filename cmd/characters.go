package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fightrl/comboinject/catalog"
)

func CharactersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "characters",
		Short: "List the characters and moves in the selected catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var cat *catalog.Catalog
			var err error
			if flags.CatalogPath != "" {
				cat, err = catalog.LoadFile(flags.CatalogPath)
			} else {
				cat, err = catalog.Load(flags.Game)
			}
			if err != nil {
				return err
			}

			for _, name := range cat.Characters() {
				moves, err := cat.Moves(name)
				if err != nil {
					return err
				}
				fmt.Printf("%s\n", name)
				for _, m := range moves {
					if m.Name == catalog.SuperArtMove {
						for i, recipe := range m.SuperArts {
							fmt.Printf("  %s_%d (%.3f): %s\n", m.Name, i+1, m.Prob, recipe)
						}
						continue
					}
					fmt.Printf("  %s (%.3f): %s\n", m.Name, m.Prob, m.Recipe)
				}
			}
			return nil
		},
	}
}
