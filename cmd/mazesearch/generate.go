package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesearch/maze"
)

func newGenerateCmd(a *app) *cobra.Command {
	cfg := maze.DefaultGenerateConfig()
	var output string
	var noPath bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random maze",
		Long: `Generates a random maze with the start in the top-left and the goal in the
bottom-right corner. The same seed always yields the same maze.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.EnsurePath = !noPath
			m, err := maze.Generate(cfg)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), m.String())
				return err
			}
			if err := maze.Save(output, m); err != nil {
				return err
			}
			a.logger.Info("maze written", "path", output, "height", cfg.Height, "width", cfg.Width, "seed", cfg.Seed)

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Height, "height", cfg.Height, "Number of rows")
	f.IntVar(&cfg.Width, "width", cfg.Width, "Number of columns")
	f.Float64Var(&cfg.WallDensity, "density", cfg.WallDensity, "Probability that a free cell becomes a wall, in [0,1)")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 uses the fixed default)")
	f.BoolVar(&noPath, "no-path", false, "Do not carve a guaranteed start-to-goal corridor")
	f.StringVarP(&output, "output", "o", "", "Destination file (default stdout)")

	return cmd
}
