package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazesearch/internal/logging"
	"github.com/katalvlaran/mazesearch/internal/presentation"
	"github.com/katalvlaran/mazesearch/maze"
	"github.com/katalvlaran/mazesearch/report"
	"github.com/katalvlaran/mazesearch/search"
	"github.com/katalvlaran/mazesearch/telemetry"
)

func newRunCmd(a *app) *cobra.Command {
	var configPath string
	flagCfg := defaultRunConfig()

	cmd := &cobra.Command{
		Use:   "run [maze-file]",
		Short: "Run search algorithms on a maze and compare them",
		Long: `Runs the selected algorithms (all by default) on the maze file and prints a
comparison table followed by the solution path of each algorithm.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := defaultRunConfig()
			if configPath != "" {
				var err error
				if cfg, err = loadRunConfig(configPath); err != nil {
					return err
				}
			}
			cfg = mergeFlags(cmd, cfg, flagCfg)
			if len(args) == 1 {
				cfg.Maze = args[0]
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			if cfg.LogLevel != "" && !cmd.Flags().Changed("log-level") {
				level, err := logging.ParseLevel(cfg.LogLevel)
				if err != nil {
					return err
				}
				a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), level)
			}
			if cfg.Maze == "" {
				return errors.New("no maze file given")
			}

			return a.run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configPath, "config", "c", "", "YAML run file")
	f.StringSliceVarP(&flagCfg.Algorithms, "algorithms", "a", nil, "Algorithms to run (default all)")
	f.StringVarP(&flagCfg.Format, "format", "f", formatAuto, "Output: auto, table, markdown, pretty, json or yaml")
	f.StringVarP(&flagCfg.Out, "out", "o", "", "Directory for <algorithm>_map.png heat-maps")
	f.IntVar(&flagCfg.CellSize, "cell-size", report.DefaultCellSize, "Heat-map cell edge in pixels")
	f.BoolVar(&flagCfg.Heatmap, "heatmap", false, "Print a text heat-map per algorithm")
	f.StringVar(&flagCfg.MetricsFile, "metrics-file", "", "Write Prometheus text metrics to this file")

	return cmd
}

// mergeFlags overlays the flags the user set explicitly onto cfg.
func mergeFlags(cmd *cobra.Command, cfg, flags runConfig) runConfig {
	set := cmd.Flags().Changed
	if set("algorithms") {
		cfg.Algorithms = flags.Algorithms
	}
	if set("format") || cfg.Format == "" {
		cfg.Format = flags.Format
	}
	if set("out") {
		cfg.Out = flags.Out
	}
	if set("cell-size") || cfg.CellSize == 0 {
		cfg.CellSize = flags.CellSize
	}
	if set("heatmap") {
		cfg.Heatmap = flags.Heatmap
	}
	if set("metrics-file") {
		cfg.MetricsFile = flags.MetricsFile
	}

	return cfg
}

func (a *app) run(cmd *cobra.Command, cfg runConfig) error {
	algs := make([]search.Algorithm, 0, len(cfg.Algorithms))
	for _, id := range cfg.Algorithms {
		alg, err := search.ParseAlgorithm(id)
		if err != nil {
			return err
		}
		algs = append(algs, alg)
	}

	m, err := maze.Load(cfg.Maze)
	if err != nil {
		return err
	}
	a.logger.Info("maze loaded", "path", cfg.Maze, "height", m.Height(), "width", m.Width())

	results, err := search.RunAll(cmd.Context(), m, algs, search.WithLogger(a.logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeResults(out, m, results, cfg); err != nil {
		return err
	}
	if cfg.Out != "" {
		if err := writeHeatmaps(cfg.Out, m, results, cfg.CellSize); err != nil {
			return err
		}
		a.logger.Info("heat-maps written", "dir", cfg.Out)
	}
	if cfg.MetricsFile != "" {
		rec := telemetry.NewRecorder()
		rec.ObserveAll(results)
		if err := writeFile(cfg.MetricsFile, rec.WriteText); err != nil {
			return err
		}
	}

	aborted := 0
	for _, res := range results {
		if res.Err != nil {
			a.logger.Error("search aborted", "algorithm", res.Algorithm.String(), "error", res.Err)
			aborted++
		}
	}
	if aborted > 0 {
		return fmt.Errorf("%d of %d searches aborted", aborted, len(results))
	}

	return nil
}

func writeResults(out io.Writer, m *maze.Maze, results []*search.Metrics, cfg runConfig) error {
	switch cfg.Format {
	case formatJSON:
		return report.WriteJSON(out, results)
	case formatYAML:
		return report.WriteYAML(out, results)
	}

	format := cfg.Format
	if format == formatAuto {
		format = formatTable
		if presentation.IsTerminal(out) {
			format = formatPretty
		}
	}

	fmt.Fprintf(out, "Maze %dx%d, start %s, goal %s\n", m.Height(), m.Width(), m.Start(), m.Goal())
	if !m.Solvable() {
		_, walls := m.WallBreaks()
		fmt.Fprintf(out, "Goal unreachable: removing %d wall(s) would connect it\n", walls)
	}
	fmt.Fprintln(out)
	switch format {
	case formatTable:
		if err := report.Table(out, results); err != nil {
			return err
		}
	case formatMarkdown:
		if err := report.Markdown(out, results); err != nil {
			return err
		}
	case formatPretty:
		render, err := presentation.NewRenderer(0)
		if err != nil {
			return err
		}
		var md bytes.Buffer
		if err := report.Markdown(&md, results); err != nil {
			return err
		}
		rendered, err := render(md.String())
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
	}

	fmt.Fprintln(out)
	if err := report.Paths(out, results); err != nil {
		return err
	}

	if cfg.Heatmap {
		profile := termenv.Ascii
		if presentation.IsTerminal(out) {
			profile = termenv.ColorProfile()
		}
		for _, res := range results {
			if res.Err != nil {
				continue
			}
			fmt.Fprintf(out, "\n%s (cost %.0f, expanded %d)\n", res.Name, res.Cost, res.Expanded)
			fmt.Fprint(out, presentation.Heatmap(profile, m, res))
		}
	}

	return nil
}

// writeHeatmaps saves one PNG per successful run as <dir>/<id>_map.png.
func writeHeatmaps(dir string, m *maze.Maze, results []*search.Metrics, cellSize int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("heat-map dir: %w", err)
	}
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		path := filepath.Join(dir, res.Algorithm.String()+"_map.png")
		err := writeFile(path, func(w io.Writer) error {
			return report.WritePNG(w, m, res, cellSize)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
