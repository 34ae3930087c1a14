package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/config"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/export"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/focus"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/gui"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/palette"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/viz"
)

var (
	configFile string
	preset     string
	seed       int64
	paletteArg string
	// render flags
	centerRe float64
	centerIm float64
	radius   float64
	outFile  string
	landmark string
	// search flags
	budget int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mandelzoom",
		Short: "autonomous mandelbrot zoom explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&paletteArg, "palette", "", "color scheme (viridis, hsv)")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "run the windowed explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the explorer in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunLive(cfg)
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a single frame to PNG",
		RunE:  renderFrame,
	}
	renderCmd.Flags().Float64Var(&centerRe, "re", -1.0, "center real part")
	renderCmd.Flags().Float64Var(&centerIm, "im", 0.0, "center imaginary part")
	renderCmd.Flags().Float64Var(&radius, "radius", 2.0, "viewport radius")
	renderCmd.Flags().StringVar(&outFile, "out", "mandelbrot.png", "output file")
	renderCmd.Flags().StringVar(&landmark, "landmark", "", "render a named landmark instead of --re/--im")

	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "hunt for an interesting location and report it",
		RunE:  runSearch,
	}
	searchCmd.Flags().IntVar(&budget, "budget", 0, "candidate budget (0 = config value)")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark field generation and scoring",
		RunE:  runBench,
	}

	landmarksCmd := &cobra.Command{
		Use:   "landmarks",
		Short: "list named landmark points",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tRE\tIM")
			for _, lm := range mandel.Landmarks {
				fmt.Fprintf(w, "%s\t%.6f\t%.6f\n", lm.Name, lm.Point.Re, lm.Point.Im)
			}
			w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(exploreCmd, liveCmd, renderCmd, searchCmd, benchCmd, landmarksCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: preset, then config file,
// then command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if f := cmd.Flag("seed"); f != nil && f.Changed {
		cfg.Seed = seed
	}
	if paletteArg != "" {
		cfg.Palette = paletteArg
	}

	return cfg, nil
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	center := mandel.Point{Re: centerRe, Im: centerIm}
	if landmark != "" {
		found := false
		for _, lm := range mandel.Landmarks {
			if lm.Name == landmark {
				center = lm.Point
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown landmark: %s", landmark)
		}
	}
	if radius <= 0 {
		return fmt.Errorf("radius must be positive, got %g", radius)
	}

	v := mandel.Viewport{Center: center, Radius: radius}

	start := time.Now()
	field := mandel.Generate(v)
	elapsed := time.Since(start)

	if err := export.WritePNG(outFile, field, palette.ByName(cfg.Palette)); err != nil {
		return err
	}

	result := focus.Score(field, cfg.Focus.WindowStep)
	fmt.Printf("wrote %s (computed in %v, focus score %.1f)\n", outFile, elapsed, result.Score)
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if budget > 0 {
		cfg.Search.Budget = uint8(budget)
	}

	searchSeed := cfg.Seed
	if searchSeed == 0 {
		searchSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(searchSeed))

	params := cfg.DirectorParams().Search
	s := focus.NewSearch(params, rng)

	start := time.Now()
	s.WarmStart()
	elapsed := time.Since(start)

	best := s.Best()
	fmt.Printf("seed: %d\n", searchSeed)
	fmt.Printf("point: %.9f %+.9fi\n", best.Re, best.Im)
	fmt.Printf("score: %.1f (threshold %.1f)\n", s.BestScore(), params.MinScore)
	fmt.Printf("evaluated %d candidates in %v\n", params.Budget, elapsed)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	radii := []float64{2.0, 0.1, 1e-4, 1e-9, 1e-13}
	center := mandel.Point{Re: -0.743643887037151, Im: 0.13182590420533}

	fmt.Printf("grid %dx%d, max %d iterations\n\n", mandel.Width, mandel.Height, mandel.MaxIter)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RADIUS\tGENERATE\tSCORE\tFOCUS")

	for _, r := range radii {
		v := mandel.Viewport{Center: center, Radius: r}

		start := time.Now()
		field := mandel.Generate(v)
		genTime := time.Since(start)

		start = time.Now()
		result := focus.Score(field, cfg.Focus.WindowStep)
		scoreTime := time.Since(start)

		fmt.Fprintf(w, "%.1e\t%v\t%v\t%.1f\n", r, genTime, scoreTime, result.Score)
	}

	return w.Flush()
}
