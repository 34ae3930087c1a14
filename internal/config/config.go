package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/director"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/focus"
)

const (
	DefaultBaseRadius    = 0.5
	DefaultFollowRadius  = 0.1
	DefaultMinRadius     = 1e-13
	DefaultRadiusScaling = 0.5
	DefaultZoomOutSpeed  = 8.0
	DefaultSearchBudget  = 10
	DefaultFPS           = 30
)

type Config struct {
	Seed    int64        `yaml:"seed"`
	Palette string       `yaml:"palette"`
	FPS     int          `yaml:"fps"`
	Zoom    ZoomConfig   `yaml:"zoom"`
	Focus   FocusConfig  `yaml:"focus"`
	Search  SearchConfig `yaml:"search"`
}

type ZoomConfig struct {
	BaseRadius           float64 `yaml:"base_radius"`
	FollowRadius         float64 `yaml:"follow_radius"`
	MinRadius            float64 `yaml:"min_radius"`
	RadiusScaling        float64 `yaml:"radius_scaling"`
	ZoomOutSpeed         float64 `yaml:"zoom_out_speed"`
	FocusSmoothTime      float64 `yaml:"focus_smooth_time"`
	PanSmoothTime        float64 `yaml:"pan_smooth_time"`
	PanCompleteThreshold float64 `yaml:"pan_complete_threshold"`
	AbandonScore         float32 `yaml:"abandon_score"`
}

type FocusConfig struct {
	WindowStep int `yaml:"window_step"`
}

type SearchConfig struct {
	EvalRadius   float64    `yaml:"eval_radius"`
	MinScore     float32    `yaml:"min_score"`
	Budget       uint8      `yaml:"budget"`
	SearchRect   RectConfig `yaml:"search_rect"`
	FallbackRect RectConfig `yaml:"fallback_rect"`
}

type RectConfig struct {
	MinRe float64 `yaml:"min_re"`
	MaxRe float64 `yaml:"max_re"`
	MinIm float64 `yaml:"min_im"`
	MaxIm float64 `yaml:"max_im"`
}

func (r RectConfig) toRect() focus.Rect {
	return focus.Rect{MinRe: r.MinRe, MaxRe: r.MaxRe, MinIm: r.MinIm, MaxIm: r.MaxIm}
}

func DefaultConfig() *Config {
	return &Config{
		Palette: "viridis",
		FPS:     DefaultFPS,
		Zoom: ZoomConfig{
			BaseRadius:           DefaultBaseRadius,
			FollowRadius:         DefaultFollowRadius,
			MinRadius:            DefaultMinRadius,
			RadiusScaling:        DefaultRadiusScaling,
			ZoomOutSpeed:         DefaultZoomOutSpeed,
			FocusSmoothTime:      0.3,
			PanSmoothTime:        0.5,
			PanCompleteThreshold: 0.001,
			AbandonScore:         150.0,
		},
		Focus: FocusConfig{
			WindowStep: focus.DefaultWindowStep,
		},
		Search: SearchConfig{
			EvalRadius:   0.1,
			MinScore:     50.0,
			Budget:       DefaultSearchBudget,
			SearchRect:   RectConfig{MinRe: -2.0, MaxRe: 1.0, MinIm: -1.0, MaxIm: 1.0},
			FallbackRect: RectConfig{MinRe: -2.0, MaxRe: -1.0, MinIm: -0.1, MaxIm: 0.1},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DirectorParams maps the configuration onto the zoom director's tunables.
func (c *Config) DirectorParams() director.Params {
	return director.Params{
		BaseRadius:           c.Zoom.BaseRadius,
		FollowRadius:         c.Zoom.FollowRadius,
		MinRadius:            c.Zoom.MinRadius,
		RadiusScaling:        c.Zoom.RadiusScaling,
		ZoomOutSpeed:         c.Zoom.ZoomOutSpeed,
		FocusSmoothTime:      c.Zoom.FocusSmoothTime,
		PanSmoothTime:        c.Zoom.PanSmoothTime,
		PanCompleteThreshold: c.Zoom.PanCompleteThreshold,
		AbandonScore:         c.Zoom.AbandonScore,
		WindowStep:           c.Focus.WindowStep,
		Search: focus.SearchParams{
			SearchRect:   c.Search.SearchRect.toRect(),
			FallbackRect: c.Search.FallbackRect.toRect(),
			EvalRadius:   c.Search.EvalRadius,
			MinScore:     c.Search.MinScore,
			Budget:       c.Search.Budget,
			WindowStep:   c.Focus.WindowStep,
		},
	}
}
