// Package config loads the settings of the chartctl command and its HTTP
// server.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// CHART_* environment variables. CHART_SERVER_ADDR sets server.addr and
// CHART_CHART_VALUE_LABEL sets chart.value_label.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/render"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "CHART_"

// ErrInvalid is wrapped by validation failures.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full configuration.
type Config struct {
	Chart  ChartConfig  `koanf:"chart"`
	Render RenderConfig `koanf:"render"`
	Export ExportConfig `koanf:"export"`
	Server ServerConfig `koanf:"server"`
	Log    LogConfig    `koanf:"log"`
}

// ChartConfig maps onto chart options.
type ChartConfig struct {
	Kind          string  `koanf:"kind"`
	Width         float64 `koanf:"width"`
	Height        float64 `koanf:"height"`
	Title         string  `koanf:"title"`
	Locale        string  `koanf:"locale"`
	ValueLabel    string  `koanf:"value_label"`
	ItemLabel     string  `koanf:"item_label"`
	XAxisLabel    string  `koanf:"x_axis_label"`
	YAxisLabel    string  `koanf:"y_axis_label"`
	RotateLabels  bool    `koanf:"rotate_labels"`
	PreserveOrder bool    `koanf:"preserve_order"`
	ShowValues    bool    `koanf:"show_values"`
	TopN          int     `koanf:"top_n"`
	BubbleWeights bool    `koanf:"bubble_weights"`
	TrendLine     bool    `koanf:"trend_line"`
	Quadrants     bool    `koanf:"quadrants"`
	GroupColors   bool    `koanf:"group_colors"`
	InnerRatio    float64 `koanf:"inner_ratio"`
	SortSlices    bool    `koanf:"sort_slices"`
	EmptyMessage  string  `koanf:"empty_message"`
}

// RenderConfig selects the output backend.
type RenderConfig struct {
	Backend string `koanf:"backend"`
}

// ExportConfig controls file export.
type ExportConfig struct {
	Dir     string `koanf:"dir"`
	Backend string `koanf:"backend"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr         string        `koanf:"addr"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
	MaxWidth     float64       `koanf:"max_width"`
	MaxHeight    float64       `koanf:"max_height"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			Kind:         chart.Bar.String(),
			Width:        800,
			Height:       400,
			Locale:       "en",
			ValueLabel:   "Value",
			ItemLabel:    "Item",
			TrendLine:    true,
			Quadrants:    true,
			EmptyMessage: chart.DefaultEmptyMessage,
		},
		Render: RenderConfig{Backend: "svg"},
		Export: ExportConfig{Dir: ".", Backend: "raster"},
		Server: ServerConfig{
			Addr:         "127.0.0.1:8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			MaxBodyBytes: 1 << 20,
			MaxWidth:     4096,
			MaxHeight:    4096,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load builds the configuration from defaults, the YAML file at path (when
// non-empty) and the environment.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps CHART_SECTION_SOME_KEY to section.some_key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + key
}

// Validate checks values that cannot be represented by the types alone.
func (c *Config) Validate() error {
	if _, err := chart.ParseKind(c.Chart.Kind); err != nil {
		return fmt.Errorf("%w: chart.kind: %v", ErrInvalid, err)
	}
	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		return fmt.Errorf("%w: chart size %vx%v", ErrInvalid, c.Chart.Width, c.Chart.Height)
	}
	if c.Chart.InnerRatio < 0 || c.Chart.InnerRatio >= 1 {
		return fmt.Errorf("%w: chart.inner_ratio %v not in [0, 1)", ErrInvalid, c.Chart.InnerRatio)
	}
	if _, err := language.Parse(c.Chart.Locale); err != nil {
		return fmt.Errorf("%w: chart.locale %q: %v", ErrInvalid, c.Chart.Locale, err)
	}
	for _, b := range []string{c.Render.Backend, c.Export.Backend} {
		if !render.IsRegistered(b) {
			return fmt.Errorf("%w: backend %q (have %v)", ErrInvalid, b, render.Backends())
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// ParsedKind returns the chart kind. Call Validate first.
func (c ChartConfig) ParsedKind() chart.Kind {
	k, _ := chart.ParseKind(c.Kind)
	return k
}

// Options converts the chart settings into chart options.
func (c ChartConfig) Options() []chart.Option {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		tag = language.English
	}
	opts := []chart.Option{
		chart.WithLocale(tag),
		chart.WithAxisLabels(c.XAxisLabel, c.YAxisLabel),
		chart.WithRotateLabels(c.RotateLabels),
		chart.WithPreserveOrder(c.PreserveOrder),
		chart.WithShowValues(c.ShowValues),
		chart.WithTopN(c.TopN),
		chart.WithBubbleWeights(c.BubbleWeights),
		chart.WithTrendLine(c.TrendLine),
		chart.WithQuadrants(c.Quadrants),
		chart.WithGroupColors(c.GroupColors),
		chart.WithInnerRatio(c.InnerRatio),
		chart.WithSortedSlices(c.SortSlices),
		chart.WithExport(true, c.Title),
	}
	if c.ValueLabel != "" {
		opts = append(opts, chart.WithValueLabel(c.ValueLabel))
	}
	if c.ItemLabel != "" {
		opts = append(opts, chart.WithItemLabel(c.ItemLabel))
	}
	if c.EmptyMessage != "" {
		opts = append(opts, chart.WithEmptyMessage(c.EmptyMessage))
	}
	return opts
}

// SlogLevel parses the log level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}
	return lvl, nil
}
