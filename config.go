package clustergram

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Options configures a View. Zero fields take the values of DefaultOptions.
type Options struct {
	Metric  string `yaml:"metric"`
	Linkage string `yaml:"linkage"`

	Features struct {
		X string `yaml:"x"`
		Y string `yaml:"y"`
	} `yaml:"features"`

	Layout struct {
		Width    float64 `yaml:"width"`
		Height   float64 `yaml:"height"`
		MinAngle float64 `yaml:"min_angle"`
	} `yaml:"layout"`

	// FadeDelay is a Go duration string such as "1s" or "250ms".
	FadeDelay string `yaml:"fade_delay"`
}

// DefaultOptions clusters x/y with Euclidean single linkage on a 750x600
// canvas, hides arcs under 0.005 rad and fades hover highlights after 1s.
func DefaultOptions() Options {
	var o Options
	o.Metric = MetricEuclidean
	o.Linkage = string(SingleLinkage)
	o.Features.X = "x"
	o.Features.Y = "y"
	o.Layout.Width = 750
	o.Layout.Height = 600
	o.Layout.MinAngle = 0.005
	o.FadeDelay = "1s"
	return o
}

// LoadOptions reads YAML options from path. A missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultOptions(), nil
		}
		return Options{}, fmt.Errorf("clustergram: read options %s: %w", path, err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes YAML options, applies defaults and validates them.
func ParseOptions(data []byte) (Options, error) {
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("clustergram: parse options: %w", err)
	}
	o.applyDefaults()
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Encode returns the options as YAML, e.g. to write a starter file.
func (o Options) Encode() ([]byte, error) {
	return yaml.Marshal(o)
}

func (o *Options) applyDefaults() {
	d := DefaultOptions()
	if strings.TrimSpace(o.Metric) == "" {
		o.Metric = d.Metric
	}
	if strings.TrimSpace(o.Linkage) == "" {
		o.Linkage = d.Linkage
	}
	if o.Features.X == "" {
		o.Features.X = d.Features.X
	}
	if o.Features.Y == "" {
		o.Features.Y = d.Features.Y
	}
	if o.Layout.Width == 0 {
		o.Layout.Width = d.Layout.Width
	}
	if o.Layout.Height == 0 {
		o.Layout.Height = d.Layout.Height
	}
	if o.Layout.MinAngle == 0 {
		o.Layout.MinAngle = d.Layout.MinAngle
	}
	if o.FadeDelay == "" {
		o.FadeDelay = d.FadeDelay
	}
}

// Validate checks every field and reports the first problem.
func (o Options) Validate() error {
	if _, err := MetricByName(o.Metric); err != nil {
		return err
	}
	if _, err := ParseLinkage(o.Linkage); err != nil {
		return err
	}
	if o.Features.X == "" || o.Features.Y == "" {
		return fmt.Errorf("clustergram: features.x and features.y are required: %w", ErrInvalidConfig)
	}
	if o.Layout.Width <= 0 || o.Layout.Height <= 0 {
		return fmt.Errorf("clustergram: layout %gx%g must be positive: %w", o.Layout.Width, o.Layout.Height, ErrInvalidConfig)
	}
	if o.Layout.MinAngle < 0 {
		return fmt.Errorf("clustergram: layout.min_angle %g must be >= 0: %w", o.Layout.MinAngle, ErrInvalidConfig)
	}
	if _, err := o.fadeDelay(); err != nil {
		return err
	}
	return nil
}

// Radius is half the smaller canvas side.
func (o Options) Radius() float64 {
	return min(o.Layout.Width, o.Layout.Height) / 2
}

// LayoutOptions converts the layout section for LayoutWith.
func (o Options) LayoutOptions() LayoutOptions {
	l := DefaultLayoutOptions()
	l.Radius = o.Radius()
	l.MinAngle = o.Layout.MinAngle
	return l
}

func (o Options) fadeDelay() (time.Duration, error) {
	if o.FadeDelay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(o.FadeDelay)
	if err != nil {
		return 0, fmt.Errorf("clustergram: fade_delay %q: %v: %w", o.FadeDelay, err, ErrInvalidConfig)
	}
	if d < 0 {
		return 0, fmt.Errorf("clustergram: fade_delay %q must be >= 0: %w", o.FadeDelay, ErrInvalidConfig)
	}
	return d, nil
}
