package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/berquerant/polylist/pkg/slicex"
)

var (
	ErrConfig = errors.New("Config")
)

const MaxPrecision = 15

func NewConfig(
	r io.Reader,
	w io.Writer,
	precision int,
	shell string,
) *Config {
	return &Config{
		Precision: precision,
		Shell:     shell,
		Reader:    r,
		Writer:    w,
	}
}

type Config struct {
	Debug     bool
	Precision int
	Shell     string
	Source    string
	Filter    []string

	// Values are the initial contents of list A.
	Values []float64

	Reader io.Reader `json:"-"`
	Writer io.Writer `json:"-"`
}

func (c *Config) Init(args []string) error {
	if err := c.validate(); err != nil {
		return err
	}
	if err := c.setValues(args); err != nil {
		return err
	}
	if c.HasSource() && len(c.Values) > 0 {
		return fmt.Errorf("%w: both source and values are given", ErrConfig)
	}
	return nil
}

func (c Config) HasSource() bool {
	return c.Source != ""
}

func (c Config) validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision %d is not in [0, %d]", ErrConfig, c.Precision, MaxPrecision)
	}
	if c.HasSource() && c.Shell == "" {
		return fmt.Errorf("%w: no shell for source", ErrConfig)
	}
	if len(c.Filter) > 0 && !c.HasSource() {
		return fmt.Errorf("%w: filter without source", ErrConfig)
	}
	return nil
}

func (c *Config) setValues(args []string) error {
	xs, err := slicex.TryMap(args, func(s string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, err
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, fmt.Errorf("non-finite value %q", s)
		}
		return v, nil
	})
	if err != nil {
		return fmt.Errorf("%w: invalid value: %w", ErrConfig, err)
	}
	c.Values = xs
	return nil
}

func (c Config) SetupLogger(w io.Writer) {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}
