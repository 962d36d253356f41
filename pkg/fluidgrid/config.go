package fluidgrid

import (
	stderrors "errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/freshcart/gridkit/pkg/errors"
)

// Default layout values applied when a grid is constructed without them.
const (
	DefaultMinItemWidth = 140
	DefaultMaxItemWidth = 200
	DefaultGap          = 12
)

// Config holds the size constraints of a grid.
type Config struct {
	// MinItemWidth is the narrowest an item may be before a column is dropped.
	MinItemWidth float64 `json:"minItemWidth" yaml:"minItemWidth" toml:"minItemWidth" validate:"gt=0"`
	// MaxItemWidth caps the item width whenever more than one column fits.
	MaxItemWidth float64 `json:"maxItemWidth" yaml:"maxItemWidth" toml:"maxItemWidth" validate:"gtefield=MinItemWidth"`
	// Gap is the spacing between items, applied in both axes.
	Gap float64 `json:"gap" yaml:"gap" toml:"gap" validate:"gte=0"`
}

// DefaultConfig returns the default grid configuration.
func DefaultConfig() Config {
	return Config{
		MinItemWidth: DefaultMinItemWidth,
		MaxItemWidth: DefaultMaxItemWidth,
		Gap:          DefaultGap,
	}
}

// WithDefaults fills non-positive item widths with their defaults.
// A zero gap is a valid setting and is kept.
func (c Config) WithDefaults() Config {
	if c.MinItemWidth <= 0 {
		c.MinItemWidth = DefaultMinItemWidth
	}
	if c.MaxItemWidth <= 0 {
		c.MaxItemWidth = DefaultMaxItemWidth
	}
	return c
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the configuration against the layout invariants.
// The solver itself never validates; this is for configuration surfaces.
func (c Config) Validate() error {
	err := configValidator().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &errors.GridError{
			Op:    "fluidgrid.Config.Validate",
			Kind:  errors.KindConfig,
			Field: fe.Field(),
			Err:   fmt.Errorf("failed %q constraint (value %v)", constraint(fe), fe.Value()),
		}
	}
	return &errors.GridError{Op: "fluidgrid.Config.Validate", Kind: errors.KindConfig, Err: err}
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
