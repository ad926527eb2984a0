// Package config loads the TOML settings used by the demo program to wire a
// GC9A01 panel to a host SPI bus.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/KalinD/gc9a01"
	"github.com/KalinD/gc9a01/pixfmt"
	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"tinygo.org/x/drivers"
)

// File is the default configuration file name.
const File = "gc9a01.toml"

type SPI struct {
	Bus string `toml:"bus"`
	Hz  int64  `toml:"hz" validate:"gte=0,lte=80000000"`
	DC  string `toml:"dc" validate:"required"`
	CS  string `toml:"cs,omitempty"`
	RST string `toml:"rst,omitempty"`
}

type Panel struct {
	Format       string `toml:"format" validate:"oneof=12 16 18"`
	Order        string `toml:"order" validate:"oneof=rgb bgr"`
	InitSequence string `toml:"init_sequence" validate:"oneof=vendor adafruit"`
	Rotation     int    `toml:"rotation" validate:"oneof=0 90 180 270"`
	Brightness   int    `toml:"brightness" validate:"gte=0,lte=255"`
}

type Values struct {
	SPI          SPI   `toml:"spi"`
	Panel        Panel `toml:"panel"`
	DebugLogging bool  `toml:"debug_logging"`
}

// BaseDefaults matches the wiring of a Raspberry Pi SPI0 breakout.
var BaseDefaults = Values{
	SPI: SPI{
		Hz: 40_000_000,
		DC: "GPIO25",
	},
	Panel: Panel{
		Format:       "12",
		Order:        "rgb",
		InitSequence: "vendor",
		Brightness:   255,
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads path from fsys on top of BaseDefaults. A missing file yields the
// defaults unchanged.
func Load(fsys afero.Fs, path string) (*Values, error) {
	vals := BaseDefaults

	data, err := afero.ReadFile(fsys, path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &vals); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := vals.Validate(); err != nil {
		return nil, err
	}
	return &vals, nil
}

// Save writes v to path on fsys.
func Save(fsys afero.Fs, path string, v *Values) error {
	if err := v.Validate(); err != nil {
		return err
	}
	data, err := toml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (v *Values) Validate() error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Opts converts the panel section to driver options. Pins, clock and logger
// are left for the caller.
func (v *Values) Opts() (*gc9a01.Opts, error) {
	bpp, err := strconv.Atoi(v.Panel.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid pixel format %q: %w", v.Panel.Format, err)
	}
	opts := &gc9a01.Opts{}
	switch bpp {
	case 12:
		opts.Format = pixfmt.Bpp12
	case 16:
		opts.Format = pixfmt.Bpp16
	case 18:
		opts.Format = pixfmt.Bpp18
	default:
		return nil, fmt.Errorf("invalid pixel format %q", v.Panel.Format)
	}

	switch v.Panel.Order {
	case "rgb":
		opts.Order = pixfmt.RGB
	case "bgr":
		opts.Order = pixfmt.BGR
	default:
		return nil, fmt.Errorf("invalid channel order %q", v.Panel.Order)
	}

	switch v.Panel.InitSequence {
	case "vendor":
		opts.Sequence = gc9a01.VendorSequence
	case "adafruit":
		opts.Sequence = gc9a01.AdafruitSequence
	default:
		return nil, fmt.Errorf("invalid init sequence %q", v.Panel.InitSequence)
	}
	return opts, nil
}

// Rotation returns the panel rotation in drivers terms.
func (v *Values) Rotation() (drivers.Rotation, error) {
	switch v.Panel.Rotation {
	case 0:
		return drivers.Rotation0, nil
	case 90:
		return drivers.Rotation90, nil
	case 180:
		return drivers.Rotation180, nil
	case 270:
		return drivers.Rotation270, nil
	}
	return 0, fmt.Errorf("invalid rotation %d", v.Panel.Rotation)
}
