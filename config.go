package richtext

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/richtext/emoji"
	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/raster"
)

// ErrInvalidConfig is returned for configuration values that cannot be
// interpreted.
var ErrInvalidConfig = errors.New("richtext: invalid config")

// Config is the file form of the widget options.
//
// A TOML example:
//
//	font = "fonts/Go-Regular.ttf"
//	font_size = 16
//	width = 320
//	wrap = "word"
//	align = "center"
//	pixels_per_unit = 2
//	link_color = "#0000ff"
//	emoji = "emoji/manifest.toml"
//
// Relative paths are resolved against the directory of the config file.
type Config struct {
	Font           string  `toml:"font" yaml:"font"`
	FontSize       float32 `toml:"font_size" yaml:"font_size"`
	Width          float32 `toml:"width" yaml:"width"`
	Height         float32 `toml:"height" yaml:"height"`
	Wrap           string  `toml:"wrap" yaml:"wrap"`
	Align          string  `toml:"align" yaml:"align"`
	LineSpacing    float32 `toml:"line_spacing" yaml:"line_spacing"`
	Truncate       bool    `toml:"truncate" yaml:"truncate"`
	PixelsPerUnit  float32 `toml:"pixels_per_unit" yaml:"pixels_per_unit"`
	PixelSnap      bool    `toml:"pixel_snap" yaml:"pixel_snap"`
	TextColor      string  `toml:"text_color" yaml:"text_color"`
	LinkColor      string  `toml:"link_color" yaml:"link_color"`
	UnderlineColor string  `toml:"underline_color" yaml:"underline_color"`
	Emoji          string  `toml:"emoji" yaml:"emoji"`

	// dir is the directory relative paths are resolved against.
	dir string
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) config file.
func LoadConfig(path string) (*Config, error) {
	format, err := emoji.FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("richtext: config %q: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("richtext: read config: %w", err)
	}
	c, err := ParseConfig(data, format)
	if err != nil {
		return nil, err
	}
	c.dir = filepath.Dir(path)
	return c, nil
}

// ParseConfig decodes config data in the given format. Relative paths in
// the result are resolved against the working directory.
func ParseConfig(data []byte, format emoji.Format) (*Config, error) {
	var c Config
	var err error
	switch format {
	case emoji.FormatTOML:
		err = toml.Unmarshal(data, &c)
	case emoji.FormatYAML:
		err = yaml.Unmarshal(data, &c)
	default:
		return nil, emoji.ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("richtext: parse %s config: %w", format, err)
	}
	return &c, nil
}

// Options converts the config to widget options, loading the font and the
// emoji manifest it names.
func (c *Config) Options() ([]Option, error) {
	s := raster.DefaultSettings(nil)
	if c.Font != "" {
		src, err := raster.NewFontSourceFromFile(c.resolve(c.Font))
		if err != nil {
			return nil, err
		}
		s.Font = src
	}
	if c.FontSize > 0 {
		s.Size = c.FontSize
	}
	s.Extents = geom.V2(c.Width, c.Height)
	s.Truncate = c.Truncate
	if c.LineSpacing > 0 {
		s.LineSpacing = c.LineSpacing
	}

	var err error
	if s.Wrap, err = parseWrap(c.Wrap); err != nil {
		return nil, err
	}
	if s.Align, err = parseAlign(c.Align); err != nil {
		return nil, err
	}
	if c.TextColor != "" {
		if s.Color, err = ParseHex(c.TextColor); err != nil {
			return nil, err
		}
	}

	opts := []Option{
		WithSettings(s),
		WithPixelSnap(c.PixelSnap),
	}
	if c.PixelsPerUnit > 0 {
		opts = append(opts, WithPixelsPerUnit(c.PixelsPerUnit))
	}
	if c.LinkColor != "" {
		lc, err := ParseHex(c.LinkColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLinkColor(lc))
	}
	if c.UnderlineColor != "" {
		uc, err := ParseHex(c.UnderlineColor)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithUnderlineColor(uc))
	}
	if c.Emoji != "" {
		db, err := emoji.LoadFile(c.resolve(c.Emoji))
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithDatabase(db))
	}
	return opts, nil
}

// EmojiPath returns the resolved path of the emoji manifest, or "".
func (c *Config) EmojiPath() string {
	if c.Emoji == "" {
		return ""
	}
	return c.resolve(c.Emoji)
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

func parseWrap(s string) (raster.WrapMode, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "")) {
	case "", "wordchar":
		return raster.WrapWordChar, nil
	case "none":
		return raster.WrapNone, nil
	case "word":
		return raster.WrapWord, nil
	case "char":
		return raster.WrapChar, nil
	default:
		return 0, fmt.Errorf("%w: wrap %q", ErrInvalidConfig, s)
	}
}

func parseAlign(s string) (raster.Alignment, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return raster.AlignLeft, nil
	case "center":
		return raster.AlignCenter, nil
	case "right":
		return raster.AlignRight, nil
	default:
		return 0, fmt.Errorf("%w: align %q", ErrInvalidConfig, s)
	}
}
