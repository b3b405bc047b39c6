package emoji

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF frames
	_ "image/jpeg" // JPEG frames
	_ "image/png"  // PNG frames
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	_ "golang.org/x/image/bmp"  // BMP frames
	_ "golang.org/x/image/tiff" // TIFF frames
	_ "golang.org/x/image/webp" // WebP frames
	"gopkg.in/yaml.v3"

	"github.com/gogpu/richtext/internal/logx"
)

// Format identifies a manifest encoding.
type Format int

const (
	// FormatTOML is a TOML manifest (.toml).
	FormatTOML Format = iota
	// FormatYAML is a YAML manifest (.yaml, .yml).
	FormatYAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "TOML"
	case FormatYAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// FormatOf returns the manifest format implied by a file name extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Manifest lists the emoji of a database and where their frames live.
type Manifest struct {
	Emoji []Entry `toml:"emoji" yaml:"emoji"`
}

// Entry is a single manifest record.
type Entry struct {
	// ID is the two-digit markup id.
	ID string `toml:"id" yaml:"id"`

	// Frames are image paths relative to the manifest.
	Frames []string `toml:"frames" yaml:"frames"`
}

// ParseManifest decodes manifest data in the given format.
func ParseManifest(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("emoji: parse %s manifest: %w", format, err)
	}
	for i, e := range m.Emoji {
		if e.ID == "" {
			return nil, fmt.Errorf("%w (entry %d)", ErrEmptyID, i)
		}
		if !isMarkupID(e.ID) {
			logx.L().Warn("emoji: id cannot be referenced from markup", "id", e.ID)
		}
	}
	return &m, nil
}

// Load reads the manifest name from fsys, decodes every frame and returns
// the resulting DB.
func Load(fsys fs.FS, name string) (*DB, error) {
	format, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("emoji: read manifest: %w", err)
	}
	m, err := ParseManifest(data, format)
	if err != nil {
		return nil, err
	}

	dir := path.Dir(name)
	db := New()
	for _, entry := range m.Emoji {
		e := &Emoji{ID: entry.ID, Frames: make([]image.Image, 0, len(entry.Frames))}
		for _, frame := range entry.Frames {
			img, err := decodeFrame(fsys, path.Join(dir, frame))
			if err != nil {
				return nil, &FrameError{ID: entry.ID, Path: frame, Err: err}
			}
			e.Frames = append(e.Frames, img)
		}
		db.Add(e)
	}
	logx.L().Debug("emoji: manifest loaded", "name", name, "count", db.Len())
	return db, nil
}

// LoadFile loads a manifest from the local file system.
func LoadFile(name string) (*DB, error) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("emoji: resolve manifest path: %w", err)
	}
	return Load(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
}

func decodeFrame(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// isMarkupID reports whether id has the two decimal digits markup accepts.
func isMarkupID(id string) bool {
	return len(id) == 2 &&
		id[0] >= '0' && id[0] <= '9' &&
		id[1] >= '0' && id[1] <= '9'
}
