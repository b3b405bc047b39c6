// Command richtext lays out text with emoji and link markup, prints the tag
// tables and writes a debug rendering.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/emoji"
	"github.com/gogpu/richtext/geom"
	"github.com/gogpu/richtext/overlay"
	"github.com/gogpu/richtext/raster"
	"github.com/gogpu/richtext/render"
)

func main() {
	var (
		text    = flag.String("text", "Hello [[00]] see [[the docs@https://example.com]]", "raw text with markup")
		config  = flag.String("config", "", "TOML or YAML config file")
		manif   = flag.String("emoji", "", "emoji manifest (overrides the config)")
		width   = flag.Float64("width", 0, "container width in layout units, 0 disables wrapping")
		ppu     = flag.Float64("ppu", 0, "pixels per layout unit (overrides the config)")
		hit     = flag.String("hit", "", "point to hit-test, as x,y in layout units")
		output  = flag.String("output", "richtext.png", "output PNG, empty to skip")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		richtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	slots := &overlay.Slots{}
	opts := []richtext.Option{richtext.WithOverlayHost(slots)}
	if *config != "" {
		c, err := richtext.LoadConfig(*config)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		copts, err := c.Options()
		if err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
		opts = append(opts, copts...)
	}
	if *manif != "" {
		db, err := emoji.LoadFile(*manif)
		if err != nil {
			log.Fatalf("Failed to load emoji: %v", err)
		}
		opts = append(opts, richtext.WithDatabase(db))
	}
	if *ppu > 0 {
		opts = append(opts, richtext.WithPixelsPerUnit(float32(*ppu)))
	}

	txt := richtext.New(opts...)
	if txt.Settings().Font == nil {
		src, err := raster.NewFontSource(goregular.TTF)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		s := txt.Settings()
		s.Font = src
		txt.SetSettings(s)
	}
	if *width > 0 {
		txt.SetSize(float32(*width), txt.Settings().Extents.Y)
	}
	txt.SetText(*text)
	res := txt.Layout()

	printResult(res)

	if *hit != "" {
		pt, err := parsePoint(*hit)
		if err != nil {
			log.Fatalf("Invalid -hit: %v", err)
		}
		if target, ok := txt.HitTest(pt); ok {
			fmt.Printf("hit %v: %s\n", pt, target)
		} else {
			fmt.Printf("hit %v: none\n", pt)
		}
	}

	if *output == "" {
		return
	}
	if err := writePNG(*output, txt, res, slots); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Rendering saved to %s\n", *output)
}

func printResult(res *richtext.Result) {
	fmt.Printf("decorated: %s\n", res.Decorated)
	for i, tag := range res.Emoji {
		pl := res.Placements[i]
		fmt.Printf("emoji %d: id=%s index=%d at=%v visible=%v\n", i, tag.Emoji.ID, tag.CharIndex, pl.Position, pl.Visible)
	}
	for i, tag := range res.Links {
		fmt.Printf("link %d: [%d,%d) %q -> %s\n", i, tag.Begin, tag.End, tag.Description, tag.Target)
		for _, b := range tag.Boxes {
			fmt.Printf("  box (%.1f,%.1f)-(%.1f,%.1f)\n", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y)
		}
	}
	if res.Truncated {
		fmt.Println("truncated")
	}
}

func parsePoint(s string) (geom.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Vec2{}, fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return geom.Vec2{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return geom.Vec2{}, err
	}
	return geom.V2(float32(x), float32(y)), nil
}

// writePNG renders the result at the widget's pixels per unit with a small
// margin.
func writePNG(path string, txt *richtext.Text, res *richtext.Result, slots *overlay.Slots) error {
	const margin = 8

	scale := txt.PixelsPerUnit()
	var bounds geom.Rect
	for _, v := range res.Mesh {
		bounds = bounds.Encapsulate(v.Pos)
	}
	w := int(math.Ceil(float64(bounds.Max.X*scale))) + 2*margin
	h := int(math.Ceil(float64(bounds.Max.Y*scale))) + 2*margin

	img, err := render.Draw(w, h, color.White, res.Mesh, slots.Drawn(),
		render.WithScale(scale),
		render.WithOrigin(geom.V2(margin, margin)),
	)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
