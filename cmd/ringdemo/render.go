package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/gogpu/ringbar"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	renderOut      string
	renderProgress float64
	renderHover    float64
	renderLabel    bool
	renderBG       string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the seek ring to a PNG image",
	Long: `Render rasterizes the configured ring at a given progress into a PNG,
optionally with a hover marker and a percent label. Useful for previewing
shape and theme settings without playing anything.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderPNG()
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "ring.png", "output file")
	renderCmd.Flags().Float64VarP(&renderProgress, "progress", "p", 0.25, "played fraction in [0, 1]")
	renderCmd.Flags().Float64Var(&renderHover, "hover", -1, "hover marker as a fraction of the path, negative for none")
	renderCmd.Flags().BoolVar(&renderLabel, "label", false, "draw the percent label in the center")
	renderCmd.Flags().StringVar(&renderBG, "background", "", "background hex color, empty for transparent")
}

func renderPNG() error {
	ring := cfg.Ring.Ring()
	metric := ringbar.Measure(ring.Path())

	r := ringbar.NewRenderer()
	var err error
	if r.Track, err = parseHexColor(cfg.Theme.Track); err != nil {
		return err
	}
	if r.Played, err = parseHexColor(cfg.Theme.Played); err != nil {
		return err
	}
	if r.Marker, err = parseHexColor(cfg.Theme.Marker); err != nil {
		return err
	}
	if renderBG != "" {
		bg, err := parseHexColor(renderBG)
		if err != nil {
			return err
		}
		r.Background = bg
	}

	progress := lo.Clamp(renderProgress, 0, 1)
	hovering := renderHover >= 0
	hover := lo.Clamp(renderHover, 0, 1) * metric.TotalLength()

	size := max(int(math.Ceil(ring.Size)), 1)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r.Draw(img, ring, metric, progress, hover, hovering)

	if renderLabel {
		drawLabel(img, fmt.Sprintf("%d%%", int(math.Round(progress*100))), r.Marker)
	}

	f, err := os.Create(renderOut)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", renderOut, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	fmt.Printf("Rendered %s (%dx%d, %.0f%% played)\n", renderOut, size, size, progress*100)
	return nil
}

// drawLabel centers a bitmap-font string on the image.
func drawLabel(img *image.RGBA, text string, c color.Color) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	w := d.MeasureString(text)
	cx := fixed.I(img.Bounds().Dx()) / 2
	cy := img.Bounds().Dy() / 2
	d.Dot = fixed.Point26_6{
		X: cx - w/2,
		Y: fixed.I(cy + face.Height/2 - face.Descent),
	}
	d.DrawString(text)
}

// parseHexColor parses a "#rrggbb" string.
func parseHexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
