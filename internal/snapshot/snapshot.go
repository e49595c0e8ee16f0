// Package snapshot renders a settled chart to an image without a window.
package snapshot

import (
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/pie-chart/internal/chart"
	"github.com/iburimskiy/pie-chart/internal/render"
)

// Options controls snapshot output.
type Options struct {
	Size       int
	FontSize   float64
	Background color.Color
	LabelColor color.Color
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 600
	}
	if o.FontSize <= 0 {
		o.FontSize = float64(o.Size) / 30
	}
	if o.Background == nil {
		o.Background = color.White
	}
	if o.LabelColor == nil {
		o.LabelColor = color.Black
	}
	return o
}

// Render draws spec at its final sweep angles.
func Render(spec chart.Spec, opts Options) (image.Image, error) {
	dc, err := draw(spec, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// WritePNG renders spec and encodes it as PNG to w.
func WritePNG(w io.Writer, spec chart.Spec, opts Options) error {
	dc, err := draw(spec, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return errors.Wrap(dc.EncodePNG(w), "encode snapshot")
}

// SavePNG renders spec and writes it to path.
func SavePNG(path string, spec chart.Spec, opts Options) error {
	dc, err := draw(spec, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	return errors.Wrapf(dc.SavePNG(path), "save %s", path)
}

// draw returns a context holding the finished chart. The caller closes it.
func draw(spec chart.Spec, opts Options) (*gg.Context, error) {
	opts = opts.withDefaults()
	size := chart.Size{Width: float64(opts.Size), Height: float64(opts.Size)}

	segs, err := chart.ComputeLayout(spec, size)
	if err != nil {
		return nil, err
	}
	frame, err := chart.NewFrame(size, spec.HoleFraction)
	if err != nil {
		return nil, err
	}

	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "load label font")
	}

	dc := gg.NewContext(opts.Size, opts.Size)
	dc.SetColor(opts.Background)
	dc.DrawRectangle(0, 0, size.Width, size.Height)
	if err := dc.Fill(); err != nil {
		_ = dc.Close()
		return nil, errors.Wrap(err, "fill background")
	}
	dc.SetFont(src.Face(opts.FontSize))

	c := &ggCanvas{dc: dc}
	render.Draw(c, frame, segs, opts.LabelColor)
	if c.err == nil {
		c.err = errors.Wrap(dc.FlushGPU(), "flush")
	}
	if c.err != nil {
		_ = dc.Close()
		return nil, c.err
	}
	return dc, nil
}
