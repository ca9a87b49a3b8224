package main

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// exportImage flattens the drawing layer, optionally over a black backdrop
// with a faint centred watermark.
func exportImage(c *Canvas, withBackground bool, watermark image.Image) (*image.RGBA, error) {
	src := c.Image()
	if src == nil {
		return nil, fmt.Errorf("no canvas available")
	}
	dc := gg.NewContext(src.Bounds().Dx(), src.Bounds().Dy())

	if withBackground {
		dc.SetColor(color.Black)
		dc.Clear()
		if watermark != nil {
			drawWatermark(dc.Image().(*image.RGBA), watermark)
		}
	}
	out := dc.Image().(*image.RGBA)
	xdraw.Draw(out, out.Bounds(), src, image.Point{}, xdraw.Over)
	return out, nil
}

// drawWatermark scales the mark to watermarkSize and blends it centred at
// watermarkOpacity.
func drawWatermark(dst *image.RGBA, mark image.Image) {
	b := dst.Bounds()
	x := (b.Dx() - watermarkSize) / 2
	y := (b.Dy() - watermarkSize) / 2
	target := image.Rect(x, y, x+watermarkSize, y+watermarkSize)

	scaled := image.NewRGBA(image.Rect(0, 0, watermarkSize, watermarkSize))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), mark, mark.Bounds(), xdraw.Src, nil)

	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(watermarkOpacity * 255))})
	xdraw.DrawMask(dst, target, scaled, image.Point{}, mask, image.Point{}, xdraw.Over)
}

// defaultWatermark is a star emblem used when no watermark file is set.
func defaultWatermark() image.Image {
	dc := gg.NewContext(watermarkSize, watermarkSize)
	c := float64(watermarkSize) / 2
	tracePolygon(dc, starPoints(c, c, 5, c*0.9, c*0.36))
	dc.SetColor(color.White)
	dc.FillPreserve()
	dc.SetLineWidth(6)
	dc.SetColor(parseHex("#FFD700"))
	dc.Stroke()
	return dc.Image()
}

func loadWatermark(path string) (image.Image, error) {
	if path == "" {
		return defaultWatermark(), nil
	}
	im, err := gg.LoadImage(path)
	if err != nil {
		return defaultWatermark(), fmt.Errorf("load watermark %s: %w", path, err)
	}
	return im, nil
}

func exportFilename(withBackground bool) string {
	if withBackground {
		return "drawing-with-background.png"
	}
	return "drawing-transparent.png"
}

// exportPNG writes the flattened drawing and returns the absolute path.
func exportPNG(c *Canvas, config *Config, withBackground bool, watermark image.Image) (string, error) {
	im, err := exportImage(c, withBackground, watermark)
	if err != nil {
		return "", err
	}
	path := config.GetSavePath(exportFilename(withBackground))
	if err := gg.SavePNG(path, im); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}
