package main

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

var transparent = color.NRGBA{}

// Snapshot is a full copy of the drawing layer's pixels.
type Snapshot struct {
	Width, Height int
	Pix           []byte
}

func (s Snapshot) image() *image.RGBA {
	return &image.RGBA{
		Pix:    s.Pix,
		Stride: 4 * s.Width,
		Rect:   image.Rect(0, 0, s.Width, s.Height),
	}
}

// Raster is the capture/restore surface the history engine works against.
type Raster interface {
	Capture() (Snapshot, bool)
	Restore(Snapshot)
}

// Canvas holds the authoritative drawing layer and the transient preview
// layer above it. Both share one size.
type Canvas struct {
	width, height int
	drawing       *gg.Context
	preview       *gg.Context
}

var _ Raster = (*Canvas)(nil)

func NewCanvas() *Canvas {
	return &Canvas{}
}

// Ready reports whether the layers exist. Every drawing operation is a
// silent no-op until the first resize.
func (c *Canvas) Ready() bool {
	return c != nil && c.drawing != nil && c.preview != nil
}

func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

func (c *Canvas) Drawing() *gg.Context {
	return c.drawing
}

func (c *Canvas) Preview() *gg.Context {
	return c.preview
}

// Image returns the drawing layer's backing buffer.
func (c *Canvas) Image() *image.RGBA {
	if !c.Ready() {
		return nil
	}
	return c.drawing.Image().(*image.RGBA)
}

func (c *Canvas) PreviewImage() *image.RGBA {
	if !c.Ready() {
		return nil
	}
	return c.preview.Image().(*image.RGBA)
}

// Resize reallocates both layers. Prior drawing content is redrawn at the
// origin, cropped if the new size is smaller. The preview starts empty.
func (c *Canvas) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if c.Ready() && width == c.width && height == c.height {
		return
	}
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	if old := c.Image(); old != nil {
		xdraw.Draw(im, old.Bounds(), old, image.Point{}, xdraw.Src)
	}
	c.width, c.height = width, height
	c.drawing = gg.NewContextForRGBA(im)
	c.preview = gg.NewContext(width, height)
}

// Capture copies the drawing layer.
func (c *Canvas) Capture() (Snapshot, bool) {
	im := c.Image()
	if im == nil {
		return Snapshot{}, false
	}
	pix := make([]byte, len(im.Pix))
	copy(pix, im.Pix)
	return Snapshot{Width: c.width, Height: c.height, Pix: pix}, true
}

// Restore overwrites the drawing layer with a snapshot. A snapshot taken at
// another size is placed at the origin. The preview layer is untouched.
func (c *Canvas) Restore(s Snapshot) {
	im := c.Image()
	if im == nil || len(s.Pix) == 0 {
		return
	}
	if s.Width == c.width && s.Height == c.height {
		copy(im.Pix, s.Pix)
		return
	}
	clear(im.Pix)
	src := s.image()
	xdraw.Draw(im, src.Bounds(), src, image.Point{}, xdraw.Src)
}

// Clear wipes the drawing layer.
func (c *Canvas) Clear() {
	if !c.Ready() {
		return
	}
	c.drawing.SetColor(transparent)
	c.drawing.Clear()
}

func (c *Canvas) ClearPreview() {
	if !c.Ready() {
		return
	}
	c.preview.SetColor(transparent)
	c.preview.Clear()
}

// eraseSegment removes paint under a round-capped line of the given width.
// gg has no destination-out operator, so the line is rasterised into a
// local alpha mask and each covered pixel is scaled by 1-coverage.
func (c *Canvas) eraseSegment(from, to point, width float64) {
	im := c.Image()
	if im == nil {
		return
	}
	pad := width/2 + 2
	bounds := image.Rect(
		int(min(from.X, to.X)-pad), int(min(from.Y, to.Y)-pad),
		int(max(from.X, to.X)+pad)+1, int(max(from.Y, to.Y)+pad)+1,
	).Intersect(im.Bounds())
	if bounds.Empty() {
		return
	}

	mask := gg.NewContext(bounds.Dx(), bounds.Dy())
	mask.Translate(-float64(bounds.Min.X), -float64(bounds.Min.Y))
	mask.SetColor(color.White)
	mask.SetLineWidth(width)
	mask.SetLineCapRound()
	mask.SetLineJoinRound()
	if from == to {
		mask.DrawCircle(from.X, from.Y, width/2)
		mask.Fill()
	} else {
		mask.DrawLine(from.X, from.Y, to.X, to.Y)
		mask.Stroke()
	}
	cover := mask.AsMask()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			a := cover.AlphaAt(x-bounds.Min.X, y-bounds.Min.Y).A
			if a == 0 {
				continue
			}
			keep := uint32(255 - a)
			i := im.PixOffset(x, y)
			for k := 0; k < 4; k++ {
				im.Pix[i+k] = uint8(uint32(im.Pix[i+k]) * keep / 255)
			}
		}
	}
}
