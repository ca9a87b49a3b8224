package main

import (
	"image/color"
	"testing"
)

func alphaAt(c *Canvas, x, y int) uint8 {
	return c.Image().RGBAAt(x, y).A
}

func TestCanvasNotReady(t *testing.T) {
	c := NewCanvas()
	if c.Ready() {
		t.Fatal("canvas ready before resize")
	}
	if _, ok := c.Capture(); ok {
		t.Error("capture should fail before resize")
	}
	c.Clear()
	c.ClearPreview()
	c.eraseSegment(point{0, 0}, point{5, 5}, 4)
	c.Resize(0, 10)
	if c.Ready() {
		t.Error("zero-size resize should not create layers")
	}
}

func TestCanvasResizePreservesContent(t *testing.T) {
	c := NewCanvas()
	c.Resize(40, 40)
	c.Image().SetRGBA(5, 5, color.RGBA{255, 0, 0, 255})
	c.Image().SetRGBA(35, 35, color.RGBA{0, 255, 0, 255})

	c.Resize(80, 60)
	if w, h := c.Size(); w != 80 || h != 60 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if got := c.Image().RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel lost on grow: %v", got)
	}

	c.Resize(20, 20)
	if got := c.Image().RGBAAt(5, 5); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("pixel lost on shrink: %v", got)
	}
	if pw, ph := c.PreviewImage().Bounds().Dx(), c.PreviewImage().Bounds().Dy(); pw != 20 || ph != 20 {
		t.Errorf("preview size = %dx%d", pw, ph)
	}
}

func TestCanvasCaptureRestore(t *testing.T) {
	c := NewCanvas()
	c.Resize(10, 10)
	c.Image().SetRGBA(2, 3, color.RGBA{1, 2, 3, 255})
	snap, ok := c.Capture()
	if !ok {
		t.Fatal("capture failed")
	}

	c.Image().SetRGBA(2, 3, color.RGBA{9, 9, 9, 255})
	c.Preview().SetColor(color.White)
	c.Preview().Clear()
	c.Restore(snap)

	if got := c.Image().RGBAAt(2, 3); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("restored pixel = %v", got)
	}
	if c.PreviewImage().RGBAAt(0, 0).A != 255 {
		t.Error("restore should not touch the preview layer")
	}
}

func TestCanvasRestoreOtherSize(t *testing.T) {
	c := NewCanvas()
	c.Resize(10, 10)
	c.Image().SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	snap, _ := c.Capture()

	c.Resize(20, 20)
	c.Image().SetRGBA(15, 15, color.RGBA{255, 255, 255, 255})
	c.Restore(snap)

	if alphaAt(c, 1, 1) != 255 {
		t.Error("snapshot content missing")
	}
	if alphaAt(c, 15, 15) != 0 {
		t.Error("area outside the snapshot should be cleared")
	}
}

func TestCanvasEraseSegment(t *testing.T) {
	c := NewCanvas()
	c.Resize(40, 40)
	c.Drawing().SetColor(color.White)
	c.Drawing().Clear()

	c.eraseSegment(point{20, 5}, point{20, 35}, 8)
	if a := alphaAt(c, 20, 20); a != 0 {
		t.Errorf("erased pixel alpha = %d", a)
	}
	if a := alphaAt(c, 2, 20); a != 255 {
		t.Errorf("pixel outside the eraser alpha = %d", a)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas()
	c.Resize(8, 8)
	c.Drawing().SetColor(color.White)
	c.Drawing().Clear()
	c.Clear()
	for _, v := range c.Image().Pix {
		if v != 0 {
			t.Fatal("clear left paint behind")
		}
	}
}
