package main

import (
	"image/color"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#FF0000", color.NRGBA{255, 0, 0, 255}},
		{"00ff00", color.NRGBA{0, 255, 0, 255}},
		{"#abc", color.NRGBA{0xAA, 0xBB, 0xCC, 255}},
		{"#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}},
		{"nope", color.NRGBA{255, 255, 255, 255}},
		{"", color.NRGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := parseHex(tt.in); got != tt.want {
			t.Errorf("parseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsHexColor(t *testing.T) {
	for _, ok := range []string{"#fff", "#A1B2C3", "123456"} {
		if !isHexColor(ok) {
			t.Errorf("isHexColor(%q) = false", ok)
		}
	}
	for _, bad := range []string{"rainbow", "#12", "#GGGGGG", "#11223344"} {
		if isHexColor(bad) {
			t.Errorf("isHexColor(%q) = true", bad)
		}
	}
}

func TestColorCycle(t *testing.T) {
	var c ColorCycle
	palette := []string{"a", "b", "c"}
	var got []string
	for i := 0; i < 5; i++ {
		got = append(got, c.Next(palette))
	}
	want := []string{"a", "b", "c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cycle = %v, want %v", got, want)
		}
	}
	if c.Peek(palette) != "c" || c.Index != 5 {
		t.Errorf("Peek = %s, Index = %d", c.Peek(palette), c.Index)
	}
	if c.Peek(nil) != "#FFFFFF" {
		t.Error("empty palette should fall back to white")
	}
}

func TestWithAlpha(t *testing.T) {
	if got := withAlpha(color.NRGBA{10, 20, 30, 255}, 0.5).A; got != 128 {
		t.Errorf("alpha = %d, want 128", got)
	}
	if got := withAlpha(color.NRGBA{A: 200}, 2).A; got != 200 {
		t.Errorf("alpha clamped = %d, want 200", got)
	}
}

func TestStarPoints(t *testing.T) {
	pts := starPoints(0, 0, 5, 10, 4)
	if len(pts) != 10 {
		t.Fatalf("len = %d, want 10", len(pts))
	}
	if math.Abs(pts[0].X) > 1e-9 || math.Abs(pts[0].Y+10) > 1e-9 {
		t.Errorf("first vertex = %v, want straight up", pts[0])
	}
	for i, p := range pts {
		r := math.Hypot(p.X, p.Y)
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		if math.Abs(r-want) > 1e-9 {
			t.Errorf("vertex %d radius %v, want %v", i, r, want)
		}
	}
}

func TestSnowflakeSegments(t *testing.T) {
	segs := snowflakeSegments(0, 0, 10)
	if len(segs) != 18 {
		t.Fatalf("len = %d, want 18", len(segs))
	}
	for i := 0; i < len(segs); i += 3 {
		if r := math.Hypot(segs[i].B.X, segs[i].B.Y); math.Abs(r-10) > 1e-9 {
			t.Errorf("arm %d length %v", i/3, r)
		}
	}
}

func TestTriangleAndEllipseBox(t *testing.T) {
	tri := trianglePoints(point{0, 0}, point{10, 20})
	if tri[0] != (point{5, 0}) || tri[1] != (point{10, 20}) || tri[2] != (point{0, 20}) {
		t.Errorf("triangle = %v", tri)
	}
	cx, cy, rx, ry := ellipseBox(point{10, 10}, point{0, 30})
	if cx != 5 || cy != 20 || rx != 5 || ry != 10 {
		t.Errorf("ellipse = %v %v %v %v", cx, cy, rx, ry)
	}
}
