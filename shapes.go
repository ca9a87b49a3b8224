package main

import (
	"math"

	"github.com/fogleman/gg"
)

type segment struct {
	A, B point
}

// starPoints returns the closed outline of a star with the first outer
// vertex pointing straight up.
func starPoints(cx, cy float64, spikes int, outer, inner float64) []point {
	pts := make([]point, 0, spikes*2)
	rot := math.Pi / 2 * 3
	step := math.Pi / float64(spikes)
	for i := 0; i < spikes; i++ {
		pts = append(pts, point{cx + math.Cos(rot)*outer, cy + math.Sin(rot)*outer})
		rot += step
		pts = append(pts, point{cx + math.Cos(rot)*inner, cy + math.Sin(rot)*inner})
		rot += step
	}
	return pts
}

// snowflakeSegments returns six arms with a pair of branches at 60% of
// the radius, each branch 40% of the arm, angled ±0.5 rad.
func snowflakeSegments(cx, cy, size float64) []segment {
	const arms = 6
	segs := make([]segment, 0, arms*3)
	center := point{cx, cy}
	branchLen := size * 0.4
	for i := 0; i < arms; i++ {
		angle := math.Pi * 2 * float64(i) / arms
		end := point{cx + math.Cos(angle)*size, cy + math.Sin(angle)*size}
		segs = append(segs, segment{center, end})

		mid := point{cx + math.Cos(angle)*size*0.6, cy + math.Sin(angle)*size*0.6}
		for _, a := range []float64{angle + 0.5, angle - 0.5} {
			segs = append(segs, segment{mid, point{mid.X + math.Cos(a)*branchLen, mid.Y + math.Sin(a)*branchLen}})
		}
	}
	return segs
}

// trianglePoints returns an isosceles triangle inscribed in the drag box:
// apex at the top centre, base along the far edge.
func trianglePoints(start, end point) []point {
	midX := start.X + (end.X-start.X)/2
	return []point{{midX, start.Y}, {end.X, end.Y}, {start.X, end.Y}}
}

// ellipseBox converts a drag box into centre and radii.
func ellipseBox(start, end point) (cx, cy, rx, ry float64) {
	rx = (end.X - start.X) / 2
	ry = (end.Y - start.Y) / 2
	return start.X + rx, start.Y + ry, math.Abs(rx), math.Abs(ry)
}

func tracePolygon(dc *gg.Context, pts []point) {
	if len(pts) == 0 {
		return
	}
	dc.NewSubPath()
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
}

func traceSegments(dc *gg.Context, segs []segment) {
	for _, s := range segs {
		dc.MoveTo(s.A.X, s.A.Y)
		dc.LineTo(s.B.X, s.B.Y)
	}
}

// traceShape builds the path for a shape tool over the drag box.
// It reports whether the shape is closed (fillable).
func traceShape(dc *gg.Context, tool Tool, start, end point) bool {
	switch tool {
	case ToolLine:
		dc.MoveTo(start.X, start.Y)
		dc.LineTo(end.X, end.Y)
		return false
	case ToolRect:
		tracePolygon(dc, []point{start, {end.X, start.Y}, end, {start.X, end.Y}})
	case ToolCircle:
		cx, cy, rx, ry := ellipseBox(start, end)
		if rx == 0 && ry == 0 {
			return false
		}
		dc.DrawEllipse(cx, cy, rx, ry)
	case ToolTriangle:
		tracePolygon(dc, trianglePoints(start, end))
	default:
		return false
	}
	return true
}
