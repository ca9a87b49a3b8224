package main

import (
	"math"
	"time"

	"github.com/fogleman/gg"
)

// ParticleSystem owns the live population and the canvas it renders onto.
// It is driven from the host's frame callback and never blocks.
type ParticleSystem struct {
	particles []Particle
	factory   *ParticleFactory
	canvas    *gg.Context
	lastSpawn time.Time
}

func newParticleSystem(factory *ParticleFactory) *ParticleSystem {
	if factory == nil {
		factory = newParticleFactory(nil)
	}
	return &ParticleSystem{factory: factory}
}

// Resize resets the canvas. Live particles keep their coordinates.
func (ps *ParticleSystem) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		ps.canvas = nil
		return
	}
	ps.canvas = gg.NewContext(width, height)
}

func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Canvas returns the particle layer, or nil before the first resize.
func (ps *ParticleSystem) Canvas() *gg.Context {
	return ps.canvas
}

// Spawn appends count independently sampled particles.
func (ps *ParticleSystem) Spawn(x, y float64, count int, effect ParticleEffect, palette []string) {
	if count < 1 {
		count = 1
	}
	for i := 0; i < count; i++ {
		ps.particles = append(ps.particles, ps.factory.Create(x, y, effect, palette))
	}
}

// spawnDelay is the minimum gap between trail spawns; lower means denser.
func spawnDelay(intensity int) time.Duration {
	ms := math.Max(10, 200-float64(intensity)*1.9)
	return time.Duration(ms * float64(time.Millisecond))
}

func trailCount(ctx SimContext) int {
	base := max(1, int(math.Round(float64(ctx.Intensity)/100*6)))
	if ctx.Effect == EffectFirework {
		return base * 3
	}
	return base
}

func burstCount(ctx SimContext) int {
	base := max(2, int(math.Round(float64(ctx.Intensity)/100*20)))
	if ctx.Effect == EffectFirework {
		return base * 2
	}
	return base
}

func (ctx SimContext) spawning() bool {
	return ctx.Enabled && ctx.Intensity > 0
}

// PointerMove spawns a trail at the pointer once the spawn delay has elapsed.
// It reports whether particles were spawned.
func (ps *ParticleSystem) PointerMove(ctx SimContext, x, y float64, now time.Time) bool {
	if !ctx.spawning() {
		return false
	}
	if now.Sub(ps.lastSpawn) <= spawnDelay(ctx.Intensity) {
		return false
	}
	ps.Spawn(x, y, trailCount(ctx), ctx.Effect, ctx.CustomColors)
	ps.lastSpawn = now
	return true
}

// Click spawns a one-shot burst.
func (ps *ParticleSystem) Click(ctx SimContext, x, y float64) int {
	if !ctx.spawning() {
		return 0
	}
	n := burstCount(ctx)
	ps.Spawn(x, y, n, ctx.Effect, ctx.CustomColors)
	return n
}

// Step advances every particle one frame and culls the expired ones in place.
func (ps *ParticleSystem) Step() {
	alive := ps.particles[:0]
	for i := range ps.particles {
		p := ps.particles[i]
		p.step()
		if !p.Alive() {
			continue
		}
		alive = append(alive, p)
	}
	clear(ps.particles[len(alive):])
	ps.particles = alive
}

// Tick runs one animation frame: clear, step, cull, render.
func (ps *ParticleSystem) Tick() {
	if ps.canvas != nil {
		ps.canvas.SetColor(transparent)
		ps.canvas.Clear()
	}
	ps.Step()
	if ps.canvas == nil {
		return
	}
	for i := range ps.particles {
		renderParticle(ps.canvas, &ps.particles[i])
	}
}

// Clear drops every particle; used on teardown only.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

func renderParticle(dc *gg.Context, p *Particle) {
	base := parseHex(p.Color)
	col := withAlpha(base, p.Opacity)

	dc.Push()
	defer dc.Pop()
	dc.Translate(p.X, p.Y)
	dc.Rotate(p.Rotation)

	switch p.Shape {
	case ShapeStar:
		tracePolygon(dc, starPoints(0, 0, 5, p.Size, p.Size*0.4))
		haloPreserve(dc, col, 12, 0)
		dc.SetColor(col)
		dc.Fill()
	case ShapeFlake:
		traceSegments(dc, snowflakeSegments(0, 0, p.Size))
		dc.SetLineCapRound()
		haloPreserve(dc, col, 6, 1.5)
		dc.SetLineWidth(1.5)
		dc.SetColor(col)
		dc.Stroke()
	case ShapeSpark:
		dc.DrawCircle(0, 0, p.Size)
		haloPreserve(dc, col, 10, 0)
		dc.SetColor(col)
		dc.Fill()

		dc.MoveTo(0, 0)
		dc.LineTo(-p.VX*3, -p.VY*3)
		dc.SetColor(withAlpha(base, p.Opacity*0.4))
		dc.SetLineWidth(p.Size * 0.8)
		dc.SetLineCapRound()
		dc.Stroke()
	case ShapeRect:
		dc.DrawRectangle(-p.Size/2, -p.Size/4, p.Size, p.Size/2)
		haloPreserve(dc, col, 4, 0)
		dc.SetColor(col)
		dc.Fill()
	}
}
