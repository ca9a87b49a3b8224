package main

import (
	"math"
	"math/rand/v2"
)

// Particle is one animated unit owned by the ParticleSystem.
type Particle struct {
	X, Y          float64
	VX, VY        float64
	Size          float64
	Opacity       float64
	Rotation      float64
	RotationSpeed float64
	Color         string
	Life          int
	MaxLife       float64
	Shape         Shape
	Gravity       float64
	Friction      float64
}

// Alive reports whether the particle may still be rendered.
func (p *Particle) Alive() bool {
	return p.Life >= 0 && float64(p.Life) < p.MaxLife && p.Opacity > 0
}

// step advances one frame of physics and decay.
func (p *Particle) step() {
	p.VX *= p.Friction
	p.VY *= p.Friction
	p.VY += p.Gravity
	p.X += p.VX
	p.Y += p.VY
	p.Rotation += p.RotationSpeed
	p.Life++
	p.Opacity = 1 - float64(p.Life)/p.MaxLife

	switch p.Shape {
	case ShapeStar:
		p.Size *= 0.995
	case ShapeSpark:
		p.Size *= 0.97
	}
}

// ParticleFactory samples new particles. The colour cursor is explicit so a
// seeded factory produces a reproducible sequence.
type ParticleFactory struct {
	Colors ColorCycle
	rng    *rand.Rand
}

func newParticleFactory(rng *rand.Rand) *ParticleFactory {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &ParticleFactory{rng: rng}
}

// between returns a uniform sample in [lo, hi).
func (f *ParticleFactory) between(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

func (f *ParticleFactory) pick(palette []string) string {
	return palette[f.rng.IntN(len(palette))]
}

// Create samples one particle of the given effect at (x, y). An empty
// palette selects the effect's built-in colours. The colour cursor advances
// once per call whatever the effect.
func (f *ParticleFactory) Create(x, y float64, effect ParticleEffect, palette []string) Particle {
	colors := palette
	if len(colors) == 0 {
		colors = rainbowColors
	}
	cycled := f.Colors.Next(colors)

	switch effect {
	case EffectSnow:
		snow := palette
		if len(snow) == 0 {
			snow = snowColors
		}
		return Particle{
			X: x, Y: y,
			VX:            f.between(-0.75, 0.75),
			VY:            f.between(0.5, 2.0),
			Size:          f.between(4, 12),
			Opacity:       f.between(0.5, 1),
			Rotation:      f.between(0, 2*math.Pi),
			RotationSpeed: f.between(-0.015, 0.015),
			Color:         f.pick(snow),
			MaxLife:       f.between(60, 140),
			Shape:         ShapeFlake,
			Gravity:       0.01,
			Friction:      0.999,
		}
	case EffectFirework:
		angle := f.between(0, 2*math.Pi)
		speed := f.between(2, 8)
		return Particle{
			X: x, Y: y,
			VX:       math.Cos(angle) * speed,
			VY:       math.Sin(angle) * speed,
			Size:     f.between(1, 4),
			Opacity:  1,
			Color:    cycled,
			MaxLife:  f.between(20, 50),
			Shape:    ShapeSpark,
			Gravity:  0.12,
			Friction: 0.97,
		}
	case EffectConfetti:
		if len(palette) == 0 {
			colors = confettiColors
		}
		angle := f.between(0, 2*math.Pi)
		speed := f.between(1, 5)
		return Particle{
			X: x, Y: y,
			VX:            math.Cos(angle) * speed,
			VY:            math.Sin(angle)*speed - 2,
			Size:          f.between(4, 12),
			Opacity:       1,
			Rotation:      f.between(0, 2*math.Pi),
			RotationSpeed: f.between(-0.15, 0.15),
			Color:         f.pick(colors),
			MaxLife:       f.between(40, 90),
			Shape:         ShapeRect,
			Gravity:       0.06,
			Friction:      0.99,
		}
	default:
		angle := f.between(0, 2*math.Pi)
		speed := f.between(1, 4)
		return Particle{
			X: x, Y: y,
			VX:            math.Cos(angle) * speed,
			VY:            math.Sin(angle)*speed - 1,
			Size:          f.between(5, 15),
			Opacity:       1,
			Rotation:      f.between(0, 2*math.Pi),
			RotationSpeed: f.between(-0.075, 0.075),
			Color:         cycled,
			MaxLife:       f.between(30, 70),
			Shape:         ShapeStar,
			Gravity:       0.04,
			Friction:      1,
		}
	}
}
