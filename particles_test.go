package main

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

func seededSystem() *ParticleSystem {
	return newParticleSystem(newParticleFactory(rand.New(rand.NewPCG(1, 2))))
}

func TestFactoryRanges(t *testing.T) {
	f := newParticleFactory(rand.New(rand.NewPCG(7, 11)))
	for i := 0; i < 200; i++ {
		snow := f.Create(0, 0, EffectSnow, nil)
		if snow.Shape != ShapeFlake || snow.VY < 0.5 || snow.VY >= 2 || snow.Size < 4 || snow.Size >= 12 {
			t.Fatalf("snow out of range: %+v", snow)
		}
		if snow.MaxLife < 60 || snow.MaxLife >= 140 {
			t.Fatalf("snow life %v", snow.MaxLife)
		}

		fw := f.Create(0, 0, EffectFirework, nil)
		speed := math.Hypot(fw.VX, fw.VY)
		if fw.Shape != ShapeSpark || speed < 2-1e-9 || speed > 8+1e-9 {
			t.Fatalf("firework speed %v", speed)
		}
		if fw.MaxLife < 20 || fw.MaxLife >= 50 {
			t.Fatalf("firework life %v", fw.MaxLife)
		}

		c := f.Create(0, 0, EffectConfetti, nil)
		if c.Shape != ShapeRect || indexOf(confettiColors, c.Color) < 0 {
			t.Fatalf("confetti %+v", c)
		}

		s := f.Create(0, 0, EffectStars, nil)
		if s.Shape != ShapeStar {
			t.Fatalf("stars shape %v", s.Shape)
		}
	}
}

func TestFactoryCustomPalette(t *testing.T) {
	f := newParticleFactory(rand.New(rand.NewPCG(3, 4)))
	palette := []string{"#111111", "#222222"}

	var got []string
	for i := 0; i < 3; i++ {
		got = append(got, f.Create(0, 0, EffectFirework, palette).Color)
	}
	want := []string{"#111111", "#222222", "#111111"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("firework colours = %v, want %v", got, want)
		}
	}

	for i := 0; i < 20; i++ {
		if c := f.Create(0, 0, EffectSnow, palette).Color; indexOf(palette, c) < 0 {
			t.Fatalf("snow ignored custom palette: %s", c)
		}
	}
}

func TestFactoryColorCursorAdvancesForEveryEffect(t *testing.T) {
	f := newParticleFactory(rand.New(rand.NewPCG(3, 4)))
	palette := []string{"#111111", "#222222", "#333333"}

	f.Create(0, 0, EffectSnow, palette)
	f.Create(0, 0, EffectConfetti, palette)
	if f.Colors.Index != 2 {
		t.Fatalf("cursor = %d after snow and confetti, want 2", f.Colors.Index)
	}
	if c := f.Create(0, 0, EffectFirework, palette).Color; c != "#333333" {
		t.Errorf("firework colour = %s, want the third palette entry", c)
	}
	if c := f.Create(0, 0, EffectStars, palette).Color; c != "#111111" {
		t.Errorf("stars colour = %s, want the cycle to wrap", c)
	}
}

func TestFactoryReproducible(t *testing.T) {
	a := newParticleFactory(rand.New(rand.NewPCG(5, 5)))
	b := newParticleFactory(rand.New(rand.NewPCG(5, 5)))
	for i := 0; i < 10; i++ {
		pa, pb := a.Create(1, 2, EffectStars, nil), b.Create(1, 2, EffectStars, nil)
		if pa != pb {
			t.Fatalf("particle %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestParticleOpacityDecaysLinearly(t *testing.T) {
	p := Particle{Opacity: 1, MaxLife: 10, Friction: 1, Shape: ShapeFlake}
	prev := p.Opacity
	for k := 1; k < 10; k++ {
		p.step()
		want := 1 - float64(k)/10
		if math.Abs(p.Opacity-want) > 1e-9 {
			t.Fatalf("step %d opacity = %v, want %v", k, p.Opacity, want)
		}
		if p.Opacity >= prev {
			t.Fatalf("opacity did not decrease at step %d", k)
		}
		prev = p.Opacity
	}
	p.step()
	if p.Alive() {
		t.Error("particle should expire at max life")
	}
}

func TestFireworkBurstLifecycle(t *testing.T) {
	ps := seededSystem()
	ctx := SimContext{Enabled: true, Intensity: 100, Effect: EffectFirework}

	if n := ps.Click(ctx, 100, 100); n != 40 {
		t.Fatalf("burst = %d, want 40", n)
	}
	if ps.Len() != 40 {
		t.Fatalf("Len = %d, want 40", ps.Len())
	}
	var quadrants [4]int
	for _, p := range ps.Particles() {
		speed := math.Hypot(p.VX, p.VY)
		if speed < 2-1e-9 || speed > 8+1e-9 {
			t.Errorf("speed %v outside [2,8]", speed)
		}
		angle := math.Atan2(p.VY, p.VX)
		if angle < 0 {
			angle += 2 * math.Pi
		}
		quadrants[min(int(angle/(math.Pi/2)), 3)]++
	}
	for q, n := range quadrants {
		if n == 0 {
			t.Errorf("no particle heads into quadrant %d: %v", q, quadrants)
		}
	}

	prev := ps.Len()
	for i := 0; i < 50; i++ {
		ps.Step()
		if ps.Len() > prev {
			t.Fatalf("population grew at tick %d", i)
		}
		prev = ps.Len()
	}
	if ps.Len() != 0 {
		t.Errorf("%d particles alive after 50 ticks", ps.Len())
	}
}

func TestSpawnDisabledOrZeroIntensity(t *testing.T) {
	ps := seededSystem()
	now := time.Unix(1000, 0)
	for _, ctx := range []SimContext{
		{Enabled: true, Intensity: 0, Effect: EffectStars},
		{Enabled: false, Intensity: 80, Effect: EffectStars},
	} {
		if ps.PointerMove(ctx, 1, 1, now) {
			t.Errorf("trail spawned for %+v", ctx)
		}
		if n := ps.Click(ctx, 1, 1); n != 0 {
			t.Errorf("burst of %d for %+v", n, ctx)
		}
	}
	if ps.Len() != 0 {
		t.Errorf("Len = %d, want 0", ps.Len())
	}
}

func TestPointerMoveRespectsSpawnDelay(t *testing.T) {
	ps := seededSystem()
	ctx := SimContext{Enabled: true, Intensity: 50, Effect: EffectStars}
	t0 := time.Unix(1000, 0)

	if !ps.PointerMove(ctx, 0, 0, t0) {
		t.Fatal("first move should spawn")
	}
	if ps.PointerMove(ctx, 0, 0, t0.Add(50*time.Millisecond)) {
		t.Error("move inside the spawn delay should not spawn")
	}
	if !ps.PointerMove(ctx, 0, 0, t0.Add(200*time.Millisecond)) {
		t.Error("move after the spawn delay should spawn")
	}
	if ps.Len() != 2*trailCount(ctx) {
		t.Errorf("Len = %d, want %d", ps.Len(), 2*trailCount(ctx))
	}
}

func TestSpawnRates(t *testing.T) {
	if d := spawnDelay(100); d != 10*time.Millisecond {
		t.Errorf("spawnDelay(100) = %v", d)
	}
	if d := spawnDelay(0); d != 200*time.Millisecond {
		t.Errorf("spawnDelay(0) = %v", d)
	}
	if n := trailCount(SimContext{Intensity: 100, Effect: EffectStars}); n != 6 {
		t.Errorf("trail = %d, want 6", n)
	}
	if n := trailCount(SimContext{Intensity: 100, Effect: EffectFirework}); n != 18 {
		t.Errorf("firework trail = %d, want 18", n)
	}
	if n := burstCount(SimContext{Intensity: 1, Effect: EffectSnow}); n != 2 {
		t.Errorf("minimum burst = %d, want 2", n)
	}
}

func TestSpawnAtLeastOne(t *testing.T) {
	ps := seededSystem()
	ps.Spawn(0, 0, 0, EffectSnow, nil)
	if ps.Len() != 1 {
		t.Errorf("Len = %d, want 1", ps.Len())
	}
}

func TestTickRendersAndCulls(t *testing.T) {
	ps := seededSystem()
	ps.Tick()
	ps.Resize(200, 200)
	ps.Spawn(100, 100, 5, EffectConfetti, nil)
	ps.Tick()

	im := ps.Canvas().Image()
	painted := false
	b := im.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !painted; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := im.At(x, y).RGBA(); a != 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Error("tick rendered nothing")
	}

	for i := 0; i < 200; i++ {
		ps.Tick()
	}
	if ps.Len() != 0 {
		t.Errorf("Len = %d after 200 ticks", ps.Len())
	}
}
