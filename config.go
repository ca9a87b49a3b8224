package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	SaveDirectory string
	Watermark     string
	LogFile       string

	BrushSize float64
	Opacity   int
	FontSize  float64
	StampSize float64
	Tool      Tool
	Color     string
	Fill      bool

	Effect    ParticleEffect
	Intensity int
	Particles bool
	Palette   []string
}

func defaultConfig() *Config {
	return &Config{
		BrushSize: defaultBrushSize,
		Opacity:   100,
		FontSize:  defaultFontSize,
		StampSize: defaultStampSize,
		Tool:      ToolBrush,
		Color:     rainbowColor,
		Effect:    EffectStars,
		Intensity: 50,
		Particles: true,
	}
}

func loadConfig() *Config {
	config := defaultConfig()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return config
	}

	configPath := filepath.Join(homeDir, ".glimmerrc")
	file, err := os.Open(configPath)
	if err != nil {
		return config
	}
	defer file.Close()

	config.parse(file, homeDir)
	return config
}

// parse applies key = value lines. Unknown keys and bad values are skipped.
func (c *Config) parse(r io.Reader, homeDir string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			c.SaveDirectory = expandPath(value, homeDir)
		case "watermark":
			c.Watermark = expandPath(value, homeDir)
		case "log", "logfile":
			c.LogFile = expandPath(value, homeDir)
		case "brushsize", "brush_size":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				c.BrushSize = clampFloat(v, minBrushSize, maxBrushSize)
			}
		case "opacity":
			if v, err := strconv.Atoi(value); err == nil {
				c.Opacity = clampInt(v, minOpacity, 100)
			}
		case "fontsize", "font_size":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				c.FontSize = clampFloat(v, minFontSize, maxFontSize)
			}
		case "stampsize", "stamp_size":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				c.StampSize = clampFloat(v, minStampSize, maxStampSize)
			}
		case "tool":
			if t, ok := parseTool(strings.ToLower(value)); ok {
				c.Tool = t
			}
		case "color", "colour":
			if strings.EqualFold(value, rainbowColor) {
				c.Color = rainbowColor
			} else if isHexColor(value) {
				c.Color = "#" + strings.ToUpper(strings.TrimPrefix(value, "#"))
			}
		case "fill":
			c.Fill = strings.ToLower(value) == "true"
		case "effect":
			if e, ok := parseEffect(strings.ToLower(value)); ok {
				c.Effect = e
			}
		case "intensity":
			if v, err := strconv.Atoi(value); err == nil {
				c.Intensity = clampInt(v, 0, 100)
			}
		case "particles":
			c.Particles = strings.ToLower(value) == "true"
		case "palette":
			c.Palette = parsePalette(value)
		}
	}
}

// parsePalette accepts a preset name or a comma separated hex list.
func parsePalette(value string) []string {
	if p, ok := presetByName(value); ok {
		return p.Colors
	}
	var colors []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if isHexColor(part) {
			colors = append(colors, "#"+strings.ToUpper(strings.TrimPrefix(part, "#")))
		}
	}
	return colors
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// settings seeds the live configuration surface.
func (c *Config) settings() *Settings {
	s := defaultSettings()
	s.Tool = c.Tool
	s.Color = c.Color
	s.BrushSize = c.BrushSize
	s.Opacity = c.Opacity
	s.Fill = c.Fill
	s.FontSize = c.FontSize
	s.StampSize = c.StampSize
	s.ParticleEffect = c.Effect
	s.ParticleIntensity = c.Intensity
	s.ParticlesEnabled = c.Particles
	s.CustomPalette = c.Palette
	return s
}
