package main

import (
	"fmt"

	"github.com/atotto/clipboard"
)

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// copyToClipboard is best effort; headless sessions have no clipboard.
func copyToClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unsupported")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

// nextIndex steps through n options, wrapping around.
func nextIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
