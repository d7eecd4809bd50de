package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/moodwheel/internal/domain"
	"github.com/alexanderramin/moodwheel/internal/wheel"
	"github.com/lucasb-eyer/go-colorful"
)

// Pastel swatches keep saturation and lightness fixed and vary only the hue.
const (
	pastelSaturation = 0.7
	pastelLightness  = 0.8
)

// pastelHex returns the hex form of a pastel color with the given hue in degrees.
func pastelHex(hue float64) string {
	return colorful.Hsl(hue, pastelSaturation, pastelLightness).Clamped().Hex()
}

func (s *checkInService) Palette(ctx context.Context) (map[string]string, error) {
	swatches, err := s.palette.List(ctx)
	if err != nil {
		return nil, err
	}
	colors := make(map[string]string, len(swatches))
	for _, sw := range swatches {
		colors[sw.Label] = sw.Hex
	}

	cores, err := s.tree.OptionsFor(wheel.Core, "")
	if err != nil {
		return nil, err
	}
	for _, core := range cores {
		if _, ok := colors[core]; ok {
			continue
		}
		sw := domain.Swatch{Label: core, Hex: pastelHex(s.hue())}
		if err := s.palette.Create(ctx, sw); err != nil {
			return nil, fmt.Errorf("assigning color to %s: %w", core, err)
		}
		colors[core] = sw.Hex
	}
	return colors, nil
}
