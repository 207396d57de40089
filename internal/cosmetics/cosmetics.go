// Package cosmetics edits CosmeticConfig values. Every function takes a config
// and returns a new one; the input is never modified. Unknown palette or
// accessory ids leave the config unchanged.
package cosmetics

import (
	"math"

	"github.com/KirkDiggler/petoverse-api/internal/catalog"
	"github.com/KirkDiggler/petoverse-api/internal/entities/petoverse"
)

// SetPrimaryColor replaces the primary palette
func SetPrimaryColor(c petoverse.CosmeticConfig, paletteID string) petoverse.CosmeticConfig {
	out := c.Clone()
	if _, ok := catalog.Palette(paletteID); ok {
		out.PrimaryColor = paletteID
	}
	return out
}

// SetSecondaryColor replaces the secondary palette
func SetSecondaryColor(c petoverse.CosmeticConfig, paletteID string) petoverse.CosmeticConfig {
	out := c.Clone()
	if _, ok := catalog.Palette(paletteID); ok {
		out.SecondaryColor = paletteID
	}
	return out
}

// SetSize stores v clamped to [MinSize, MaxSize] and snapped to SizeStep
func SetSize(c petoverse.CosmeticConfig, v float64) petoverse.CosmeticConfig {
	out := c.Clone()
	out.Size = NormalizeSize(v)
	return out
}

// NormalizeSize clamps and snaps a size. NaN becomes the default size.
func NormalizeSize(v float64) float64 {
	if math.IsNaN(v) {
		return petoverse.DefaultSize
	}
	const stepsPerUnit = 1 / petoverse.SizeStep
	v = math.Max(petoverse.MinSize, math.Min(petoverse.MaxSize, v))
	return math.Round(v*stepsPerUnit) / stepsPerUnit
}

// ToggleAccessory adds the accessory when absent and removes it when worn.
// Applying it twice returns the original set.
func ToggleAccessory(c petoverse.CosmeticConfig, accessoryID string) petoverse.CosmeticConfig {
	out := c.Clone()
	if _, ok := catalog.Accessory(accessoryID); !ok {
		return out
	}

	for i, id := range out.Accessories {
		if id == accessoryID {
			out.Accessories = append(out.Accessories[:i], out.Accessories[i+1:]...)
			return out
		}
	}
	out.Accessories = append(out.Accessories, accessoryID)
	return out
}

// Sanitize repairs a config that came from outside the process: unknown
// colours fall back to the defaults, unknown or repeated accessories are
// dropped, and size is normalised.
func Sanitize(c petoverse.CosmeticConfig) petoverse.CosmeticConfig {
	out := catalog.DefaultCosmetics()
	if _, ok := catalog.Palette(c.PrimaryColor); ok {
		out.PrimaryColor = c.PrimaryColor
	}
	if _, ok := catalog.Palette(c.SecondaryColor); ok {
		out.SecondaryColor = c.SecondaryColor
	}
	out.Size = NormalizeSize(c.Size)

	seen := make(map[string]bool, len(c.Accessories))
	for _, id := range c.Accessories {
		if seen[id] {
			continue
		}
		if _, ok := catalog.Accessory(id); ok {
			seen[id] = true
			out.Accessories = append(out.Accessories, id)
		}
	}
	return out
}
