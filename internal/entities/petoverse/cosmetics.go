package petoverse

// Size bounds for CosmeticConfig.Size
const (
	MinSize     = 0.5
	MaxSize     = 1.5
	DefaultSize = 1.0
	SizeStep    = 0.1
)

// CosmeticConfig is the set of visual customisation choices for a pet
type CosmeticConfig struct {
	PrimaryColor   string   `json:"primary_color"`
	SecondaryColor string   `json:"secondary_color"`
	Size           float64  `json:"size"`
	Accessories    []string `json:"accessories"`
}

// HasAccessory reports whether the accessory id is worn
func (c CosmeticConfig) HasAccessory(id string) bool {
	for _, a := range c.Accessories {
		if a == id {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no memory with c
func (c CosmeticConfig) Clone() CosmeticConfig {
	out := c
	out.Accessories = append([]string{}, c.Accessories...)
	return out
}

// Palette is a selectable colour palette
type Palette struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Accessory is a wearable cosmetic item
type Accessory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}
