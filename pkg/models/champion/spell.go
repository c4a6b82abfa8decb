package champion

import (
	"encoding/json"
	"strconv"
	"strings"

	"lolatlas/pkg/models/image"
)

// Struct for holding a champion spell.
type Spell struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Tooltip      string      `json:"tooltip,omitempty"`
	MaxRank      int         `json:"maxrank,omitempty"`
	CooldownBurn string      `json:"cooldownBurn,omitempty"`
	CostBurn     string      `json:"costBurn,omitempty"`
	EffectBurn   []string    `json:"effectBurn,omitempty"`
	Vars         []SpellVar  `json:"vars,omitempty"`
	Resource     string      `json:"resource,omitempty"`
	Image        image.Image `json:"image"`
}

// SpellVar is a ratio entry referenced by {{ aN }} and {{ fN }} placeholders.
type SpellVar struct {
	Key   string      `json:"key"`
	Link  string      `json:"link"`
	Coeff Coefficient `json:"coeff"`
}

// Coefficient is either a single number or one number per rank.
type Coefficient []float64

// UnmarshalJSON accepts both a bare number and an array of numbers.
func (c *Coefficient) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*c = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []float64
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*c = values
		return nil
	}

	var value float64
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*c = Coefficient{value}
	return nil
}

// String joins every rank value with a slash.
func (c Coefficient) String() string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, "/")
}
