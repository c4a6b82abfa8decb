package champion

import (
	"fmt"

	"lolatlas/pkg/models/image"
)

// Struct for holding a champion data.
// Both the catalog (champion.json) and the detail document (champion/{id}.json) decode into it,
// the catalog just leaves Spells, Passive and Skins empty.
type Champion struct {
	ID      string      `json:"id"`
	Key     string      `json:"key"`
	Name    string      `json:"name"`
	Title   string      `json:"title"`
	Blurb   string      `json:"blurb,omitempty"`
	Tags    []string    `json:"tags"`
	Partype string      `json:"partype,omitempty"`
	Image   image.Image `json:"image"`
	Stats   Stats       `json:"stats"`
	Spells  []Spell     `json:"spells,omitempty"`
	Passive *Passive    `json:"passive,omitempty"`
	Skins   []Skin      `json:"skins,omitempty"`
}

// Passive ability of a champion.
type Passive struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       image.Image `json:"image"`
}

// Skin of a champion. Num 0 is the default look.
type Skin struct {
	ID      string `json:"id"`
	Num     int    `json:"num"`
	Name    string `json:"name"`
	Chromas bool   `json:"chromas"`
}

// SplashURL builds the splash art address of a skin.
// Splash arts are not versioned, so only the cdn root is needed.
func (s Skin) SplashURL(cdn, championID string) string {
	return fmt.Sprintf("%s/img/champion/splash/%s_%d.jpg", cdn, championID, s.Num)
}

// ListedSkins returns the skins without the default one.
func (c *Champion) ListedSkins() []Skin {
	skins := make([]Skin, 0, len(c.Skins))
	for _, skin := range c.Skins {
		if skin.Num == 0 {
			continue
		}
		skins = append(skins, skin)
	}
	return skins
}
