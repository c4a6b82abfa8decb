package dto

// ChampionSummary is a champion on the catalog listing.
type ChampionSummary struct {
	ID       string   `json:"id"`
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Tags     []string `json:"tags"`
	ImageURL string   `json:"imageUrl"`
}

// Spell with the placeholders already filled.
type Spell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tooltip     string `json:"tooltip"`
	MaxRank     int    `json:"maxRank"`
	Cooldown    string `json:"cooldown"`
	Cost        string `json:"cost"`
	Resource    string `json:"resource,omitempty"`
	ImageURL    string `json:"imageUrl"`
}

// Passive of a champion.
type Passive struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

// Skin of a champion.
type Skin struct {
	ID        string `json:"id"`
	Num       int    `json:"num"`
	Name      string `json:"name"`
	Chromas   bool   `json:"chromas"`
	SplashURL string `json:"splashUrl"`
}

// ChampionDetail is the full champion page.
type ChampionDetail struct {
	ChampionSummary
	Blurb   string             `json:"blurb"`
	Partype string             `json:"partype"`
	Stats   map[string]float64 `json:"stats"`
	Passive *Passive           `json:"passive,omitempty"`
	Spells  []Spell            `json:"spells"`
	Skins   []Skin             `json:"skins"`
}
