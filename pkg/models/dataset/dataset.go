package dataset

import (
	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/item"
)

// Where a dataset came from.
const (
	SourceAPI         = "api"
	SourceAPIFiltered = "api-filtered"
	SourceCache       = "cache"
)

// Dataset is a snapshot of the champion and item catalogs for one game version.
// It's also the exact shape of the cache entry, Source excluded.
type Dataset struct {
	Version           string              `json:"version"`
	Champions         []champion.Champion `json:"champions"`
	Items             []item.Item         `json:"items"`
	ChampionImageBase string              `json:"championImageBase"`
	ItemImageBase     string              `json:"itemImageBase"`
	Timestamp         int64               `json:"timestamp"`
	Source            string              `json:"-"`
}
