package dto

import "time"

// DatasetInfo describes the applied dataset.
type DatasetInfo struct {
	Version           string    `json:"version"`
	Source            string    `json:"source"`
	Champions         int       `json:"champions"`
	Items             int       `json:"items"`
	ChampionImageBase string    `json:"championImageBase"`
	ItemImageBase     string    `json:"itemImageBase"`
	FetchedAt         time.Time `json:"fetchedAt"`
}
