package dto

import "lolatlas/pkg/builder"

// Build is the state of a build with its computed stats.
type Build struct {
	ID        string            `json:"id"`
	Champion  *ChampionSummary  `json:"champion"`
	Items     []Item            `json:"items"`
	MaxItems  int               `json:"maxItems"`
	Full      bool              `json:"full"`
	Level     int               `json:"level"`
	Stats     []builder.StatRow `json:"stats"`
	TotalGold int               `json:"totalGold"`
}
