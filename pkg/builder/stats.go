package builder

import (
	"math"

	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/item"
)

// StatValue is one attribute of a build.
type StatValue struct {
	Base    float64
	Flat    float64
	Percent float64
	Total   float64
}

// StatRow is a computed attribute ready to be shown.
type StatRow struct {
	ID             string  `json:"id"`
	Label          string  `json:"label"`
	Base           float64 `json:"base"`
	Flat           float64 `json:"flat"`
	Percent        float64 `json:"percent"`
	Total          float64 `json:"total"`
	Display        string  `json:"display"`
	Decimals       int     `json:"decimals"`
	FormattedBase  string  `json:"formattedBase"`
	FormattedTotal string  `json:"formattedTotal"`
	FormattedBonus string  `json:"formattedBonus"`
}

// ComputeStat aggregates the attribute at the reference level.
func ComputeStat(champ *champion.Champion, items []item.Item, def Definition) StatValue {
	return ComputeStatAt(champ, items, def, ReferenceLevel)
}

// ComputeStatAt aggregates the attribute with the base value at the given level.
// A total that isn't finite falls back to the base value.
func ComputeStatAt(champ *champion.Champion, items []item.Item, def Definition, level int) StatValue {
	base := baseValue(champ, def, level)
	flat := SumItemStats(items, def.FlatKeys)
	percent := SumItemStats(items, def.PercentKeys)

	var total float64
	switch {
	case def.Custom != nil:
		total = def.Custom(CustomInput{
			Base:     base,
			Flat:     flat,
			Percent:  percent,
			Champion: champ,
			Items:    items,
		})
	case def.Mode == Additive:
		total = base + flat + percent
	default:
		total = (base + flat) * (1 + percent)
	}

	if !isFinite(total) {
		total = base
	}

	return StatValue{
		Base:    base,
		Flat:    flat,
		Percent: percent,
		Total:   total,
	}
}

// ComputeStats aggregates every definition at the reference level.
func ComputeStats(champ *champion.Champion, items []item.Item, defs []Definition) []StatRow {
	return ComputeStatsAt(champ, items, defs, ReferenceLevel)
}

// ComputeStatsAt aggregates every definition at the given level.
func ComputeStatsAt(champ *champion.Champion, items []item.Item, defs []Definition, level int) []StatRow {
	if level < 1 {
		level = ReferenceLevel
	}

	rows := make([]StatRow, 0, len(defs))
	for _, def := range defs {
		value := ComputeStatAt(champ, items, def, level)
		rows = append(rows, StatRow{
			ID:             def.ID,
			Label:          def.Label,
			Base:           value.Base,
			Flat:           value.Flat,
			Percent:        value.Percent,
			Total:          value.Total,
			Display:        displayOf(def),
			Decimals:       def.Decimals,
			FormattedBase:  FormatStatValue(value.Base, def, false),
			FormattedTotal: FormatStatValue(value.Total, def, false),
			FormattedBonus: FormatStatValue(value.Total-value.Base, def, true),
		})
	}
	return rows
}

// SumItemStats adds the keys over every item, absent keys count as zero.
func SumItemStats(items []item.Item, keys []string) float64 {
	var total float64
	for i := range items {
		for _, key := range keys {
			value := items[i].Stats.Get(key)
			if isFinite(value) {
				total += value
			}
		}
	}
	return total
}

// TotalGold is the full price of the loadout.
func TotalGold(items []item.Item) int {
	total := 0
	for i := range items {
		total += items[i].Gold.Total
	}
	return total
}

func baseValue(champ *champion.Champion, def Definition, level int) float64 {
	var base float64
	switch {
	case def.Base != nil:
		base = def.Base(champ)
	case champ != nil && def.BaseKey != "":
		base = champ.Stats.AtLevel(def.BaseKey, level)
	}
	if !isFinite(base) {
		return 0
	}
	return base
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
