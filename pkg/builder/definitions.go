package builder

import (
	"math"

	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/item"
)

// ReferenceLevel is the champion level every base stat is shown at.
const ReferenceLevel = 18

// DefaultAttackSpeed is the attack speed of a champion without the stat.
const DefaultAttackSpeed = 0.625

// Mode is how the item bonuses combine with the base value.
type Mode string

const (
	// Additive: base + flat + percent, the percent is already absolute.
	Additive Mode = "additive"
	// Scaling: (base + flat) * (1 + percent).
	Scaling Mode = "scaling"
	// Custom uses the Custom function of the definition.
	Custom Mode = "custom"
)

// Display kinds.
const (
	DisplayNumber      = "number"
	DisplayPercent     = "percent"
	DisplayAttackSpeed = "attackSpeed"
)

// CustomInput is what a custom combination receives.
type CustomInput struct {
	Base     float64
	Flat     float64
	Percent  float64
	Champion *champion.Champion
	Items    []item.Item
}

// Definition describes one aggregated attribute.
type Definition struct {
	ID    string
	Label string
	// BaseKey is the champion stat scaled to the level, ignored when Base is set.
	BaseKey     string
	Base        func(champ *champion.Champion) float64
	FlatKeys    []string
	PercentKeys []string
	Mode        Mode
	Custom      func(in CustomInput) float64
	Display     string
	Decimals    int
}

// DefaultDefinitions are the attributes shown for a build.
var DefaultDefinitions = []Definition{
	{
		ID:          "hp",
		Label:       "Vida",
		BaseKey:     "hp",
		FlatKeys:    []string{item.FlatHPPoolMod},
		PercentKeys: []string{item.PercentHPPoolMod},
		Mode:        Scaling,
		Display:     DisplayNumber,
		Decimals:    0,
	},
	{
		ID:          "attackdamage",
		Label:       "Dano de Ataque",
		BaseKey:     "attackdamage",
		FlatKeys:    []string{item.FlatPhysicalDamageMod},
		PercentKeys: []string{item.PercentPhysicalDamageMod},
		Mode:        Scaling,
		Display:     DisplayNumber,
		Decimals:    1,
	},
	{
		ID:          "abilitypower",
		Label:       "Poder de Habilidade",
		Base:        zeroBase,
		FlatKeys:    []string{item.FlatMagicDamageMod},
		PercentKeys: []string{item.PercentMagicDamageMod},
		Mode:        Scaling,
		Display:     DisplayNumber,
		Decimals:    1,
	},
	{
		ID:          "armor",
		Label:       "Armadura",
		BaseKey:     "armor",
		FlatKeys:    []string{item.FlatArmorMod},
		PercentKeys: []string{item.PercentArmorMod},
		Mode:        Scaling,
		Display:     DisplayNumber,
		Decimals:    1,
	},
	{
		ID:          "mr",
		Label:       "Resistência Mágica",
		BaseKey:     "spellblock",
		FlatKeys:    []string{item.FlatSpellBlockMod},
		PercentKeys: []string{item.PercentSpellBlockMod},
		Mode:        Scaling,
		Display:     DisplayNumber,
		Decimals:    1,
	},
	{
		ID:          "movespeed",
		Label:       "Velocidade de Movimento",
		BaseKey:     "movespeed",
		FlatKeys:    []string{item.FlatMovementSpeedMod},
		PercentKeys: []string{item.PercentMovementSpeedMod},
		Mode:        Scaling,
		Display:     DisplayNumber,
		Decimals:    0,
	},
	{
		ID:          "attackspeed",
		Label:       "Velocidade de Ataque",
		Base:        BaseAttackSpeed,
		FlatKeys:    []string{item.FlatAttackSpeedMod},
		PercentKeys: []string{item.PercentAttackSpeedMod},
		Mode:        Scaling,
		Display:     DisplayAttackSpeed,
		Decimals:    3,
	},
	{
		ID:          "crit",
		Label:       "Chance de Crítico",
		BaseKey:     "crit",
		FlatKeys:    []string{item.FlatCritChanceMod},
		PercentKeys: []string{item.PercentCritChanceMod},
		Mode:        Additive,
		Display:     DisplayPercent,
		Decimals:    1,
	},
	{
		ID:          "lifesteal",
		Label:       "Roubo de Vida",
		Base:        zeroBase,
		FlatKeys:    []string{item.FlatLifeStealMod},
		PercentKeys: []string{item.PercentLifeStealMod},
		Mode:        Additive,
		Display:     DisplayPercent,
		Decimals:    1,
	},
	{
		ID:          "omnivamp",
		Label:       "Onivampirismo",
		Base:        zeroBase,
		FlatKeys:    []string{item.FlatOmnivampMod},
		PercentKeys: []string{item.PercentOmnivampMod},
		Mode:        Additive,
		Display:     DisplayPercent,
		Decimals:    1,
	},
}

// DefinitionByID finds a default definition.
func DefinitionByID(id string) (Definition, bool) {
	for _, def := range DefaultDefinitions {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}

func zeroBase(*champion.Champion) float64 {
	return 0
}

// BaseAttackSpeed is the attackspeed stat when sent, else derived from the offset.
func BaseAttackSpeed(champ *champion.Champion) float64 {
	if champ == nil {
		return DefaultAttackSpeed
	}
	if champ.Stats.Has("attackspeed") {
		return champ.Stats.Get("attackspeed")
	}

	base := DefaultAttackSpeed / (1 + champ.Stats.Get("attackspeedoffset"))
	if math.IsNaN(base) || math.IsInf(base, 0) {
		return DefaultAttackSpeed
	}
	return base
}
