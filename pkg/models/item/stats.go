package item

// Stats holds the numeric modifiers of an item keyed by their Data Dragon names.
type Stats map[string]float64

// Known modifier names.
const (
	FlatHPPoolMod            = "FlatHPPoolMod"
	PercentHPPoolMod         = "PercentHPPoolMod"
	FlatMPPoolMod            = "FlatMPPoolMod"
	FlatHPRegenMod           = "FlatHPRegenMod"
	FlatPhysicalDamageMod    = "FlatPhysicalDamageMod"
	PercentPhysicalDamageMod = "PercentPhysicalDamageMod"
	FlatMagicDamageMod       = "FlatMagicDamageMod"
	PercentMagicDamageMod    = "PercentMagicDamageMod"
	FlatArmorMod             = "FlatArmorMod"
	PercentArmorMod          = "PercentArmorMod"
	FlatSpellBlockMod        = "FlatSpellBlockMod"
	PercentSpellBlockMod     = "PercentSpellBlockMod"
	FlatMovementSpeedMod     = "FlatMovementSpeedMod"
	PercentMovementSpeedMod  = "PercentMovementSpeedMod"
	FlatAttackSpeedMod       = "FlatAttackSpeedMod"
	PercentAttackSpeedMod    = "PercentAttackSpeedMod"
	FlatCritChanceMod        = "FlatCritChanceMod"
	PercentCritChanceMod     = "PercentCritChanceMod"
	PercentLifeStealMod      = "PercentLifeStealMod"
	FlatLifeStealMod         = "FlatLifeStealMod"
	PercentOmnivampMod       = "PercentOmnivampMod"
	FlatOmnivampMod          = "FlatOmnivampMod"
)

// StatKeys is the enumerated set of modifiers the calculator understands.
var StatKeys = []string{
	FlatHPPoolMod, PercentHPPoolMod, FlatMPPoolMod, FlatHPRegenMod,
	FlatPhysicalDamageMod, PercentPhysicalDamageMod,
	FlatMagicDamageMod, PercentMagicDamageMod,
	FlatArmorMod, PercentArmorMod,
	FlatSpellBlockMod, PercentSpellBlockMod,
	FlatMovementSpeedMod, PercentMovementSpeedMod,
	FlatAttackSpeedMod, PercentAttackSpeedMod,
	FlatCritChanceMod, PercentCritChanceMod,
	FlatLifeStealMod, PercentLifeStealMod,
	FlatOmnivampMod, PercentOmnivampMod,
}

// Get returns the modifier value or zero when absent.
func (s Stats) Get(key string) float64 {
	if s == nil {
		return 0
	}
	return s[key]
}
