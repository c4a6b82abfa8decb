package builder

import (
	"regexp"
	"strconv"

	"lolatlas/pkg/models/champion"
)

var (
	effectPlaceholder   = regexp.MustCompile(`\{\{\s*e(\d+)\s*\}\}`)
	varPlaceholder      = regexp.MustCompile(`\{\{\s*([af])(\d+)\s*\}\}`)
	costPlaceholder     = regexp.MustCompile(`\{\{\s*cost\s*\}\}`)
	cooldownPlaceholder = regexp.MustCompile(`\{\{\s*cooldown\s*\}\}`)
)

// FormatDescription fills the ability placeholders with the spell data.
// Placeholders without matching data are kept as they are.
func FormatDescription(text string, spell *champion.Spell) string {
	if spell == nil || text == "" {
		return text
	}

	text = effectPlaceholder.ReplaceAllStringFunc(text, func(match string) string {
		groups := effectPlaceholder.FindStringSubmatch(match)
		index, err := strconv.Atoi(groups[1])
		if err != nil || index >= len(spell.EffectBurn) || spell.EffectBurn[index] == "" {
			return match
		}
		return spell.EffectBurn[index]
	})

	text = varPlaceholder.ReplaceAllStringFunc(text, func(match string) string {
		groups := varPlaceholder.FindStringSubmatch(match)
		key := groups[1] + groups[2]
		for _, v := range spell.Vars {
			if v.Key == key && len(v.Coeff) > 0 {
				return v.Coeff.String()
			}
		}
		return match
	})

	text = replaceIfSet(text, costPlaceholder, spell.CostBurn)
	text = replaceIfSet(text, cooldownPlaceholder, spell.CooldownBurn)

	return text
}

func replaceIfSet(text string, pattern *regexp.Regexp, value string) string {
	if value == "" {
		return text
	}
	// Literal so a "$" in the value isn't read as a group.
	return pattern.ReplaceAllLiteralString(text, value)
}

// FormatSpell returns a copy of the spell with the description, tooltip and resource filled.
func FormatSpell(spell champion.Spell) champion.Spell {
	spell.Description = FormatDescription(spell.Description, &spell)
	spell.Tooltip = FormatDescription(spell.Tooltip, &spell)
	spell.Resource = FormatDescription(spell.Resource, &spell)
	return spell
}
