package converters

import (
	"fmt"

	"lolatlas/api/dto"
	"lolatlas/pkg/builder"
	"lolatlas/pkg/models/champion"
)

// ChampionSummary converts a catalog champion.
func ChampionSummary(champ *champion.Champion, imageBase string) dto.ChampionSummary {
	tags := champ.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.ChampionSummary{
		ID:       champ.ID,
		Key:      champ.Key,
		Name:     champ.Name,
		Title:    champ.Title,
		Tags:     tags,
		ImageURL: champ.Image.URL(imageBase),
	}
}

// ChampionDetail converts a detail document champion, filling the spell placeholders.
// The cdn and version build the spell, passive and splash addresses.
func ChampionDetail(champ *champion.Champion, cdn, version string) *dto.ChampionDetail {
	detail := &dto.ChampionDetail{
		ChampionSummary: ChampionSummary(champ, fmt.Sprintf("%s/%s/img/champion/", cdn, version)),
		Blurb:           champ.Blurb,
		Partype:         champ.Partype,
		Stats:           champ.Stats,
		Spells:          make([]dto.Spell, 0, len(champ.Spells)),
		Skins:           Skins(champ, cdn),
	}

	if champ.Passive != nil {
		detail.Passive = &dto.Passive{
			Name:        champ.Passive.Name,
			Description: builder.PlainText(champ.Passive.Description),
			ImageURL:    champ.Passive.Image.URL(fmt.Sprintf("%s/%s/img/passive/", cdn, version)),
		}
	}

	spellBase := fmt.Sprintf("%s/%s/img/spell/", cdn, version)
	for _, spell := range champ.Spells {
		formatted := builder.FormatSpell(spell)
		detail.Spells = append(detail.Spells, dto.Spell{
			ID:          formatted.ID,
			Name:        formatted.Name,
			Description: formatted.Description,
			Tooltip:     formatted.Tooltip,
			MaxRank:     formatted.MaxRank,
			Cooldown:    formatted.CooldownBurn,
			Cost:        formatted.CostBurn,
			Resource:    formatted.Resource,
			ImageURL:    formatted.Image.URL(spellBase),
		})
	}

	return detail
}

// Skins lists the skins of the champion without the default one.
func Skins(champ *champion.Champion, cdn string) []dto.Skin {
	listed := champ.ListedSkins()
	skins := make([]dto.Skin, 0, len(listed))
	for _, skin := range listed {
		skins = append(skins, dto.Skin{
			ID:        skin.ID,
			Num:       skin.Num,
			Name:      skin.Name,
			Chromas:   skin.Chromas,
			SplashURL: skin.SplashURL(cdn, champ.ID),
		})
	}
	return skins
}
