package testutil

import (
	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/image"
	"lolatlas/pkg/models/item"
)

// Version of every fixture document.
const FixtureVersion = "14.1.1"

// FixtureVersions is the versions list, newest first.
func FixtureVersions() []string {
	return []string{FixtureVersion, "14.0.1", "13.24.1"}
}

// FixtureUsableItemIDs are the fixture items surviving the Summoner's Rift filter, ordered by id.
func FixtureUsableItemIDs() []string {
	return []string{"1001", "1036", "3031"}
}

// FixtureChampions is the champion catalog keyed by id, without spells.
func FixtureChampions() map[string]champion.Champion {
	return map[string]champion.Champion{
		"Ahri": {
			ID:    "Ahri",
			Key:   "103",
			Name:  "Ahri",
			Title: "the Nine-Tailed Fox",
			Tags:  []string{"Mage", "Assassin"},
			Image: image.Image{Full: "Ahri.png", Sprite: "champion0.png", Group: "champion"},
			Stats: champion.Stats{
				"hp": 590, "hpperlevel": 104, "armor": 21, "armorperlevel": 4.2,
				"spellblock": 30, "spellblockperlevel": 1.3, "movespeed": 330,
				"attackdamage": 53, "attackdamageperlevel": 3, "attackspeed": 0.668,
			},
		},
		"Annie": {
			ID:    "Annie",
			Key:   "1",
			Name:  "Annie",
			Title: "the Dark Child",
			Tags:  []string{"Mage"},
			Image: image.Image{Full: "Annie.png", Sprite: "champion0.png", Group: "champion"},
			Stats: champion.Stats{
				"hp": 600, "hpperlevel": 90, "armor": 19, "armorperlevel": 4,
				"movespeed": 335, "attackdamage": 50, "attackspeedoffset": 0.08,
			},
		},
		"Garen": {
			ID:    "Garen",
			Key:   "86",
			Name:  "Garen",
			Title: "the Might of Demacia",
			Tags:  []string{"Fighter", "Tank"},
			Image: image.Image{Full: "Garen.png", Sprite: "champion1.png", Group: "champion"},
			Stats: champion.Stats{"hp": 690, "hpperlevel": 98, "attackspeed": 0.625},
		},
	}
}

// FixtureChampionDetail is the detail document entry of a champion.
func FixtureChampionDetail(id string) (champion.Champion, bool) {
	champ, ok := FixtureChampions()[id]
	if !ok {
		return champion.Champion{}, false
	}

	champ.Passive = &champion.Passive{
		Name:        "Essence Theft",
		Description: "Gains a stack of <b>Essence Theft</b> on kills.",
		Image:       image.Image{Full: id + "_P.png"},
	}
	champ.Spells = []champion.Spell{
		{
			ID:           id + "Q",
			Name:         "Orb",
			Description:  "Deals {{ e1 }} magic damage.",
			Tooltip:      "Deals {{ e1 }} (+{{ a1 }}) magic damage. Cost {{ cost }}, cooldown {{ cooldown }}. {{ a9 }}",
			MaxRank:      5,
			CooldownBurn: "7",
			CostBurn:     "55/65/75/85/95",
			EffectBurn:   []string{"", "40/65/90/115/140"},
			Vars:         []champion.SpellVar{{Key: "a1", Link: "spelldamage", Coeff: champion.Coefficient{0.45}}},
			Image:        image.Image{Full: id + "Q.png"},
		},
		{
			ID:           id + "W",
			Name:         "Flame",
			Description:  "Deals {{ e1 }} damage.",
			Tooltip:      "Ratio {{ f1 }}",
			CooldownBurn: "9/8/7/6/5",
			EffectBurn:   []string{"", "80/120/160"},
			Vars:         []champion.SpellVar{{Key: "f1", Link: "attackdamage", Coeff: champion.Coefficient{0.3, 0.35, 0.4}}},
			Image:        image.Image{Full: id + "W.png"},
		},
	}
	champ.Skins = []champion.Skin{
		{ID: champ.Key + "000", Num: 0, Name: "default"},
		{ID: champ.Key + "001", Num: 1, Name: "Dynasty " + champ.Name},
		{ID: champ.Key + "002", Num: 2, Name: "Midnight " + champ.Name, Chromas: true},
	}
	return champ, true
}

func riftOnly() map[string]bool {
	return map[string]bool{"11": true, "12": false}
}

// FixtureItems is the raw item catalog keyed by id.
// Only FixtureUsableItemIDs survive the default filter.
func FixtureItems() map[string]item.Item {
	return map[string]item.Item{
		"1001": {
			Name:        "Boots",
			Description: "<mainText><stats><attention>25</attention> Move Speed</stats></mainText>",
			Plaintext:   "Slightly increases Movement Speed",
			Image:       image.Image{Full: "1001.png"},
			Gold:        item.Gold{Base: 300, Total: 300, Sell: 210, Purchasable: true},
			Tags:        []string{"Boots"},
			Maps:        riftOnly(),
			Stats:       item.Stats{item.FlatMovementSpeedMod: 25},
			Into:        []string{"3006"},
		},
		"1036": {
			Name:        "Long Sword",
			Description: "<mainText><stats><attention>10</attention> Attack Damage</stats></mainText>",
			Image:       image.Image{Full: "1036.png"},
			Gold:        item.Gold{Base: 350, Total: 350, Sell: 245, Purchasable: true},
			Tags:        []string{"Damage", "Lane"},
			Maps:        riftOnly(),
			Stats:       item.Stats{item.FlatPhysicalDamageMod: 10},
			Into:        []string{"3031"},
		},
		"3031": {
			Name:        "Infinity Edge",
			Description: "<mainText><stats><attention>65</attention> Attack Damage<br><attention>25%</attention> Critical Strike Chance</stats></mainText>",
			Image:       image.Image{Full: "3031.png"},
			Gold:        item.Gold{Base: 625, Total: 3400, Sell: 2380, Purchasable: true},
			Tags:        []string{"Damage", "CriticalStrike"},
			Maps:        riftOnly(),
			Stats:       item.Stats{item.FlatPhysicalDamageMod: 65, item.FlatCritChanceMod: 0.25},
			From:        []string{"1036", "1038"},
			Depth:       3,
		},
		"2003": {
			Name:  "Health Potion",
			Image: image.Image{Full: "2003.png"},
			Gold:  item.Gold{Base: 50, Total: 50, Sell: 20, Purchasable: true},
			Tags:  []string{"Consumable"},
			Maps:  riftOnly(),
		},
		"3340": {
			Name:  "Stealth Ward",
			Image: image.Image{Full: "3340.png"},
			Gold:  item.Gold{Purchasable: true},
			Tags:  []string{"Trinket", "Vision"},
			Maps:  riftOnly(),
		},
		"1500": {
			Name:  "Penetrating Bullets",
			Image: image.Image{Full: "1500.png"},
			Gold:  item.Gold{Purchasable: false},
			Maps:  riftOnly(),
		},
		"3070": {
			Name: "No Image",
			Gold: item.Gold{Total: 400, Purchasable: true},
			Maps: riftOnly(),
		},
		"3177": {
			Name:  "Guardian's Blade",
			Image: image.Image{Full: "3177.png"},
			Gold:  item.Gold{Total: 950, Purchasable: true},
			Maps:  map[string]bool{"11": false, "12": true},
		},
	}
}
