package testutil

import (
	"sort"
	"testing"
	"time"

	"lolatlas/pkg/builder"
	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/dataset"
	"lolatlas/pkg/models/item"
)

// Image bases of the fixture dataset.
const (
	FixtureChampionImageBase = "https://cdn.test/14.1.1/img/champion/"
	FixtureItemImageBase     = "https://cdn.test/14.1.1/img/item/"
)

// FixtureDataset is the dataset the loader builds from the fixtures.
func FixtureDataset() *dataset.Dataset {
	fixtures := FixtureChampions()
	champions := make([]champion.Champion, 0, len(fixtures))
	for _, champ := range fixtures {
		champions = append(champions, champ)
	}
	sort.Slice(champions, func(i, j int) bool { return champions[i].Name < champions[j].Name })

	rawItems := FixtureItems()
	items := make([]item.Item, 0)
	for _, id := range FixtureUsableItemIDs() {
		it := rawItems[id]
		it.ID = id
		items = append(items, it)
	}

	return &dataset.Dataset{
		Version:           FixtureVersion,
		Champions:         champions,
		Items:             items,
		ChampionImageBase: FixtureChampionImageBase,
		ItemImageBase:     FixtureItemImageBase,
		Timestamp:         time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC).UnixMilli(),
		Source:            dataset.SourceAPIFiltered,
	}
}

// NewLoadedState returns an application state with the fixture dataset applied.
func NewLoadedState(t *testing.T) *builder.AppState {
	t.Helper()

	state := builder.NewAppState()
	if err := state.Apply(FixtureDataset()); err != nil {
		t.Fatalf("Failed to apply the fixture dataset: %v", err)
	}
	return state
}
