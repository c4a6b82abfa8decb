package builder

import (
	"sync"
	"testing"

	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/dataset"
	"lolatlas/pkg/models/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDataset() *dataset.Dataset {
	return &dataset.Dataset{
		Version: "14.1.1",
		Champions: []champion.Champion{
			{ID: "Ahri", Name: "Ahri", Stats: champion.Stats{"hp": 590}},
			{ID: "Garen", Name: "Garen", Stats: champion.Stats{"hp": 690}},
		},
		Items: []item.Item{
			{ID: "1001", Name: "Boots", Plaintext: "Slightly increases Movement Speed", Tags: []string{"Boots"}},
			{ID: "1036", Name: "Long Sword", Description: "<mainText><stats>10 Attack Damage</stats></mainText>", Tags: []string{"Damage"}},
			{ID: "3031", Name: "Infinity Edge", Description: "<stats>Critical Strike</stats>", Tags: []string{"Damage", "CriticalStrike"}},
		},
	}
}

func TestApplyValidates(t *testing.T) {
	state := NewAppState()

	assert.ErrorIs(t, state.Apply(nil), ErrNilDataset)
	assert.ErrorIs(t, state.Apply(&dataset.Dataset{Version: "1"}), ErrEmptyCatalog)
	assert.False(t, state.Loaded())

	require.NoError(t, state.Apply(createTestDataset()))
	assert.True(t, state.Loaded())
	assert.Equal(t, "14.1.1", state.Dataset().Version)
}

func TestLookups(t *testing.T) {
	state := NewAppState()
	require.NoError(t, state.Apply(createTestDataset()))

	champ, ok := state.Champion("Garen")
	require.True(t, ok)
	assert.Equal(t, "Garen", champ.Name)

	_, ok = state.Champion("Teemo")
	assert.False(t, ok)

	it, ok := state.Item("3031")
	require.True(t, ok)
	assert.Equal(t, "Infinity Edge", it.Name)
}

func TestSelectedItemsKeepsOrderAndSkipsUnknown(t *testing.T) {
	state := NewAppState()
	require.NoError(t, state.Apply(createTestDataset()))

	build := NewState(DefaultMaxItems)
	build.SetChampion("Ahri")
	build.AddItem("3031")
	build.AddItem("9999")
	build.AddItem("1001")
	build.AddItem("3031")

	selected := state.SelectedItems(build)
	require.Len(t, selected, 3)
	assert.Equal(t, "3031", selected[0].ID)
	assert.Equal(t, "1001", selected[1].ID)
	assert.Equal(t, "3031", selected[2].ID)

	assert.Equal(t, "Ahri", state.SelectedChampion(build).ID)
	build.SetChampion("")
	assert.Nil(t, state.SelectedChampion(build))
}

func TestSearchItems(t *testing.T) {
	state := NewAppState()
	assert.Empty(t, state.SearchItems("boots", "", 0))

	require.NoError(t, state.Apply(createTestDataset()))

	tests := []struct {
		name     string
		query    string
		tag      string
		limit    int
		expected []string
	}{
		{name: "all", expected: []string{"1001", "1036", "3031"}},
		{name: "byName", query: "BOOTS", expected: []string{"1001"}},
		{name: "byPlaintext", query: "movement speed", expected: []string{"1001"}},
		{name: "byDescription", query: "attack damage", expected: []string{"1036"}},
		{name: "byTag", tag: "Damage", expected: []string{"1036", "3031"}},
		{name: "byTagAndQuery", query: "critical", tag: "Damage", expected: []string{"3031"}},
		{name: "limited", limit: 1, expected: []string{"1001"}},
		{name: "noMatch", query: "nothing like this", expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := state.SearchItems(tt.query, tt.tag, tt.limit)
			ids := make([]string, 0, len(result))
			for _, it := range result {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestItemTags(t *testing.T) {
	state := NewAppState()
	assert.Empty(t, state.ItemTags())

	require.NoError(t, state.Apply(createTestDataset()))
	assert.Equal(t, []string{"Boots", "CriticalStrike", "Damage"}, state.ItemTags())
}

func TestResetClearsDataset(t *testing.T) {
	state := NewAppState()
	require.NoError(t, state.Apply(createTestDataset()))

	state.Reset()

	assert.False(t, state.Loaded())
	assert.Nil(t, state.Dataset())
	_, ok := state.Item("1001")
	assert.False(t, ok)
}

func TestConcurrentApplyAndRead(t *testing.T) {
	state := NewAppState()
	require.NoError(t, state.Apply(createTestDataset()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, state.Apply(createTestDataset()))
		}()
		go func() {
			defer wg.Done()
			_, ok := state.Item("1001")
			assert.True(t, ok)
			assert.Len(t, state.SearchItems("", "", 0), 3)
		}()
	}
	wg.Wait()
}
