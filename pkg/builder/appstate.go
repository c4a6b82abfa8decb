package builder

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/dataset"
	"lolatlas/pkg/models/item"
)

// DefaultSearchLimit is the number of items a search returns when no limit is given.
const DefaultSearchLimit = 20

var (
	// ErrNilDataset is returned when applying nothing.
	ErrNilDataset = errors.New("dataset is nil")
	// ErrEmptyCatalog is returned when the dataset has no items.
	ErrEmptyCatalog = errors.New("dataset has no items")
)

// AppState holds the applied dataset and its lookup indexes.
// Readers never see a half applied dataset.
type AppState struct {
	mu        sync.RWMutex
	dataset   *dataset.Dataset
	champions map[string]*champion.Champion
	items     map[string]*item.Item
	// Lowercase text used by the item search, same order as the dataset items.
	searchText []string
}

// NewAppState creates an empty state.
func NewAppState() *AppState {
	return &AppState{}
}

// Apply validates the dataset and replaces the current one.
func (a *AppState) Apply(ds *dataset.Dataset) error {
	if ds == nil {
		return ErrNilDataset
	}
	if len(ds.Items) == 0 {
		return ErrEmptyCatalog
	}

	champions := make(map[string]*champion.Champion, len(ds.Champions))
	for i := range ds.Champions {
		champions[ds.Champions[i].ID] = &ds.Champions[i]
	}

	items := make(map[string]*item.Item, len(ds.Items))
	searchText := make([]string, len(ds.Items))
	for i := range ds.Items {
		it := &ds.Items[i]
		items[it.ID] = it
		searchText[i] = strings.ToLower(strings.Join([]string{it.Name, it.Plaintext, PlainText(it.Description)}, " "))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.dataset = ds
	a.champions = champions
	a.items = items
	a.searchText = searchText
	return nil
}

// Reset drops the applied dataset.
func (a *AppState) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.dataset = nil
	a.champions = nil
	a.items = nil
	a.searchText = nil
}

// Loaded reports whether a dataset was applied.
func (a *AppState) Loaded() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dataset != nil
}

// Dataset returns the applied dataset, nil when none.
// The dataset must be treated as read only.
func (a *AppState) Dataset() *dataset.Dataset {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dataset
}

// Champion finds a champion of the applied dataset.
func (a *AppState) Champion(id string) (*champion.Champion, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	champ, ok := a.champions[id]
	return champ, ok
}

// Item finds an item of the applied dataset.
func (a *AppState) Item(id string) (*item.Item, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	it, ok := a.items[id]
	return it, ok
}

// SelectedItems resolves the items of the build, in order.
// Ids no longer in the dataset are skipped.
func (a *AppState) SelectedItems(state *State) []item.Item {
	a.mu.RLock()
	defer a.mu.RUnlock()

	ids := state.Items()
	selected := make([]item.Item, 0, len(ids))
	for _, id := range ids {
		if it, ok := a.items[id]; ok {
			selected = append(selected, *it)
		}
	}
	return selected
}

// SelectedChampion resolves the champion of the build, nil when none.
func (a *AppState) SelectedChampion(state *State) *champion.Champion {
	champ, ok := a.Champion(state.ChampionID())
	if !ok {
		return nil
	}
	return champ
}

// SearchItems matches the query against name, plaintext and description, ignoring case.
// An empty query matches everything, the tag narrows the result to a category.
func (a *AppState) SearchItems(query, tag string, limit int) []item.Item {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	query = strings.ToLower(strings.TrimSpace(query))

	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.dataset == nil {
		return []item.Item{}
	}

	result := make([]item.Item, 0, min(limit, len(a.dataset.Items)))
	for i := range a.dataset.Items {
		it := &a.dataset.Items[i]
		if tag != "" && !it.HasTag(tag) {
			continue
		}
		if query != "" && !strings.Contains(a.searchText[i], query) {
			continue
		}

		result = append(result, *it)
		if len(result) == limit {
			break
		}
	}
	return result
}

// ItemTags lists the distinct item categories, sorted.
func (a *AppState) ItemTags() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.dataset == nil {
		return []string{}
	}

	seen := make(map[string]struct{})
	for i := range a.dataset.Items {
		for _, tag := range a.dataset.Items[i].Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
