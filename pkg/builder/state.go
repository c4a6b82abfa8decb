package builder

// DefaultMaxItems is the size of a full inventory.
const DefaultMaxItems = 6

// State is the champion and the ordered item loadout of a build.
// It isn't safe for concurrent use.
type State struct {
	championID string
	items      []string
	max        int
}

// NewState creates an empty build, max below 1 falls back to the default.
func NewState(max int) *State {
	if max < 1 {
		max = DefaultMaxItems
	}
	return &State{
		items: make([]string, 0, max),
		max:   max,
	}
}

// AddItem appends the item, unless the build is full.
// The same item can be added more than once.
func (s *State) AddItem(itemID string) bool {
	if len(s.items) >= s.max {
		return false
	}
	s.items = append(s.items, itemID)
	return true
}

// RemoveItem removes the first occurrence of the item.
func (s *State) RemoveItem(itemID string) bool {
	for i, id := range s.items {
		if id == itemID {
			return s.RemoveItemAt(i)
		}
	}
	return false
}

// RemoveItemAt removes the item on the slot.
func (s *State) RemoveItemAt(index int) bool {
	if index < 0 || index >= len(s.items) {
		return false
	}
	s.items = append(s.items[:index], s.items[index+1:]...)
	return true
}

// Clear empties the items, the champion is kept.
func (s *State) Clear() {
	s.items = s.items[:0]
}

// SetChampion replaces the champion, the items are kept.
func (s *State) SetChampion(championID string) {
	s.championID = championID
}

// Reset drops both the champion and the items.
func (s *State) Reset() {
	s.championID = ""
	s.Clear()
}

// ChampionID returns the selected champion, empty when none.
func (s *State) ChampionID() string {
	return s.championID
}

// Items returns a copy of the selected items.
func (s *State) Items() []string {
	items := make([]string, len(s.items))
	copy(items, s.items)
	return items
}

func (s *State) Len() int {
	return len(s.items)
}

func (s *State) Max() int {
	return s.max
}

func (s *State) Full() bool {
	return len(s.items) >= s.max
}
