package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lolatlas/pkg/models/champion"
)

// ChampionDetailStore keeps the champion details per version, next to the dataset entry.
// The scheduler writes them after each revalidation and the api reads them before fetching.
type ChampionDetailStore struct {
	store Store
}

// NewChampionDetailStore creates the detail store over a store.
func NewChampionDetailStore(store Store) *ChampionDetailStore {
	return &ChampionDetailStore{store: store}
}

// ChampionDetailKey is the key of a champion on a version.
func ChampionDetailKey(version, championID string) string {
	return fmt.Sprintf("champion-detail:%s:%s", version, championID)
}

// Load returns the stored champion, nil without error on a miss.
func (s *ChampionDetailStore) Load(ctx context.Context, version, championID string) (*champion.Champion, error) {
	key := ChampionDetailKey(version, championID)

	raw, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, &CacheError{Key: key, Err: err}
	}
	if raw == "" {
		return nil, nil
	}

	var champ champion.Champion
	if err := json.Unmarshal([]byte(raw), &champ); err != nil {
		return nil, &CacheError{Key: key, Err: err}
	}
	if champ.ID != "" && champ.ID != championID {
		return nil, &CacheError{Key: key, Err: fmt.Errorf("entry belongs to %q", champ.ID)}
	}
	return &champ, nil
}

// Save overwrites the entry of the champion.
func (s *ChampionDetailStore) Save(ctx context.Context, version, championID string, champ *champion.Champion) error {
	key := ChampionDetailKey(version, championID)

	payload, err := json.Marshal(champ)
	if err != nil {
		return &CacheError{Key: key, Err: err}
	}
	if err := s.store.Set(ctx, key, string(payload)); err != nil {
		return &CacheError{Key: key, Err: err}
	}
	return nil
}

// SaveAll writes every champion and returns how many were saved.
// A failed champion doesn't stop the others, the failures are joined.
func (s *ChampionDetailStore) SaveAll(ctx context.Context, version string, details map[string]*champion.Champion) (int, error) {
	var (
		saved int
		errs  []error
	)
	for id, champ := range details {
		if err := s.Save(ctx, version, id, champ); err != nil {
			errs = append(errs, err)
			continue
		}
		saved++
	}
	return saved, errors.Join(errs...)
}
