package assets

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"lolatlas/pkg/models/champion"
)

func (l *Loader) championsURL(version string) string {
	return fmt.Sprintf("%s/%s/data/%s/champion.json", l.opts.CDN, version, l.opts.Locale)
}

func (l *Loader) championDetailURL(version, championID string) string {
	return fmt.Sprintf("%s/%s/data/%s/champion/%s.json", l.opts.CDN, version, l.opts.Locale, championID)
}

// ChampionImageBase is the prefix of the champion square images.
func (l *Loader) ChampionImageBase(version string) string {
	return fmt.Sprintf("%s/%s/img/champion/", l.opts.CDN, version)
}

// fetchChampions gets the champion catalog document.
func (l *Loader) fetchChampions(ctx context.Context, version string) (*championDocument, error) {
	var document championDocument
	if err := l.fetchJSON(ctx, l.championsURL(version), &document); err != nil {
		return nil, err
	}
	return &document, nil
}

// GetChampions returns every champion of the version, sorted by name.
func (l *Loader) GetChampions(ctx context.Context, version string) ([]champion.Champion, error) {
	document, err := l.fetchChampions(ctx, version)
	if err != nil {
		return nil, err
	}
	return sortChampions(document.Data), nil
}

// GetChampionDetails returns the full champion, with spells, passive and skins.
func (l *Loader) GetChampionDetails(ctx context.Context, version string, championID string) (*champion.Champion, error) {
	championID = sanitizeURLSegment(championID)
	if championID == "" {
		return nil, ErrInvalidChampionID
	}

	url := l.championDetailURL(version, championID)

	var document championDocument
	if err := l.fetchJSON(ctx, url, &document); err != nil {
		return nil, err
	}

	champ, ok := document.Data[championID]
	if !ok {
		return nil, &ParseError{URL: url, Err: fmt.Errorf("champion %s missing from the document", championID)}
	}
	return &champ, nil
}

// RevalidateChampionDetails fetches the details of many champions with a worker pool.
// Failed champions are logged and left out of the result.
func (l *Loader) RevalidateChampionDetails(ctx context.Context, version string, championIDs []string) map[string]*champion.Champion {
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]*champion.Champion, len(championIDs))
	)

	// Channel for the champion ids.
	ids := make(chan string, len(championIDs))

	// Start workers
	for i := 0; i < l.opts.Workers; i++ {
		go func() {
			for id := range ids {
				champ, err := l.GetChampionDetails(ctx, version, id)
				if err != nil {
					l.logger.Errorf("couldn't get the details of %s: %v", id, err)
				} else {
					mu.Lock()
					results[id] = champ
					mu.Unlock()
				}
				wg.Done()
			}
		}()
	}

	// Enqueue tasks
	for _, id := range championIDs {
		wg.Add(1)
		ids <- id
	}

	// Close the channel and wait for all workers to finish
	close(ids)
	wg.Wait()

	return results
}

func sortChampions(data map[string]champion.Champion) []champion.Champion {
	champions := make([]champion.Champion, 0, len(data))
	for key, champ := range data {
		if champ.ID == "" {
			champ.ID = key
		}
		champions = append(champions, champ)
	}
	sort.Slice(champions, func(i, j int) bool {
		if champions[i].Name == champions[j].Name {
			return champions[i].ID < champions[j].ID
		}
		return champions[i].Name < champions[j].Name
	})
	return champions
}
