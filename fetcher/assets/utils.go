package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strconv"
)

var unsafeSegment = regexp.MustCompile(`[^a-zA-Z0-9_.-]`)

// sanitizeURLSegment drops everything that can't be part of a path segment.
func sanitizeURLSegment(segment string) string {
	return unsafeSegment.ReplaceAllString(segment, "")
}

// fetchJSON gets the url and decodes the body into target.
func (l *Loader) fetchJSON(ctx context.Context, url string, target any) error {
	resp, err := l.client.Request(ctx, url, http.MethodGet)
	if err != nil {
		return fmt.Errorf("couldn't request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return &ParseError{URL: url, Err: err}
	}
	return nil
}

// lessID orders numeric ids numerically and anything else lexically.
func lessID(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return lessID(keys[i], keys[j]) })
	return keys
}
