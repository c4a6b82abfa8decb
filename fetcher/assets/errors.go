package assets

import (
	"errors"
	"fmt"
)

var (
	errNoVersions = errors.New("no versions available")
	errNoItems    = errors.New("no usable items after filtering")

	// ErrInvalidChampionID is returned when the id has nothing usable as an url segment.
	ErrInvalidChampionID = errors.New("invalid champion id")
)

// FetchError is a non success response from the Data Dragon.
type FetchError struct {
	URL        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// ParseError is a malformed or unexpected document.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("couldn't parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// CacheError is an unreadable or corrupt cache entry.
// It's never surfaced, the loader treats it as a miss.
type CacheError struct {
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("unusable cache entry %s: %v", e.Key, e.Err)
}

func (e *CacheError) Unwrap() error {
	return e.Err
}
