package services

import "errors"

var (
	// ErrDatasetNotLoaded is returned while the game data wasn't applied yet.
	ErrDatasetNotLoaded = errors.New("game data is not available yet, try again in a few moments")
	// ErrNotFound is returned for an unknown champion, item or build.
	ErrNotFound = errors.New("not found")
)
