package main

import (
	"context"
	"log"
	"time"

	"lolatlas/fetcher/setup"
	"lolatlas/pkg/config"
)

// Load the env and refresh the cached dataset once.
// Used to warm the cache before the api starts.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	loader, _, closeLoader := setup.NewDefaultLoader(cfg, nil)
	defer closeLoader()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	ds, err := loader.Refresh(ctx)
	if err != nil {
		log.Fatalf("Couldn't fetch the data from Data Dragon to revalidate the dataset cache: %v", err)
	}

	log.Printf("Dataset %s cached: %d champions, %d items", ds.Version, len(ds.Champions), len(ds.Items))
}
