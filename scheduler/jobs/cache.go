package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"lolatlas/fetcher/setup"
	"lolatlas/pkg/config"
	"lolatlas/pkg/logger"
	"lolatlas/pkg/models/champion"
	"lolatlas/pkg/models/dataset"
	"lolatlas/pkg/storage"
)

// Time given to a whole revalidation run.
const revalidationTimeout = 10 * time.Minute

// DatasetRefresher downloads the latest dataset and rewrites the cache entry.
type DatasetRefresher interface {
	Refresh(ctx context.Context) (*dataset.Dataset, error)
	RevalidateChampionDetails(ctx context.Context, version string, championIDs []string) map[string]*champion.Champion
}

// DetailSaver keeps the revalidated champion details for the api.
type DetailSaver interface {
	SaveAll(ctx context.Context, version string, details map[string]*champion.Champion) (int, error)
}

// RunLogger is the log of a single run.
type RunLogger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
	Upload(ctx context.Context, bucket storage.ObjectPutter, objectKey string) error
}

// RevalidationDeps are the resources of a run.
// Nil buckets skip the archive and the log upload, a nil detail saver skips the details.
type RevalidationDeps struct {
	Refresher DatasetRefresher
	Details   DetailSaver
	Logger    RunLogger
	Archive   storage.ObjectPutter
	LogBucket storage.ObjectPutter
	Now       func() time.Time
}

// ArchiveKey is where the snapshot of a version is stored.
func ArchiveKey(version string) string {
	return fmt.Sprintf("datasets/%s.json", version)
}

// LogKey is where the log of a run started at the given time is stored.
func LogKey(started time.Time) string {
	return fmt.Sprintf("revalidation/%s.log", started.UTC().Format("2006-01-02T15-04-05"))
}

// RunRevalidation refreshes the cached dataset and archives the snapshot.
// The champion details are fetched and stored too, failures there only get logged.
func RunRevalidation(ctx context.Context, deps *RevalidationDeps) error {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	started := now()
	deps.Logger.Infof("Starting dataset revalidation")

	err := revalidate(ctx, deps)
	if err != nil {
		deps.Logger.Errorf("Dataset revalidation failed: %v", err)
	} else {
		deps.Logger.Infof("Dataset revalidation finished in %s", now().Sub(started))
	}

	if deps.LogBucket != nil {
		if uploadErr := deps.Logger.Upload(ctx, deps.LogBucket, LogKey(started)); uploadErr != nil {
			log.Printf("Couldn't upload the revalidation log: %v", uploadErr)
		}
	}

	return err
}

func revalidate(ctx context.Context, deps *RevalidationDeps) error {
	ds, err := deps.Refresher.Refresh(ctx)
	if err != nil {
		return err
	}
	deps.Logger.Infof("Dataset %s cached: %d champions, %d items", ds.Version, len(ds.Champions), len(ds.Items))

	ids := make([]string, 0, len(ds.Champions))
	for _, champ := range ds.Champions {
		ids = append(ids, champ.ID)
	}
	details := deps.Refresher.RevalidateChampionDetails(ctx, ds.Version, ids)
	if missing := len(ids) - len(details); missing > 0 {
		deps.Logger.Errorf("%d of %d champion details couldn't be fetched", missing, len(ids))
	}
	if deps.Details != nil {
		saved, err := deps.Details.SaveAll(ctx, ds.Version, details)
		if err != nil {
			deps.Logger.Errorf("Couldn't store every champion detail: %v", err)
		}
		deps.Logger.Infof("%d champion details stored for %s", saved, ds.Version)
	}

	if deps.Archive == nil {
		return nil
	}

	raw, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("couldn't encode the snapshot: %w", err)
	}
	if err := deps.Archive.PutObject(ctx, ArchiveKey(ds.Version), bytes.NewReader(raw), "application/json"); err != nil {
		return fmt.Errorf("couldn't archive the snapshot: %w", err)
	}
	deps.Logger.Infof("Snapshot archived as %s", ArchiveKey(ds.Version))
	return nil
}

// optionalBucket returns nil when the bucket isn't configured.
func optionalBucket(cfg *config.Config, name string) storage.ObjectPutter {
	if name == "" {
		return nil
	}
	bucket, err := storage.NewBucket(cfg.Bucket, name)
	if err != nil {
		if !errors.Is(err, storage.ErrBucketDisabled) {
			log.Printf("Bucket %s unavailable: %v", name, err)
		}
		return nil
	}
	return bucket
}

// RevalidateDataset is the scheduled revalidation task.
func RevalidateDataset(cfg *config.Config) error {
	runLogger, err := logger.CreateLogger()
	if err != nil {
		return fmt.Errorf("couldn't create the run logger: %w", err)
	}
	defer runLogger.Close()

	loader, details, closeLoader := setup.NewDefaultLoader(cfg, runLogger)
	defer closeLoader()

	ctx, cancel := context.WithTimeout(context.Background(), revalidationTimeout)
	defer cancel()

	deps := &RevalidationDeps{
		Refresher: loader,
		Logger:    runLogger,
		Archive:   optionalBucket(cfg, cfg.Bucket.ArchiveBucket),
		LogBucket: optionalBucket(cfg, cfg.Bucket.LogBucket),
	}
	if details != nil {
		deps.Details = details
	}
	return RunRevalidation(ctx, deps)
}
