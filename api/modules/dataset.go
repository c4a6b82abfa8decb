package modules

import (
	"context"
	"fmt"
	"log"
	"time"

	"lolatlas/pkg/models/dataset"

	"github.com/go-co-op/gocron/v2"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// DatasetLoader resolves the dataset on startup, from the cache or Data Dragon.
type DatasetLoader interface {
	Bootstrap(ctx context.Context) (*dataset.Dataset, error)
}

// HealthReporter receives the readiness of the API.
type HealthReporter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}

// The scheduler refreshes the shared cache at 04:00 UTC, the API reloads after it.
var datasetReloadTime = gocron.NewAtTime(4, 30, 0)

// LoadDataset bootstraps and applies the dataset.
// The health reporter switches to serving once the dataset is applied.
// On failure the error is kept so the endpoints can explain why there is no data.
// A dataset already applied keeps being served when a reload fails.
func (m *Module) LoadDataset(ctx context.Context, loader DatasetLoader, health HealthReporter) error {
	if !m.State.Loaded() {
		health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	}

	ds, err := loader.Bootstrap(ctx)
	if err == nil {
		err = m.State.Apply(ds)
	}
	if err != nil {
		m.CatalogService.MarkLoadFailed(err)
		return fmt.Errorf("couldn't load the dataset: %w", err)
	}

	m.CatalogService.MarkLoadFailed(nil)
	health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	log.Printf("Dataset %s applied (%s): %d champions, %d items", ds.Version, ds.Source, len(ds.Champions), len(ds.Items))
	return nil
}

// ScheduleDatasetLoads registers the dataset jobs.
// The first load runs immediately and repeats every retry interval until a dataset is applied.
// Once a day the dataset is loaded again to pick up a new patch.
func (m *Module) ScheduleDatasetLoads(s gocron.Scheduler, loader DatasetLoader, health HealthReporter, retry, timeout time.Duration) error {
	_, err := s.NewJob(
		gocron.DurationJob(retry),
		gocron.NewTask(m.loadMissingDataset, loader, health, timeout),
		gocron.WithName("dataset-bootstrap"),
		gocron.WithTags("dataset"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("couldn't create the dataset bootstrap job: %w", err)
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(datasetReloadTime)),
		gocron.NewTask(m.reloadDataset, loader, health, timeout),
		gocron.WithName("dataset-reload"),
		gocron.WithTags("dataset"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("couldn't create the dataset reload job: %w", err)
	}
	return nil
}

// Nothing to do once a dataset is applied, the daily reload takes over.
func (m *Module) loadMissingDataset(loader DatasetLoader, health HealthReporter, timeout time.Duration) {
	if m.State.Loaded() {
		return
	}
	m.reloadDataset(loader, health, timeout)
}

func (m *Module) reloadDataset(loader DatasetLoader, health HealthReporter, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := m.LoadDataset(ctx, loader, health); err != nil {
		log.Printf("Dataset load failed: %v", err)
	}
}
