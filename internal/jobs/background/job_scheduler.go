package background

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"
	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/services"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UploadRetention is how long archived uploads are kept.
const UploadRetention = 90 * 24 * time.Hour

// Importer is the part of the import service the inbox job drives.
type Importer interface {
	ImportBankStatement(ctx context.Context, ownerID uuid.UUID, filename, profile string, data []byte) (*models.ImportResult, error)
	ImportSettlements(ctx context.Context, ownerID uuid.UUID, filename string, data []byte) (*models.ImportResult, error)
	ImportOrders(ctx context.Context, ownerID uuid.UUID, settingsID *uuid.UUID, filename string, data []byte) (*models.ImportResult, error)
}

// JobScheduler runs the inbox import and the upload retention jobs.
type JobScheduler struct {
	scheduler gocron.Scheduler
	importer  Importer
	storage   services.StorageService
	interval  time.Duration
	log       zerolog.Logger
	jobs      map[string]gocron.Job
	mu        sync.RWMutex
}

func NewJobScheduler(importer Importer, storage services.StorageService, inboxInterval time.Duration, log zerolog.Logger) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	js := &JobScheduler{
		scheduler: scheduler,
		importer:  importer,
		storage:   storage,
		interval:  inboxInterval,
		log:       log.With().Str("service", "scheduler").Logger(),
		jobs:      make(map[string]gocron.Job),
	}
	if err := js.registerJobs(); err != nil {
		_ = scheduler.Shutdown()
		return nil, err
	}
	return js, nil
}

func (js *JobScheduler) Start() {
	js.log.Info().Int("jobs", len(js.JobNames())).Msg("Starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	js.log.Info().Msg("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

// JobNames lists the registered jobs.
func (js *JobScheduler) JobNames() []string {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.jobs))
	for name := range js.jobs {
		names = append(names, name)
	}
	return names
}

func (js *JobScheduler) registerJobs() error {
	inboxJob, err := js.scheduler.NewJob(
		gocron.DurationJob(js.interval),
		gocron.NewTask(js.runInbox),
		gocron.WithName("inbox-import"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("create inbox job: %w", err)
	}

	retentionJob, err := js.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(js.runRetention),
		gocron.WithName("upload-retention"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("create retention job: %w", err)
	}

	js.mu.Lock()
	js.jobs["inbox-import"] = inboxJob
	js.jobs["upload-retention"] = retentionJob
	js.mu.Unlock()
	return nil
}

func (js *JobScheduler) runInbox() {
	ctx, cancel := context.WithTimeout(context.Background(), js.interval)
	defer cancel()

	if _, _, err := js.ProcessInbox(ctx); err != nil {
		js.log.Error().Err(err).Msg("Inbox import failed")
	}
}

func (js *JobScheduler) runRetention() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
	defer cancel()

	removed, err := js.storage.RemoveOlderThan(ctx, services.UploadsPrefix, UploadRetention)
	if err != nil {
		js.log.Error().Err(err).Int("removed", removed).Msg("Upload retention failed")
		return
	}
	js.log.Info().Int("removed", removed).Msg("Upload retention completed")
}

// ProcessInbox imports every file waiting in the inbox, one at a time, and
// moves each one to processed/ or failed/. A file that cannot be moved stays
// in the inbox and is retried on the next run.
func (js *JobScheduler) ProcessInbox(ctx context.Context) (processed, failed int, err error) {
	objects, err := js.storage.List(ctx, services.InboxPrefix)
	if err != nil {
		return 0, 0, fmt.Errorf("list inbox: %w", err)
	}

	for _, obj := range objects {
		if err := ctx.Err(); err != nil {
			return processed, failed, err
		}

		log := js.log.With().Str("key", obj.Key).Logger()
		result, importErr := js.importObject(ctx, obj.Key)

		dst := services.Relocate(obj.Key, services.ProcessedPrefix)
		if importErr != nil {
			dst = services.Relocate(obj.Key, services.FailedPrefix)
			log.Warn().Err(importErr).Msg("Inbox file failed to import")
			failed++
		} else {
			log.Info().Str("batch_id", result.BatchID.String()).Int("imported", result.Imported).Msg("Inbox file imported")
			processed++
		}

		if err := js.storage.Move(ctx, obj.Key, dst); err != nil {
			log.Error().Err(err).Str("destination", dst).Msg("Failed to move inbox file")
		}
	}
	return processed, failed, nil
}

func (js *JobScheduler) importObject(ctx context.Context, key string) (*models.ImportResult, error) {
	entry, err := services.ParseInboxKey(key)
	if err != nil {
		return nil, err
	}
	data, err := js.storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	switch entry.Kind {
	case models.ImportKindBank:
		return js.importer.ImportBankStatement(ctx, entry.OwnerID, entry.FileName, entry.Option, data)
	case models.ImportKindSettlements:
		return js.importer.ImportSettlements(ctx, entry.OwnerID, entry.FileName, data)
	case models.ImportKindOrders:
		var settingsID *uuid.UUID
		if entry.Option != "" {
			id, err := uuid.Parse(entry.Option)
			if err != nil {
				return nil, fmt.Errorf("%w: settings id %q", services.ErrInvalidInput, entry.Option)
			}
			settingsID = &id
		}
		return js.importer.ImportOrders(ctx, entry.OwnerID, settingsID, entry.FileName, data)
	}
	return nil, errors.New("unreachable import kind " + entry.Kind)
}
