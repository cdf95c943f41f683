package queue

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/esyang202423/tripboard/pkg/config"
	"github.com/esyang202423/tripboard/pkg/log"
	"github.com/esyang202423/tripboard/pkg/models"
	"github.com/esyang202423/tripboard/pkg/store"
	"github.com/esyang202423/tripboard/pkg/utils"
)

// Job is one photo attachment waiting to be ingested. The file bytes were
// already read by the HTTP handler; the worker turns them into an inline
// data URI and writes it onto the target activity.
type Job struct {
	DayID      string
	ActivityID string
	Filename   string
	Data       []byte
}

// Worker represents an ingest worker
type Worker struct {
	id     int
	config *config.Config
	store  *store.Store
	logger *log.Logger
	jobs   <-chan Job
	wg     *sync.WaitGroup
}

// Manager manages the ingest workers and the in-memory job queue
type Manager struct {
	config  *config.Config
	store   *store.Store
	logger  *log.Logger
	workers []*Worker
	jobs    chan Job
	once    sync.Once
	wg      sync.WaitGroup
}

// NewManager creates a new ingest manager
func NewManager(cfg *config.Config, st *store.Store, logger *log.Logger) *Manager {
	size := cfg.Ingest.QueueSize
	if size <= 0 {
		size = 16
	}

	return &Manager{
		config: cfg,
		store:  st,
		logger: logger,
		jobs:   make(chan Job, size),
	}
}

// Start starts the ingest workers
func (m *Manager) Start(ctx context.Context) error {
	workerCount := m.config.Ingest.WorkerCount
	if workerCount <= 0 {
		workerCount = 2
	}

	m.logger.WithField("worker_count", workerCount).Info("Starting ingest workers")

	for i := 0; i < workerCount; i++ {
		worker := &Worker{
			id:     i + 1,
			config: m.config,
			store:  m.store,
			logger: m.logger,
			jobs:   m.jobs,
			wg:     &m.wg,
		}

		m.workers = append(m.workers, worker)
		m.wg.Add(1)
		go worker.start(ctx)
	}

	m.logger.Info("Ingest manager started successfully")
	return nil
}

// Stop closes the queue and waits for in-flight jobs to finish
func (m *Manager) Stop() {
	m.logger.Info("Stopping ingest manager...")

	m.once.Do(func() { close(m.jobs) })
	m.wg.Wait()

	m.logger.Info("Ingest manager stopped")
}

// Enqueue hands a photo to the workers. It never blocks the caller: when
// the queue is full the job is dropped and false is returned.
func (m *Manager) Enqueue(job Job) bool {
	select {
	case m.jobs <- job:
		return true
	default:
		m.logger.WithFields(log.Fields{
			"day_id":      job.DayID,
			"activity_id": job.ActivityID,
		}).Warn("Ingest queue full, dropping photo")
		return false
	}
}

// start runs a single worker until the queue closes or the context ends
func (w *Worker) start(ctx context.Context) {
	defer w.wg.Done()

	w.logger.WithField("worker_id", w.id).Info("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.WithField("worker_id", w.id).Info("Worker stopped by context")
			return
		case job, ok := <-w.jobs:
			if !ok {
				w.logger.WithField("worker_id", w.id).Info("Worker stopped")
				return
			}
			w.process(job)
		}
	}
}

// process transcodes one photo and applies it to the activity. Completion
// is a single store update; a target that disappeared in the meantime is
// tolerated the same way the store tolerates any unknown id.
func (w *Worker) process(job Job) {
	if len(job.Data) == 0 {
		w.logger.LogIngest(job.DayID, job.ActivityID, job.Filename, 0, false, "empty payload")
		return
	}

	payload, contentType := w.transcode(job.Data)
	uri := utils.BuildDataURI(contentType, payload)

	found := w.store.UpdateActivity(job.DayID, job.ActivityID, models.ActivityUpdate{
		ImageURL: &uri,
	})
	if !found {
		w.logger.LogIngest(job.DayID, job.ActivityID, job.Filename, len(payload), false, "activity no longer exists")
		return
	}

	w.logger.LogIngest(job.DayID, job.ActivityID, job.Filename, len(payload), true, "")
}

// transcode downscales oversized photos before embedding. Payloads that do
// not decode as images are embedded untouched; the core enforces no format
// allow-list.
func (w *Worker) transcode(data []byte) ([]byte, string) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, ""
	}

	maxWidth := w.config.Ingest.MaxImageWidth
	if maxWidth > 0 && src.Bounds().Dx() > maxWidth {
		src = imaging.Resize(src, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, src)
	case "gif":
		err = gif.Encode(&buf, src, nil)
	default:
		err = jpeg.Encode(&buf, src, &jpeg.Options{Quality: 85})
		format = "jpeg"
	}
	if err != nil {
		return data, ""
	}

	return buf.Bytes(), fmt.Sprintf("image/%s", format)
}
