// Package export renders shopping lists and preference backups and stores
// them as stamped blob artifacts. Jobs run on a single background worker;
// records of every request stay queryable for the API.
package export

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"pantrycore/internal/blob"
	"pantrycore/internal/core"
)

// ErrQueueFull is returned by Enqueue when the job backlog is saturated.
var ErrQueueFull = errors.New("export queue full")

// Format selects what an export job renders.
type Format string

const (
	// FormatText renders the cart as a plain-text shopping list.
	FormatText Format = "text"
	// FormatBackup renders the four preference documents as a JSON bundle.
	FormatBackup Format = "backup"
)

// ParseFormat validates a request-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText:
		return FormatText, nil
	case FormatBackup:
		return FormatBackup, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Status describes the lifecycle stage of an export job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool { return s == StatusSucceeded || s == StatusFailed }

// Artifact describes the stored result of a finished export job.
type Artifact struct {
	Key         string    `json:"key"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Record tracks one export request through its lifecycle.
type Record struct {
	ID          string     `json:"id"`
	Format      Format     `json:"format"`
	Status      Status     `json:"status"`
	Error       string     `json:"error,omitempty"`
	Artifact    *Artifact  `json:"artifact,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (r Record) snapshot() Record {
	dup := r
	if r.Artifact != nil {
		artifact := *r.Artifact
		dup.Artifact = &artifact
	}
	if r.CompletedAt != nil {
		completed := *r.CompletedAt
		dup.CompletedAt = &completed
	}
	return dup
}

// Source provides the state snapshots export jobs render from. *core.Service
// satisfies it.
type Source interface {
	CartByCategory(ctx context.Context) ([]core.CategoryCart, error)
	ExportBundle(ctx context.Context) (core.BackupBundle, error)
}

// Worker executes export jobs asynchronously against a blob store.
type Worker struct {
	source Source
	blobs  blob.Store
	logger core.Logger
	audit  core.AuditRecorder
	loc    *time.Location
	nowFn  func() time.Time

	queue chan string
	mu    sync.RWMutex
	jobs  map[string]*Record
	order []string

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option adjusts worker construction.
type Option func(*Worker)

// WithLogger installs a logger for job lifecycle events.
func WithLogger(l core.Logger) Option {
	return func(w *Worker) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithAuditRecorder installs the sink receiving terminal-state audit entries.
func WithAuditRecorder(a core.AuditRecorder) Option {
	return func(w *Worker) {
		if a != nil {
			w.audit = a
		}
	}
}

// WithTimezone sets the location artifact stamps are rendered in.
func WithTimezone(loc *time.Location) Option {
	return func(w *Worker) {
		if loc != nil {
			w.loc = loc
		}
	}
}

// WithClock overrides the time source. Tests use it to pin stamps.
func WithClock(fn func() time.Time) Option {
	return func(w *Worker) {
		if fn != nil {
			w.nowFn = fn
		}
	}
}

// NewWorker constructs an export worker over the given state source and blob
// store. Stamps default to America/Chicago, matching the filenames the
// original download buttons produced.
func NewWorker(source Source, blobs blob.Store, opts ...Option) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Worker{
		source: source,
		blobs:  blobs,
		loc:    DefaultLocation(),
		nowFn:  time.Now,
		queue:  make(chan string, 32),
		jobs:   make(map[string]*Record),
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// DefaultLocation returns the zone artifact timestamps use when none is
// configured: America/Chicago, or UTC when the zone database is unavailable.
func DefaultLocation() *time.Location {
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		return time.UTC
	}
	return loc
}

// Start begins processing queued jobs.
func (w *Worker) Start() {
	w.wg.Add(1)
	go w.loop()
}

// Stop halts the worker and waits for the in-flight job, if any. Jobs still
// queued stay pending.
func (w *Worker) Stop(ctx context.Context) error {
	w.cancel()
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Worker) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return
		case id := <-w.queue:
			w.process(id)
		}
	}
}

// Enqueue registers an export job and schedules it. The returned record is a
// snapshot in the pending state.
func (w *Worker) Enqueue(ctx context.Context, format Format) (Record, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return Record{}, err
	}

	id := newID()
	now := w.now()
	record := &Record{
		ID:          id,
		Format:      format,
		Status:      StatusPending,
		RequestedAt: now,
		UpdatedAt:   now,
	}

	w.mu.Lock()
	w.jobs[id] = record
	w.order = append(w.order, id)
	pending := record.snapshot()
	w.mu.Unlock()

	select {
	case w.queue <- id:
	default:
		w.mu.Lock()
		delete(w.jobs, id)
		w.order = w.order[:len(w.order)-1]
		w.mu.Unlock()
		return Record{}, ErrQueueFull
	}

	if w.logger != nil {
		w.logger.Debug("export queued", "export_id", id, "format", string(format))
	}
	return pending, nil
}

// Get returns a snapshot of one export record.
func (w *Worker) Get(id string) (Record, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	record, ok := w.jobs[id]
	if !ok {
		return Record{}, false
	}
	return record.snapshot(), true
}

// List returns snapshots of every record in request order.
func (w *Worker) List() []Record {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]Record, 0, len(w.order))
	for _, id := range w.order {
		if record, ok := w.jobs[id]; ok {
			out = append(out, record.snapshot())
		}
	}
	return out
}

func (w *Worker) process(id string) {
	w.mu.Lock()
	record, ok := w.jobs[id]
	if !ok {
		w.mu.Unlock()
		return
	}
	format := record.Format
	record.Status = StatusRunning
	record.UpdatedAt = w.now()
	w.mu.Unlock()

	artifact, err := w.render(format)
	if err != nil {
		w.fail(id, format, err)
		return
	}

	info, err := w.blobs.Put(w.ctx, artifact.key, bytes.NewReader(artifact.payload), blob.PutOptions{
		ContentType: artifact.contentType,
		Metadata:    map[string]string{"format": string(format)},
	})
	if err != nil {
		w.fail(id, format, fmt.Errorf("store artifact: %w", err))
		return
	}

	w.complete(id, format, Artifact{
		Key:         info.Key,
		ContentType: artifact.contentType,
		SizeBytes:   info.Size,
		URL:         info.URL,
		CreatedAt:   info.LastModified,
	})
}

type renderedArtifact struct {
	key         string
	contentType string
	payload     []byte
}

func (w *Worker) render(format Format) (renderedArtifact, error) {
	now := w.now().In(w.loc)
	switch format {
	case FormatText:
		groups, err := w.source.CartByCategory(w.ctx)
		if err != nil {
			return renderedArtifact{}, fmt.Errorf("load cart: %w", err)
		}
		return renderedArtifact{
			key:         fmt.Sprintf("exports/%s/shopping-list.txt", Stamp(now)),
			contentType: "text/plain; charset=utf-8",
			payload:     RenderTextList(groups, now),
		}, nil
	case FormatBackup:
		bundle, err := w.source.ExportBundle(w.ctx)
		if err != nil {
			return renderedArtifact{}, fmt.Errorf("load preference documents: %w", err)
		}
		payload, err := RenderBackup(bundle)
		if err != nil {
			return renderedArtifact{}, fmt.Errorf("encode backup: %w", err)
		}
		return renderedArtifact{
			key:         fmt.Sprintf("backups/grocery_backup_%s.json", Stamp(now)),
			contentType: "application/json",
			payload:     payload,
		}, nil
	default:
		return renderedArtifact{}, fmt.Errorf("unknown export format %q", format)
	}
}

func (w *Worker) complete(id string, format Format, artifact Artifact) {
	now := w.now()
	var requested time.Time
	w.mu.Lock()
	if record, ok := w.jobs[id]; ok {
		requested = record.RequestedAt
		record.Status = StatusSucceeded
		record.Error = ""
		record.Artifact = &artifact
		record.UpdatedAt = now
		record.CompletedAt = &now
	}
	w.mu.Unlock()

	if w.logger != nil {
		w.logger.Info("export succeeded", "export_id", id, "format", string(format), "key", artifact.Key, "size_bytes", artifact.SizeBytes)
	}
	w.recordAudit(id, format, core.AuditStatusSuccess, "", now, now.Sub(requested))
}

func (w *Worker) fail(id string, format Format, jobErr error) {
	now := w.now()
	var requested time.Time
	w.mu.Lock()
	if record, ok := w.jobs[id]; ok {
		requested = record.RequestedAt
		record.Status = StatusFailed
		record.Error = jobErr.Error()
		record.UpdatedAt = now
		record.CompletedAt = &now
	}
	w.mu.Unlock()

	if w.logger != nil {
		w.logger.Error("export failed", "export_id", id, "format", string(format), "error", jobErr)
	}
	w.recordAudit(id, format, core.AuditStatusError, jobErr.Error(), now, now.Sub(requested))
}

func (w *Worker) recordAudit(id string, format Format, status core.AuditStatus, message string, at time.Time, took time.Duration) {
	if w.audit == nil {
		return
	}
	w.audit.Record(w.ctx, core.AuditEntry{
		Operation: "export_" + string(format),
		Entity:    core.EntityState,
		Action:    core.ActionCreate,
		EntityID:  id,
		Status:    status,
		Error:     message,
		Duration:  took,
		Timestamp: at,
	})
}

func (w *Worker) now() time.Time { return w.nowFn().UTC() }

// Stamp renders the artifact timestamp segment, minute resolution.
func Stamp(t time.Time) string { return t.Format("2006-01-02_15-04") }

func newID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err)
	}
	return fmt.Sprintf("%x", b[:])
}
