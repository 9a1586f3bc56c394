package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/alexanderramin/sprintbudget/internal/app"
	"github.com/alexanderramin/sprintbudget/internal/importer"
	"github.com/fsnotify/fsnotify"
)

const DefaultWatchDebounce = 250 * time.Millisecond

// Watcher recomputes the plan of a scenario file every time the file
// changes on disk. The store is never touched.
type Watcher struct {
	path     string
	debounce time.Duration
	req      app.PlanRequest
	logger   *slog.Logger
	onPlan   func(*app.PlanResponse)
	onError  func(error)
}

type WatchOption func(*Watcher)

// WithDebounce sets how long the file has to stay quiet before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

func WithWatchLogger(l *slog.Logger) WatchOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

func WithPlanRequest(req app.PlanRequest) WatchOption {
	return func(w *Watcher) { w.req = req }
}

// WithErrorHandler receives load and validation failures. Without one they
// are logged.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(w *Watcher) { w.onError = fn }
}

func NewWatcher(path string, onPlan func(*app.PlanResponse), opts ...WatchOption) *Watcher {
	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: DefaultWatchDebounce,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		onPlan:   onPlan,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.onError == nil {
		w.onError = func(err error) {
			w.logger.Warn("scenario reload failed", "path", w.path, "error", err)
		}
	}
	return w
}

// Run emits one plan for the current file, then one per burst of changes.
// It blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsw.Close()

	// Editors often save by renaming a temp file over the target, which
	// drops a watch on the file itself.
	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.logger.Info("watching scenario file", "path", w.path, "debounce", w.debounce)

	w.reload()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("scenario watch stopped", "path", w.path)
			return nil

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Remove) {
				w.logger.Warn("scenario file removed", "path", w.path)
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("scenario file changed", "op", ev.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", "error", err)

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	resp, err := PlanFile(w.path, w.req)
	if err != nil {
		w.onError(err)
		return
	}
	w.logger.Info("scenario recomputed",
		"tasks", resp.Summary.TaskCount,
		"total_planned", resp.Summary.TotalPlanned,
	)
	w.onPlan(resp)
}

// PlanFile loads and validates a scenario file and plans it.
func PlanFile(path string, req app.PlanRequest) (*app.PlanResponse, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}
	file, err := importer.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading scenario file: %w", err)
	}
	if errs := importer.Validate(file); len(errs) > 0 {
		return nil, &app.PlanError{Code: app.PlanErrInvalidScenario, Message: formatValidationErrors(errs).Error()}
	}
	sc, _ := importer.Convert(file)
	return BuildPlan(sc, req), nil
}
