package snapshot

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/c360studio/ontograph/metric"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher reloads the ontology when its source files change. Each reload
// builds a new snapshot from scratch and swaps it into the holder; a reload
// that fails to parse keeps the previous snapshot in place.
type Watcher struct {
	patterns []string
	holder   *Holder
	debounce time.Duration
	logger   *slog.Logger
	metrics  *metric.Metrics

	fsw  *fsnotify.Watcher
	done chan struct{}
}

// NewWatcher creates a watcher over the same patterns the holder's snapshot
// was loaded from. Metrics may be nil.
func NewWatcher(patterns []string, holder *Holder, debounce time.Duration, logger *slog.Logger, metrics *metric.Metrics) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		patterns: patterns,
		holder:   holder,
		debounce: debounce,
		logger:   logger,
		metrics:  metrics,
	}
}

// Start begins watching. Directories of the current snapshot's sources are
// watched rather than the files themselves, so editors that replace files
// on save are still observed.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.fsw = fsw
	w.done = make(chan struct{})

	dirs := make(map[string]bool)
	for _, src := range w.holder.Current().Sources {
		dirs[filepath.Dir(src)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return err
		}
		w.logger.Debug("Watching ontology directory", slog.String("dir", dir))
	}

	go w.run(ctx)
	return nil
}

// Stop shuts the watcher down and waits for the event loop to exit.
func (w *Watcher) Stop() {
	if w.fsw != nil {
		_ = w.fsw.Close()
		<-w.done
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Ontology change detected",
				slog.String("path", event.Name),
				slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", slog.String("error", err.Error()))
		case <-fire:
			timer = nil
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Rename) && !event.Op.Has(fsnotify.Remove) {
		return false
	}
	for _, src := range w.holder.Current().Sources {
		if filepath.Clean(event.Name) == filepath.Clean(src) {
			return true
		}
	}
	return false
}

// reload builds a fresh snapshot and swaps it in. On failure the previous
// snapshot stays current.
func (w *Watcher) reload() {
	start := time.Now()
	snap, err := Load(w.patterns)
	if w.metrics != nil {
		var triples, terms int
		if err == nil {
			triples = snap.Store.Len()
			terms = snap.Store.Dict().Len()
		}
		w.metrics.ObserveLoad(triples, terms, time.Since(start), err)
	}
	if err != nil {
		w.logger.Warn("Ontology reload failed, keeping previous snapshot",
			slog.String("error", err.Error()))
		return
	}
	w.holder.Replace(snap)
	w.logger.Info("Ontology reloaded",
		slog.String("snapshot", snap.ID),
		slog.Int("triples", snap.Store.Len()))
}
