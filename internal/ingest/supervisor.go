package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kittclouds/memcity/internal/decay"
	"github.com/kittclouds/memcity/internal/extract"
	"github.com/kittclouds/memcity/internal/graph"
	"github.com/kittclouds/memcity/internal/obs"
	"github.com/kittclouds/memcity/internal/snapshot"
)

// Config configures a Supervisor. Zero durations fall back to a 500ms
// debounce and a 5s rediscovery interval, and a nil Decay.HalfLives to
// decay.DefaultConfig(); a zero RebuildOnDelete means deletions do not
// trigger a rebuild.
type Config struct {
	WorkspacePath      string
	DebounceDelay      time.Duration
	RediscoverInterval time.Duration
	RebuildOnDelete    bool
	Lexicons           extract.Lexicons
	Decay              decay.Config
}

func (c Config) withDefaults() Config {
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = 500 * time.Millisecond
	}
	if c.RediscoverInterval <= 0 {
		c.RediscoverInterval = 5 * time.Second
	}
	return c
}

// Supervisor continuously mirrors a workspace directory of memory files
// into a live graph.Store and publishes decayed snapshots. One Supervisor
// owns exactly one graph.Store and one output snapshot channel; there is no
// shared mutable state reachable from outside its own goroutines other than
// the documentTable and the snapshot channel, both of which are safe for
// concurrent use.
type Supervisor struct {
	cfg        Config
	compiled   *extract.Compiled
	docs       *documentTable
	snapshots  chan *snapshot.Snapshot
	generation uint64
	log        *zap.Logger
}

// New validates cfg and compiles its lexicons. A missing workspace
// directory at this point is a fatal condition: the caller should log and
// exit rather than start a Supervisor that can never succeed.
func New(cfg Config) (*Supervisor, error) {
	cfg = cfg.withDefaults()
	if cfg.WorkspacePath == "" {
		return nil, fmt.Errorf("ingest: workspace path is required")
	}
	info, err := os.Stat(cfg.WorkspacePath)
	if err != nil {
		return nil, fmt.Errorf("ingest: cannot open workspace directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ingest: workspace path %q is not a directory", cfg.WorkspacePath)
	}

	compiled, err := extract.Compile(cfg.Lexicons)
	if err != nil {
		return nil, fmt.Errorf("ingest: compiling lexicons: %w", err)
	}
	if cfg.Decay.HalfLives == nil {
		cfg.Decay = decay.DefaultConfig()
	}

	return &Supervisor{
		cfg:       cfg,
		compiled:  compiled,
		docs:      newDocumentTable(),
		snapshots: make(chan *snapshot.Snapshot, 1),
		log:       obs.Named("ingest"),
	}, nil
}

// Snapshots returns the capacity-1, latest-wins channel snapshots are
// published on. A newer snapshot replaces an older one still sitting in the
// buffer; consumers observe a monotonically increasing generation but may
// skip generations.
func (s *Supervisor) Snapshots() <-chan *snapshot.Snapshot {
	return s.snapshots
}

// Run starts the watcher, debouncer, reader, and graph-owner tasks and
// blocks until ctx is cancelled or an unrecoverable error occurs. On
// cancellation, tasks stop in LIFO order; the graph-owner task always
// finishes processing whatever rebuild it is mid-way through (publishing
// happens synchronously within the same loop iteration, so there is no
// separate "final flush" step) before returning.
func (s *Supervisor) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("ingest: creating filesystem watcher: %w", err)
	}
	defer watcher.Close()

	memDir := filepath.Join(s.cfg.WorkspacePath, "memory")
	if err := watcher.Add(s.cfg.WorkspacePath); err != nil {
		s.log.Warn("watch root failed", zap.String("path", s.cfg.WorkspacePath), zap.Error(err))
	}
	if err := watcher.Add(memDir); err != nil {
		s.log.Debug("memory subdirectory not yet present", zap.String("path", memDir))
	}

	events := make(chan pathEvent)
	reads := make(chan readRequest)
	rebuilds := make(chan rebuildMsg, 1)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return s.watchLoop(gctx, watcher, memDir, events) })
	g.Go(func() error { return s.debounceLoop(gctx, events, reads, rebuilds) })
	g.Go(func() error { return s.readLoop(gctx, reads, rebuilds) })
	g.Go(func() error { return s.graphOwnerLoop(gctx, rebuilds) })

	// Prime the pipeline with an initial full build before waiting for the
	// first filesystem event.
	select {
	case rebuilds <- rebuildMsg{}:
	default:
	}

	return g.Wait()
}

func (s *Supervisor) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, memDir string, out chan<- pathEvent) error {
	defer close(out)

	ticker := time.NewTicker(s.cfg.RediscoverInterval)
	defer ticker.Stop()

	memWatched := watcher.Add(memDir) == nil

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !inWatchedSet(s.cfg.WorkspacePath, ev.Name) {
				continue
			}
			pe := pathEvent{
				path:    ev.Name,
				deleted: ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0,
			}
			select {
			case out <- pe:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("watcher error", zap.Error(err))

		case <-ticker.C:
			if _, err := os.Stat(s.cfg.WorkspacePath); err != nil {
				s.log.Warn("workspace directory unreachable, retaining last snapshot", zap.Error(err))
				continue
			}
			if !memWatched {
				if err := watcher.Add(memDir); err == nil {
					memWatched = true
					s.log.Info("memory subdirectory appeared, now watching", zap.String("path", memDir))
					select {
					case out <- pathEvent{path: memDir}:
					case <-ctx.Done():
						return nil
					}
				}
			}
		}
	}
}

func (s *Supervisor) debounceLoop(ctx context.Context, in <-chan pathEvent, out chan<- readRequest, rebuilds chan<- rebuildMsg) error {
	timers := make(map[string]*time.Timer)
	fired := make(chan string)

	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case pe, ok := <-in:
			if !ok {
				return nil
			}
			if pe.deleted {
				if t, ok := timers[pe.path]; ok {
					t.Stop()
					delete(timers, pe.path)
				}
				s.docs.remove(pe.path)
				if s.cfg.RebuildOnDelete {
					triggerRebuild(rebuilds)
				}
				continue
			}

			if t, ok := timers[pe.path]; ok {
				t.Stop()
			}
			path := pe.path
			timers[path] = time.AfterFunc(s.cfg.DebounceDelay, func() {
				select {
				case fired <- path:
				case <-ctx.Done():
				}
			})

		case path := <-fired:
			delete(timers, path)
			select {
			case out <- readRequest{path: path}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

func (s *Supervisor) readLoop(ctx context.Context, in <-chan readRequest, rebuilds chan<- rebuildMsg) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case req, ok := <-in:
			if !ok {
				return nil
			}
			content, err := os.ReadFile(req.path)
			if err != nil {
				if os.IsNotExist(err) {
					s.docs.remove(req.path)
					if s.cfg.RebuildOnDelete {
						triggerRebuild(rebuilds)
					}
					continue
				}
				s.log.Warn("read failed, skipping file for this rebuild", zap.String("path", req.path), zap.Error(err))
				continue
			}
			if s.docs.upsert(req.path, content) {
				triggerRebuild(rebuilds)
			}
		}
	}
}

// triggerRebuild performs a non-blocking send: the channel has capacity 1
// and carries no payload, so a pending trigger already covers any new one.
func triggerRebuild(rebuilds chan<- rebuildMsg) {
	select {
	case rebuilds <- rebuildMsg{}:
	default:
	}
}

func (s *Supervisor) graphOwnerLoop(ctx context.Context, rebuilds <-chan rebuildMsg) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-rebuilds:
			if !ok {
				return nil
			}
			s.rebuildAndPublish()
		}
	}
}

// RebuildStats summarizes one graph-owner rebuild pass: how many files
// contributed, how much of the graph those files touched, and how long the
// pass took. Logged at Info after every rebuild.
type RebuildStats struct {
	FilesRead           int
	FilesSkipped        int
	ParagraphsProcessed int
	OccurrencesObserved int
	EdgesObserved       int
	NodesCreated        int
	EdgesCreated        int
	Duration            time.Duration
}

func (s *Supervisor) rebuildAndPublish() {
	started := time.Now()
	now := started
	paths, err := discoverWatchedSet(s.cfg.WorkspacePath)
	if err != nil {
		s.log.Warn("discovering watched set failed, keeping last snapshot", zap.Error(err))
		return
	}

	store := graph.New()
	var stats RebuildStats

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			stats.FilesSkipped++
			s.log.Warn("skipping unreadable file for this rebuild", zap.String("path", path), zap.Error(err))
			continue
		}
		s.docs.upsert(path, content)

		groups, err := s.compiled.Extract(string(content), path)
		if err != nil {
			// extract.ErrEmptyContent: nothing to contribute from this file.
			continue
		}
		docStats, err := store.BuildDocument(path, toGraphGroups(groups), now)
		if err != nil {
			s.log.Warn("building document into graph failed", zap.String("path", path), zap.Error(err))
			continue
		}
		stats.ParagraphsProcessed += docStats.ParagraphsProcessed
		stats.OccurrencesObserved += docStats.OccurrencesObserved
		stats.EdgesObserved += docStats.EdgesObserved
		stats.FilesRead++
	}

	gen := atomic.AddUint64(&s.generation, 1)
	snap := snapshot.Build(store, s.cfg.Decay, now, gen)

	stats.NodesCreated = store.NodeCount()
	stats.EdgesCreated = store.EdgeCount()
	stats.Duration = time.Since(started)

	s.log.Info("rebuild complete",
		zap.Uint64("generation", gen),
		zap.Int("files_read", stats.FilesRead),
		zap.Int("files_skipped", stats.FilesSkipped),
		zap.Int("paragraphs_processed", stats.ParagraphsProcessed),
		zap.Int("occurrences_observed", stats.OccurrencesObserved),
		zap.Int("edges_observed", stats.EdgesObserved),
		zap.Int("nodes", stats.NodesCreated),
		zap.Int("edges", stats.EdgesCreated),
		zap.Duration("duration", stats.Duration),
	)

	select {
	case <-s.snapshots:
	default:
	}
	s.snapshots <- snap
}

// toGraphGroups adapts extract's ParagraphGroup shape to graph's, which are
// structurally identical but independently typed to avoid an import cycle
// between extract and graph.
func toGraphGroups(groups []extract.ParagraphGroup) []graph.ParagraphGroup {
	out := make([]graph.ParagraphGroup, len(groups))
	for i, g := range groups {
		gg := make(graph.ParagraphGroup, len(g))
		for j, occ := range g {
			gg[j] = graph.Occurrence{Label: occ.Label, Type: occ.Type}
		}
		out[i] = gg
	}
	return out
}
