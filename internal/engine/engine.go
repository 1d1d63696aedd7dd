package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// Handler reconciles one object record. A handler returning an error marks
// the enclosing request ERROR; an unrecognized kind never reaches a
// handler at all (see Engine.dispatchOne).
type Handler func(ctx context.Context, rec Record) error

// Engine is the event-intake/dispatch loop shared by all four controllers.
// Its only mutable state is the set of already-seen request file names;
// shutdown is signalled by canceling the context passed to Run. No
// package-level globals.
type Engine struct {
	// Name identifies the controller in logs and metrics (e.g.
	// "derivedsecret-controller", "grafana-controller").
	Name string

	// SharedDir is the dispatcher's request/response directory.
	SharedDir string

	// PollInterval is how often the loop scans SharedDir. 200ms is a
	// reasonable default and is overridable per controller: crypto/ingress
	// reconciles tolerate faster polling, Grafana's remote API calls favor
	// a slower one.
	PollInterval time.Duration

	// ResyncInterval, if non-zero, invokes OnResync on a fixed schedule
	// in addition to event-driven dispatch (used for the RBAC controller's
	// periodic full reconcile).
	ResyncInterval time.Duration
	OnResync       func(ctx context.Context) error

	// OnEveryEvent, if set, runs after every dispatched request
	// regardless of kind. The RBAC controller uses this to reconcile all
	// users on any incoming event rather than branching per kind.
	OnEveryEvent func(ctx context.Context) error

	// OnSynchronization, if set, handles a Synchronization event bundle in
	// place of the normal per-kind dispatch. A Synchronization event marks
	// a full pass over every resource the dispatcher knows about, not just
	// the records the bundle happens to carry, so it cannot be routed
	// through Handlers[rec.Kind] like Added/Modified/Deleted are.
	OnSynchronization func(ctx context.Context) error

	// DeleteRequestAfterResponse removes the request file once its
	// response has been written. Optional: some controllers prefer to
	// leave cleanup to the dispatcher. Defaults to false.
	DeleteRequestAfterResponse bool

	Log      logr.Logger
	Handlers map[string]Handler

	RecordDispatch func(kind, result string)
	RecordDuration func(kind string, seconds float64)

	mu        sync.Mutex
	processed map[string]struct{}
}

// Run scans SharedDir until ctx is canceled, dispatching each new request
// file and writing its response. SIGTERM/SIGINT are expected to cancel ctx
// from the caller (see cmd/*/main.go); Run finishes the in-flight request
// before returning.
func (e *Engine) Run(ctx context.Context) error {
	if e.processed == nil {
		e.processed = make(map[string]struct{})
	}
	if e.PollInterval == 0 {
		e.PollInterval = 200 * time.Millisecond
	}

	var resyncTick <-chan time.Time
	if e.ResyncInterval > 0 && e.OnResync != nil {
		ticker := time.NewTicker(e.ResyncInterval)
		defer ticker.Stop()
		resyncTick = ticker.C
	}

	poll := time.NewTicker(e.PollInterval)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resyncTick:
			if err := e.OnResync(ctx); err != nil {
				e.Log.Error(err, "periodic resync failed")
			}
		case <-poll.C:
			if err := e.scanOnce(ctx); err != nil {
				e.Log.Error(err, "scan of shared directory failed")
			}
		}
	}
}

// scanOnce performs one directory scan: new request files are dispatched
// in name-sorted order. Directory listing order is otherwise unspecified;
// sorting gives deterministic behavior without implying any cross-file
// ordering guarantee beyond that.
func (e *Engine) scanOnce(ctx context.Context) error {
	entries, err := os.ReadDir(e.SharedDir)
	if err != nil {
		return fmt.Errorf("reading shared dir: %w", err)
	}

	seen := make(map[string]struct{}, len(entries))
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "request-") || !strings.HasSuffix(name, ".json") {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)

	e.mu.Lock()
	for name := range e.processed {
		if _, ok := seen[name]; !ok {
			delete(e.processed, name)
		}
	}
	e.mu.Unlock()

	for _, name := range names {
		e.mu.Lock()
		_, already := e.processed[name]
		e.mu.Unlock()
		if already {
			continue
		}
		e.handleRequest(ctx, name)
		e.mu.Lock()
		e.processed[name] = struct{}{}
		e.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
	return nil
}

func (e *Engine) handleRequest(ctx context.Context, name string) {
	id := strings.TrimSuffix(strings.TrimPrefix(name, "request-"), ".json")
	reqPath := filepath.Join(e.SharedDir, name)
	respPath := filepath.Join(e.SharedDir, "response-"+id+".txt")

	data, err := os.ReadFile(reqPath)
	if err != nil {
		e.Log.Error(err, "reading request file", "id", id)
		return
	}

	records, err := ParseBundle(data)
	switch {
	case err != nil:
		// Malformed event bundle: warn and acknowledge OK so the
		// dispatcher does not retry forever.
		e.Log.Info("malformed event bundle, acknowledging", "id", id, "error", err.Error())
		e.writeResponse(respPath, "OK\n")
	case len(records) == 0:
		e.Log.Info("empty event bundle, acknowledging", "id", id)
		e.writeResponse(respPath, "OK\n")
	case records[0].EventType == EventSynchronization && e.OnSynchronization != nil:
		if err := e.OnSynchronization(ctx); err != nil {
			e.writeResponse(respPath, fmt.Sprintf("ERROR: %s\n", oneLine(err.Error())))
		} else {
			e.writeResponse(respPath, "OK\n")
		}
	default:
		var firstErr error
		for _, rec := range records {
			if err := e.dispatchOne(ctx, rec); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		if firstErr != nil {
			e.writeResponse(respPath, fmt.Sprintf("ERROR: %s\n", oneLine(firstErr.Error())))
		} else {
			e.writeResponse(respPath, "OK\n")
		}
	}

	if e.OnEveryEvent != nil {
		if err := e.OnEveryEvent(ctx); err != nil {
			e.Log.Error(err, "post-event reconcile failed", "id", id)
		}
	}

	if e.DeleteRequestAfterResponse {
		if err := os.Remove(reqPath); err != nil && !os.IsNotExist(err) {
			e.Log.Error(err, "removing request file", "id", id)
		}
	}
}

func (e *Engine) dispatchOne(ctx context.Context, rec Record) error {
	handler, ok := e.Handlers[rec.Kind]
	if !ok {
		// An unrecognized kind is logged and counted as success so the
		// dispatcher does not retry forever.
		e.Log.Info("unrecognized kind, acknowledging", "kind", rec.Kind, "name", rec.Name)
		return nil
	}

	start := time.Now()
	err := handler(ctx, rec)
	if e.RecordDuration != nil {
		e.RecordDuration(rec.Kind, time.Since(start).Seconds())
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	if e.RecordDispatch != nil {
		e.RecordDispatch(rec.Kind, result)
	}
	return err
}

func (e *Engine) writeResponse(path, body string) {
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		e.Log.Error(err, "writing response file", "path", path)
	}
}

func oneLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}
