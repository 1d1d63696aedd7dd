package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"
)

func writeRequest(t *testing.T, dir, id, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "request-"+id+".json"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readResponse(t *testing.T, dir, id string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, "response-"+id+".txt"))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func derivedSecretBundle(name string, deleting bool) string {
	deletion := ""
	if deleting {
		deletion = `,"deletionTimestamp":"2024-01-01T00:00:00Z"`
	}
	return `[{"object":{"kind":"DerivedSecret","metadata":{"name":"` + name + `","namespace":"default"` + deletion + `}}}]`
}

func TestEngineDispatchesKnownKind(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "1", derivedSecretBundle("my-secret", false))

	var gotKind, gotName string
	e := &Engine{
		SharedDir:    dir,
		PollInterval: time.Millisecond,
		Log:          testr.New(t),
		Handlers: map[string]Handler{
			"DerivedSecret": func(ctx context.Context, rec Record) error {
				gotKind = rec.Kind
				gotName = rec.Name
				return nil
			},
		},
	}

	if err := e.scanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if gotKind != "DerivedSecret" || gotName != "my-secret" {
		t.Fatalf("handler not invoked with expected record: kind=%q name=%q", gotKind, gotName)
	}

	resp := readResponse(t, dir, "1")
	if resp != "OK\n" {
		t.Fatalf("response = %q, want OK", resp)
	}
}

func TestEngineWritesErrorResponseOnHandlerFailure(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "1", derivedSecretBundle("my-secret", false))

	e := &Engine{
		SharedDir:    dir,
		PollInterval: time.Millisecond,
		Log:          testr.New(t),
		Handlers: map[string]Handler{
			"DerivedSecret": func(ctx context.Context, rec Record) error {
				return errMultilineFailure
			},
		},
	}

	if err := e.scanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	resp := readResponse(t, dir, "1")
	if !strings.HasPrefix(resp, "ERROR: ") {
		t.Fatalf("response = %q, want ERROR prefix", resp)
	}
	if strings.Contains(resp, "\n\nsecond line") {
		t.Fatalf("response retained embedded newlines: %q", resp)
	}
}

func TestEngineAcknowledgesUnrecognizedKind(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "1", `[{"object":{"kind":"SomethingElse","metadata":{"name":"x"}}}]`)

	e := &Engine{
		SharedDir:    dir,
		PollInterval: time.Millisecond,
		Log:          testr.New(t),
		Handlers:     map[string]Handler{},
	}

	if err := e.scanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if resp := readResponse(t, dir, "1"); resp != "OK\n" {
		t.Fatalf("response = %q, want OK", resp)
	}
}

func TestEngineAcknowledgesMalformedBundle(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "1", `not json`)

	e := &Engine{
		SharedDir:    dir,
		PollInterval: time.Millisecond,
		Log:          testr.New(t),
		Handlers:     map[string]Handler{},
	}

	if err := e.scanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}
	if resp := readResponse(t, dir, "1"); resp != "OK\n" {
		t.Fatalf("response = %q, want OK", resp)
	}
}

func TestEngineDoesNotReprocessSameRequest(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "1", derivedSecretBundle("my-secret", false))

	calls := 0
	e := &Engine{
		SharedDir:    dir,
		PollInterval: time.Millisecond,
		Log:          testr.New(t),
		Handlers: map[string]Handler{
			"DerivedSecret": func(ctx context.Context, rec Record) error {
				calls++
				return nil
			},
		},
	}

	if err := e.scanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := e.scanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Fatalf("handler invoked %d times, want 1", calls)
	}
}

func TestEngineDeletesRequestFileWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "1", derivedSecretBundle("my-secret", false))

	e := &Engine{
		SharedDir:                  dir,
		PollInterval:               time.Millisecond,
		DeleteRequestAfterResponse: true,
		Log:                        testr.New(t),
		Handlers: map[string]Handler{
			"DerivedSecret": func(ctx context.Context, rec Record) error { return nil },
		},
	}

	if err := e.scanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(filepath.Join(dir, "request-1.json")); !os.IsNotExist(err) {
		t.Fatalf("expected request file to be removed, stat err = %v", err)
	}
}

func TestEngineOnEveryEventRunsAfterEachDispatch(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "1", derivedSecretBundle("a", false))
	writeRequest(t, dir, "2", derivedSecretBundle("b", false))

	onEveryEventCalls := 0
	e := &Engine{
		SharedDir:    dir,
		PollInterval: time.Millisecond,
		Log:          testr.New(t),
		Handlers: map[string]Handler{
			"DerivedSecret": func(ctx context.Context, rec Record) error { return nil },
		},
		OnEveryEvent: func(ctx context.Context) error {
			onEveryEventCalls++
			return nil
		},
	}

	if err := e.scanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if onEveryEventCalls != 2 {
		t.Fatalf("OnEveryEvent called %d times, want 2 (once per dispatched request)", onEveryEventCalls)
	}
}

func TestEngineRoutesSynchronizationToOnSynchronizationNotPerKindHandler(t *testing.T) {
	dir := t.TempDir()
	writeRequest(t, dir, "1", `[{"type":"Synchronization","object":{"kind":"DerivedSecret","metadata":{"name":"a","namespace":"default"}}}]`)

	handlerCalls := 0
	syncCalls := 0
	e := &Engine{
		SharedDir:    dir,
		PollInterval: time.Millisecond,
		Log:          testr.New(t),
		Handlers: map[string]Handler{
			"DerivedSecret": func(ctx context.Context, rec Record) error {
				handlerCalls++
				return nil
			},
		},
		OnSynchronization: func(ctx context.Context) error {
			syncCalls++
			return nil
		},
	}

	if err := e.scanOnce(context.Background()); err != nil {
		t.Fatal(err)
	}

	if syncCalls != 1 {
		t.Fatalf("OnSynchronization called %d times, want 1", syncCalls)
	}
	if handlerCalls != 0 {
		t.Fatalf("per-kind handler called %d times, want 0 for a Synchronization event", handlerCalls)
	}

	resp := readResponse(t, dir, "1")
	if resp != "OK\n" {
		t.Fatalf("response = %q, want OK", resp)
	}
}

type multilineError struct{}

func (multilineError) Error() string { return "first line\nsecond line" }

var errMultilineFailure = multilineError{}
