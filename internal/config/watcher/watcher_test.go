package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/clipstack/internal/config"
)

func TestReloadOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clipstack.toml")
	if err := os.WriteFile(path, []byte("[history]\ncapacity = 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan config.Config, 1)
	w := New(path, func(cfg config.Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, WithDebounce(10*time.Millisecond))

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[history]\ncapacity = 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.History.Capacity != 99 {
			t.Errorf("reloaded Capacity = %d, want 99", cfg.History.Capacity)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestReloadErrorReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clipstack.toml")
	if err := os.WriteFile(path, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 1)
	w := New(path, nil,
		WithDebounce(10*time.Millisecond),
		WithErrorHandler(func(err error) {
			select {
			case errs <- err:
			default:
			}
		}),
	)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("broken ["), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-errs:
		if err == nil {
			t.Error("nil error reported")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error report")
	}
}

func TestStartTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clipstack.toml")

	w := New(path, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := w.Start(context.Background()); err != ErrAlreadyRunning {
		t.Errorf("second Start err = %v, want ErrAlreadyRunning", err)
	}
}

func TestStopIdempotent(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "c.toml"), nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w.Stop()
	w.Stop()
}
