package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-raycaster/internal/registry"
)

func TestHostKeyPath(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")
	got, err := hostKeyPath(want)
	if err != nil {
		t.Fatalf("hostKeyPath() failed: %v", err)
	}
	if got != want {
		t.Errorf("hostKeyPath() = %q, expected %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("host key directory not created: %v", err)
	}
}

func TestSSHServerServeStops(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, testSession(t, nil), registry.NewCatalog(""))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if srv.base.ScreenshotDir != "" {
		t.Error("remote sessions must not write screenshots")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, expected nil after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
	if srv.Active() != 0 {
		t.Errorf("Active() = %d, expected 0", srv.Active())
	}
}
