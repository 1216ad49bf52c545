package tui

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridpath/internal/grid"
)

func TestNewSSHServerCreatesHostKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "keys", "host_key")
	cfg := SSHServerConfig{
		Address:     "127.0.0.1:0",
		HostKeyPath: keyPath,
		IdleTimeout: time.Minute,
	}

	r := testReplay(t, grid.NewBoard(3, 3), grid.At(0, 0), grid.At(2, 2))
	srv, err := NewSSHServer(cfg, r, testOptions(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), cfg.Address)
	}
	if _, err := os.Stat(keyPath); err != nil {
		t.Errorf("host key not written: %v", err)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23235" {
		t.Errorf("Address = %q, want :23235", cfg.Address)
	}
	if cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, want 30m", cfg.IdleTimeout)
	}
}

func TestListenAndServeReturnsBindError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen() failed: %v", err)
	}
	defer busy.Close()

	cfg := SSHServerConfig{
		Address:     busy.Addr().String(),
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
		IdleTimeout: time.Minute,
	}
	r := testReplay(t, grid.NewBoard(2, 2), grid.At(0, 0), grid.At(1, 1))
	srv, err := NewSSHServer(cfg, r, testOptions(), log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if err == nil {
			t.Error("ListenAndServe() on a busy address returned nil, want bind error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() still blocked after the bind failed")
	}
}
