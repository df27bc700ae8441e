package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestSessionConfig(t *testing.T) {
	history := openHistory(t)

	tests := []struct {
		name     string
		history  *storage.Store
		user     string
		wantSlot bool
	}{
		{"with history", history, "alice", true},
		{"other user", history, "bob", true},
		{"without history", nil, "alice", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &SSHServer{
				config: SSHServerConfig{App: AppConfig{
					Runtime: core.RuntimeConfig{ScreenW: 10, ScreenH: 10, TickRate: 30, Seed: 9},
					History: tc.history,
				}},
				logger: log.New(io.Discard),
			}

			cfg := s.sessionConfig(tc.user, 120, 40)

			if cfg.Runtime.ScreenW != 120 || cfg.Runtime.ScreenH != 40 || cfg.Runtime.TickRate != 30 {
				t.Errorf("Runtime = %+v, want the PTY size and template tick rate", cfg.Runtime)
			}
			if cfg.Runtime.Seed != 0 {
				t.Errorf("Seed = %d, sessions should not share a seed", cfg.Runtime.Seed)
			}
			if cfg.Logger == nil || cfg.Logger == s.logger {
				t.Error("each session should get its own logger")
			}

			if !tc.wantSlot {
				if cfg.Best != nil {
					t.Errorf("Best = %v, want nil without history", cfg.Best)
				}
				return
			}

			if cfg.Best == nil {
				t.Fatal("Best should be the user's slot")
			}
			if err := cfg.Best.Save(64); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := tc.history.BestScore("ssh:" + tc.user)
			if err != nil || got != 64 {
				t.Errorf("slot ssh:%s = %d, %v; want 64", tc.user, got, err)
			}
		})
	}
}

func TestListenAndServeReturnsListenError(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("net.Listen: %v", err)
	}
	defer taken.Close()

	server, err := NewSSHServer(SSHServerConfig{
		Address:     taken.Addr().String(),
		HostKeyPath: filepath.Join(t.TempDir(), "host_key"),
		IdleTimeout: time.Minute,
	}, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}

	errs := make(chan error, 1)
	go func() { errs <- server.ListenAndServe() }()

	select {
	case err := <-errs:
		if err == nil {
			t.Error("ListenAndServe should fail when the address is taken")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe kept blocking after the listener failed")
	}
}
