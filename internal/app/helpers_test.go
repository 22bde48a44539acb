package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/rectgrid/internal/rect"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests;
// every rank logs from its own goroutine.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

type runResult struct {
	verdict rect.GlobalVerdict
	err     error
	out     string
	logs    string
}

// runApp writes a rule file named name into a temp dir and runs the app on it.
func runApp(t *testing.T, name, content string, cfg Config) runResult {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg.RulesPath = path
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	appConfig, err := NewConfig(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	logs := &SafeBuffer{}
	verdict, err := New(&out, logs, appConfig).Run(context.Background())

	t.Cleanup(func() {
		if os.Getenv("RECTGRID_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return runResult{verdict: verdict, err: err, out: out.String(), logs: logs.String()}
}
