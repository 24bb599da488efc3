package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test plan:
// 1. Regenerate writes the files and replaces earlier output
// 2. Regenerate reports settings errors
// 3. Run regenerates when the settings file changes and stops on cancel

func writeSettings(t *testing.T, path, author string) {
	t.Helper()
	data := "kind: java\nnamespace: false\nauthor: true\nauthor_text: " + author + "\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
}

func TestWatchCommand_Regenerate(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "sourcegen.yaml")
	outDir := filepath.Join(dir, "out")
	writeSettings(t, settingsPath, "Ada")

	cmd := NewWatchCommand(settingsPath, GenerateOptions{Names: []string{"Foo"}, OutDir: outDir, Date: testDate}, io.Discard, zerolog.Nop())

	// Test: first run creates the file
	report, err := cmd.Regenerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(outDir, "Foo.java")}, report.Written)

	data, err := os.ReadFile(filepath.Join(outDir, "Foo.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "@author Ada")

	// Test: later runs overwrite without asking
	writeSettings(t, settingsPath, "Grace")
	_, err = cmd.Regenerate(context.Background())
	require.NoError(t, err)

	data, err = os.ReadFile(filepath.Join(outDir, "Foo.java"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "@author Grace")
}

func TestWatchCommand_Regenerate_BadSettings(t *testing.T) {
	// Test: a missing settings file is an error
	cmd := NewWatchCommand(filepath.Join(t.TempDir(), "missing.yaml"), GenerateOptions{Names: []string{"Foo"}}, io.Discard, zerolog.Nop())
	_, err := cmd.Regenerate(context.Background())
	assert.Error(t, err)
}

func TestWatchCommand_Run(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping file watcher test in short mode")
	}

	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "sourcegen.yaml")
	outDir := filepath.Join(dir, "out")
	output := filepath.Join(outDir, "Foo.java")
	writeSettings(t, settingsPath, "Ada")

	cmd := NewWatchCommand(settingsPath, GenerateOptions{Names: []string{"Foo"}, OutDir: outDir, Date: testDate}, io.Discard, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cmd.Run(ctx)
	}()

	// Test: the initial generation happens before watching
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(output)
		return err == nil && strings.Contains(string(data), "@author Ada")
	}, 2*time.Second, 20*time.Millisecond)

	// Give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	writeSettings(t, settingsPath, "Grace")

	// Test: a settings change regenerates
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(output)
		return err == nil && strings.Contains(string(data), "@author Grace")
	}, 2*time.Second, 20*time.Millisecond)

	// Test: cancel stops the watcher cleanly
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
