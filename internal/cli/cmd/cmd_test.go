package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/softkeyboard/internal/domain/build"
	"github.com/bnema/softkeyboard/internal/softkeyboard"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SOFTKBD_LOG_LEVEL", "disabled")
	t.Cleanup(func() {
		configDir = ""
		watchPollInterval = 0
		watchFullScreen = false
		watchNoTouch = false
		app = nil
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeScenario(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigCommand_NoFile(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--config-dir", dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "No config file")
	assert.Contains(t, out, "keyboard.poll_interval")
}

func TestConfigInitCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--config-dir", dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote defaults")
	assert.FileExists(t, filepath.Join(dir, "config.toml"))

	out, err = execute(t, "--config-dir", dir, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "500ms")
}

func TestProbeCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "name: typing\nsteps:\n  - show: true\n")

	out, err := execute(t, "--config-dir", dir, "probe", path)
	require.NoError(t, err)
	assert.Contains(t, out, "typing")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "240px")
}

func TestWatchCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "name: typing\nsteps:\n  - show: true\n  - hide: true\n")

	out, err := execute(t, "--config-dir", dir, "watch", path, "--poll-interval", "100ms", "--fullscreen")
	require.NoError(t, err)
	assert.Contains(t, out, "polling every 100ms")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "#4")
	assert.Contains(t, out, "hidden")
}

func TestWatchCommand_RejectsShortInterval(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "--config-dir", dir, "watch", "--poll-interval", (50 * time.Millisecond).String())
	require.ErrorIs(t, err, softkeyboard.ErrInvalidInterval)
}

func TestWatchCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.toml"),
		[]byte("[keyboard]\npoll_interval = \"20ms\"\n"),
		0o600,
	))

	_, err := execute(t, "--config-dir", dir, "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyboard.poll_interval")
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(buildInfoForTest())

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func buildInfoForTest() build.Info {
	return build.Info{Version: "1.2.3", Commit: "abc123", BuildDate: "2026-01-01", GoVersion: "go1.25"}
}
