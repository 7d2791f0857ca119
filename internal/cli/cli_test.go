package cli

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/nonoconv/internal/imaging"
	"github.com/ironsheep/nonoconv/internal/nonogram"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NONOCONV_LOG_LEVEL", "error")
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := root.Execute()
	return out.String(), err
}

func writeGIF(t *testing.T, path string, w, h int) {
	t.Helper()
	n, err := nonogram.New("p", w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		n.Set(y%w, y, true)
	}
	sheet, err := imaging.RenderSheet(n, imaging.SheetLayout{CellSize: 10, MarginTop: 1, MarginLeft: 1})
	require.NoError(t, err)

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gif.Encode(f, sheet, nil))
}

func TestRecognonoCommand(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "output")
	writeGIF(t, filepath.Join(in, "one.gif"), 5, 5)
	writeGIF(t, filepath.Join(in, "two.gif"), 25, 8)
	require.NoError(t, os.WriteFile(filepath.Join(in, "bad.gif"), []byte("garbage"), 0644))
	reportPath := filepath.Join(t.TempDir(), "stats.yaml")

	stdout, err := run(t, "recognono", "--input", in, "--output", out, "--report", reportPath)
	require.NoError(t, err)

	assert.Contains(t, stdout, "one.gif converted...")
	assert.Contains(t, stdout, "5: 1\n25: 1\n")
	assert.Contains(t, stdout, "2 converted, 1 skipped")
	assert.FileExists(t, filepath.Join(out, "small", "one.nonogram"))
	assert.FileExists(t, filepath.Join(out, "medium", "two.nonogram"))
	assert.FileExists(t, reportPath)
}

func TestRecognonoCommand_FlatDryRun(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "output")
	writeGIF(t, filepath.Join(in, "one.gif"), 5, 5)

	stdout, err := run(t, "recognono", "--input", in, "--output", out, "--dry-run", "--flat")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 converted, 0 skipped")
	assert.NoDirExists(t, out)
}

func TestRecognonoCommand_InvalidPolicy(t *testing.T) {
	_, err := run(t, "recognono", "--input", t.TempDir(), "--policy", "purple")
	require.Error(t, err)
}

func TestPO2PropsCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "de.po")
	require.NoError(t, os.WriteFile(src, []byte("msgid \"Yes\"\nmsgstr \"Ja\"\n"), 0644))

	stdout, err := run(t, "po2props", src, "--output-dir", filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "(1 entries)")

	data, err := os.ReadFile(filepath.Join(dir, "out", "de.properties"))
	require.NoError(t, err)
	assert.Equal(t, "Yes=Ja\n", string(data))
}

func TestPO2PropsCommand_Failure(t *testing.T) {
	_, err := run(t, "po2props", filepath.Join(t.TempDir(), "missing.po"))
	require.Error(t, err)
}

func TestPicrossCommand_EmptyDir(t *testing.T) {
	stdout, err := run(t, "picross", "--input", t.TempDir(), "--output", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "0 converted, 0 skipped")
}

func TestSignals_Catchable(t *testing.T) {
	assert.Contains(t, Signals, os.Interrupt)
	assert.Contains(t, Signals, os.Signal(syscall.SIGTERM))
	assert.NotContains(t, Signals, os.Kill, "SIGKILL cannot be caught")
}
