package generator

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Alia5/keycodegen/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateSingleKey(t *testing.T) {
	dir := t.TempDir()

	err := New(dir, discardLogger()).Generate(strings.NewReader("#define KEY_ESC 1\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultHeader+"\nif(str == \"key_esc\") return 1;\n", readFile(t, filepath.Join(dir, DefaultStr2CodeFile)))
	assert.Equal(t, DefaultHeader+"\ncase 1: return \"key_esc\";\n", readFile(t, filepath.Join(dir, DefaultCode2StrFile)))
}

func TestGenerateEmptyInput(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, New(dir, discardLogger()).Generate(strings.NewReader("")))

	assert.Equal(t, DefaultHeader+"\n", readFile(t, filepath.Join(dir, DefaultStr2CodeFile)))
	assert.Equal(t, DefaultHeader+"\n", readFile(t, filepath.Join(dir, DefaultCode2StrFile)))
}

func TestGenerateDuplicateCodeEmitsOnce(t *testing.T) {
	dir := t.TempDir()
	input := "#define BTN_MISC 0x100\n#define BTN_0 0x100\n"

	require.NoError(t, New(dir, discardLogger()).Generate(strings.NewReader(input)))

	s2c := readFile(t, filepath.Join(dir, DefaultStr2CodeFile))
	assert.Equal(t, DefaultHeader+"\nif(str == \"btn_0\") return 256;\n", s2c)
	assert.NotContains(t, s2c, "btn_misc")

	c2s := readFile(t, filepath.Join(dir, DefaultCode2StrFile))
	assert.Equal(t, 1, strings.Count(c2s, "case 256:"))
}

func TestGenerateOptions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")

	g := New(dir, discardLogger(),
		WithHeader("// custom header"),
		WithFileNames("s2c.inc", ""),
	)
	require.NoError(t, g.Generate(strings.NewReader("#define BTN_LEFT 0x110\n")))

	assert.Equal(t, "// custom header\nif(str == \"btn_left\") return 272;\n", readFile(t, filepath.Join(dir, "s2c.inc")))
	assert.Equal(t, "// custom header\ncase 272: return \"btn_left\";\n", readFile(t, filepath.Join(dir, DefaultCode2StrFile)))
}

func TestScanMetadata(t *testing.T) {
	md, err := New("", discardLogger()).Scan(strings.NewReader("#define KEY_ESC 1\n#define KEY_CNT (KEY_MAX+1)\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultHeader, md.Header)
	assert.Equal(t, DefaultStr2CodeFile, md.Str2CodeFile)
	assert.Equal(t, DefaultCode2StrFile, md.Code2StrFile)
	assert.Equal(t, 2, md.Keycodes.Lines)
	assert.Equal(t, 1, md.Keycodes.Rejected)
	assert.Len(t, md.Keycodes.Table, 1)
}

func TestScanTraceLogsEntries(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: log.LevelTrace}))

	_, err := New("", logger).Scan(strings.NewReader("#define KEY_ESC 1\n"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "code=1 name=key_esc")
}
