package po

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalog = `# German translation
msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: de\n"

#: GameMenu.start
msgid "Start game"
msgstr "Spiel starten"

#: GameMenu.quit
#, fuzzy
msgid "Quit"
msgstr "Verlassen"

msgctxt "dialog.title"
msgid "Settings"
msgstr ""
"Einstel"
"lungen"

msgid "Hello\tworld"
msgstr ""

#, c-format
msgid "%d files"
msgid_plural "%d files"
msgstr[0] "%d Datei"
msgstr[1] "%d Dateien"
`

func TestParse(t *testing.T) {
	entries, err := Parse(strings.NewReader(catalog))
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, "GameMenu.start", entries[0].Key())
	assert.Equal(t, "Spiel starten", entries[0].Value())
	assert.Equal(t, 8, entries[0].Line)

	assert.True(t, entries[1].Fuzzy())
	assert.Equal(t, "Quit", entries[1].Value())

	assert.Equal(t, "dialog.title", entries[2].Key())
	assert.Equal(t, "Einstellungen", entries[2].Value())

	assert.Equal(t, "Hello\tworld", entries[3].Key())
	assert.Equal(t, "Hello\tworld", entries[3].Value())

	assert.Equal(t, []string{"c-format"}, entries[4].Flags)
	assert.Equal(t, "%d Datei", entries[4].Value())
}

func TestParse_EntriesWithoutBlankLines(t *testing.T) {
	in := "msgid \"a\"\nmsgstr \"A\"\n#: ref.b\nmsgid \"b\"\nmsgstr \"B\"\nmsgid \"c\"\nmsgstr \"C\"\n"
	entries, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].Key())
	assert.Equal(t, "ref.b", entries[1].Key())
	assert.Equal(t, "C", entries[2].Value())
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"orphan string":   "\"lost\"\n",
		"unknown keyword": "msgfoo \"x\"\n",
		"unterminated":    "msgid \"open\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestWriteProperties(t *testing.T) {
	entries := []Entry{
		{ID: "key with space", Str: " leading space"},
		{Context: "a=b:c", ID: "x", Str: "#not a comment!"},
		{ID: "multi", Str: "line1\nline2\\end"},
		{ID: "umlaut", Str: "Grüße"},
		{ID: "greek", Str: "λ"},
		{ID: "emoji", Str: "😀"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProperties(&buf, entries, false))
	assert.Equal(t, strings.Join([]string{
		`key\ with\ space=\ leading space`,
		`a\=b\:c=\#not a comment\!`,
		`multi=line1\nline2\\end`,
		`umlaut=Gr\u00FC\u00DFe`,
		`greek=\u03BB`,
		`emoji=\uD83D\uDE00`,
	}, "\n")+"\n", buf.String())
}

func TestWriteProperties_Latin1(t *testing.T) {
	entries := []Entry{
		{ID: "umlaut", Str: "Grüße"},
		{ID: "greek", Str: "λ"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProperties(&buf, entries, true))
	want := append([]byte("umlaut=Gr\xfc\xdfe\n"), []byte(`greek=\u03BB`+"\n")...)
	assert.Equal(t, want, buf.Bytes())
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "messages_de.po")
	require.NoError(t, os.WriteFile(src, []byte(catalog), 0644))

	dst := PropertiesPath(src, filepath.Join(dir, "out"))
	assert.Equal(t, filepath.Join(dir, "out", "messages_de.properties"), dst)

	n, err := ConvertFile(src, dst, false)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GameMenu.start=Spiel starten\n")
	assert.Contains(t, string(data), "dialog.title=Einstellungen\n")
}

func TestConvertFile_Missing(t *testing.T) {
	_, err := ConvertFile(filepath.Join(t.TempDir(), "none.po"), filepath.Join(t.TempDir(), "x.properties"), false)
	require.Error(t, err)
}

func TestPropertiesPath_SameDir(t *testing.T) {
	assert.Equal(t, filepath.Join("i18n", "app.properties"), PropertiesPath(filepath.Join("i18n", "app.po"), ""))
}
