package po

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// WriteProperties writes entries as a Java properties file.
//
// Keys and values are escaped the way java.util.Properties.store does. With
// latin1 set, characters that ISO-8859-1 can represent are written as single
// Latin-1 bytes; every other non-ASCII character becomes a \uXXXX escape
// (two escapes for characters outside the BMP).
func WriteProperties(w io.Writer, entries []Entry, latin1 bool) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		var line bytes.Buffer
		escape(&line, e.Key(), true, latin1)
		line.WriteByte('=')
		escape(&line, e.Value(), false, latin1)
		line.WriteByte('\n')
		if _, err := bw.Write(line.Bytes()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func escape(buf *bytes.Buffer, s string, key, latin1 bool) {
	for i, r := range s {
		switch r {
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\f':
			buf.WriteString(`\f`)
		case '=', ':', '#', '!':
			buf.WriteByte('\\')
			buf.WriteRune(r)
		case ' ':
			if key || i == 0 {
				buf.WriteByte('\\')
			}
			buf.WriteByte(' ')
		default:
			switch {
			case r >= 0x20 && r < 0x7f:
				buf.WriteRune(r)
			case latin1 && r > 0x7f:
				if b, ok := charmap.ISO8859_1.EncodeRune(r); ok {
					buf.WriteByte(b)
					continue
				}
				writeUnicodeEscape(buf, r)
			default:
				writeUnicodeEscape(buf, r)
			}
		}
	}
}

func writeUnicodeEscape(buf *bytes.Buffer, r rune) {
	if r > 0xffff {
		hi, lo := utf16.EncodeRune(r)
		fmt.Fprintf(buf, `\u%04X\u%04X`, hi, lo)
		return
	}
	fmt.Fprintf(buf, `\u%04X`, r)
}

// ConvertFile converts the catalog at src into the properties file dst.
func ConvertFile(src, dst string, latin1 bool) (int, error) {
	f, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", filepath.Base(src), err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}
	var buf bytes.Buffer
	if err := WriteProperties(&buf, entries, latin1); err != nil {
		return 0, err
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return len(entries), nil
}

// PropertiesPath maps messages_de.po to <dir>/messages_de.properties. An
// empty dir keeps the catalog's directory.
func PropertiesPath(src, dir string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)) + ".properties"
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, base)
}
