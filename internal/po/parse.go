// Package po converts gettext catalogs into Java properties files.
package po

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is one translation unit of a catalog.
type Entry struct {
	Context    string
	ID         string
	Str        string
	References []string
	Flags      []string
	Line       int
}

// Fuzzy reports whether the translation is marked as unreliable.
func (e *Entry) Fuzzy() bool {
	for _, f := range e.Flags {
		if f == "fuzzy" {
			return true
		}
	}
	return false
}

// Key returns the property key: the message context, else the first source
// reference, else the message id.
func (e *Entry) Key() string {
	switch {
	case e.Context != "":
		return e.Context
	case len(e.References) > 0:
		return e.References[0]
	default:
		return e.ID
	}
}

// Value returns the translation, falling back to the message id for empty
// or fuzzy translations.
func (e *Entry) Value() string {
	if e.Str == "" || e.Fuzzy() {
		return e.ID
	}
	return e.Str
}

// Parse reads a catalog. The header entry (empty msgid) and obsolete "#~"
// entries are dropped. Plural forms keep msgid and msgstr[0].
func Parse(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		cur     Entry
		target  *string
		seen    bool
		done    bool
		lineNo  int
	)

	flush := func() {
		if seen && cur.ID != "" {
			entries = append(entries, cur)
		}
		cur = Entry{}
		target = nil
		seen = false
		done = false
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		switch {
		case line == "":
			flush()

		case strings.HasPrefix(line, "#"):
			// A comment after a complete message starts the next entry.
			if done {
				flush()
			}
			switch {
			case strings.HasPrefix(line, "#:"):
				cur.References = append(cur.References, strings.Fields(line[2:])...)
			case strings.HasPrefix(line, "#,"):
				for _, f := range strings.Split(line[2:], ",") {
					if f = strings.TrimSpace(f); f != "" {
						cur.Flags = append(cur.Flags, f)
					}
				}
			}

		case strings.HasPrefix(line, `"`):
			if target == nil {
				return nil, fmt.Errorf("line %d: string without keyword", lineNo)
			}
			s, err := unquote(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			*target += s

		default:
			keyword, rest, _ := strings.Cut(line, " ")
			rest = strings.TrimSpace(rest)

			if (keyword == "msgctxt" || keyword == "msgid") && done {
				flush()
			}
			if !seen {
				cur.Line = lineNo
			}

			var dst *string
			switch keyword {
			case "msgctxt":
				dst = &cur.Context
			case "msgid":
				dst = &cur.ID
			case "msgstr", "msgstr[0]":
				dst = &cur.Str
			case "msgid_plural":
				var ignored string
				dst = &ignored
			default:
				if strings.HasPrefix(keyword, "msgstr[") {
					var ignored string
					dst = &ignored
					break
				}
				return nil, fmt.Errorf("line %d: unknown keyword %q", lineNo, keyword)
			}

			s, err := unquote(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			*dst = s
			// Continuation lines of msgstr[n] (n > 0) and msgid_plural are discarded.
			target = dst
			seen = true
			if strings.HasPrefix(keyword, "msgstr") {
				done = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	flush()
	return entries, nil
}

// unquote decodes one C-style quoted string.
func unquote(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("malformed string %s", s)
	}
	v, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("malformed string %s: %w", s, err)
	}
	return v, nil
}
