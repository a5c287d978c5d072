/*
Package kanadef reads syllable table definitions.

Definitions are line-oriented UTF-8 text, loosely following the conventions
of TeX pattern files:

	% Hepburn hiragana, comments start with a percent sign
	\message{hiragana}
	\gemination{っ bcdfghjklmpqrstvwxyz}
	\syllables{
	a    あ
	shi  し
	si   し
	kya  きゃ
	-    ー
	}

Each entry line holds a romaji key and its kana. The first key listed for a
kana becomes its preferred romanization. \message names the table,
\gemination gives the small tsu glyph followed by the consonants which
produce it when doubled.
*/
package kanadef

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/romkan"
)

// Reader streams syllable entries from a table definition.
type Reader struct {
	scanner    *bufio.Scanner
	line       int
	identifier string
	glyph      string
	consonants string
}

// LoadTable parses a complete table definition and returns a ready-to-use
// syllable table, including its gemination setup.
func LoadTable(name string, reader io.Reader) (*romkan.Table, error) {
	r := NewReader(reader)
	table, err := romkan.LoadTable(name, r)
	if err != nil {
		return nil, fmt.Errorf("loading table %s: %w", name, err)
	}
	if glyph, consonants := r.Gemination(); glyph != "" {
		if err = table.SetGemination(glyph, consonants); err != nil {
			return nil, fmt.Errorf("loading table %s: %w", name, err)
		}
	}
	return table, nil
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the table name given by \message, if seen so far.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Gemination returns the arguments of \gemination, if seen so far.
func (r *Reader) Gemination() (glyph string, consonants string) {
	return r.glyph, r.consonants
}

// Next returns the next entry as (romaji, kana).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := stripComment(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "}") {
			continue
		}
		if strings.HasPrefix(line, "\\") {
			if err := r.command(line); err != nil {
				return "", "", err
			}
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return "", "", fmt.Errorf("line %d: malformed syllable entry %q", r.line, line)
		}
		return fields[0], fields[1], nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", io.EOF
}

func (r *Reader) command(line string) error {
	name, arg, ok := splitCommand(line)
	if !ok {
		return fmt.Errorf("line %d: malformed command %q", r.line, line)
	}
	switch name {
	case "message":
		r.identifier = arg
	case "gemination":
		fields := strings.Fields(arg)
		switch len(fields) {
		case 1:
			r.glyph, r.consonants = fields[0], ""
		case 2:
			r.glyph, r.consonants = fields[0], fields[1]
		default:
			return fmt.Errorf("line %d: \\gemination needs a glyph and a consonant list", r.line)
		}
	}
	return nil // \syllables and unknown commands carry no data
}

// splitCommand splits `\name{arg}` into name and arg. An opening brace
// without closing brace, as in `\syllables{`, yields an empty arg.
func splitCommand(line string) (string, string, bool) {
	line = line[1:]
	open := strings.IndexByte(line, '{')
	if open <= 0 {
		return "", "", false
	}
	name, arg := line[:open], line[open+1:]
	if end := strings.LastIndexByte(arg, '}'); end >= 0 {
		arg = arg[:end]
	} else if strings.TrimSpace(arg) != "" {
		return "", "", false
	}
	return name, strings.TrimSpace(arg), true
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '%'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
