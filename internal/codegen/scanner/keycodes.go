package scanner

import (
	"strconv"
	"strings"
)

const definePrefix = "#define "

// qualifyingPrefixes are the #define prefixes that declare a key or button code.
var qualifyingPrefixes = []string{
	definePrefix + "KEY_",
	definePrefix + "BTN_",
}

// Entry is a single key or button code with its lowercased symbolic name.
type Entry struct {
	Code int    `json:"code" yaml:"code" toml:"code"`
	Name string `json:"name" yaml:"name" toml:"name"`
}

// IsQualifying reports whether line declares a key or button code.
func IsQualifying(line string) bool {
	for _, p := range qualifyingPrefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// ParseLine extracts an Entry from a `#define KEY_*` or `#define BTN_*` line.
// ok is false when the line does not qualify, has fewer than two tokens
// after the #define, or when its value is not an integer literal.
// Values are parsed with base auto-detection, so "0x110" yields 272.
// A decimal with a leading zero such as "010" is not a literal.
func ParseLine(line string) (e Entry, ok bool) {
	if !IsQualifying(line) {
		return Entry{}, false
	}

	fields := strings.Fields(line[len(definePrefix):])
	if len(fields) < 2 {
		return Entry{}, false
	}

	if !hasIntLiteralPrefix(fields[1]) {
		return Entry{}, false
	}
	code, err := strconv.ParseInt(fields[1], 0, 0)
	if err != nil {
		return Entry{}, false
	}

	return Entry{Code: int(code), Name: strings.ToLower(fields[0])}, true
}

// hasIntLiteralPrefix rejects what strconv would read as a legacy octal:
// after the sign, a leading 0 must start a 0x/0o/0b prefix or be
// followed only by zeros (and underscores).
func hasIntLiteralPrefix(tok string) bool {
	tok = strings.TrimLeft(tok, "+-")
	if len(tok) < 2 || tok[0] != '0' {
		return true
	}
	switch tok[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return strings.Trim(tok, "0_") == ""
}
