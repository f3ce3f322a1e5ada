package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Table maps a key/button code to its lowercased symbolic name.
type Table map[int]string

// Insert stores e, overwriting any name already recorded for e.Code.
// It reports whether an earlier name was replaced.
func (t Table) Insert(e Entry) (replaced bool) {
	_, replaced = t[e.Code]
	t[e.Code] = e.Name
	return replaced
}

// Codes returns the table's codes in ascending order.
func (t Table) Codes() []int {
	codes := make([]int, 0, len(t))
	for c := range t {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	return codes
}

// Entries returns the table contents ordered by code.
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for _, c := range t.Codes() {
		entries = append(entries, Entry{Code: c, Name: t[c]})
	}
	return entries
}

// Result holds a populated Table and counters describing the scanned input.
type Result struct {
	Table Table
	// Lines is the number of input lines read.
	Lines int
	// Rejected counts lines with a KEY_/BTN_ prefix that still failed to parse,
	// e.g. `#define KEY_MIN_INTERESTING KEY_MUTE`.
	Rejected int
	// Replaced counts entries that overwrote an earlier name for the same code.
	Replaced int
}

// ScanKeycodes reads r line by line until EOF and collects every key and
// button definition into a Table. Lines that do not parse are skipped,
// regardless of their length.
func ScanKeycodes(r io.Reader) (*Result, error) {
	result := &Result{Table: Table{}}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header input: %w", err)
		}
		if line == "" && err != nil {
			break
		}
		result.Lines++
		result.add(strings.TrimRight(line, "\r\n"))
		if err != nil {
			break
		}
	}

	return result, nil
}

func (res *Result) add(line string) {
	e, ok := ParseLine(line)
	if !ok {
		if IsQualifying(line) {
			res.Rejected++
		}
		return
	}
	if res.Table.Insert(e) {
		res.Replaced++
	}
}

// ReadTable is ScanKeycodes without the counters.
func ReadTable(r io.Reader) (Table, error) {
	res, err := ScanKeycodes(r)
	if err != nil {
		return nil, err
	}
	return res.Table, nil
}
