package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Tally maps a color to its vote count. Colors keep the order in which the
// backend listed them.
type Tally struct {
	colors []string
	counts map[string]int64
}

type TallyEntry struct {
	Color string
	Count int64
}

func NewTally(entries ...TallyEntry) Tally {
	t := Tally{counts: make(map[string]int64, len(entries))}
	for _, e := range entries {
		t.Set(e.Color, e.Count)
	}
	return t
}

func (t Tally) Len() int {
	return len(t.colors)
}

func (t Tally) Count(color string) (int64, bool) {
	n, ok := t.counts[color]
	return n, ok
}

// Set updates the count of a color. Unknown colors are appended.
func (t *Tally) Set(color string, count int64) {
	if t.counts == nil {
		t.counts = make(map[string]int64)
	}
	if _, ok := t.counts[color]; !ok {
		t.colors = append(t.colors, color)
	}
	t.counts[color] = count
}

func (t Tally) Entries() []TallyEntry {
	entries := make([]TallyEntry, 0, len(t.colors))
	for _, c := range t.colors {
		entries = append(entries, TallyEntry{Color: c, Count: t.counts[c]})
	}
	return entries
}

func (t Tally) Clone() Tally {
	return NewTally(t.Entries()...)
}

// Equal reports whether both tallies hold the same colors, in the same order,
// with the same counts.
func (t Tally) Equal(other Tally) bool {
	if len(t.colors) != len(other.colors) {
		return false
	}
	for i, c := range t.colors {
		if other.colors[i] != c || other.counts[c] != t.counts[c] {
			return false
		}
	}
	return true
}

func (t Tally) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range t.colors {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(t.counts[c], 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts a flat object of non-negative integers and keeps the
// key order of the document.
func (t *Tally) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("tally must be a JSON object")
	}

	parsed := NewTally()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		color, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", tok)
		}

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		num, ok := tok.(json.Number)
		if !ok {
			return fmt.Errorf("count for %q is not a number", color)
		}
		count, err := num.Int64()
		if err != nil {
			return fmt.Errorf("count for %q is not an integer: %w", color, err)
		}
		if count < 0 {
			return fmt.Errorf("count for %q is negative", color)
		}
		parsed.Set(color, count)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after tally object")
	}

	*t = parsed
	return nil
}
