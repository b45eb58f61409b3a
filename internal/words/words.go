// internal/words/words.go
//
// Dictionary management for the word hunter.
//
// Responsibilities:
//   - Build an immutable, normalized, de-duplicated word set.
//   - Load word lists from spreadsheets, CSV, plain text or a SQLite dictionary.
//   - Fall back to a small embedded Azerbaijani list when nothing is configured.
//
// Constraints:
//   • Every stored word is normalized (see letters.Normalize).
//   • Words shorter than MinLength letters are dropped.
//   • A Dictionary is never mutated after construction; reloads build a new one.

package words

import (
	"encoding/hex"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordhunt/assets"
	"github.com/robalobadob/wordhunt/internal/letters"
)

// MinLength is the shortest word kept by the loader.
const MinLength = 2

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
)

// Dictionary is a read-only set of normalized words.
type Dictionary struct {
	set    map[string]struct{}
	sorted []string
}

// New normalizes entries and keeps the unique ones with at least MinLength letters.
func New(entries []string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		w := letters.Normalize(strings.TrimSpace(e))
		if len([]rune(w)) < MinLength {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.sorted = append(d.sorted, w)
	}
	sort.Strings(d.sorted)
	return d
}

// Default returns the embedded fallback dictionary.
func Default() *Dictionary {
	defaultOnce.Do(func() {
		lines, _ := assets.DefaultWords()
		defaultDict = New(lines)
	})
	return defaultDict
}

// Words returns all words in sorted order. The slice is a copy.
func (d *Dictionary) Words() []string {
	return append([]string(nil), d.sorted...)
}

// Contains reports whether w (after normalization) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[letters.Normalize(w)]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.sorted) }

// Fingerprint is a blake2b-256 digest of the sorted word list.
// Two dictionaries with the same words share a fingerprint.
func (d *Dictionary) Fingerprint() string {
	h, _ := blake2b.New256(nil)
	for _, w := range d.sorted {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Letters returns every letter of every word, with multiplicity, in sorted order.
func (d *Dictionary) Letters() []rune {
	var pool []rune
	for _, w := range d.sorted {
		pool = append(pool, []rune(w)...)
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i] < pool[j] })
	return pool
}
