// Package wordstore holds the dense, append-only table of canonical
// Devanagari words and their learned metadata — frequency and the set of
// Roman spellings ever confirmed for them.
//
// A WordId is a dense index into that table: stable for the life of a
// dictionary, never reused, never pointing past the end. dicttrie and fuzzy
// both reference words by WordId rather than holding their own copy of the
// Devanagari string.
package wordstore

import (
	"sort"

	"github.com/vmihailenco/msgpack/v5"
)

// WordId identifies one canonical Devanagari word. Dense and append-only:
// the Nth confirmed word gets id N, and ids are never reassigned or freed.
type WordId uint32

// Metadata is the learned state for one WordId.
type Metadata struct {
	// Devanagari is the canonical form. Immutable once assigned.
	Devanagari string
	// Frequency is the number of times this word has been confirmed.
	// Monotonically non-decreasing.
	Frequency uint64
	// Variants is every Roman spelling ever confirmed for this word.
	Variants map[string]struct{}
}

// Store is a dense, append-only vector of Metadata indexed by WordId, plus
// a reverse lookup by Devanagari string.
//
// Lookup by Devanagari is a linear scan: acceptable at IME dictionary scale
// (thousands of entries), and it keeps the store from needing a second
// index to stay in sync.
type Store struct {
	entries []Metadata
}

// New returns an empty Store.
func New() *Store {
	return &Store{}
}

// Len returns the number of words in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// Get returns the metadata for id. Panics if id is out of range: an
// out-of-range WordId indicates corrupted state, not a user error.
func (s *Store) Get(id WordId) *Metadata {
	if int(id) >= len(s.entries) {
		panic("wordstore: WordId out of range")
	}
	return &s.entries[id]
}

// Lookup returns the WordId for devanagari and true if it has been seen
// before.
func (s *Store) Lookup(devanagari string) (WordId, bool) {
	for i := range s.entries {
		if s.entries[i].Devanagari == devanagari {
			return WordId(i), true
		}
	}
	return 0, false
}

// GetOrCreate returns the WordId for devanagari, creating a fresh zero-
// frequency entry if this is the first time it has been seen.
func (s *Store) GetOrCreate(devanagari string) WordId {
	if id, ok := s.Lookup(devanagari); ok {
		return id
	}
	s.entries = append(s.entries, Metadata{
		Devanagari: devanagari,
		Variants:   make(map[string]struct{}),
	})
	return WordId(len(s.entries) - 1)
}

// confirmIncrement is the amount Bump adds per confirmation. Frequency is
// specified as monotonically non-decreasing by exactly this step; keeping
// it a named constant documents that it is never meant to vary.
const confirmIncrement = 1

// Bump increments id's frequency by the confirmation step and records
// roman among its variants. Returns whether roman was newly added (the
// caller uses this to decide whether to index roman — and, on the very
// first variant ever seen, the Devanagari form too — into the fuzzy
// index).
func (s *Store) Bump(id WordId, roman string) (newVariant bool) {
	m := s.Get(id)
	m.Frequency += confirmIncrement
	if _, exists := m.Variants[roman]; exists {
		return false
	}
	m.Variants[roman] = struct{}{}
	return true
}

// IsFirstVariant reports whether id has exactly one recorded variant. Right
// after a Bump that returned true, this means that Bump added the first
// variant. Learning uses this to decide whether the Devanagari form itself
// must also be indexed into the fuzzy index.
func (s *Store) IsFirstVariant(id WordId) bool {
	return len(s.Get(id).Variants) == 1
}

// wireMetadata is the on-disk shape of Metadata: a msgpack map encodes
// map[string]struct{} awkwardly and non-deterministically, so Variants is
// flattened to a sorted slice for serialization.
type wireMetadata struct {
	Devanagari string
	Frequency  uint64
	Variants   []string
}

// MarshalMsgpack implements msgpack.Marshaler so Store can be embedded
// directly in a snapshot. Variants are sorted so that save is idempotent
// byte-for-byte (map iteration order is otherwise unspecified in Go).
func (s *Store) MarshalMsgpack() ([]byte, error) {
	wire := make([]wireMetadata, len(s.entries))
	for i, m := range s.entries {
		variants := make([]string, 0, len(m.Variants))
		for v := range m.Variants {
			variants = append(variants, v)
		}
		sort.Strings(variants)
		wire[i] = wireMetadata{Devanagari: m.Devanagari, Frequency: m.Frequency, Variants: variants}
	}
	return msgpack.Marshal(wire)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler, the inverse of
// MarshalMsgpack.
func (s *Store) UnmarshalMsgpack(data []byte) error {
	var wire []wireMetadata
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return err
	}
	entries := make([]Metadata, len(wire))
	for i, w := range wire {
		variants := make(map[string]struct{}, len(w.Variants))
		for _, v := range w.Variants {
			variants[v] = struct{}{}
		}
		entries[i] = Metadata{Devanagari: w.Devanagari, Frequency: w.Frequency, Variants: variants}
	}
	s.entries = entries
	return nil
}
