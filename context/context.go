// Package context implements a bounded bigram model over confirmed WordIds:
// a sliding window of recent confirmations plus occurrence counts for
// consecutive pairs, used to re-rank candidate suggestions toward whatever
// commonly follows the last confirmed word.
//
// Transliterated from original_source/src/core/context.rs, generalized so
// the re-rank step operates on (WordId, score) pairs supplied by the
// caller rather than owning the scoring scale itself.
package context

import (
	"math"
	"sort"

	"github.com/sapienskid/akshar-ime/wordstore"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultWindowSize is the default number of recent confirmations retained,
// matching spec.md's stated default W=3.
const DefaultWindowSize = 3

// bigramKey is the map key for an ordered WordId pair.
type bigramKey struct {
	prev wordstore.WordId
	cur  wordstore.WordId
}

// Model is a bounded confirmation history plus bigram occurrence counts.
type Model struct {
	windowSize int
	window     []wordstore.WordId
	bigrams    map[bigramKey]uint64
}

// New returns an empty Model using DefaultWindowSize.
func New() *Model {
	return NewWithWindowSize(DefaultWindowSize)
}

// NewWithWindowSize returns an empty Model with a window of size windowSize.
func NewWithWindowSize(windowSize int) *Model {
	return &Model{
		windowSize: windowSize,
		window:     make([]wordstore.WordId, 0, windowSize),
		bigrams:    make(map[bigramKey]uint64),
	}
}

// AddWord records id as the most recently confirmed word: if the window is
// non-empty, bumps the bigram count for (previous back of window, id), then
// pushes id, evicting the oldest entry once the window is at capacity.
func (m *Model) AddWord(id wordstore.WordId) {
	if n := len(m.window); n > 0 {
		prev := m.window[n-1]
		m.bigrams[bigramKey{prev, id}]++
	}
	if len(m.window) == m.windowSize {
		m.window = m.window[1:]
	}
	m.window = append(m.window, id)
}

// Suggestion is one candidate carried through Rerank: a WordId and its
// current merge-stage score.
type Suggestion struct {
	WordId wordstore.WordId
	Score  uint64
}

// Rerank boosts each suggestion whose WordId commonly follows the last
// confirmed word, then sorts descending by score. If the window is empty,
// suggestions are left untouched aside from the sort.
//
// The boost is floor(log2(c) * 10) for a bigram seen c times: additive and
// monotone in c, so a suggestion with bigram evidence never drops below one
// without it, and it never loses to ties purely on order (sort is stable
// only with respect to equal scores, which this boost makes rare).
func (m *Model) Rerank(suggestions []Suggestion) {
	if len(m.window) > 0 {
		prev := m.window[len(m.window)-1]
		for i := range suggestions {
			c := m.bigrams[bigramKey{prev, suggestions[i].WordId}]
			if c > 0 {
				suggestions[i].Score += boost(c)
			}
		}
	}
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
}

// boost computes floor(log2(c) * 10) for a bigram occurrence count c > 0.
func boost(c uint64) uint64 {
	if c == 0 {
		return 0
	}
	return uint64(math.Floor(math.Log2(float64(c)) * 10))
}

// wireModel is the on-disk shape of Model: bigrams is flattened to a slice
// sorted by (prev, cur) so that repeated saves of unchanged state are
// byte-identical (Go map iteration order is unspecified).
type wireBigram struct {
	Prev  wordstore.WordId
	Cur   wordstore.WordId
	Count uint64
}

type wireModel struct {
	WindowSize int
	Window     []wordstore.WordId
	Bigrams    []wireBigram
}

// MarshalMsgpack implements msgpack.Marshaler.
func (m *Model) MarshalMsgpack() ([]byte, error) {
	wire := wireModel{
		WindowSize: m.windowSize,
		Window:     append([]wordstore.WordId(nil), m.window...),
		Bigrams:    make([]wireBigram, 0, len(m.bigrams)),
	}
	for k, count := range m.bigrams {
		wire.Bigrams = append(wire.Bigrams, wireBigram{Prev: k.prev, Cur: k.cur, Count: count})
	}
	sort.Slice(wire.Bigrams, func(i, j int) bool {
		if wire.Bigrams[i].Prev != wire.Bigrams[j].Prev {
			return wire.Bigrams[i].Prev < wire.Bigrams[j].Prev
		}
		return wire.Bigrams[i].Cur < wire.Bigrams[j].Cur
	})
	return msgpack.Marshal(wire)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (m *Model) UnmarshalMsgpack(data []byte) error {
	var wire wireModel
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return err
	}
	m.windowSize = wire.WindowSize
	m.window = wire.Window
	m.bigrams = make(map[bigramKey]uint64, len(wire.Bigrams))
	for _, b := range wire.Bigrams {
		m.bigrams[bigramKey{b.Prev, b.Cur}] = b.Count
	}
	return nil
}
