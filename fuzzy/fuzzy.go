// Package fuzzy implements a symmetric-delete (SymSpell) fuzzy index:
// misspelled Roman input maps to the set of WordIds that could plausibly
// have produced it within a configured edit distance.
//
// Adapted from spell/symspell.go, with two changes spec.md requires: the
// index maps directly to WordId sets rather than ranked Suggestion structs
// (ranking is the caller's job — see engine's merge stage), and delete
// variants are generated byte-wise rather than rune-wise, since Roman keys
// are ASCII-only (spec.md §4.3). No true edit-distance verification is
// performed on lookup: false positives are expected and accepted, because
// the engine down-weights this source during merge.
package fuzzy

import (
	"hash/fnv"
	"sort"

	"github.com/sapienskid/akshar-ime/wordstore"
	"github.com/vmihailenco/msgpack/v5"
)

// DefaultMaxEditDistance is the default maximum edit distance D, matching
// spec.md §3's stated default.
const DefaultMaxEditDistance = 2

// Index is a SymSpell fuzzy index from delete-variant hash to WordId set.
type Index struct {
	maxDist int
	buckets map[uint32][]wordstore.WordId
}

// New returns an empty Index using DefaultMaxEditDistance.
func New() *Index {
	return NewWithMaxDistance(DefaultMaxEditDistance)
}

// NewWithMaxDistance returns an empty Index configured for maxDist.
func NewWithMaxDistance(maxDist int) *Index {
	return &Index{maxDist: maxDist, buckets: make(map[uint32][]wordstore.WordId)}
}

// AddWord indexes s (a Roman variant, or a Devanagari canonical form on a
// word's first confirmation) under id: every member of s's delete set gets
// id added to its bucket.
func (idx *Index) AddWord(s string, id wordstore.WordId) {
	for _, variant := range deleteSet(s, idx.maxDist) {
		h := fnvHash(variant)
		idx.buckets[h] = appendUniqueID(idx.buckets[h], id)
	}
}

// Lookup computes input's delete set and unions every WordId found in the
// matching buckets. The result is a candidate set only — it may contain
// false positives, and callers must re-rank or otherwise treat the set as
// approximate.
func (idx *Index) Lookup(input string) []wordstore.WordId {
	if input == "" {
		return nil
	}
	seen := make(map[wordstore.WordId]struct{})
	for _, variant := range deleteSet(input, idx.maxDist) {
		h := fnvHash(variant)
		for _, id := range idx.buckets[h] {
			seen[id] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]wordstore.WordId, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// deleteSet returns { s } union every string reachable from s by deleting
// 1..=dist distinct byte positions, breadth-first, deduplicated. Operated
// byte-wise: safe for ASCII Roman keys, and the Devanagari whole-word
// bucket added on first confirmation is never itself subject to further
// deletes beyond this same byte-wise treatment.
func deleteSet(s string, dist int) []string {
	seen := map[string]struct{}{s: {}}
	result := []string{s}
	if dist <= 0 || s == "" {
		return result
	}

	type item struct {
		word  string
		depth int
	}
	queue := []item{{s, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if len(cur.word) == 0 {
			continue
		}
		for i := 0; i < len(cur.word); i++ {
			del := cur.word[:i] + cur.word[i+1:]
			if _, exists := seen[del]; exists {
				continue
			}
			seen[del] = struct{}{}
			result = append(result, del)
			if cur.depth+1 < dist {
				queue = append(queue, item{del, cur.depth + 1})
			}
		}
	}
	return result
}

func fnvHash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

func appendUniqueID(ids []wordstore.WordId, id wordstore.WordId) []wordstore.WordId {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// wireBucket is the on-disk shape of one bucket entry: buckets is flattened
// to a hash-sorted slice, with ids sorted within each bucket, so repeated
// saves of unchanged state are byte-identical.
type wireBucket struct {
	Hash uint32
	Ids  []wordstore.WordId
}

type wireIndex struct {
	MaxDist int
	Buckets []wireBucket
}

// MarshalMsgpack implements msgpack.Marshaler.
func (idx *Index) MarshalMsgpack() ([]byte, error) {
	wire := wireIndex{MaxDist: idx.maxDist, Buckets: make([]wireBucket, 0, len(idx.buckets))}
	for h, ids := range idx.buckets {
		sorted := append([]wordstore.WordId(nil), ids...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		wire.Buckets = append(wire.Buckets, wireBucket{Hash: h, Ids: sorted})
	}
	sort.Slice(wire.Buckets, func(i, j int) bool { return wire.Buckets[i].Hash < wire.Buckets[j].Hash })
	return msgpack.Marshal(wire)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (idx *Index) UnmarshalMsgpack(data []byte) error {
	var wire wireIndex
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return err
	}
	idx.maxDist = wire.MaxDist
	idx.buckets = make(map[uint32][]wordstore.WordId, len(wire.Buckets))
	for _, b := range wire.Buckets {
		idx.buckets[b.Hash] = b.Ids
	}
	return nil
}
