// Package dicttrie implements a byte-keyed prefix trie over learned Roman
// spellings, augmented with a subtree-max frequency at every node so that
// top-K suggestion lookups can prune whole branches instead of walking
// them.
//
// Transliterated from original_source/src/core/trie.rs, generalized so the
// frequency used for pruning is supplied by the caller (via wordstore) at
// insert time rather than looked up through an embedded metadata store —
// this trie only ever holds WordIds, never Devanagari strings or
// frequencies of its own.
package dicttrie

import (
	"container/heap"
	"sort"

	"github.com/sapienskid/akshar-ime/wordstore"
	"github.com/vmihailenco/msgpack/v5"
)

// node is one byte-transition in the trie. children is keyed by the next
// input byte; nodes are stored in a flat slice and referenced by index so
// the trie can be serialized without pointer-chasing.
type node struct {
	children         map[byte]int
	hasWord          bool
	wordID           wordstore.WordId
	freq             uint64
	maxFreqInSubtree uint64
}

func newNode() node {
	return node{children: make(map[byte]int)}
}

// Trie is a prefix index from Roman byte strings to WordIds, pruned for
// fast descending-frequency top-K lookups.
type Trie struct {
	nodes []node
}

// New returns an empty Trie (a single root node).
func New() *Trie {
	return &Trie{nodes: []node{newNode()}}
}

// Insert ensures the byte path key exists, marks its terminal node with
// wordID and freq, then walks the path root-ward refreshing
// max_freq_in_subtree. The walk stops as soon as a node's recomputed value
// matches what is already stored, since nothing above it can change either.
//
// freq must reflect the word's current total frequency (the caller owns
// that invariant — dicttrie has no visibility into wordstore.Metadata).
// Re-inserting the same (key, wordID) with a freq lower than what was
// previously recorded would leave max_freq_in_subtree stale; frequency is
// specified as monotonically non-decreasing, so this is asserted rather
// than silently tolerated.
func (t *Trie) Insert(key string, id wordstore.WordId, freq uint64) {
	nodeIdx := 0
	path := make([]int, 0, len(key)+1)
	path = append(path, 0)

	for i := 0; i < len(key); i++ {
		b := key[i]
		next, ok := t.nodes[nodeIdx].children[b]
		if !ok {
			next = len(t.nodes)
			t.nodes = append(t.nodes, newNode())
			t.nodes[nodeIdx].children[b] = next
		}
		nodeIdx = next
		path = append(path, nodeIdx)
	}

	term := &t.nodes[nodeIdx]
	if term.hasWord && freq < term.freq {
		panic("dicttrie: frequency decreased for an existing entry; frequency must be monotonically non-decreasing")
	}
	term.hasWord = true
	term.wordID = id
	term.freq = freq

	for i := len(path) - 1; i >= 0; i-- {
		n := &t.nodes[path[i]]
		var maxChild uint64
		for _, childIdx := range n.children {
			if v := t.nodes[childIdx].maxFreqInSubtree; v > maxChild {
				maxChild = v
			}
		}
		newMax := maxChild
		if n.hasWord && n.freq > newMax {
			newMax = n.freq
		}
		if newMax == n.maxFreqInSubtree {
			break
		}
		n.maxFreqInSubtree = newMax
	}
}

// Result is one hit from TopK.
type Result struct {
	WordId wordstore.WordId
	Freq   uint64
}

// TopK returns up to k entries reachable under prefix, sorted by
// descending frequency. Returns nil if any byte of prefix is missing from
// the trie. An empty prefix searches the whole trie.
func (t *Trie) TopK(prefix string, k int) []Result {
	nodeIdx := 0
	for i := 0; i < len(prefix); i++ {
		next, ok := t.nodes[nodeIdx].children[prefix[i]]
		if !ok {
			return nil
		}
		nodeIdx = next
	}

	if k <= 0 {
		return nil
	}

	h := &resultHeap{}
	heap.Init(h)
	t.dfsPruned(nodeIdx, k, h)

	out := make([]Result, len(*h))
	for i := len(*h) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(Result)
	}
	return out
}

// dfsPruned visits node and its children, maintaining a bounded min-heap of
// the best k (freq, WordId) pairs seen so far. A child is only descended
// into if its max_freq_in_subtree exceeds the heap's current minimum —
// once the heap is full, any subtree that cannot possibly beat the worst
// kept candidate is skipped entirely.
func (t *Trie) dfsPruned(nodeIdx int, k int, h *resultHeap) {
	n := &t.nodes[nodeIdx]

	if n.hasWord && n.freq > 0 {
		if h.Len() < k {
			heap.Push(h, Result{WordId: n.wordID, Freq: n.freq})
		} else if n.freq > (*h)[0].Freq {
			heap.Pop(h)
			heap.Push(h, Result{WordId: n.wordID, Freq: n.freq})
		}
	}

	var minInHeap uint64
	if h.Len() == k {
		minInHeap = (*h)[0].Freq
	}

	for _, childIdx := range n.children {
		if t.nodes[childIdx].maxFreqInSubtree > minInHeap {
			t.dfsPruned(childIdx, k, h)
		}
	}
}

// resultHeap is a min-heap on Freq, bounded to size k by the caller.
type resultHeap []Result

func (h resultHeap) Len() int            { return len(h) }
func (h resultHeap) Less(i, j int) bool  { return h[i].Freq < h[j].Freq }
func (h resultHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x interface{}) { *h = append(*h, x.(Result)) }
func (h *resultHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// wireEdge and wireNode are the on-disk shape of node: children is
// flattened to a slice sorted by byte so that repeated saves of unchanged
// state are byte-identical (Go map iteration order is unspecified).
type wireEdge struct {
	Byte  byte
	Index int
}

type wireNode struct {
	Children         []wireEdge
	HasWord          bool
	WordID           wordstore.WordId
	Freq             uint64
	MaxFreqInSubtree uint64
}

// MarshalMsgpack implements msgpack.Marshaler.
func (t *Trie) MarshalMsgpack() ([]byte, error) {
	wire := make([]wireNode, len(t.nodes))
	for i, n := range t.nodes {
		edges := make([]wireEdge, 0, len(n.children))
		for b, idx := range n.children {
			edges = append(edges, wireEdge{Byte: b, Index: idx})
		}
		sort.Slice(edges, func(a, c int) bool { return edges[a].Byte < edges[c].Byte })
		wire[i] = wireNode{
			Children:         edges,
			HasWord:          n.hasWord,
			WordID:           n.wordID,
			Freq:             n.freq,
			MaxFreqInSubtree: n.maxFreqInSubtree,
		}
	}
	return msgpack.Marshal(wire)
}

// UnmarshalMsgpack implements msgpack.Unmarshaler.
func (t *Trie) UnmarshalMsgpack(data []byte) error {
	var wire []wireNode
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return err
	}
	nodes := make([]node, len(wire))
	for i, w := range wire {
		n := newNode()
		for _, e := range w.Children {
			n.children[e.Byte] = e.Index
		}
		n.hasWord = w.HasWord
		n.wordID = w.WordID
		n.freq = w.Freq
		n.maxFreqInSubtree = w.MaxFreqInSubtree
		nodes[i] = n
	}
	t.nodes = nodes
	return nil
}
