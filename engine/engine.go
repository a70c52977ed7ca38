// Package engine orchestrates the suggestion pipeline: it owns a trie, a
// fuzzy index, a context model, and a word store, fans a query out to all
// three candidate sources, merges their results by source precedence, and
// re-ranks by recent confirmation context.
//
// Grounded on validate.Validate's shape: one exported entry point fanning
// out to several subordinate packages and merging their outputs under a
// defined precedence rule.
package engine

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/sapienskid/akshar-ime/context"
	"github.com/sapienskid/akshar-ime/dicttrie"
	"github.com/sapienskid/akshar-ime/fuzzy"
	"github.com/sapienskid/akshar-ime/romanizer"
	"github.com/sapienskid/akshar-ime/wordstore"
)

// source ranks where a candidate came from. Larger values take precedence
// on a Devanagari-string collision, regardless of score.
type source int

const (
	sourceLiteral source = iota
	sourcePrimaryLiteral
	sourceFuzzy
	sourceTrie
)

// PrimaryLiteralScore is the score assigned to the primary transliteration
// of the query prefix.
const PrimaryLiteralScore uint64 = 2

// LiteralBaseScore is the score assigned to every heuristic romanization
// variant of the query prefix.
const LiteralBaseScore uint64 = 1

// Suggestion is one ranked candidate returned by Suggest.
type Suggestion struct {
	Devanagari string
	Score      uint64
}

// candidate is the merge-stage bookkeeping for one Devanagari string.
type candidate struct {
	devanagari string
	score      uint64
	source     source
}

// Engine owns the mutable learned state: trie, fuzzy index, context model,
// and word store. It is not safe for concurrent use and holds no lock —
// callers must serialize Suggest and Learn calls on the same Engine.
type Engine struct {
	store    *wordstore.Store
	trie     *dicttrie.Trie
	fuzzyIdx *fuzzy.Index
	ctx      *context.Model
	path     string
	log      zerolog.Logger
}

// New returns an empty Engine with no backing file. logger may be nil, in
// which case logging is a no-op.
func New(logger *zerolog.Logger) *Engine {
	log := zerolog.Nop()
	if logger != nil {
		log = *logger
	}
	return &Engine{
		store:    wordstore.New(),
		trie:     dicttrie.New(),
		fuzzyIdx: fuzzy.New(),
		ctx:      context.New(),
		log:      log,
	}
}

// Open loads a snapshot from path, remembering path for subsequent Save
// calls. A load failure (missing file, I/O error, or decode error) is
// logged and silently falls back to an empty Engine — path is still
// remembered, so the first successful Save creates the file.
func Open(path string, logger *zerolog.Logger) *Engine {
	e := New(logger)
	e.path = path
	if err := e.Load(path); err != nil {
		e.log.Warn().Str("path", path).Err(err).Msg("akshar-ime: falling back to empty dictionary")
	}
	return e
}

// Suggest returns up to count ranked candidates for prefix, merging the
// trie, the fuzzy index, the primary transliteration, and heuristic
// variants by source precedence (Trie > Fuzzy > PrimaryLiteral > Literal),
// then re-ranking by bigram context and truncating.
func (e *Engine) Suggest(prefix string, count int) []Suggestion {
	if prefix == "" || count <= 0 {
		return nil
	}

	entries := make([]candidate, 0, count*2)
	index := make(map[string]int, count*2)

	upsert := func(dev string, score uint64, src source) {
		if dev == "" {
			return
		}
		if i, ok := index[dev]; ok {
			existing := &entries[i]
			if src > existing.source || (src == existing.source && score > existing.score) {
				existing.score = score
				existing.source = src
			}
			return
		}
		index[dev] = len(entries)
		entries = append(entries, candidate{devanagari: dev, score: score, source: src})
	}

	for _, r := range e.trie.TopK(prefix, count) {
		upsert(e.store.Get(r.WordId).Devanagari, r.Freq, sourceTrie)
	}

	for _, id := range e.fuzzyIdx.Lookup(prefix) {
		freq := e.store.Get(id).Frequency
		score := uint64(0)
		if freq > 0 {
			score = freq - 1
		}
		upsert(e.store.Get(id).Devanagari, score, sourceFuzzy)
	}

	upsert(romanizer.TransliteratePrimary(prefix), PrimaryLiteralScore, sourcePrimaryLiteral)

	for _, v := range romanizer.GenerateCandidates(prefix) {
		upsert(v, LiteralBaseScore, sourceLiteral)
	}

	e.rerankByContext(entries, index)

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score > entries[j].score })
	if len(entries) > count {
		entries = entries[:count]
	}

	out := make([]Suggestion, len(entries))
	for i, c := range entries {
		out[i] = Suggestion{Devanagari: c.devanagari, Score: c.score}
	}
	return out
}

// rerankByContext looks up the WordId of every candidate already known to
// the word store, runs them through the context model, and writes the
// boosted scores back in place. Candidates with no word-store entry (pure
// romanizer output never yet confirmed) are left untouched.
func (e *Engine) rerankByContext(entries []candidate, index map[string]int) {
	owner := make(map[wordstore.WordId]int, len(entries))
	suggestions := make([]context.Suggestion, 0, len(entries))
	for dev, i := range index {
		id, ok := e.store.Lookup(dev)
		if !ok {
			continue
		}
		owner[id] = i
		suggestions = append(suggestions, context.Suggestion{WordId: id, Score: entries[i].score})
	}
	if len(suggestions) == 0 {
		return
	}
	e.ctx.Rerank(suggestions)
	for _, s := range suggestions {
		entries[owner[s.WordId]].score = s.Score
	}
}

// Learn records a confirmed (roman, devanagari) pair: no-op if either
// string is empty. Otherwise updates the word store, trie, fuzzy index, and
// context model in one call; as long as callers serialize calls (see
// Engine), no Suggest observes a partial update.
func (e *Engine) Learn(roman, devanagari string) {
	if roman == "" || devanagari == "" {
		return
	}

	id := e.store.GetOrCreate(devanagari)
	newVariant := e.store.Bump(id, roman)
	if newVariant {
		e.fuzzyIdx.AddWord(roman, id)
		if e.store.IsFirstVariant(id) {
			e.fuzzyIdx.AddWord(devanagari, id)
		}
	}
	e.trie.Insert(roman, id, e.store.Get(id).Frequency)
	e.ctx.AddWord(id)
}
