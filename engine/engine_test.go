package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// findSuggestion returns the suggestion for devanagari and whether it was
// present, so scenario tests can assert on both presence and score without
// a nested loop at every call site.
func findSuggestion(suggestions []Suggestion, devanagari string) (Suggestion, bool) {
	for _, s := range suggestions {
		if s.Devanagari == devanagari {
			return s, true
		}
	}
	return Suggestion{}, false
}

func TestSuggestEmptyPrefixReturnsEmpty(t *testing.T) {
	e := New(nil)
	require.Empty(t, e.Suggest("", 5))
}

func TestSuggestZeroCountReturnsEmpty(t *testing.T) {
	e := New(nil)
	e.Learn("ram", "राम")
	require.Empty(t, e.Suggest("ra", 0))
}

func TestSuggestTruncatesToCount(t *testing.T) {
	e := New(nil)
	e.Learn("ka", "क")
	e.Learn("ki", "कि")
	e.Learn("ku", "कु")
	got := e.Suggest("k", 2)
	require.LessOrEqual(t, len(got), 2)
}

func TestSuggestScoresNonIncreasing(t *testing.T) {
	e := New(nil)
	e.Learn("ka", "क")
	e.Learn("ki", "कि")
	e.Learn("ku", "कु")
	got := e.Suggest("k", 10)
	for i := 1; i < len(got); i++ {
		require.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

// TestScenarioFreshConfirmationSurfacesFromTrie is spec.md §8 end-to-end
// scenario 1: confirm (nepal, नेपाल) once, "ne" surfaces नेपाल among the
// results with trie-sourced score >= 1. With frequency 1 it ranks below the
// primary literal ने (score 2).
func TestScenarioFreshConfirmationSurfacesFromTrie(t *testing.T) {
	e := New(nil)
	e.Learn("nepal", "नेपाल")

	got := e.Suggest("ne", 3)
	require.NotEmpty(t, got)
	nepal, ok := findSuggestion(got, "नेपाल")
	require.True(t, ok, "नेपाल should surface as a prefix match for \"ne\"")
	require.GreaterOrEqual(t, nepal.Score, uint64(1))
}

// TestScenarioTriePrecedenceOverLiteral is spec.md §8 end-to-end scenario 2:
// confirm (ma, म) three times then (malai, मलाई) once; querying "ma" ranks
// म first (learned, frequency 3) even though the primary literal for "ma"
// is also म at score 2 — the trie entry wins by source precedence, and
// मलाई still appears in the result set.
func TestScenarioTriePrecedenceOverLiteral(t *testing.T) {
	e := New(nil)
	e.Learn("ma", "म")
	e.Learn("ma", "म")
	e.Learn("ma", "म")
	e.Learn("malai", "मलाई")

	got := e.Suggest("ma", 5)
	require.NotEmpty(t, got)
	require.Equal(t, "म", got[0].Devanagari)

	m, ok := findSuggestion(got, "म")
	require.True(t, ok)
	require.Greater(t, m.Score, PrimaryLiteralScore, "trie-sourced म should outscore a bare literal")

	_, ok = findSuggestion(got, "मलाई")
	require.True(t, ok, "मलाई (frequency 1) should still appear in the result set")
}

// TestScenarioContextBoostsSecondBigramOccurrence is spec.md §8 end-to-end
// scenario 3: the bigram (राम, सीता) is re-rank evidence only when राम is
// the most recently confirmed word at query time (the context model keys
// off the back of its window, not off any earlier entry). After one
// राम-then-सीता confirmation the bigram has been seen once, contributing
// floor(log2(1)*10) = 0; after a second such round it has been seen twice,
// contributing floor(log2(2)*10) = 10. सीता's own trie-sourced frequency
// (1, then 2) advances alongside the bigram count each round, so the
// boost is checked against that round's trie score rather than a raw
// round-over-round delta.
func TestScenarioContextBoostsSecondBigramOccurrence(t *testing.T) {
	e := New(nil)

	e.Learn("ram", "राम")
	e.Learn("sita", "सीता") // bigram(राम, सीता) = 1
	e.Learn("ram", "राम")   // back of window is now राम again

	firstRound := e.Suggest("si", 5)
	sita1, ok := findSuggestion(firstRound, "सीता")
	require.True(t, ok)
	require.Equal(t, uint64(1), sita1.Score, "trie freq 1, bigram count 1 => boost 0")

	e.Learn("sita", "सीता") // bigram(राम, सीता) = 2
	e.Learn("ram", "राम")   // back of window is राम again

	secondRound := e.Suggest("si", 5)
	sita2, ok := findSuggestion(secondRound, "सीता")
	require.True(t, ok)
	require.Equal(t, uint64(12), sita2.Score, "trie freq 2 + boost floor(log2(2)*10)=10")
}

// TestScenarioFuzzyTypoToleranceBelowPrimaryLiteral is spec.md §8 end-to-end
// scenario 4: confirm (namaste, नमस्ते), then query a one-deletion typo.
// Fuzzy contributes नमस्ते at score max(0, freq-1) = 0, so it ranks below
// the primary literal but remains in the result set.
func TestScenarioFuzzyTypoToleranceBelowPrimaryLiteral(t *testing.T) {
	e := New(nil)
	e.Learn("namaste", "नमस्ते")

	got := e.Suggest("nmaste", 5)
	fuzzy, ok := findSuggestion(got, "नमस्ते")
	require.True(t, ok, "one-deletion typo should still surface नमस्ते via the fuzzy index")
	require.Equal(t, uint64(0), fuzzy.Score)
}

func TestLearnIgnoresEmptyRoman(t *testing.T) {
	e := New(nil)
	e.Learn("", "म")
	require.Equal(t, 0, e.store.Len(), "Learn with an empty roman must not create a word")
	m, ok := findSuggestion(e.Suggest("m", 5), "म")
	require.True(t, ok)
	require.Equal(t, PrimaryLiteralScore, m.Score, "म should appear only as the primary literal, not as a learned word")
}

func TestLearnIgnoresEmptyDevanagari(t *testing.T) {
	e := New(nil)
	e.Learn("ma", "")
	got := e.Suggest("ma", 5)
	_, ok := findSuggestion(got, "")
	require.False(t, ok)
}

func TestLearnRepeatedIdenticalPairAccumulatesFrequency(t *testing.T) {
	e := New(nil)
	e.Learn("ram", "राम")
	e.Learn("ram", "राम")

	got := e.Suggest("ra", 5)
	raam, ok := findSuggestion(got, "राम")
	require.True(t, ok)
	require.Equal(t, uint64(2), raam.Score, "two confirmations of the same pair should reach frequency 2")
}

func TestPrimaryTransliterationAlwaysPresent(t *testing.T) {
	e := New(nil)
	got := e.Suggest("ka", 5)
	_, ok := findSuggestion(got, "क")
	require.True(t, ok, "primary transliteration of the prefix must always be among the candidates")
}
