// Package romanizer implements a syllable-aware Roman-to-Devanagari
// transducer: a small three-state FST over the token tables in tables.go,
// plus a set of phonetic-variant heuristics used to widen a literal
// transliteration into a list of plausible alternatives.
//
// The transducer is pure and holds no mutable state; every exported
// function is safe to call concurrently.
package romanizer

import "unicode/utf8"

// state is the FST's position within the current syllable.
type state int

const (
	// stateStart is the beginning of input, or immediately after a symbol.
	stateStart state = iota
	// stateHalanta holds right after a consonant+virama; the syllable is
	// awaiting a vowel or a conjunct continuation.
	stateHalanta
	// stateSyllable holds after a complete syllable (consonant+matra, or
	// an independent vowel) has been emitted.
	stateSyllable
)

// tokenKind tags which table a matched token came from, since the three
// tables drive different transition rules.
type tokenKind int

const (
	kindSymbol tokenKind = iota
	kindConsonant
	kindVowel
)

// halanta is the virama combining mark (U+094D) that suppresses a
// consonant's inherent vowel.
const halanta = "्"

// TransliteratePrimary converts roman into its single deterministic
// Devanagari rendering. Schwa deletion at word end is unconditional: a
// trailing virama left over from a final bare consonant is dropped.
//
// TransliteratePrimary("") returns "".
func TransliteratePrimary(roman string) string {
	if roman == "" {
		return ""
	}
	return transliterateBase(roman, false)
}

// transliterateBase runs the FST. When keepFinalVowelMark is true and the
// input ends in a single (non-doubled) "a", that trailing "a" is matched as
// if it were "aa" instead of matching its usual empty matra — it still only
// consumes one byte of input. This is what lets GenerateCandidates offer a
// variant that keeps an explicit final vowel mark instead of deleting it.
func transliterateBase(roman string, keepFinalVowelMark bool) string {
	var out []byte
	st := stateStart
	input := roman

	for len(input) > 0 {
		remaining := len(input)
		sliceLen := remaining
		if sliceLen > maxTokenLen {
			sliceLen = maxTokenLen
		}
		chunk := input[:sliceLen]

		forceAA := keepFinalVowelMark && remaining == 1 && chunk[0] == 'a'
		effectiveChunk := chunk
		if forceAA {
			effectiveChunk = "aa"
		}

		token, value, kind, ok := matchLongest(effectiveChunk, st)
		if !ok {
			// Unmatched byte: pass the rune through verbatim.
			if st == stateHalanta && hasHalantaSuffix(out) {
				out = out[:len(out)-len(halanta)]
			}
			_, size := utf8.DecodeRuneInString(input)
			out = append(out, input[:size]...)
			st = stateStart
			input = input[size:]
			continue
		}

		consumed := len(token)
		if forceAA {
			consumed = 1
		}

		switch kind {
		case kindSymbol:
			if st == stateHalanta && hasHalantaSuffix(out) {
				out = out[:len(out)-len(halanta)]
			}
			out = append(out, value...)
			st = stateStart
		case kindVowel:
			if st == stateHalanta {
				if hasHalantaSuffix(out) {
					out = out[:len(out)-len(halanta)]
				}
				out = append(out, value...)
				st = stateSyllable
			} else {
				// Start or Syllable: independent form.
				out = append(out, value...)
				st = stateSyllable
			}
		case kindConsonant:
			out = append(out, value...)
			out = append(out, halanta...)
			st = stateHalanta
		}

		input = input[consumed:]
	}

	if st == stateHalanta && hasHalantaSuffix(out) {
		out = out[:len(out)-len(halanta)]
	}

	return string(out)
}

func hasHalantaSuffix(b []byte) bool {
	n := len(halanta)
	return len(b) >= n && string(b[len(b)-n:]) == halanta
}

// matchLongest finds the longest token at the front of chunk recognized by
// any table, trying lengths from len(chunk) down to 1. Resolution order at
// a given length is symbols, then consonants, then vowels. The order matters:
// "r", "R", "M" and "H" are keys of both consonants and matraVowels, and
// the consonant reading always wins.
func matchLongest(chunk string, st state) (token, value string, kind tokenKind, ok bool) {
	for l := len(chunk); l >= 1; l-- {
		tok := chunk[:l]

		if v, found := symbols[tok]; found {
			return tok, v, kindSymbol, true
		}
		if v, found := consonants[tok]; found {
			return tok, v, kindConsonant, true
		}
		switch st {
		case stateStart, stateSyllable:
			if v, found := independentVowels[tok]; found {
				return tok, v, kindVowel, true
			}
		case stateHalanta:
			if v, found := matraVowels[tok]; found {
				return tok, v, kindVowel, true
			}
		}
	}
	return "", "", 0, false
}
