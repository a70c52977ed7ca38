package romanizer

import (
	"strings"

	"github.com/sapienskid/akshar-ime/internal/ascii"
)

// GenerateCandidates returns the primary transliteration of roman followed
// by phonetic variants produced by independent heuristics, de-duplicated
// with the primary always first. Empty input yields nil.
//
// If roman is itself a single recognized symbol token (e.g. "."), the
// symbol is returned alone — heuristics never apply to punctuation.
func GenerateCandidates(roman string) []string {
	if roman == "" {
		return nil
	}
	if v, ok := symbols[roman]; ok {
		return []string{v}
	}

	primary := TransliteratePrimary(roman)

	// The heuristics below locate byte offsets computed from ASCII vowel
	// letters; on non-ASCII input they are unsafe, so only the primary
	// form is offered.
	if !ascii.Valid(roman) {
		return []string{primary}
	}

	seen := map[string]bool{primary: true}
	candidates := []string{primary}
	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			candidates = append(candidates, v)
		}
	}

	// 1. Final 'a' ambiguity: offer the reading that keeps the vowel mark
	// instead of deleting the inherent schwa.
	if strings.HasSuffix(roman, "a") && !strings.HasSuffix(roman, "aa") {
		add(transliterateBase(roman, true))
	}

	// 2. Trailing "ai": offer stem+"aa" with an appended independent "i".
	if len(roman) > 2 && strings.HasSuffix(roman, "ai") {
		stem := roman[:len(roman)-2]
		add(TransliteratePrimary(stem+"aa") + independentVowels["i"])
	}

	// 3. Trailing "au": same construction with an appended independent "u".
	if len(roman) > 2 && strings.HasSuffix(roman, "au") {
		stem := roman[:len(roman)-2]
		if stem != "" {
			add(TransliteratePrimary(stem+"aa") + independentVowels["u"])
		}
	}

	// 4. Leading "aa" whose remainder is itself a whole vowel token.
	if strings.HasPrefix(roman, "aa") {
		remainder := roman[2:]
		if v, ok := independentVowels[remainder]; ok && remainder != "" {
			add(independentVowels["aa"] + v)
		}
	}

	// 5. Last-vowel-boundary split: the longest suffix, starting past the
	// first byte, that is itself a whole vowel token is the final vowel;
	// transliterate the stem and append that vowel's independent form.
	for pos := 1; pos < len(roman); pos++ {
		if v, ok := independentVowels[roman[pos:]]; ok {
			add(TransliteratePrimary(roman[:pos]) + v)
			break
		}
	}

	return candidates
}
