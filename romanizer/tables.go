package romanizer

// Roman token tables, transliterated verbatim (case variants included) from
// the Rust prototype's RomanizationEngine::new. Four tables, keyed by the
// ASCII token a user would type:
//
//   - consonants: token -> Devanagari consonant (or conjunct, e.g. "ksh").
//   - independentVowels: token -> full vowel form, used at Start/Syllable.
//   - matraVowels: token -> dependent (post-consonant) form, used at Halanta.
//     The matra for bare "a" is the empty string: attaching no mark at all
//     is how a consonant's inherent schwa is represented.
//   - symbols: token -> punctuation, digits, OM, danda.
//
// matraVowels carries a few tokens (E, O, r, R, M, H, ~) that have no
// independent counterpart: anusvara, visarga, chandrabindu, and the loanword
// vowels only ever appear attached to a preceding consonant. Of these, r, R,
// M and H are also consonant keys; matchLongest tries consonants first, so
// those four matra entries are never matched.
var consonants = map[string]string{
	"k": "क", "K": "क", "kh": "ख", "KH": "ख", "Kh": "ख",
	"g": "ग", "G": "ग", "gh": "घ", "GH": "घ", "Gh": "घ",
	"ng": "ङ", "NG": "ङ",
	"ch": "च", "CH": "च", "Ch": "च", "c": "च", "C": "च",
	"chh": "छ", "CHH": "छ", "Chh": "छ", "x": "छ", "X": "छ",
	"j": "ज", "J": "ज", "z": "ज", "Z": "ज",
	"jh": "झ", "JH": "झ", "Jh": "झ",
	"T": "ट", "Th": "ठ", "TH": "ठ",
	"D": "ड", "Dh": "ढ", "DH": "ढ", "N": "ण",
	"t": "त", "th": "थ", "d": "द", "dh": "ध", "n": "न",
	"p": "प", "P": "प", "ph": "फ", "f": "फ", "F": "फ",
	"b": "ब", "B": "ब", "bh": "भ", "BH": "भ", "Bh": "भ",
	"m": "म", "M": "म", "y": "य", "Y": "य",
	"r": "र", "R": "र", "l": "ल", "L": "ल",
	"w": "व", "W": "व", "v": "व", "V": "व",
	"s": "स", "sh": "श", "SH": "श", "Sh": "श", "S": "ष",
	"h": "ह", "H": "ह",
	"ksh": "क्ष", "KSH": "क्ष", "Ksh": "क्ष",
	"tr": "त्र", "TR": "त्र", "Tr": "त्र",
	"gy": "ज्ञ", "GY": "ज्ञ", "Gy": "ज्ञ",
}

var independentVowels = map[string]string{
	"a":  "अ",
	"aa": "आ", "AA": "आ",
	"i":  "इ",
	"ee": "ई", "EE": "ई", "ii": "ई", "II": "ई",
	"u":  "उ",
	"oo": "ऊ", "OO": "ऊ", "uu": "ऊ", "UU": "ऊ",
	"e":  "ए",
	"ai": "ऐ", "AI": "ऐ", "ae": "ऐ", "AE": "ऐ",
	"o":  "ओ",
	"au": "औ", "AU": "औ", "ao": "औ", "AO": "औ",
	"am": "अं", "AM": "अं", "aM": "अं", "an": "अं", "AN": "अं",
	"ah": "अः", "AH": "अः", "a:": "अः",
	"ri": "ऋ", "RI": "ऋ",
	"rr": "ॠ", "RR": "ॠ",
}

var matraVowels = map[string]string{
	"a":  "",
	"aa": "ा", "AA": "ा",
	"i":  "ि",
	"ee": "ी", "EE": "ी", "ii": "ी", "II": "ी",
	"u":  "ु",
	"oo": "ू", "OO": "ू", "uu": "ू", "UU": "ू",
	"e": "े",
	"E": "ॅ",
	"ai": "ै", "AI": "ै", "ae": "ै", "AE": "ै",
	"o": "ो",
	"O": "ॉ",
	"au": "ौ", "AU": "ौ", "ao": "ौ", "AO": "ौ",
	"r": "ृ", "ri": "ृ", "RI": "ृ", "R": "ृ",
	"rr": "ॄ", "RR": "ॄ",
	"M": "ं",
	"H": "ः",
	"~": "ँ",
}

var symbols = map[string]string{
	".": "।", "|": "।", "..": "।।", "||": "।।",
	"?": "?", "!": "!", ",": ",", ";": ";",
	"OM": "ॐ", "'": "ऽ",
	"0": "०", "1": "१", "2": "२", "3": "३", "4": "४",
	"5": "५", "6": "६", "7": "७", "8": "८", "9": "९",
}

// maxTokenLen bounds the longest-prefix-match window. Recomputed from the
// tables rather than hardcoded so adding a longer token later can't silently
// desync it.
var maxTokenLen = computeMaxTokenLen()

func computeMaxTokenLen() int {
	max := 1
	for _, m := range []map[string]string{consonants, independentVowels, matraVowels, symbols} {
		for k := range m {
			if len(k) > max {
				max = len(k)
			}
		}
	}
	return max
}
