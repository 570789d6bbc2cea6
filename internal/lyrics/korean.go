package lyrics

import "strings"

const (
	hangulBase  = 0xAC00
	hangulLast  = 0xD7A3
	medialCount = 21
	finalCount  = 28
)

var (
	koreanInitials = [...]string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s",
		"ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	koreanMedials = [...]string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa",
		"wae", "oe", "yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i",
	}
	// Final consonant as pronounced at the end of a syllable.
	koreanFinals = [...]string{
		"", "k", "k", "k", "n", "n", "n", "t", "l", "k",
		"m", "l", "l", "l", "p", "l", "m", "p", "p", "t",
		"t", "ng", "t", "t", "k", "t", "p", "t",
	}
	// Final consonant carried over into a following syllable that starts with silent ㅇ.
	koreanLinked = [...]string{
		"", "g", "kk", "ks", "n", "nj", "n", "d", "r", "lg",
		"lm", "lb", "ls", "lt", "lp", "r", "m", "b", "ps", "s",
		"ss", "ng", "j", "ch", "k", "t", "p", "",
	}
)

const (
	initialSilent = 11 // ㅇ
	initialRieul  = 5  // ㄹ
	finalRieul    = 8  // ㄹ
)

// KoreanRomanizer renders Hangul in Revised Romanization.
//
// Syllable blocks are decomposed arithmetically. A final consonant moves onto a following
// silent ㅇ (한국어 -> hangugeo) and ㄹㄹ is written ll. Everything outside the syllable block,
// including spaces and Latin text, is copied through.
type KoreanRomanizer struct{}

// NewKoreanRomanizer returns a [KoreanRomanizer]. It holds no state.
func NewKoreanRomanizer() *KoreanRomanizer { return &KoreanRomanizer{} }

func isHangulSyllable(r rune) bool { return r >= hangulBase && r <= hangulLast }

func decomposeHangul(r rune) (initial, medial, final int) {
	s := int(r - hangulBase)
	return s / (medialCount * finalCount), (s % (medialCount * finalCount)) / finalCount, s % finalCount
}

// Transliterate implements [Transliterator].
func (k *KoreanRomanizer) Transliterate(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	prevFinal := 0
	for i, r := range runes {
		if !isHangulSyllable(r) {
			b.WriteRune(r)
			prevFinal = 0
			continue
		}

		ini, med, fin := decomposeHangul(r)

		if ini == initialRieul && prevFinal == finalRieul {
			b.WriteString("l")
		} else {
			b.WriteString(koreanInitials[ini])
		}
		b.WriteString(koreanMedials[med])

		if fin != 0 {
			next := rune(0)
			if i+1 < len(runes) {
				next = runes[i+1]
			}
			if isHangulSyllable(next) {
				if nextIni, _, _ := decomposeHangul(next); nextIni == initialSilent {
					b.WriteString(koreanLinked[fin])
					prevFinal = 0
					continue
				}
			}
			b.WriteString(koreanFinals[fin])
		}
		prevFinal = fin
	}

	return b.String()
}
