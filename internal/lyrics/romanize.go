package lyrics

// Romanizer picks a script engine by the characters present in the text.
//
// Korean is tested before Japanese, so mixed Hangul and kana text goes to the Korean engine.
// Text with neither script is returned as is.
type Romanizer struct {
	korean   Transliterator
	japanese Transliterator
}

// NewRomanizer wires the two script engines. Either may be nil to leave that script untouched.
func NewRomanizer(korean, japanese Transliterator) *Romanizer {
	return &Romanizer{korean: korean, japanese: japanese}
}

// Transliterate implements [Transliterator].
func (r *Romanizer) Transliterate(text string) string {
	switch {
	case ContainsKorean(text):
		if r.korean == nil {
			return text
		}
		return r.korean.Transliterate(text)
	case ContainsJapanese(text):
		if r.japanese == nil {
			return text
		}
		return r.japanese.Transliterate(text)
	default:
		return text
	}
}
