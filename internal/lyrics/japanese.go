package lyrics

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Token is one morpheme as seen by [JapaneseRomanizer].
type Token struct {
	Surface   string
	Reading   string // Katakana reading; empty when the dictionary has none
	Particle  bool
	Auxiliary bool // 助動詞, attached to the preceding word
	Symbol    bool
}

// Tokenizer splits Japanese text into morphemes with readings.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// kagomeTokenizer reads morphemes from the IPA dictionary.
type kagomeTokenizer struct {
	t *tokenizer.Tokenizer
}

// NewKagomeTokenizer loads the IPA dictionary. This is slow and should happen once per process.
func NewKagomeTokenizer() (Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}
	return &kagomeTokenizer{t: t}, nil
}

func (k *kagomeTokenizer) Tokenize(text string) []Token {
	raw := k.t.Tokenize(text)
	tokens := make([]Token, 0, len(raw))
	for _, tok := range raw {
		t := Token{Surface: tok.Surface}
		if reading, ok := tok.Reading(); ok && reading != "*" {
			t.Reading = reading
		}
		if pos := tok.POS(); len(pos) > 0 {
			t.Particle = pos[0] == "助詞"
			t.Auxiliary = pos[0] == "助動詞"
			t.Symbol = pos[0] == "記号"
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// Fixed readings that differ from the kana spelling.
var japaneseExceptions = map[string]string{
	"こんにちは": "konnichiwa",
	"こんばんは": "konbanwa",
}

var particleReadings = map[string]string{
	"は": "wa",
	"へ": "e",
	"を": "o",
}

var japanesePunctuation = map[string]string{
	"。": ".", "、": ",", "！": "!", "？": "?", "…": "...",
	"「": "\"", "」": "\"", "『": "\"", "』": "\"",
	"（": "(", "）": ")", "・": " ", "～": "~", "〜": "~",
}

// JapaneseRomanizer renders Japanese as Hepburn romaji using dictionary readings.
//
// Words are separated by spaces, punctuation attaches to the previous word and the first letter
// is capitalised. Auxiliary verbs attach to the word before them, so 行きます reads ikimasu.
// Particles は, へ and を read wa, e and o. Tokens without a reading keep their
// surface form unless they are pure kana.
type JapaneseRomanizer struct {
	tok Tokenizer
}

// NewJapaneseRomanizer returns a [JapaneseRomanizer] over tok.
func NewJapaneseRomanizer(tok Tokenizer) *JapaneseRomanizer {
	return &JapaneseRomanizer{tok: tok}
}

// Transliterate implements [Transliterator].
func (j *JapaneseRomanizer) Transliterate(text string) string {
	trimmed := strings.TrimSpace(text)
	if v, ok := japaneseExceptions[trimmed]; ok {
		return capitalize(v)
	}

	var words []string
	afterWord := false
	for _, tok := range j.tok.Tokenize(trimmed) {
		if strings.TrimSpace(tok.Surface) == "" {
			continue
		}

		if tok.Symbol || japanesePunctuation[tok.Surface] != "" {
			p, ok := japanesePunctuation[tok.Surface]
			if !ok {
				p = tok.Surface
			}
			if len(words) == 0 {
				words = append(words, p)
			} else {
				words[len(words)-1] += p
			}
			afterWord = false
			continue
		}

		word := j.romanizeToken(tok)
		if word == "" {
			continue
		}

		// Auxiliary verbs and anything after a small tsu join the previous word,
		// e.g. 行き + ます and 行っ + て.
		n := len(words)
		if n > 0 && (strings.HasSuffix(words[n-1], string(sokuon)) || (tok.Auxiliary && afterWord)) {
			words[n-1] += word
		} else {
			words = append(words, word)
		}
		afterWord = true
	}

	return capitalize(fixSokuon(strings.Join(words, " ")))
}

func (j *JapaneseRomanizer) romanizeToken(tok Token) string {
	if v, ok := japaneseExceptions[tok.Surface]; ok {
		return v
	}
	if tok.Particle {
		if v, ok := particleReadings[tok.Surface]; ok {
			return v
		}
	}

	reading := tok.Reading
	if reading == "" {
		if !IsKana(tok.Surface) {
			return tok.Surface
		}
		reading = tok.Surface
	}

	// Keep a trailing small tsu as a marker for the next token.
	if strings.HasSuffix(toKatakana(reading), string(sokuon)) {
		return KanaToRomaji(strings.TrimSuffix(toKatakana(reading), string(sokuon))) + string(sokuon)
	}
	return KanaToRomaji(reading)
}

// fixSokuon resolves small tsu markers left between glued tokens.
func fixSokuon(s string) string {
	if !strings.ContainsRune(s, sokuon) {
		return s
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != sokuon {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] < utf8.RuneSelf && !isVowel(byte(runes[i+1])) && unicode.IsLetter(runes[i+1]) {
			if runes[i+1] == 'c' {
				b.WriteByte('t')
			} else {
				b.WriteRune(runes[i+1])
			}
		}
	}
	return b.String()
}

func capitalize(s string) string {
	for i, r := range s {
		if unicode.IsLetter(r) {
			return s[:i] + string(unicode.ToUpper(r)) + s[i+len(string(r)):]
		}
	}
	return s
}
