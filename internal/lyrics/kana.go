package lyrics

import "strings"

var kanaDigraphs = map[string]string{
	"キャ": "kya", "キュ": "kyu", "キョ": "kyo",
	"ギャ": "gya", "ギュ": "gyu", "ギョ": "gyo",
	"シャ": "sha", "シュ": "shu", "ショ": "sho", "シェ": "she",
	"ジャ": "ja", "ジュ": "ju", "ジョ": "jo", "ジェ": "je",
	"チャ": "cha", "チュ": "chu", "チョ": "cho", "チェ": "che",
	"ヂャ": "ja", "ヂュ": "ju", "ヂョ": "jo",
	"ニャ": "nya", "ニュ": "nyu", "ニョ": "nyo",
	"ヒャ": "hya", "ヒュ": "hyu", "ヒョ": "hyo",
	"ビャ": "bya", "ビュ": "byu", "ビョ": "byo",
	"ピャ": "pya", "ピュ": "pyu", "ピョ": "pyo",
	"ミャ": "mya", "ミュ": "myu", "ミョ": "myo",
	"リャ": "rya", "リュ": "ryu", "リョ": "ryo",
	"ティ": "ti", "ディ": "di", "トゥ": "tu", "ドゥ": "du", "デュ": "dyu",
	"ファ": "fa", "フィ": "fi", "フェ": "fe", "フォ": "fo",
	"ウィ": "wi", "ウェ": "we", "ウォ": "wo",
	"ヴァ": "va", "ヴィ": "vi", "ヴェ": "ve", "ヴォ": "vo",
}

var kanaMonographs = map[rune]string{
	'ア': "a", 'イ': "i", 'ウ': "u", 'エ': "e", 'オ': "o",
	'カ': "ka", 'キ': "ki", 'ク': "ku", 'ケ': "ke", 'コ': "ko",
	'ガ': "ga", 'ギ': "gi", 'グ': "gu", 'ゲ': "ge", 'ゴ': "go",
	'サ': "sa", 'シ': "shi", 'ス': "su", 'セ': "se", 'ソ': "so",
	'ザ': "za", 'ジ': "ji", 'ズ': "zu", 'ゼ': "ze", 'ゾ': "zo",
	'タ': "ta", 'チ': "chi", 'ツ': "tsu", 'テ': "te", 'ト': "to",
	'ダ': "da", 'ヂ': "ji", 'ヅ': "zu", 'デ': "de", 'ド': "do",
	'ナ': "na", 'ニ': "ni", 'ヌ': "nu", 'ネ': "ne", 'ノ': "no",
	'ハ': "ha", 'ヒ': "hi", 'フ': "fu", 'ヘ': "he", 'ホ': "ho",
	'バ': "ba", 'ビ': "bi", 'ブ': "bu", 'ベ': "be", 'ボ': "bo",
	'パ': "pa", 'ピ': "pi", 'プ': "pu", 'ペ': "pe", 'ポ': "po",
	'マ': "ma", 'ミ': "mi", 'ム': "mu", 'メ': "me", 'モ': "mo",
	'ヤ': "ya", 'ユ': "yu", 'ヨ': "yo",
	'ラ': "ra", 'リ': "ri", 'ル': "ru", 'レ': "re", 'ロ': "ro",
	'ワ': "wa", 'ヰ': "i", 'ヱ': "e", 'ヲ': "o", 'ン': "n",
	'ヴ': "vu",
	'ァ': "a", 'ィ': "i", 'ゥ': "u", 'ェ': "e", 'ォ': "o",
	'ャ': "ya", 'ュ': "yu", 'ョ': "yo", 'ヮ': "wa",
}

const (
	sokuon   = 'ッ'
	chouon   = 'ー'
	hiraFrom = 'ぁ'
	hiraTo   = 'ゖ'
	kataDiff = 'ァ' - 'ぁ'
)

// toKatakana maps hiragana onto the katakana block.
func toKatakana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= hiraFrom && r <= hiraTo {
			return r + kataDiff
		}
		return r
	}, s)
}

// IsKana reports whether every rune of s is hiragana, katakana or the long vowel mark.
func IsKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range toKatakana(s) {
		if _, ok := kanaMonographs[r]; !ok && r != sokuon && r != chouon {
			return false
		}
	}
	return true
}

// KanaToRomaji converts hiragana and katakana to Hepburn romaji.
//
// The small tsu doubles the following consonant (tch before ch) and the long vowel mark repeats
// the previous vowel. Runes that are not kana are copied through.
func KanaToRomaji(s string) string {
	runes := []rune(toKatakana(s))
	var b strings.Builder
	b.Grow(len(runes) * 2)

	double := false
	lastVowel := byte(0)

	write := func(syl string) {
		if double {
			switch {
			case strings.HasPrefix(syl, "ch"):
				b.WriteByte('t')
			case syl != "" && !isVowel(syl[0]):
				b.WriteByte(syl[0])
			}
			double = false
		}
		b.WriteString(syl)
		if syl != "" {
			lastVowel = syl[len(syl)-1]
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case sokuon:
			double = true
			continue
		case chouon:
			if isVowel(lastVowel) {
				b.WriteByte(lastVowel)
			}
			continue
		}

		if i+1 < len(runes) {
			if syl, ok := kanaDigraphs[string(runes[i:i+2])]; ok {
				write(syl)
				i++
				continue
			}
		}
		if syl, ok := kanaMonographs[r]; ok {
			write(syl)
			continue
		}

		double = false
		lastVowel = 0
		b.WriteRune(r)
	}

	return b.String()
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'i', 'u', 'e', 'o':
		return true
	}
	return false
}
