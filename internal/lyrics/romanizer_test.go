package lyrics

import (
	"sync"
	"testing"
)

func TestKoreanRomanizer(t *testing.T) {
	k := NewKoreanRomanizer()

	tc := []struct {
		in   string
		want string
	}{
		{in: "안녕하세요", want: "annyeonghaseyo"},
		{in: "사랑해", want: "saranghae"},
		{in: "한국어", want: "hangugeo"},
		{in: "물론", want: "mullon"},
		{in: "영어", want: "yeongeo"},
		{in: "사랑 해", want: "sarang hae"},
		{in: "I love 너", want: "I love neo"},
		{in: "ㅋㅋ", want: "ㅋㅋ"},
		{in: "", want: ""},
	}

	for _, tt := range tc {
		t.Run(tt.in, func(t *testing.T) {
			if got := k.Transliterate(tt.in); got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKanaToRomaji(t *testing.T) {
	tc := []struct {
		in   string
		want string
	}{
		{in: "カタカナ", want: "katakana"},
		{in: "ひらがな", want: "hiragana"},
		{in: "キャット", want: "kyatto"},
		{in: "チョット", want: "chotto"},
		{in: "マッチ", want: "matchi"},
		{in: "ラーメン", want: "raamen"},
		{in: "シンジツ", want: "shinjitsu"},
		{in: "ファン", want: "fan"},
		{in: "こんにちは", want: "konnichiha"},
		{in: "abc", want: "abc"},
	}

	for _, tt := range tc {
		t.Run(tt.in, func(t *testing.T) {
			if got := KanaToRomaji(tt.in); got != tt.want {
				t.Errorf("KanaToRomaji(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	t.Run("IsKana", func(t *testing.T) {
		if !IsKana("ひらがなカタカナー") {
			t.Error("expected kana")
		}
		if IsKana("漢字") || IsKana("") || IsKana("abc") {
			t.Error("expected non-kana")
		}
	})
}

// stubTokenizer returns fixed tokens per input.
type stubTokenizer map[string][]Token

func (s stubTokenizer) Tokenize(text string) []Token { return s[text] }

func TestJapaneseRomanizer(t *testing.T) {
	tok := stubTokenizer{
		"私は歌う": {
			{Surface: "私", Reading: "ワタシ"},
			{Surface: "は", Reading: "ハ", Particle: true},
			{Surface: "歌う", Reading: "ウタウ"},
		},
		"行って": {
			{Surface: "行っ", Reading: "イッ"},
			{Surface: "て", Reading: "テ", Particle: true},
		},
		"夢を見た。": {
			{Surface: "夢", Reading: "ユメ"},
			{Surface: "を", Reading: "ヲ", Particle: true},
			{Surface: "見", Reading: "ミ"},
			{Surface: "た", Reading: "タ", Auxiliary: true},
			{Surface: "。", Reading: "。", Symbol: true},
		},
		"東京へ行きます": {
			{Surface: "東京", Reading: "トウキョウ"},
			{Surface: "へ", Reading: "ヘ", Particle: true},
			{Surface: "行き", Reading: "イキ"},
			{Surface: "ます", Reading: "マス", Auxiliary: true},
		},
		"コーヒーを飲んだ": {
			{Surface: "コーヒー", Reading: "コーヒー"},
			{Surface: "を", Reading: "ヲ", Particle: true},
			{Surface: "飲ん", Reading: "ノン"},
			{Surface: "だ", Reading: "ダ", Auxiliary: true},
		},
		"です。": {
			{Surface: "です", Reading: "デス", Auxiliary: true},
			{Surface: "。", Reading: "。", Symbol: true},
		},
		"雨。だ": {
			{Surface: "雨", Reading: "アメ"},
			{Surface: "。", Reading: "。", Symbol: true},
			{Surface: "だ", Reading: "ダ", Auxiliary: true},
		},
		"Loveソング": {
			{Surface: "Love"},
			{Surface: "ソング"},
		},
		"こんにちは世界": {
			{Surface: "こんにちは", Reading: "コンニチハ"},
			{Surface: "世界", Reading: "セカイ"},
		},
	}
	j := NewJapaneseRomanizer(tok)

	tc := []struct {
		in   string
		want string
	}{
		{in: "こんにちは", want: "Konnichiwa"},
		{in: "こんばんは", want: "Konbanwa"},
		{in: "私は歌う", want: "Watashi wa utau"},
		{in: "行って", want: "Itte"},
		{in: "夢を見た。", want: "Yume o mita."},
		{in: "東京へ行きます", want: "Toukyou e ikimasu"},
		{in: "コーヒーを飲んだ", want: "Koohii o nonda"},
		{in: "です。", want: "Desu."},
		{in: "雨。だ", want: "Ame. da"},
		{in: "Loveソング", want: "Love songu"},
		{in: "こんにちは世界", want: "Konnichiwa sekai"},
	}

	for _, tt := range tc {
		t.Run(tt.in, func(t *testing.T) {
			if got := j.Transliterate(tt.in); got != tt.want {
				t.Errorf("Transliterate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKagomeTokenizer(t *testing.T) {
	if testing.Short() {
		t.Skip("dictionary load is slow")
	}

	tok, err := NewKagomeTokenizer()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	r := NewRomanizer(NewKoreanRomanizer(), NewJapaneseRomanizer(tok))
	tr := NewTransformer(r)

	t.Run("greeting line", func(t *testing.T) {
		got := tr.Transform("[00:05.00] こんにちは")
		if got != "[00:05.00] Konnichiwa" {
			t.Errorf("expected [00:05.00] Konnichiwa, got %q", got)
		}
	})

	t.Run("output has no Japanese left for kana text", func(t *testing.T) {
		got := r.Transliterate("さくら")
		if ContainsJapanese(got) {
			t.Errorf("expected romaji, got %q", got)
		}
	})

	t.Run("shared engine is safe across goroutines", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if got := tr.Transform("[00:05.00] こんにちは"); got != "[00:05.00] Konnichiwa" {
					t.Errorf("unexpected output %q", got)
				}
			}()
		}
		wg.Wait()
	})
}
