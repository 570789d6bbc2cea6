package lyrics

import "strings"

// Transliterator converts lyric text to Latin script.
//
// Implementations must be safe for concurrent use and return Latin input unchanged.
type Transliterator interface {
	Transliterate(text string) string
}

// TransliteratorFunc adapts a function to [Transliterator].
type TransliteratorFunc func(string) string

func (f TransliteratorFunc) Transliterate(text string) string { return f(text) }

// Transformer rewrites lyric payload line by line, leaving timestamps and metadata tags intact.
type Transformer struct {
	translit Transliterator
}

// NewTransformer returns a [Transformer] backed by t.
func NewTransformer(t Transliterator) *Transformer {
	return &Transformer{translit: t}
}

// Transform transliterates every lyric payload in text.
//
// The input is trimmed and split on newlines, each line is trimmed, and the result has
// exactly one output line per input line in the same order:
//   - blank lines stay blank
//   - timed lines keep their timestamp; the payload follows after one space
//   - metadata tags such as [ar:Artist] pass through verbatim
//   - other lines are transliterated whole
func (t *Transformer) Transform(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	out := make([]string, len(lines))

	for i, raw := range lines {
		line := ParseLine(raw)
		switch line.Kind {
		case LineBlank:
			out[i] = ""
		case LineTimed:
			if line.Text == "" {
				out[i] = line.Timestamp
			} else {
				out[i] = line.Timestamp + " " + t.translit.Transliterate(line.Text)
			}
		case LineMeta:
			out[i] = line.Text
		default:
			out[i] = t.translit.Transliterate(line.Text)
		}
	}

	return strings.Join(out, "\n")
}
