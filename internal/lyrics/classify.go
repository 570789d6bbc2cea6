package lyrics

import (
	"regexp"
	"strings"

	"github.com/desertthunder/lrcx/internal/models"
)

// PrefixScanLength is the number of characters inspected when classifying an on-disk lyric file.
const PrefixScanLength = 1000

var (
	timestampRe = regexp.MustCompile(`\[\d{2}:\d{2}(?:\.\d{2,3})?\]`)
	timedLineRe = regexp.MustCompile(`^(\[\d{2}:\d{2}(?:\.\d{2,3})?\])(.*)$`)
	metaLineRe  = regexp.MustCompile(`^\[[a-zA-Z]+:`)

	koreanRe   = regexp.MustCompile(`[\x{AC00}-\x{D7A3}]`)
	japaneseRe = regexp.MustCompile(`[ぁ-んァ-ン一-龯]`)
	cjkRe      = regexp.MustCompile(`[ぁ-んァ-ン一-龯\x{AC00}-\x{D7A3}]`)
)

// IsSynced reports whether text contains at least one [MM:SS] or [MM:SS.xx] timestamp.
func IsSynced(text string) bool {
	return timestampRe.MatchString(text)
}

// IsFileSynced classifies an existing lyric file by its first [PrefixScanLength] characters.
//
// Unreadable files count as unsynced.
func IsFileSynced(path string) bool {
	text, err := ReadLyricFile(path)
	if err != nil {
		return false
	}
	return IsSynced(prefix(text, PrefixScanLength))
}

// NewContent classifies freshly fetched text over its full length.
func NewContent(text string) models.LyricContent {
	return models.LyricContent{Text: text, Synced: IsSynced(text)}
}

// ContainsKorean reports whether text has any Hangul syllable.
func ContainsKorean(text string) bool { return koreanRe.MatchString(text) }

// ContainsJapanese reports whether text has any hiragana, katakana or CJK ideograph.
func ContainsJapanese(text string) bool { return japaneseRe.MatchString(text) }

// ContainsCJK reports whether text has Japanese or Korean characters.
func ContainsCJK(text string) bool { return cjkRe.MatchString(text) }

// LineKind classifies a single lyric line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineTimed
	LineMeta
	LineText
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineTimed:
		return "timed"
	case LineMeta:
		return "meta"
	case LineText:
		return "text"
	default:
		return ""
	}
}

// Line is a parsed lyric line.
//
// Timestamp is set only for [LineTimed]; Text holds the lyric payload with the timestamp removed.
type Line struct {
	Kind      LineKind
	Timestamp string
	Text      string
}

// Classify returns the [LineKind] of a trimmed line.
func Classify(line string) LineKind {
	return ParseLine(line).Kind
}

// ParseLine trims and classifies a line.
//
// A leading timestamp wins over a metadata tag.
func ParseLine(line string) Line {
	line = strings.TrimSpace(line)
	if line == "" {
		return Line{Kind: LineBlank}
	}
	if m := timedLineRe.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineTimed, Timestamp: m[1], Text: strings.TrimSpace(m[2])}
	}
	if metaLineRe.MatchString(line) {
		return Line{Kind: LineMeta, Text: line}
	}
	return Line{Kind: LineText, Text: line}
}

func prefix(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
