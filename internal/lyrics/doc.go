// Package lyrics classifies and rewrites LRC lyric text.
//
// # Classification
//
// Text is synced when it contains a bracketed [MM:SS] or [MM:SS.xx] timestamp anywhere.
// Freshly fetched text is classified in full with [IsSynced]; files already on disk are
// classified by their first [PrefixScanLength] characters with [IsFileSynced].
//
// Each line is one of [LineBlank], [LineTimed], [LineMeta] (tags like [ar:Artist]) or [LineText].
//
// # Transformation
//
// [Transformer.Transform] transliterates the lyric payload of every line while keeping the
// line count, line order, timestamps and metadata tags exactly as they were.
//
// # Romanization
//
// [Romanizer] routes text to [KoreanRomanizer] when it contains Hangul, otherwise to
// [JapaneseRomanizer] when it contains kana or kanji, otherwise leaves it alone. Both engines are
// built once at startup and shared by all workers.
package lyrics
