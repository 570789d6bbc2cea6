// Package library walks a music library and builds the work queue for a run.
//
// # Scanning
//
// [Scanner.Scan] walks the root once, on the calling goroutine, and considers every file with a
// .flac extension (any case). The sibling lyric file shares the audio file's stem with a .lrc
// extension. What gets queued depends on the [models.ScanMode]:
//   - missing : audio without a lyric file
//   - upgrade : audio whose lyric file has no timestamps in its first 1000 characters
//
// Files with incomplete metadata are logged and counted, never queued.
//
// # FLAC tags
//
// [FLACTags] reads artist, title and duration from FLAC metadata blocks and embeds lyrics as a
// LYRICS vorbis comment. It satisfies both [MetadataReader] and [EmbeddingSink].
package library
