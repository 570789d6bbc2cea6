// Package models defines the entities passed between the scanner, the resolver and the coordinator.
//
// # Work
//
//   - [TrackInfo] : artist, title and duration read from an audio file
//   - [WorkItem] : one audio file queued for lookup, built only from complete metadata
//   - [JobResult] : what a single job did, returned to the coordinator
//
// # Lyrics
//
//   - [RemoteCandidate] : a lookup result with synced and/or plain text
//   - [LyricContent] : lyric text plus its sync classification
//
// [ScanMode] selects which files a run considers and [Outcome] names the primary result of a job.
package models
