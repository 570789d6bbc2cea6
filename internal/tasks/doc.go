// Package tasks runs lyric jobs over a scanned library with real-time progress reporting.
//
// # Core Operations
//
// [FetchEngine] exposes three operations:
//
//  1. [FetchEngine.Process] : one job for one work item
//     - Resolves a lyric candidate through a [LyricResolver]
//     - Arbitrates with [ShouldAccept] so an upgrade never replaces unsynced with unsynced
//     - Romanizes Japanese or Korean text when requested
//     - Writes the lyric file, then optionally embeds the text in the audio file
//
//  2. [FetchEngine.Run] : a fixed pool of workers over the whole queue
//     - Workers share nothing but the jobs and results channels
//     - The calling goroutine collects every [models.JobResult] and applies it to [Counters]
//
//  3. [FetchEngine.ProcessExisting] : offline pass over lyric files already on disk
//
// # Failure Isolation
//
// A job never returns an error or panics into the pool. Write failures, cancelled contexts and
// recovered panics become [models.OutcomeFailed] results and count as errors. A failed embed is
// logged and leaves the job's primary outcome unchanged.
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
package tasks
