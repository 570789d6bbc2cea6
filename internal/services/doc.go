// Package services defines the [Service] interface for lyric providers, implements it for LRCLIB and
// resolves a single best candidate per track.
//
// # LRCLIB
//
// [LRCLibService] calls two endpoints with a bounded per-request timeout (10 seconds by default):
//   - /api/get : exact lookup by artist_name, track_name and optional duration
//   - /api/search : fuzzy lookup by q, returning a ranked list
//
// An optional [rate.Limiter] is shared by every worker.
//
// # Resolution
//
// [Resolver.Resolve] tries the exact lookup first and returns its synced text, or failing that its
// plain text, without searching further. Only when the exact lookup yields nothing does it search,
// and [SelectCandidate] chooses among the results by duration and sync state.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrLyricsNotFound] : provider returned 404
//   - [shared.ErrUnexpectedStatus] : any other non-200 status
//   - [shared.ErrAPIRequest] : transport failure or undecodable body
//
// The [Resolver] logs all of these and treats them as "no result".
package services
