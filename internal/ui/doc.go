// Package ui displays run progress in the terminal.
//
// When stdout is a terminal and progress display is requested, [Run] drives a bubbletea program
// with two views:
//  1. [ProgressView] : a progress bar over completed jobs and the most recent job lines
//  2. [ResultView] : the summary table and a filterable list of every file, failures first
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
// Progress updates flow through a channel from the [tasks.FetchEngine].
//
// Otherwise [PrintProgress] writes the same updates as plain lines.
package ui
