package tasks

// ShouldAccept decides whether fetched lyrics may replace what is on disk.
//
// A new file is always written. An upgrade attempt only accepts synced lyrics, so an unsynced
// file is never replaced by another unsynced one.
func ShouldAccept(upgradeAttempt, candidateSynced bool) bool {
	return !upgradeAttempt || candidateSynced
}
