package entity

// PostponeKey names a reason for suppressing theme switches.
// Presence of a key, not a count, determines suppression.
type PostponeKey string

// PostponeSessionLock is held while the user session is locked.
const PostponeSessionLock PostponeKey = "SessionLock"
