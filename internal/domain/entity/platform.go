package entity

// PowerLineStatus is the AC power state reported by the platform.
type PowerLineStatus int

const (
	PowerLineUnknown PowerLineStatus = iota
	PowerLineOnline
	PowerLineOffline
)

func (s PowerLineStatus) String() string {
	switch s {
	case PowerLineOnline:
		return "online"
	case PowerLineOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// SessionSwitchReason is the payload of a session-switch notification.
type SessionSwitchReason int

const (
	SessionSwitchLock SessionSwitchReason = iota + 1
	SessionSwitchUnlock
)

func (r SessionSwitchReason) String() string {
	switch r {
	case SessionSwitchLock:
		return "lock"
	case SessionSwitchUnlock:
		return "unlock"
	default:
		return "unknown"
	}
}

// PowerMode is the payload of a power-mode notification.
type PowerMode int

const (
	PowerModeSuspend PowerMode = iota + 1
	PowerModeResume
)

func (m PowerMode) String() string {
	switch m {
	case PowerModeSuspend:
		return "suspend"
	case PowerModeResume:
		return "resume"
	default:
		return "unknown"
	}
}

// ResumeStrategy selects which notification family signals that the
// user is back at the machine.
type ResumeStrategy int

const (
	ResumeStrategyNone ResumeStrategy = iota
	// ResumeStrategyModern listens for session lock/unlock.
	ResumeStrategyModern
	// ResumeStrategyLegacy listens for suspend/resume.
	ResumeStrategyLegacy
)

func (s ResumeStrategy) String() string {
	switch s {
	case ResumeStrategyModern:
		return "session-switch"
	case ResumeStrategyLegacy:
		return "power-mode"
	default:
		return "none"
	}
}

// SelectResumeStrategy picks the strategy for a platform build number.
// Builds at or above threshold support session-switch notifications.
func SelectResumeStrategy(build, threshold int) ResumeStrategy {
	if build >= threshold {
		return ResumeStrategyModern
	}
	return ResumeStrategyLegacy
}
