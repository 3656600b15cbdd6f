package entity

// SessionState is the lifecycle state of the process-wide identity.
type SessionState int

const (
	// SessionUnknown means the stored token has not been checked yet.
	SessionUnknown SessionState = iota
	// SessionAnonymous means no validated token is held.
	SessionAnonymous
	// SessionAuthenticated means a validated token and its user are held.
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionAnonymous:
		return "anonymous"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is a point-in-time copy of the session store.
// User is non-nil iff State is SessionAuthenticated.
type Session struct {
	State SessionState `json:"-"`
	User  *User        `json:"user"`
	Token string       `json:"-"`
}

// IsLoading reports whether the session has not resolved yet.
func (s Session) IsLoading() bool {
	return s.State == SessionUnknown
}
