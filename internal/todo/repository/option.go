package repository

// DoOptions selects the session a SessionRepository.Do call operates on.
type DoOptions struct {
	SessionID string
}
