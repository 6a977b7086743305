package collecting

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrIndexOutOfRange = errors.New("ad index out of range")
	ErrStaleRun        = errors.New("collection was replaced by a newer run")
)

// SessionError carrega o contexto da sessão e do índice envolvidos na falha
type SessionError struct {
	Err       error
	SessionID string
	Index     int
}

func (e *SessionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("session %s, ad %d: %s", e.SessionID, e.Index, e.Err.Error())
	}
	return fmt.Sprintf("session %s: %s", e.SessionID, e.Err.Error())
}

func (e *SessionError) Unwrap() error {
	return e.Err
}

func NewSessionError(err error, sessionID string, index int) *SessionError {
	return &SessionError{
		Err:       err,
		SessionID: sessionID,
		Index:     index,
	}
}
