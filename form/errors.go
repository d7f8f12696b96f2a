package form

// ValidationError is a client-side rejection. It is reported before any request is
// made.
type ValidationError struct {
	ID MessageID
}

func (e *ValidationError) Error() string {
	return Message(e.ID)
}

var (
	ErrSameAirport = &ValidationError{ID: MsgSameAirport}
	ErrSameTime    = &ValidationError{ID: MsgSameTime}
	ErrTimeFormat  = &ValidationError{ID: MsgTimeFormat}
	ErrIncomplete  = &ValidationError{ID: MsgIncomplete}
	ErrUnknownCode = &ValidationError{ID: MsgUnknownCode}
)
