package upstream

// Error reports a failed upstream call. Its message is the provider's own
// description so it can be relayed to clients without rewording.
type Error struct {
	Provider string
	Model    string
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
