package ui

// ActionableError is an error whose message can be shown to the player as is.
type ActionableError struct {
	Message string
}

func (e *ActionableError) Error() string {
	return e.Message
}
