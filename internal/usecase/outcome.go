package usecase

// Outcome tells the caller where a mutation landed.
type Outcome struct {
	// Demo is set when the API write failed and the change exists only in local page state.
	Demo bool `json:"demo"`
}

// Label appends the demo marker to a user-facing message.
func (o Outcome) Label(message string) string {
	if o.Demo {
		return message + " (demo)"
	}

	return message
}
