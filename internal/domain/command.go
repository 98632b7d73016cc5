package domain

// CommandResult is the outcome of a mutating command sent to the backend.
// A failed command never changes local state; Err carries the cause.
// Stale is set when the command succeeded but the follow-up refresh failed.
type CommandResult struct {
	Command string           `json:"command"`
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Amount  int64            `json:"amount,omitempty"`
	Heroes  []HeroDefinition `json:"heroes,omitempty"`
	Stale   bool             `json:"stale,omitempty"`
	Err     error            `json:"-"`
}

// Succeeded builds a successful result
func Succeeded(command, message string) CommandResult {
	return CommandResult{Command: command, Success: true, Message: message}
}

// Failed builds a failed result carrying err
func Failed(command string, err error) CommandResult {
	res := CommandResult{Command: command, Err: err}
	if err != nil {
		res.Message = err.Error()
	}
	return res
}
