package cli

// CommandError carries an exit code out of a command's Run method. Commands
// print their own diagnostics before returning it, so main only has to map
// the error to a process exit status.
type CommandError struct {
	exitCode int
}

// NewCommandError creates a CommandError with the given exit code.
func NewCommandError(exitCode int) *CommandError {
	return &CommandError{exitCode: exitCode}
}

func (e *CommandError) Error() string {
	return "command failed"
}

// ExitCode returns the process exit status to use.
func (e *CommandError) ExitCode() int {
	return e.exitCode
}
