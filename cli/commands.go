package cli

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Fmt    FmtCmd    `cmd:"" help:"Format script files, preserving comments and blank lines."`
	Check  CheckCmd  `cmd:"" help:"Check whether script files are formatted."`
	Watch  WatchCmd  `cmd:"" help:"Watch script files and reformat them on change."`
	Doctor DoctorCmd `cmd:"" help:"Doctor utilities for debugging script files."`
}
