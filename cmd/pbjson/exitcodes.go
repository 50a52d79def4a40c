package main

// Exit codes shared by all commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, unknown kind, write failure)
	ExitConfigError = 2 // Configuration error (bad global config) / index not built
	ExitDataError   = 3 // Data error (malformed state file)
)
