package cli

// Exit codes for the relbump CLI.
// Non-zero codes stop the release pipeline, which is the intended behavior:
// this tool runs once per release and has no retry policy.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntimeError indicates the bump or changelog rewrite failed
	ExitRuntimeError = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingPrerequisite indicates a required file or input is missing
	ExitMissingPrerequisite = 4

	// ExitTimeout indicates the upstream version command timed out
	ExitTimeout = 5
)
