// Package invoke runs service functions locally through the serverless
// framework's "invoke local" command and hands their output back as data.
//
// The framework reads the target function and payload from its CLI option
// state and prints the result to standard output. Bridge therefore swaps the
// options for the duration of one invocation, tees the process's stdout into
// a buffer while the command runs, restores both on every exit path and
// parses what was printed as JSON, falling back to the raw text.
//
// Because stdout and the option state are process-wide, only one invocation
// runs at a time; Bridge serializes callers with a lock.
package invoke
