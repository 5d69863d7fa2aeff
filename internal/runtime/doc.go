// Package runtime provides the execution context for hubsync commands.
//
// It encapsulates shared dependencies needed by actions: the opened
// repository, the logger and the event formatter.
package runtime
