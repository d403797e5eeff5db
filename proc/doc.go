// Package proc composes channel-connected processes. A process is anything
// with a blocking Run method, including the active widgets in the root
// package. Parallel and Sequence mirror the usual CSP combinators; Start
// exists for GUI programs where the main goroutine must be handed to the
// toolkit's own event loop.
package proc
