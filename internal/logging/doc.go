// Package logging builds the process logger. Output is gated by the build's
// logging flag: debug builds log everything, release builds log nothing.
package logging
