// Package gateway decides which auto-payment implementation backs the current
// build and caches it for the lifetime of the process. Callers treat "no
// implementation" and "implementation failed to load" the same way: the
// feature is hidden.
package gateway
