// Package features resolves per-build feature availability. Every answer is a
// pure function of the bank identity, the environment base URL and two
// build-time booleans, so a Resolver can be queried freely from any goroutine.
package features
