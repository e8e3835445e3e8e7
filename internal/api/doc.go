// Package api serves the build's feature flags and its auto-payment capability
// as JSON over HTTP. Auto-payment routes answer 404 when the build has no
// implementation, so clients hide the feature the same way whether it was
// never compiled in or failed to load.
package api
