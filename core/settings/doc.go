// Package settings owns the runtime operating mode of the site core: the
// backend base URL and the mock-vs-live data source toggle.
//
// Settings persist to client storage under a single key and survive restarts.
// Changes are broadcast to observers so data services can react to a mode
// switch without polling.
package settings
