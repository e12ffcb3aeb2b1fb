// Package views is the property page view counter: fire-and-forget
// tracking plus aggregate reads that degrade to zero counts on failure.
package views
