// Package slug generates URL-safe slugs from arbitrary strings.
//
// Slugs are used for SEO-style routes like /{city}/{category}/{slug}, so the
// conversion is strict: ASCII lowercase letters and digits only, with runs of
// anything else collapsed to a single separator.
//
//	slug.Make("Premium Virtual Office – CP!")
//	// "premium-virtual-office-cp"
//
//	slug.Make("Café & Restaurant")
//	// "cafe-restaurant"
//
// Make is idempotent, which lets create/update flows re-slugify user-edited
// slugs without drift.
package slug
