// Package catalog holds the workspace listing domain: properties, the
// category and city taxonomies, and SEO URL resolution.
//
// Reads go through a resolver that serves seeded data in mock mode and
// falls back to the last good snapshot when the live API misbehaves, so
// browse pages always render. Mutations always target the live API.
package catalog
