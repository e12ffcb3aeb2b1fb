// Package content holds the site's editorial resources: blog articles,
// news items, and the events calendar. Each service shares the same
// offline-friendly read path as the property catalog and addresses single
// records by path segment, accepting either numeric ids or slugs where the
// resource has them.
package content
