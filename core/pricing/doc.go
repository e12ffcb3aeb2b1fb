// Package pricing holds the pricing page resources: membership plans,
// add-on services, and FAQs.
package pricing
