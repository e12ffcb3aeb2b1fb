package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"sort"
	"sync"

	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/logger"
	"github.com/wishcowork/sitekit/core/settings"
)

var (
	// ErrNotFound is returned by lookups that match no record.
	ErrNotFound = errors.New("resolver: record not found")
	// ErrRejected is returned when the backend reports a failed mutation.
	ErrRejected = errors.New("resolver: mutation rejected")
)

// Descriptor teaches a Resolver how to understand one resource type.
type Descriptor[T any] struct {
	// Resource is the collection name, used both as the request path segment
	// and as the envelope key fallback ("properties", "blogs", ...).
	Resource string
	// Singular is the single-record envelope key ("property", "blog", ...).
	Singular string
	// ID extracts the record identifier.
	ID func(T) string
	// SetID writes a backend-assigned identifier into a created record.
	SetID func(*T, string)
	// Match is the mock-mode filter predicate. Each resource decides which
	// fields its search substring scans.
	Match func(T, Filter) bool
	// SlugKey extracts the (city, category, slug) triple for SEO lookups.
	// Nil for resources without composite slug routes.
	SlugKey func(T) (city, category, slug string)
	// DisplayOrder extracts the presentation ordering key. Nil when the
	// resource has no explicit ordering.
	DisplayOrder func(T) int
	// PathIdentifiers selects the record addressing style. When true,
	// single-record operations target "/{resource}/{identifier}" and the
	// identifier may be either the id or the record's slug. When false,
	// they use an "?id=" query parameter.
	PathIdentifiers bool
	// Ident reports whether a record answers to the given identifier
	// (beyond its id). Used by mock-mode lookups for slug addressing.
	Ident func(T, string) bool
	// Seed is the in-memory fallback dataset serving mock mode and the
	// first-load failure path.
	Seed []T
}

// Resolver presents a uniform list / lookup / mutate contract over one
// resource, regardless of whether the backend is live or mocked.
//
// Reads never surface transport errors: a failed live fetch degrades to the
// last known good snapshot. Writes always go to the backend and surface
// failures to the caller without touching the snapshot.
type Resolver[T any] struct {
	desc     Descriptor[T]
	api      *client.Client
	settings *settings.Service
	log      *slog.Logger

	mu       sync.Mutex
	snapshot []T
	issued   uint64 // sequence of the most recent list request
	applied  uint64 // sequence of the response currently in the snapshot
}

// Option configures a Resolver.
type Option[T any] func(*Resolver[T])

// WithLogger sets the structured logger.
func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(r *Resolver[T]) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a resolver for the described resource. The snapshot starts as
// the seed dataset, so mock mode and first-load failures have data to serve.
func New[T any](desc Descriptor[T], api *client.Client, svc *settings.Service, opts ...Option[T]) *Resolver[T] {
	r := &Resolver[T]{
		desc:     desc,
		api:      api,
		settings: svc,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		snapshot: append([]T(nil), desc.Seed...),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns the resource collection matching filter. In mock mode the
// seed snapshot is filtered locally; in live mode the backend is queried
// with the filter mapped to query parameters. Transport failures and stale
// (superseded) responses both resolve to the current snapshot, never an
// error.
func (r *Resolver[T]) List(ctx context.Context, f Filter) ([]T, error) {
	if r.settings.UseMockAPI() {
		return r.fromSnapshot(f), nil
	}

	r.mu.Lock()
	r.issued++
	seq := r.issued
	r.mu.Unlock()

	raw, err := r.api.Get(ctx, "/"+r.desc.Resource, f.queryValues())
	if err != nil {
		r.log.Warn("list fetch failed, serving snapshot",
			logger.Component("resolver"), logger.Resource(r.desc.Resource), logger.Error(err))
		return r.fromSnapshot(f), nil
	}

	items, err := client.Collection[T](raw, r.desc.Resource)
	if err != nil {
		r.log.Warn("unrecognized list envelope, serving snapshot",
			logger.Component("resolver"), logger.Resource(r.desc.Resource), logger.Error(err))
		return r.fromSnapshot(f), nil
	}

	r.sortInPlace(items)

	r.mu.Lock()
	defer r.mu.Unlock()
	if seq < r.applied || seq < r.issued {
		// A newer request has already been answered (or is in flight and
		// this response is outdated). Discard so a slow response can never
		// overwrite a fresher one.
		return append([]T(nil), r.snapshot...), nil
	}
	r.applied = seq
	r.snapshot = append([]T(nil), items...)
	return items, nil
}

// GetByID returns the record with the given identifier, or ErrNotFound.
// For path-addressed resources the identifier may also be the record slug.
func (r *Resolver[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if r.settings.UseMockAPI() {
		for _, item := range r.currentSnapshot() {
			if r.desc.ID(item) == id || (r.desc.Ident != nil && r.desc.Ident(item, id)) {
				return item, nil
			}
		}
		return zero, ErrNotFound
	}

	raw, err := r.api.Get(ctx, r.recordPath(id), r.recordQuery(id))
	if err != nil {
		return zero, ErrNotFound
	}
	item, err := client.Single[T](raw, r.desc.Singular)
	if err != nil || r.desc.ID(item) == "" {
		return zero, ErrNotFound
	}
	return item, nil
}

// GetBySlug resolves an SEO-style URL: the record whose city, category, and
// slug all match, case-insensitively. A partial match is NotFound.
func (r *Resolver[T]) GetBySlug(ctx context.Context, city, category, slug string) (T, error) {
	var zero T
	if r.desc.SlugKey == nil {
		return zero, ErrNotFound
	}

	if r.settings.UseMockAPI() {
		for _, item := range r.currentSnapshot() {
			if slugKeyMatches(r.desc.SlugKey(item))(city, category, slug) {
				return item, nil
			}
		}
		return zero, ErrNotFound
	}

	raw, err := r.api.Get(ctx, "/"+r.desc.Resource, Filter{Slug: slug}.queryValues())
	if err != nil {
		return zero, ErrNotFound
	}
	item, err := client.Single[T](raw, r.desc.Singular)
	if err != nil {
		return zero, ErrNotFound
	}
	// The backend only matched the slug; enforce the full tri-key contract.
	if !slugKeyMatches(r.desc.SlugKey(item))(city, category, slug) {
		return zero, ErrNotFound
	}
	return item, nil
}

// Create submits a new record. Always a live call: mutations require remote
// persistence even when reads are mocked. On success the backend-assigned id
// is written into the returned record and the snapshot is refreshed.
func (r *Resolver[T]) Create(ctx context.Context, draft T) (T, error) {
	var zero T
	raw, err := r.api.Post(ctx, "/"+r.desc.Resource, nil, draft)
	if err != nil {
		return zero, fmt.Errorf("failed to create %s: %w", r.desc.Singular, err)
	}

	res, err := client.Mutation(raw)
	if err != nil {
		return zero, fmt.Errorf("failed to create %s: %w", r.desc.Singular, err)
	}
	if !res.Success {
		return zero, fmt.Errorf("%w: %s", ErrRejected, res.Message)
	}

	if id := firstNonEmpty(res.PropertyID, res.ID); id != "" && r.desc.SetID != nil {
		r.desc.SetID(&draft, id)
	}
	r.refresh(ctx)
	return draft, nil
}

// Update submits changes for an existing record. On failure the snapshot is
// left untouched and the error is surfaced for the caller's form state.
func (r *Resolver[T]) Update(ctx context.Context, id string, patch T) error {
	raw, err := r.api.Put(ctx, r.recordPath(id), r.recordQuery(id), patch)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.desc.Singular, err)
	}

	res, err := client.Mutation(raw)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", r.desc.Singular, err)
	}
	if !res.Success {
		return fmt.Errorf("%w: %s", ErrRejected, res.Message)
	}

	r.refresh(ctx)
	return nil
}

// Delete removes a record.
func (r *Resolver[T]) Delete(ctx context.Context, id string) error {
	raw, err := r.api.Delete(ctx, r.recordPath(id), r.recordQuery(id))
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.desc.Singular, err)
	}

	res, err := client.Mutation(raw)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.desc.Singular, err)
	}
	if !res.Success {
		return fmt.Errorf("%w: %s", ErrRejected, res.Message)
	}

	r.refresh(ctx)
	return nil
}

// Snapshot returns a copy of the current fallback dataset.
func (r *Resolver[T]) Snapshot() []T {
	return r.currentSnapshot()
}

// refresh replaces the snapshot with a fresh live fetch after a successful
// mutation. Best effort: a failed refresh keeps the previous snapshot.
func (r *Resolver[T]) refresh(ctx context.Context) {
	raw, err := r.api.Get(ctx, "/"+r.desc.Resource, nil)
	if err != nil {
		return
	}
	items, err := client.Collection[T](raw, r.desc.Resource)
	if err != nil {
		return
	}
	r.sortInPlace(items)

	r.mu.Lock()
	r.issued++
	r.applied = r.issued
	r.snapshot = items
	r.mu.Unlock()
}

// recordPath builds the single-record request path for the resource's
// addressing style.
func (r *Resolver[T]) recordPath(id string) string {
	if r.desc.PathIdentifiers {
		return "/" + r.desc.Resource + "/" + url.PathEscape(id)
	}
	return "/" + r.desc.Resource
}

func (r *Resolver[T]) recordQuery(id string) url.Values {
	if r.desc.PathIdentifiers {
		return nil
	}
	return Filter{ID: id}.queryValues()
}

func (r *Resolver[T]) currentSnapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.snapshot...)
}

// fromSnapshot filters and orders the snapshot for a read that cannot (or
// must not) hit the network.
func (r *Resolver[T]) fromSnapshot(f Filter) []T {
	var out []T
	for _, item := range r.currentSnapshot() {
		if r.desc.Match == nil || r.desc.Match(item, f) {
			out = append(out, item)
		}
	}
	r.sortInPlace(out)
	return paginate(f, out)
}

func (r *Resolver[T]) sortInPlace(items []T) {
	if r.desc.DisplayOrder == nil {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return r.desc.DisplayOrder(items[i]) < r.desc.DisplayOrder(items[j])
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
