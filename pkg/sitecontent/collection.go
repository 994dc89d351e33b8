package sitecontent

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Entity is the constraint shared by every collection-managed content type.
// Its methods are unexported, so the set of entity types is closed.
type Entity interface {
	entityID() string
	entitySlug() string
	entityStatus() Status
	recency() time.Time
}

func (p BlogPost) entityID() string      { return p.ID }
func (p BlogPost) entitySlug() string    { return p.Slug }
func (p BlogPost) entityStatus() Status  { return p.Status }
func (p BlogPost) recency() time.Time    { return p.PublishedAt }
func (c CaseStudy) entityID() string     { return c.ID }
func (c CaseStudy) entitySlug() string   { return c.Slug }
func (c CaseStudy) entityStatus() Status { return c.Status }
func (c CaseStudy) recency() time.Time   { return c.PublishedAt }
func (p Product) entityID() string       { return p.ID }
func (p Product) entitySlug() string     { return p.Slug }
func (p Product) entityStatus() Status   { return p.Status }
func (p Product) recency() time.Time     { return p.CreatedAt }
func (t Testimonial) entityID() string   { return t.ID }
func (t Testimonial) entitySlug() string { return "" }
func (t Testimonial) entityStatus() Status { return t.Status }
func (t Testimonial) recency() time.Time { return t.CreatedAt }

// Repository provides typed CRUD over one storage key holding a collection
// document. Lookups are linear scans, which is fine at this data scale. The
// getAll/mutate/write sequence is not atomic: two concurrent updates to the
// same collection race at document granularity and the last write wins.
type Repository[T Entity] struct {
	store Store
	key   Key
	seed  func() []T
}

func newRepository[T Entity](store Store, key Key, seed func() []T) *Repository[T] {
	return &Repository[T]{store: store, key: key, seed: seed}
}

// All returns the full collection, newest first, seeding default content on
// first read. Draft entities are included; use Published for public listings.
func (r *Repository[T]) All(ctx context.Context) []T {
	return ReadDocument(ctx, r.store, r.key, r.seed())
}

// Published returns only entities with status "published", preserving their
// relative order from All.
func (r *Repository[T]) Published(ctx context.Context) []T {
	all := r.All(ctx)
	published := make([]T, 0, len(all))
	for _, e := range all {
		if e.entityStatus() == StatusPublished {
			published = append(published, e)
		}
	}
	return published
}

// ByID returns the entity with the given id, or nil if none exists.
func (r *Repository[T]) ByID(ctx context.Context, id string) *T {
	for _, e := range r.All(ctx) {
		if e.entityID() == id {
			e := e
			return &e
		}
	}
	return nil
}

// BySlug returns the entity with the given slug, or nil if none exists.
func (r *Repository[T]) BySlug(ctx context.Context, slug string) *T {
	if slug == "" {
		return nil
	}
	for _, e := range r.All(ctx) {
		if e.entitySlug() == slug {
			e := e
			return &e
		}
	}
	return nil
}

// PublishedBySlug returns the published entity with the given slug, or nil.
// Draft entities are not visible through public-facing lookups.
func (r *Repository[T]) PublishedBySlug(ctx context.Context, slug string) *T {
	e := r.BySlug(ctx, slug)
	if e == nil || (*e).entityStatus() != StatusPublished {
		return nil
	}
	return e
}

// Add appends the entity and writes the collection back. The caller is
// responsible for id and slug uniqueness; duplicate-slug detection is an API
// layer pre-check.
func (r *Repository[T]) Add(ctx context.Context, e T) {
	list := append(r.All(ctx), e)
	r.write(ctx, list)
}

// Update shallow-merges the partial JSON document into the entity with the
// given id and writes the collection back. Fields absent from partial keep
// their current values; an "id" field in partial is ignored. Returns (nil, nil)
// when no entity has that id, and a non-nil error wrapping ErrMalformedPartial
// when the partial does not decode against the entity; the collection is left
// untouched in both cases.
func (r *Repository[T]) Update(ctx context.Context, id string, partial json.RawMessage) (*T, error) {
	list := r.All(ctx)
	for i := range list {
		if list[i].entityID() != id {
			continue
		}
		merged, err := mergeEntity(list[i], partial)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPartial, err)
		}
		list[i] = merged
		r.write(ctx, list)
		e := list[i]
		return &e, nil
	}
	return nil, nil
}

// Delete removes the entity with the given id, reporting whether anything was
// removed. The collection is written back either way.
func (r *Repository[T]) Delete(ctx context.Context, id string) bool {
	list := r.All(ctx)
	kept := make([]T, 0, len(list))
	removed := false
	for _, e := range list {
		if e.entityID() == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	r.write(ctx, kept)
	return removed
}

// write sorts the collection newest first and persists it, so All callers can
// assume recency order without re-sorting.
func (r *Repository[T]) write(ctx context.Context, list []T) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].recency().After(list[j].recency())
	})
	WriteDocument(ctx, r.store, r.key, list)
}

// mergeEntity unmarshals partial over a copy of e. The id field is stripped
// from partial first so a merge can never reassign an entity's identity.
func mergeEntity[T Entity](e T, partial json.RawMessage) (T, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(partial, &fields); err != nil {
		return e, err
	}
	delete(fields, "id")
	cleaned, err := json.Marshal(fields)
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(cleaned, &e); err != nil {
		return e, err
	}
	return e, nil
}

// Repositories bundles the typed repositories over one Store. Construct the
// concrete backend once at process start and pass it in here; nothing in this
// package sniffs the environment.
type Repositories struct {
	Blog         *Repository[BlogPost]
	CaseStudies  *Repository[CaseStudy]
	Products     *Repository[Product]
	Testimonials *Repository[Testimonial]
	Settings     *SettingsRepository
	Media        *MediaRepository
}

// NewRepositories creates the full set of content repositories over store.
func NewRepositories(store Store) *Repositories {
	return &Repositories{
		Blog:         NewBlogRepository(store),
		CaseStudies:  NewCaseStudyRepository(store),
		Products:     NewProductRepository(store),
		Testimonials: NewTestimonialRepository(store),
		Settings:     NewSettingsRepository(store),
		Media:        NewMediaRepository(store),
	}
}

// NewBlogRepository creates the blog post repository.
func NewBlogRepository(store Store) *Repository[BlogPost] {
	return newRepository(store, KeyBlogPosts, defaultBlogPosts)
}

// NewCaseStudyRepository creates the case study repository.
func NewCaseStudyRepository(store Store) *Repository[CaseStudy] {
	return newRepository(store, KeyCaseStudies, defaultCaseStudies)
}

// NewProductRepository creates the product repository.
func NewProductRepository(store Store) *Repository[Product] {
	return newRepository(store, KeyProducts, defaultProducts)
}

// NewTestimonialRepository creates the testimonial repository.
func NewTestimonialRepository(store Store) *Repository[Testimonial] {
	return newRepository(store, KeyTestimonials, defaultTestimonials)
}
