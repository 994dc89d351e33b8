// Package api exposes the content repositories over HTTP. Public routes
// serve published content only; admin routes provide full CRUD. Not-found
// maps to 404, validation failures to 400/409, and storage-layer problems
// never reach here as errors (the repositories downgrade them internally).
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/markasai/site-content/pkg/sitecontent"
)

// PublicHandler serves the published content consumed by the public site.
type PublicHandler struct {
	repos *sitecontent.Repositories
}

// NewPublicHandler creates a new public content handler.
func NewPublicHandler(repos *sitecontent.Repositories) *PublicHandler {
	return &PublicHandler{repos: repos}
}

// Routes returns the public routes.
func (h *PublicHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/blog", h.ListBlogPosts)
	r.Get("/blog/{slug}", h.GetBlogPost)
	r.Get("/products", h.ListProducts)
	r.Get("/products/{slug}", h.GetProduct)
	r.Get("/case-studies", h.ListCaseStudies)
	r.Get("/case-studies/{slug}", h.GetCaseStudy)
	r.Get("/testimonials", h.ListTestimonials)
	r.Get("/settings", h.GetSettings)

	return r
}

// ListBlogPosts returns published blog posts, newest first.
func (h *PublicHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.repos.Blog.Published(r.Context()))
}

// GetBlogPost returns one published blog post by slug.
func (h *PublicHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post := h.repos.Blog.PublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if post == nil {
		notFound(w, r)
		return
	}
	render.JSON(w, r, post)
}

// ListProducts returns published products.
func (h *PublicHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.repos.Products.Published(r.Context()))
}

// GetProduct returns one published product by slug.
func (h *PublicHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product := h.repos.Products.PublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if product == nil {
		notFound(w, r)
		return
	}
	render.JSON(w, r, product)
}

// ListCaseStudies returns published case studies.
func (h *PublicHandler) ListCaseStudies(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.repos.CaseStudies.Published(r.Context()))
}

// GetCaseStudy returns one published case study by slug.
func (h *PublicHandler) GetCaseStudy(w http.ResponseWriter, r *http.Request) {
	study := h.repos.CaseStudies.PublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if study == nil {
		notFound(w, r)
		return
	}
	render.JSON(w, r, study)
}

// ListTestimonials returns published testimonials.
func (h *PublicHandler) ListTestimonials(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.repos.Testimonials.Published(r.Context()))
}

// GetSettings returns the site settings.
func (h *PublicHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.repos.Settings.Get(r.Context()))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, map[string]string{"error": "not found"})
}
