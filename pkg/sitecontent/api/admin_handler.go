package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/markasai/site-content/pkg/sitecontent"
	"github.com/markasai/site-content/pkg/sitecontent/mediasync"
)

// AdminHandler handles the admin CRUD routes. The duplicate-slug pre-check
// lives here, before the repository append; the read-then-act race that
// allows is an accepted limitation at this write volume.
type AdminHandler struct {
	repos    *sitecontent.Repositories
	syncer   *mediasync.Syncer
	validate *validator.Validate
}

// NewAdminHandler creates a new admin handler. syncer may be nil when the
// deployment has no remote object listing; the sync route then returns 503.
func NewAdminHandler(repos *sitecontent.Repositories, syncer *mediasync.Syncer) *AdminHandler {
	return &AdminHandler{
		repos:    repos,
		syncer:   syncer,
		validate: newValidator(),
	}
}

// Routes returns the admin routes.
func (h *AdminHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Mount("/blog", collectionRoutes(h, h.repos.Blog, h.CreateBlogPost))
	r.Mount("/case-studies", collectionRoutes(h, h.repos.CaseStudies, h.CreateCaseStudy))
	r.Mount("/products", collectionRoutes(h, h.repos.Products, h.CreateProduct))
	r.Mount("/testimonials", collectionRoutes(h, h.repos.Testimonials, h.CreateTestimonial))

	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.UpdateSettings)

	r.Get("/media", h.ListMedia)
	r.Delete("/media/{id}", h.DeleteMedia)
	r.Post("/media/sync", h.SyncMedia)

	return r
}

// collectionRoutes mounts list/get/update/delete for one repository plus the
// entity-specific create handler.
func collectionRoutes[T sitecontent.Entity](h *AdminHandler, repo *sitecontent.Repository[T], create http.HandlerFunc) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, repo.All(req.Context()))
	})
	r.Post("/", create)
	r.Get("/{id}", func(w http.ResponseWriter, req *http.Request) {
		e := repo.ByID(req.Context(), chi.URLParam(req, "id"))
		if e == nil {
			notFound(w, req)
			return
		}
		render.JSON(w, req, e)
	})
	r.Put("/{id}", func(w http.ResponseWriter, req *http.Request) {
		partial, err := readJSONObject(req.Body)
		if err != nil {
			badRequest(w, req, "request body must be a JSON object")
			return
		}
		e, err := repo.Update(req.Context(), chi.URLParam(req, "id"), partial)
		if err != nil {
			badRequest(w, req, err.Error())
			return
		}
		if e == nil {
			notFound(w, req)
			return
		}
		render.JSON(w, req, e)
	})
	r.Delete("/{id}", func(w http.ResponseWriter, req *http.Request) {
		if !repo.Delete(req.Context(), chi.URLParam(req, "id")) {
			notFound(w, req)
			return
		}
		render.JSON(w, req, map[string]string{"status": "deleted"})
	})

	return r
}

// CreateBlogPost creates a new blog post.
func (h *AdminHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var post sitecontent.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if err := h.validate.Struct(blogPostRules{Title: post.Title, Slug: post.Slug, Body: post.Body}); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if h.repos.Blog.BySlug(r.Context(), post.Slug) != nil {
		conflict(w, r, "slug already exists")
		return
	}
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if !post.Status.IsValid() {
		post.Status = sitecontent.StatusDraft
	}
	h.repos.Blog.Add(r.Context(), post)
	created(w, r, post)
}

// CreateCaseStudy creates a new case study.
func (h *AdminHandler) CreateCaseStudy(w http.ResponseWriter, r *http.Request) {
	var study sitecontent.CaseStudy
	if err := json.NewDecoder(r.Body).Decode(&study); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if err := h.validate.Struct(caseStudyRules{Title: study.Title, Slug: study.Slug, Client: study.Client, Body: study.Body}); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if h.repos.CaseStudies.BySlug(r.Context(), study.Slug) != nil {
		conflict(w, r, "slug already exists")
		return
	}
	if study.ID == "" {
		study.ID = uuid.New().String()
	}
	if !study.Status.IsValid() {
		study.Status = sitecontent.StatusDraft
	}
	h.repos.CaseStudies.Add(r.Context(), study)
	created(w, r, study)
}

// CreateProduct creates a new product.
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product sitecontent.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if err := h.validate.Struct(productRules{Title: product.Title, Slug: product.Slug, Description: product.Description}); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if h.repos.Products.BySlug(r.Context(), product.Slug) != nil {
		conflict(w, r, "slug already exists")
		return
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if !product.Status.IsValid() {
		product.Status = sitecontent.StatusDraft
	}
	h.repos.Products.Add(r.Context(), product)
	created(w, r, product)
}

// CreateTestimonial creates a new testimonial.
func (h *AdminHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var testimonial sitecontent.Testimonial
	if err := json.NewDecoder(r.Body).Decode(&testimonial); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if err := h.validate.Struct(testimonialRules{Name: testimonial.Name, Content: testimonial.Content, Rating: testimonial.Rating}); err != nil {
		badRequest(w, r, err.Error())
		return
	}
	if testimonial.ID == "" {
		testimonial.ID = uuid.New().String()
	}
	if !testimonial.Status.IsValid() {
		testimonial.Status = sitecontent.StatusDraft
	}
	h.repos.Testimonials.Add(r.Context(), testimonial)
	created(w, r, testimonial)
}

// GetSettings returns the full settings document for editing.
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.repos.Settings.Get(r.Context()))
}

// UpdateSettings merges a partial settings document and returns the result.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	partial, err := readJSONObject(r.Body)
	if err != nil {
		badRequest(w, r, "request body must be a JSON object")
		return
	}
	settings, err := h.repos.Settings.Update(r.Context(), partial)
	if err != nil {
		badRequest(w, r, err.Error())
		return
	}
	render.JSON(w, r, settings)
}

// ListMedia returns every tracked media file.
func (h *AdminHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.repos.Media.All(r.Context()))
}

// DeleteMedia removes one media file record.
func (h *AdminHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	if !h.repos.Media.Delete(r.Context(), chi.URLParam(r, "id")) {
		notFound(w, r)
		return
	}
	render.JSON(w, r, map[string]string{"status": "deleted"})
}

// SyncMedia runs the media reconciliation pass and returns its result.
func (h *AdminHandler) SyncMedia(w http.ResponseWriter, r *http.Request) {
	if h.syncer == nil {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]string{"error": "no remote object listing configured"})
		return
	}

	result, err := h.syncer.Sync(r.Context())
	if err != nil {
		slog.Error("media sync failed", "error", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]string{"error": err.Error()})
		return
	}
	render.JSON(w, r, result)
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, map[string]string{"error": msg})
}

func conflict(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusConflict)
	render.JSON(w, r, map[string]string{"error": msg})
}

func created(w http.ResponseWriter, r *http.Request, v interface{}) {
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, v)
}

// readJSONObject reads the body and verifies it is a JSON object.
func readJSONObject(body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return data, nil
}
