package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/internal/service/content"
)

// contentService defines the minimal interface needed by ContentHandler.
type contentService interface {
	List(ctx context.Context, contentType domain.ContentType, in content.ListInput) ([]domain.Content, error)
	Get(ctx context.Context, contentType domain.ContentType, id uuid.UUID) (*domain.Content, error)
	Create(ctx context.Context, in content.CreateInput) (*domain.Content, error)
	SetPublished(ctx context.Context, contentType domain.ContentType, id uuid.UUID, published bool) error
	SetFeatured(ctx context.Context, contentType domain.ContentType, id uuid.UUID, featured bool) error
	Like(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error
	Delete(ctx context.Context, contentType domain.ContentType, id uuid.UUID) error
}

// ContentHandler serves poem and blog post endpoints. One instance serves
// one content type; the router mounts it twice.
type ContentHandler struct {
	svc         contentService
	contentType domain.ContentType
	log         *slog.Logger
}

// NewContentHandler creates a ContentHandler bound to a content type.
func NewContentHandler(svc contentService, contentType domain.ContentType, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		svc:         svc,
		contentType: contentType,
		log:         logger.With("handler", contentType.String()),
	}
}

type createContentRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt"`
	AuthorName  string   `json:"authorName"`
	AuthorBio   *string  `json:"authorBio"`
	CategoryID  *string  `json:"categoryId"`
	Tags        []string `json:"tags"`
	ReadingTime *int     `json:"readingTime"`
}

type flagRequest struct {
	Value bool `json:"value"`
}

type contentResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Excerpt      string    `json:"excerpt,omitempty"`
	AuthorName   string    `json:"authorName"`
	AuthorBio    *string   `json:"authorBio,omitempty"`
	CategoryID   *string   `json:"categoryId,omitempty"`
	CategoryName *string   `json:"categoryName,omitempty"`
	Tags         []string  `json:"tags"`
	Featured     bool      `json:"featured"`
	Published    bool      `json:"published"`
	LikesCount   int       `json:"likesCount"`
	ViewsCount   int       `json:"viewsCount"`
	ReadingTime  *int      `json:"readingTime,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// List handles GET /poems and GET /blog-posts.
// Query: category (slug), search, status (admin filters).
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.List(r.Context(), h.contentType, content.ListInput{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Status:   domain.PublishFilter(q.Get("status")),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]contentResponse, 0, len(items))
	for i := range items {
		out = append(out, toContentResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /poems/{id} and GET /blog-posts/{id}.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), h.contentType, id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentResponse(c))
}

// Like handles POST /poems/{id}/like and POST /blog-posts/{id}/like.
func (h *ContentHandler) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Like(r.Context(), h.contentType, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Create handles POST /admin/poems and POST /admin/blog-posts.
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid categoryId")
			return
		}
		categoryID = &id
	}

	created, err := h.svc.Create(r.Context(), content.CreateInput{
		Type:        h.contentType,
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		AuthorName:  req.AuthorName,
		AuthorBio:   req.AuthorBio,
		CategoryID:  categoryID,
		Tags:        req.Tags,
		ReadingTime: req.ReadingTime,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContentResponse(created))
}

// SetPublished handles PATCH /admin/poems/{id}/publish.
func (h *ContentHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.svc.SetPublished)
}

// SetFeatured handles PATCH /admin/poems/{id}/feature.
func (h *ContentHandler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	h.setFlag(w, r, h.svc.SetFeatured)
}

func (h *ContentHandler) setFlag(w http.ResponseWriter, r *http.Request,
	set func(context.Context, domain.ContentType, uuid.UUID, bool) error,
) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req flagRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := set(r.Context(), h.contentType, id, req.Value); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Delete handles DELETE /admin/poems/{id} and DELETE /admin/blog-posts/{id}.
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), h.contentType, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toContentResponse(c *domain.Content) contentResponse {
	resp := contentResponse{
		ID:           c.ID.String(),
		Type:         c.Type.String(),
		Title:        c.Title,
		Content:      c.Content,
		Excerpt:      c.Excerpt,
		AuthorName:   c.AuthorName,
		AuthorBio:    c.AuthorBio,
		CategoryName: c.CategoryName,
		Tags:         c.Tags,
		Featured:     c.Featured,
		Published:    c.Published,
		LikesCount:   c.LikesCount,
		ViewsCount:   c.ViewsCount,
		ReadingTime:  c.ReadingTime,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.Tags == nil {
		resp.Tags = []string{}
	}
	if c.CategoryID != nil {
		id := c.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}
