package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/inklet-app/inklet-backend/internal/domain"
	"github.com/inklet-app/inklet-backend/internal/service/submission"
)

// submissionService defines the minimal interface needed by SubmissionHandler.
type submissionService interface {
	Submit(ctx context.Context, in submission.SubmitInput) (*domain.Submission, error)
	Review(ctx context.Context, id uuid.UUID, in submission.ReviewInput) (*domain.Submission, error)
	ListMine(ctx context.Context, status *domain.SubmissionStatus) ([]domain.Submission, error)
	List(ctx context.Context, status *domain.SubmissionStatus) ([]domain.Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
}

// SubmissionHandler serves the submission workflow endpoints.
type SubmissionHandler struct {
	svc submissionService
	log *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc submissionService, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, log: logger.With("handler", "submission")}
}

type submitRequest struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Excerpt     string  `json:"excerpt"`
	AuthorName  string  `json:"authorName"`
	AuthorBio   *string `json:"authorBio"`
	CategoryID  *string `json:"categoryId"`
	Tags        string  `json:"tags"`
	ReadingTime *int    `json:"readingTime"`
}

type reviewRequest struct {
	Decision   string  `json:"decision"`
	AdminNotes *string `json:"adminNotes"`
}

type submissionResponse struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	AuthorName  string     `json:"authorName"`
	AuthorBio   *string    `json:"authorBio,omitempty"`
	CategoryID  *string    `json:"categoryId,omitempty"`
	Tags        []string   `json:"tags"`
	ReadingTime *int       `json:"readingTime,omitempty"`
	UserID      string     `json:"userId"`
	Status      string     `json:"status"`
	AdminNotes  *string    `json:"adminNotes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
}

// Submit handles POST /submissions.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
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

	created, err := h.svc.Submit(r.Context(), submission.SubmitInput{
		Type:        domain.ContentType(req.Type),
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
	writeJSON(w, http.StatusCreated, toSubmissionResponse(created))
}

// ListMine handles GET /submissions/mine?status=pending.
func (h *SubmissionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	status, ok := statusFilter(w, r)
	if !ok {
		return
	}

	subs, err := h.svc.ListMine(r.Context(), status)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponses(subs))
}

// Get handles GET /submissions/{id}.
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	sub, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// List handles GET /admin/submissions?status=pending.
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	status, ok := statusFilter(w, r)
	if !ok {
		return
	}

	subs, err := h.svc.List(r.Context(), status)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponses(subs))
}

// Review handles POST /admin/submissions/{id}/review.
func (h *SubmissionHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	reviewed, err := h.svc.Review(r.Context(), id, submission.ReviewInput{
		Decision:   domain.ReviewDecision(req.Decision),
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(reviewed))
}

func statusFilter(w http.ResponseWriter, r *http.Request) (*domain.SubmissionStatus, bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, true
	}
	status := domain.SubmissionStatus(raw)
	if !status.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return nil, false
	}
	return &status, true
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	resp := submissionResponse{
		ID:          s.ID.String(),
		Type:        s.Type.String(),
		Title:       s.Title,
		Content:     s.Content,
		Excerpt:     s.Excerpt,
		AuthorName:  s.AuthorName,
		AuthorBio:   s.AuthorBio,
		Tags:        s.Tags,
		ReadingTime: s.ReadingTime,
		UserID:      s.UserID.String(),
		Status:      s.Status.String(),
		AdminNotes:  s.AdminNotes,
		CreatedAt:   s.CreatedAt,
		ReviewedAt:  s.ReviewedAt,
	}
	if s.Tags == nil {
		resp.Tags = []string{}
	}
	if s.CategoryID != nil {
		id := s.CategoryID.String()
		resp.CategoryID = &id
	}
	return resp
}

func toSubmissionResponses(subs []domain.Submission) []submissionResponse {
	out := make([]submissionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toSubmissionResponse(&subs[i]))
	}
	return out
}
