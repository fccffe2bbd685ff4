package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/Tomas-vilte/MateReview/internal/version"
)

type (
	errorResponse struct {
		Error       string                `json:"error"`
		Details     string                `json:"details,omitempty"`
		ModelOutput *models.ReviewVerdict `json:"model_output,omitempty"`
	}

	githubResponse struct {
		Review *models.ReviewReceipt `json:"review"`
		Labels []string              `json:"labels,omitempty"`
	}

	successResponse struct {
		Status         string               `json:"status"`
		ModelOutput    models.ReviewVerdict `json:"model_output"`
		GitHubResponse githubResponse       `json:"github_response"`
	}

	healthResponse struct {
		Status  string `json:"status"`
		Version string `json:"version"`
	}
)

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	prURL := r.FormValue("pr_url")
	if prURL == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: s.trans.GetMessage("error.missing_pr_url", 0, nil),
		})
		return
	}
	token := r.FormValue("token")

	result, err := s.reviewService.ReviewPR(r.Context(), prURL, token)
	if err != nil {
		s.writeReviewError(r, w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, successResponse{
		Status:      "success",
		ModelOutput: result.Verdict,
		GitHubResponse: githubResponse{
			Review: result.Receipt,
			Labels: result.AppliedLabels,
		},
	})
}

// writeReviewError traduce la taxonomía de errores del pipeline a códigos
// HTTP: 400 para problemas de input/token/fetch del PR, 500 para fallas del
// servicio de IA y de publicación. Un error de publicación conserva el
// veredicto ya calculado en el payload.
func (s *Server) writeReviewError(r *http.Request, w http.ResponseWriter, err error) {
	var (
		invalidURL   *domainerrors.InvalidPRURLError
		missingToken *domainerrors.MissingTokenError
		fetchErr     *domainerrors.PRFetchError
		completeErr  *domainerrors.CompletionError
		publishErr   *domainerrors.PublishError
	)

	switch {
	case errors.As(err, &invalidURL):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: s.trans.GetMessage("error.invalid_pr_url", 0, nil),
		})
	case errors.As(err, &missingToken):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: s.trans.GetMessage("error.missing_token", 0, nil),
		})
	case errors.As(err, &fetchErr):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   s.trans.GetMessage("error.fetch_pr", 0, nil),
			Details: err.Error(),
		})
	case errors.As(err, &completeErr):
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   s.trans.GetMessage("error.generate_review", 0, nil),
			Details: err.Error(),
		})
	case errors.As(err, &publishErr):
		verdict := publishErr.Verdict
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:       s.trans.GetMessage("error.publish_review", 0, nil),
			Details:     err.Error(),
			ModelOutput: &verdict,
		})
	default:
		logger.Error(r.Context(), "error inesperado en el pipeline de review", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "internal error",
			Details: err.Error(),
		})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: version.FullVersion(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(context.Background(), "no se pudo serializar la respuesta", err)
	}
}
