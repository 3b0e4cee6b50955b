// Package server is the thin HTTP layer over the credit memo usecase:
// routing, request decoding and validation, the error envelope and CORS.
// No business logic lives here.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"credit-memo-service/internal/domain"
	"credit-memo-service/internal/usecase"
)

// Server routes credit memo requests to the usecase.
type Server struct {
	uc      *usecase.CreditMemoUseCase
	handler http.Handler
}

// New wires the HTTP routes around the given usecase.
func New(uc *usecase.CreditMemoUseCase) *Server {
	s := &Server{uc: uc}

	mux := http.NewServeMux()
	mux.HandleFunc("/credit-memos", s.handleGenerate)
	mux.HandleFunc("/credit-memos/summary", s.handleSummary)
	mux.HandleFunc("/credit-memos/validate", s.handleValidate)
	mux.HandleFunc("/credit-memos/health", s.handleHealth)

	s.handler = recoverPanics(cors(mux))
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	log.Printf("received credit memo generation request from %s for customer %s",
		req.Requester.RequesterType, req.Customer.CustomerID)

	resp, err := s.uc.GenerateCreditMemo(r.Context(), req)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	log.Printf("generated credit memo %s for customer %s", resp.CreditMemoNumber, resp.CustomerID)
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	summary, err := s.uc.GenerateSummary(r.Context(), req)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domain.SummaryResponse{
		CustomerID:    req.Customer.CustomerID,
		InvoiceNumber: req.OriginalTransaction.InvoiceNumber,
		Summary:       summary,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	result, err := s.uc.ValidateRequest(r.Context(), req)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", "Use GET for this endpoint", nil)
		return
	}
	writeJSON(w, http.StatusOK, domain.HealthResponse{
		Status:  "UP",
		Message: "Credit Memo Service is operational",
	})
}

// decodeRequest parses and validates the request body. On failure it has
// already written the 4xx reply and returns ok=false; the usecase is
// never invoked for a malformed request.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (*domain.CreditMemoRequest, bool) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", "Use POST for this endpoint", nil)
		return nil, false
	}

	var req domain.CreditMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid Request", "Request body is not valid JSON: "+err.Error(), nil)
		return nil, false
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		log.Printf("validation error on %s: %v", r.URL.Path, fieldErrs)
		writeError(w, r, http.StatusBadRequest, "Validation Error", "Invalid request parameters", fieldErrs)
		return nil, false
	}

	return &req, true
}

// writeFailure maps usecase errors onto the envelope. The full cause is
// logged for operators; callers only see a generic message.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var genErr *usecase.GenerationError
	if errors.As(err, &genErr) {
		log.Printf("credit memo generation error on %s: %v", r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "Credit Memo Generation Error",
			"Failed to generate credit memo. Please try again later.", nil)
		return
	}

	log.Printf("unexpected error on %s: %v", r.URL.Path, err)
	writeError(w, r, http.StatusInternalServerError, "Internal Server Error",
		"An unexpected error occurred. Please try again later.", nil)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, label, message string, fieldErrs map[string]string) {
	writeJSON(w, statusCode, domain.ErrorResponse{
		Timestamp: time.Now(),
		Status:    statusCode,
		Error:     label,
		Message:   message,
		Path:      r.URL.Path,
		Errors:    fieldErrs,
	})
}

// cors mirrors the permissive policy of the original deployment: any
// origin, standard methods, preflight cached for an hour.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverPanics converts an unanticipated panic into a generic 500
// without leaking internal detail to the caller.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic handling %s: %v", r.URL.Path, rec)
				writeError(w, r, http.StatusInternalServerError, "Internal Server Error",
					"An unexpected error occurred. Please try again later.", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
