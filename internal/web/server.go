// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package web exposes the masking pipeline over HTTP. It is a thin
// transport: all detection decisions live in the core, and the server
// only ever hands masked text to the classifier.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mailmask/internal/classifier"
	"mailmask/internal/core"
	"mailmask/internal/detector"
	"mailmask/internal/observability"
	"mailmask/internal/storage"
)

// maxBodyBytes caps request bodies; emails beyond this are rejected
// rather than buffered.
const maxBodyBytes = 10 << 20

// Server is the HTTP front-end over the masking pipeline.
type Server struct {
	pipeline   *core.Pipeline
	classifier classifier.Classifier
	store      *storage.Store

	observer *observability.StandardObserver
	metrics  *observability.Metrics
}

// NewServer creates the HTTP server. The store may be nil, in which
// case records are not persisted and retrieval endpoints return 404.
func NewServer(pipeline *core.Pipeline, cls classifier.Classifier, store *storage.Store,
	observer *observability.StandardObserver, metrics *observability.Metrics) *Server {
	return &Server{
		pipeline:   pipeline,
		classifier: cls,
		store:      store,
		observer:   observer,
		metrics:    metrics,
	}
}

// Router builds the chi router with all routes attached.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/classify", s.handleClassify)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", observability.MetricsHandler().ServeHTTP)
	r.Get("/emails/{id}", s.handleGetMasked)
	r.Get("/emails/{id}/original", s.handleGetOriginal)

	return r
}

// classifyRequest is the input model for the classify endpoint.
type classifyRequest struct {
	InputEmailBody string `json:"input_email_body"`
}

// classifyResponse is the output model for the classify endpoint.
type classifyResponse struct {
	InputEmailBody  string                `json:"input_email_body"`
	MaskedEntities  []detector.Descriptor `json:"list_of_masked_entities"`
	MaskedEmail     string                `json:"masked_email"`
	CategoryOfEmail string                `json:"category_of_the_email"`
	EmailID         string                `json:"email_id,omitempty"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result := s.pipeline.Process(r.Context(), req.InputEmailBody)

	// Only the masked text reaches the classifier.
	category, err := s.classifier.Classify(r.Context(), result.MaskedText)
	if err != nil {
		// Masking succeeded; a classifier outage should not block it.
		category = ""
		if s.observer != nil {
			s.observer.LogOperation(observability.StandardObservabilityData{
				Component: "web",
				Operation: "classify",
				Success:   false,
				Error:     err.Error(),
			})
		}
	}

	var emailID string
	if s.store != nil {
		emailID, err = s.store.Store(req.InputEmailBody, result.MaskedText, result.Descriptors, category)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to store email: %w", err))
			return
		}
	}

	if s.metrics != nil {
		s.metrics.RequestsTotal.WithLabelValues("ok").Inc()
	}

	descriptors := result.Descriptors
	if descriptors == nil {
		descriptors = []detector.Descriptor{}
	}

	s.writeJSON(w, http.StatusOK, classifyResponse{
		InputEmailBody:  req.InputEmailBody,
		MaskedEntities:  descriptors,
		MaskedEmail:     result.MaskedText,
		CategoryOfEmail: category,
		EmailID:         emailID,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "mailmask API is running",
	})
}

func (s *Server) handleGetMasked(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, errors.New("persistence is not enabled"))
		return
	}

	record, err := s.store.GetMasked(chi.URLParam(r, "id"))
	if err != nil {
		s.writeStorageError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleGetOriginal(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, http.StatusNotFound, errors.New("persistence is not enabled"))
		return
	}

	record, err := s.store.GetOriginal(chi.URLParam(r, "id"), r.Header.Get("X-Access-Key"))
	if err != nil {
		s.writeStorageError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, record)
}

func (s *Server) writeStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, storage.ErrInvalidAccessKey):
		s.writeError(w, http.StatusForbidden, err)
	default:
		s.writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if s.metrics != nil {
		s.metrics.RequestsTotal.WithLabelValues("error").Inc()
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
