package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"interest-capture/internal/common/errors"
	"interest-capture/internal/common/validation"
	"interest-capture/internal/interest"
	"interest-capture/internal/submission"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, catalogResponse{Products: s.catalog.Products()})
}

func (s *Server) handleModalState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, modalResponse{
		Modal:      s.modal.Current(),
		Submission: s.modal.Machine().Snapshot(),
	})
}

func (s *Server) handleModalOpen(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readValidated(w, r, getModalOpenSchema())
	if !ok {
		return
	}

	var req modalOpenRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.NewValidationFailedError(err.Error()))
		return
	}

	product, found := s.catalog.Get(req.ProductID)
	if !found {
		s.writeError(w, http.StatusNotFound, errors.NewProductNotFoundError(req.ProductID))
		return
	}

	state := s.modal.Open(product)
	s.writeJSON(w, http.StatusOK, modalResponse{
		Modal:      state,
		Submission: s.modal.Machine().Snapshot(),
	})
}

func (s *Server) handleModalClose(w http.ResponseWriter, r *http.Request) {
	state := s.modal.Close()
	s.writeJSON(w, http.StatusOK, modalResponse{
		Modal:      state,
		Submission: s.modal.Machine().Snapshot(),
	})
}

func (s *Server) handleModalSubmit(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readValidated(w, r, getModalSubmitSchema())
	if !ok {
		return
	}

	var req modalSubmitRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.NewValidationFailedError(err.Error()))
		return
	}

	state := s.modal.Current()
	if !state.IsOpen || state.Target == nil {
		s.writeError(w, http.StatusConflict, errors.NewModalNotOpenError())
		return
	}

	record, err := interest.NewProductInterest(state.Target.ID, req.Email)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.NewValidationFailedError(err.Error()))
		return
	}

	s.runSubmission(w, r, s.modal.Machine(), SurfaceModal, record)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readValidated(w, r, getContactSchema())
	if !ok {
		return
	}

	var req contactRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, errors.NewValidationFailedError(err.Error()))
		return
	}

	record, err := interest.NewContactInquiry(req.Name, req.Email, req.Message)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.NewValidationFailedError(err.Error()))
		return
	}

	s.runSubmission(w, r, s.contact, SurfaceContact, record)
}

func (s *Server) handleSectionFocus(w http.ResponseWriter, r *http.Request) {
	sectionID := mux.Vars(r)["id"]
	focused := s.navigator.FocusSection(sectionID)

	// Unknown sections are a no-op, never an error.
	s.writeJSON(w, http.StatusOK, focusResponse{
		Section: sectionID,
		Focused: focused,
	})
}

// runSubmission drives one machine through a full begin cycle. A resting
// machine is reset first so every incoming request starts fresh.
func (s *Server) runSubmission(w http.ResponseWriter, r *http.Request, machine *submission.Machine, surface string, record *interest.Record) {
	switch machine.State() {
	case submission.StateSucceeded, submission.StateDegraded:
		if err := machine.Reset(); err != nil {
			s.writeError(w, http.StatusConflict, errors.NewSubmissionInFlightError(surface))
			return
		}
	}

	start := time.Now()
	snap, err := machine.Begin(r.Context(), record)
	if err != nil {
		s.writeError(w, http.StatusConflict, err)
		return
	}
	s.obs.RecordSubmissionDuration(r.Context(), time.Since(start), surface)
	s.obs.RecordSubmission(r.Context(), surface, string(snap.State))

	resp := submitResponse{Snapshot: snap}
	if snap.Fallback != nil {
		resp.Mailto = snap.Fallback.Mailto()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// readValidated reads the body and checks it against the surface schema.
// On failure it writes the 422 response and returns ok=false.
func (s *Server) readValidated(w http.ResponseWriter, r *http.Request, schema validation.JSONSchema) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, errors.NewValidationFailedError("unreadable body"))
		return nil, false
	}

	result, err := validation.ValidateJSON(body, schema)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, errors.NewInternalError(err))
		return nil, false
	}
	if !result.Valid {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:    string(errors.ErrCodeValidationFailed),
			Message: "Input validation failed",
			Details: result.Errors,
		})
		return nil, false
	}

	return body, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{
		Code:    string(errors.ErrCodeInternal),
		Message: err.Error(),
	}
	if stdErr, ok := err.(*errors.StandardError); ok {
		resp.Code = string(stdErr.Code)
		resp.Message = stdErr.Message
		if stdErr.Details != "" {
			resp.Details = stdErr.Details
		}
	}
	s.writeJSON(w, status, resp)
}
