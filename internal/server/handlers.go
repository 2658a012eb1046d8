package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"github.com/rgehrsitz/hpgo/internal/domain"
	"github.com/rgehrsitz/hpgo/internal/params"
	"github.com/shopspring/decimal"
)

type estimateRequest struct {
	Params map[string]any `json:"params"`
	Saved  map[string]any `json:"saved"`
}

type estimateResponse struct {
	Schema       string                  `json:"schema"`
	Input        domain.ScenarioInput    `json:"input"`
	Breakdown    domain.CostBreakdown    `json:"breakdown"`
	PaybackYears *decimal.Decimal        `json:"paybackYears,omitempty"`
	Defaulted    []domain.DefaultedField `json:"defaulted,omitempty"`
	Lead         map[string]string       `json:"lead"`
}

type verifyResponse struct {
	Schema string `json:"schema"`
	Valid  bool   `json:"valid"`
	Key    string `json:"key,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "schema": params.SchemaVersion})
}

// handleEstimateQuery estimates a deep link: every query parameter is an input.
func (s *Server) handleEstimateQuery(w http.ResponseWriter, r *http.Request) {
	s.respondEstimate(w, r, params.Decode(r.URL.Query()))
}

// handleEstimateBody estimates {params, saved}; params win over saved, saved
// over defaults.
func (s *Server) handleEstimateBody(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	partial := params.Resolve(params.Decode(flatValues(req.Params)), params.Decode(flatValues(req.Saved)))
	s.respondEstimate(w, r, partial)
}

// handleLeadParams returns the outbound flat set for a deep link, form encoded.
func (s *Server) handleLeadParams(w http.ResponseWriter, r *http.Request) {
	report := s.estimate(r.Context(), params.Decode(r.URL.Query()))
	w.Header().Set("Content-Type", "application/x-www-form-urlencoded")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, params.NewLeadParams(report).Values().Encode())
}

// handleVerifyLeadParams checks a form-encoded lead set against the schema.
func (s *Server) handleVerifyLeadParams(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	resp := verifyResponse{Schema: params.SchemaVersion, Valid: true}
	if _, err := params.DecodeLeadParams(r.PostForm); err != nil {
		var schemaErr *params.SchemaError
		if !errors.As(err, &schemaErr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp.Valid = false
		resp.Key = schemaErr.Key
		resp.Reason = schemaErr.Reason
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) respondEstimate(w http.ResponseWriter, r *http.Request, partial domain.PartialScenario) {
	report := s.estimate(r.Context(), partial)

	resp := estimateResponse{
		Schema:    params.SchemaVersion,
		Input:     report.Input,
		Breakdown: report.Breakdown,
		Defaulted: report.Normalization.Substituted(),
		Lead:      flatten(params.NewLeadParams(report).Values()),
	}
	if years, ok := report.Breakdown.PaybackYears(); ok {
		resp.PaybackYears = &years
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writing response: %v", err)
	}
}

// flatValues converts a JSON object of scalars into url.Values. Nested
// objects, arrays and nulls are dropped.
func flatValues(m map[string]any) url.Values {
	values := url.Values{}
	for k, v := range m {
		switch v.(type) {
		case nil, map[string]any, []any:
			continue
		}
		values.Set(k, fmt.Sprint(v))
	}
	return values
}

func flatten(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k := range values {
		out[k] = values.Get(k)
	}
	return out
}
