package handler

import (
	"hairnote/internal/report/models"
)

// AnalyzeRequest is the HTTP request body for POST /analyze and
// POST /analyze/flat. The wire shape is the domain input itself.
type AnalyzeRequest struct {
	models.Input
}

// Validate normalizes and validates the decoded payload.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *AnalyzeRequest) Validate() error {
	r.Normalize()
	return r.Input.Validate()
}
