package server

import (
	"interest-capture/internal/catalog"
	"interest-capture/internal/submission"
	"interest-capture/internal/ui/modal"
)

// Surface names, used for machines, metrics and error detail.
const (
	SurfaceContact = "contact"
	SurfaceModal   = "modal"
)

type modalOpenRequest struct {
	ProductID string `json:"productId"`
}

type modalSubmitRequest struct {
	Email string `json:"email"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type catalogResponse struct {
	Products []catalog.Product `json:"products"`
}

// submitResponse carries the post-submission snapshot plus the mailto URL
// when the surface degraded to the manual channel.
type submitResponse struct {
	submission.Snapshot
	Mailto string `json:"mailto,omitempty"`
}

type modalResponse struct {
	Modal      modal.State         `json:"modal"`
	Submission submission.Snapshot `json:"submission"`
}

type focusResponse struct {
	Section string `json:"section"`
	Focused bool   `json:"focused"`
}

type errorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
