package dto

// MutacionResponse is the envelope for create/update/delete confirmations.
// ID carries the affected row id on creations and upserts.
type MutacionResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}
