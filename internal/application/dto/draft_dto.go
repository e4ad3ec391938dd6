package dto

import (
	"encoding/json"
	"time"
)

// DraftResponse rascunho gravado de um formulário.
type DraftResponse struct {
	FormID  string          `json:"form_id"`
	Estado  json.RawMessage `json:"estado"`
	SavedAt time.Time       `json:"saved_at,omitempty"`
}
