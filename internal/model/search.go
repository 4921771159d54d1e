package model

import "time"

// Search result kinds.
const (
	ResultKindDocument   = "documento"
	ResultKindExpediente = "expediente"
)

// SearchResult is the uniform row shape returned by the unified search.
// ID carries a kind prefix ("doc_" or "exp_") so mixed result sets stay
// unambiguous.
type SearchResult struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Area        string    `json:"area"`
	Responsible string    `json:"responsible"`

	ExpedienteID     string `json:"expediente_id,omitempty"`
	ExpedienteNumber string `json:"expediente_number,omitempty"`
	DocumentName     string `json:"document_name,omitempty"`
	DocType          string `json:"doc_type,omitempty"`
	FilePath         string `json:"file_path,omitempty"`
	State            string `json:"state,omitempty"`
}
