package model

import "time"

// Expediente states. The set is closed; the database enforces it with a CHECK
// constraint and handlers validate before any storage call.
const (
	StateEnTramite = "en_tramite"
	StateCerrado   = "cerrado"
	StatePendiente = "pendiente"
)

// ValidState reports whether s is one of the known expediente states.
func ValidState(s string) bool {
	switch s {
	case StateEnTramite, StateCerrado, StatePendiente:
		return true
	}
	return false
}

// Expediente is the top-level administrative record of a tracked matter.
// UpdatedAt is refreshed on every mutation of the expediente itself and on
// every mutation of any document under it.
type Expediente struct {
	ID                string    `json:"id"`
	Number            string    `json:"number"`
	State             string    `json:"state"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	ResponsibleUserID string    `json:"responsible_user_id"`
	AreaID            string    `json:"area_id"`

	// Joined display fields, populated by list queries only.
	AreaName            string `json:"area_name,omitempty"`
	ResponsibleUsername string `json:"responsible_username,omitempty"`
}
