package model

import "time"

// Document types accepted by the system.
const (
	DocTypePDF   = "PDF"
	DocTypeWord  = "Word"
	DocTypeExcel = "Excel"
	DocTypeOther = "Otro"
)

// ValidDocType reports whether s is one of the accepted document types.
func ValidDocType(s string) bool {
	switch s {
	case DocTypePDF, DocTypeWord, DocTypeExcel, DocTypeOther:
		return true
	}
	return false
}

// Document is a file-backed record attached to exactly one expediente.
//
// AreaID and ResponsibleUserID are snapshots copied from the owning
// expediente when the document is created or updated. They do NOT follow
// later changes to the expediente; treat them as captured-at-write values.
type Document struct {
	ID                string     `json:"id"`
	ExpedienteID      string     `json:"expediente_id"`
	Name              string     `json:"name"`
	DocType           string     `json:"doc_type"`
	Date              time.Time  `json:"date"`
	ResponsibleUserID string     `json:"responsible_user_id"`
	AreaID            string     `json:"area_id"`
	FilePath          string     `json:"file_path"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`

	// Joined display fields, populated by list queries only.
	ExpedienteNumber    string `json:"expediente_number,omitempty"`
	AreaName            string `json:"area_name,omitempty"`
	ResponsibleUsername string `json:"responsible_username,omitempty"`
}

// Trashed reports whether the document is currently in the trash.
func (d *Document) Trashed() bool {
	return d.DeletedAt != nil
}
