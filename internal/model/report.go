package model

import "time"

// CountByLabel is a generic label/count pair used by the reports dashboard.
type CountByLabel struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RecentDocument is a compact document row for the dashboard.
type RecentDocument struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	DocType          string    `json:"doc_type"`
	Date             time.Time `json:"date"`
	ExpedienteNumber string    `json:"expediente_number"`
	AreaName         string    `json:"area_name"`
}

// RecentExpediente is a compact expediente row for the dashboard.
type RecentExpediente struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	AreaName  string    `json:"area_name"`
}

// MonthlyCount is a per-month document count ("YYYY-MM").
type MonthlyCount struct {
	Month     string `json:"month"`
	Documents int    `json:"documents"`
}

// ReportStats aggregates the dashboard figures. Trashed documents are not
// counted.
type ReportStats struct {
	TotalDocuments     int                `json:"total_documents"`
	TotalExpedientes   int                `json:"total_expedientes"`
	DocumentsByType    []CountByLabel     `json:"documents_by_type"`
	ExpedientesByState []CountByLabel     `json:"expedientes_by_state"`
	DocumentsByArea    []CountByLabel     `json:"documents_by_area"`
	ExpedientesByArea  []CountByLabel     `json:"expedientes_by_area"`
	RecentDocuments    []RecentDocument   `json:"recent_documents"`
	RecentExpedientes  []RecentExpediente `json:"recent_expedientes"`
	MonthlyStats       []MonthlyCount     `json:"monthly_stats"`
}
