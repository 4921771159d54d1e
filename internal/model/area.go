package model

// Area is an organizational unit referenced by expedientes and documents.
// It cannot be deleted while any expediente references it.
type Area struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
