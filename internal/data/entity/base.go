package entity

// Base carries the store-assigned identifier shared by every record.
type Base struct {
	ID int `json:"id,omitempty"`
}
