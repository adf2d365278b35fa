package models

type Supplier struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail,omitempty"`
	Phone        string `json:"phone"`
	Address      string `json:"address,omitempty"`
	IsActive     bool   `json:"isActive,omitempty"`
	ProductCount int    `json:"productCount,omitempty"`
}
