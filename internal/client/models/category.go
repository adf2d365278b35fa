package models

type Category struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCount int    `json:"productCount,omitempty"`
}
