package dto

import "github.com/google/uuid"

type ListItemDTO struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	Completed bool      `json:"completed"`
	Price     float64   `json:"price,omitempty"`
	Location  string    `json:"location,omitempty"`
	Aisle     string    `json:"aisle,omitempty"`
}

type AddListItemRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Quantity  int       `json:"quantity" validate:"omitempty,min=1"`
}

type ListResponse struct {
	Items     []ListItemDTO `json:"items"`
	Completed int           `json:"completed"`
	Total     int           `json:"total"`
}
