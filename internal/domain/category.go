package domain

import "github.com/google/uuid"

// Category tags movements. Icon is a glyph name, BackgroundColor a hex
// color string, both chosen server-side.
type Category struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Icon            string    `json:"icon"`
	BackgroundColor string    `json:"backgroundColor"`
	IsDefault       bool      `json:"isDefault"`
}

func (c Category) Identity() uuid.UUID { return c.ID }

// CategoryBody is the write shape for creating or updating a category.
type CategoryBody struct {
	Name            string `json:"name" validate:"required"`
	Icon            string `json:"icon" validate:"required"`
	BackgroundColor string `json:"backgroundColor" validate:"required"`
}
