package entity

import (
	"time"

	"github.com/google/uuid"
)

// Receipt represents a receipt for data transfer between layers.
type Receipt struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Merchant        string    `json:"merchant"`
	Total           float64   `json:"total"`
	PurchaseDate    time.Time `json:"purchase_date"`
	Category        *string   `json:"category,omitempty"`
	Subcategory     *string   `json:"subcategory,omitempty"`
	ConfidenceScore *float64  `json:"confidence_score,omitempty"`
	Summary         *string   `json:"summary,omitempty"`
	RawText         *string   `json:"raw_text,omitempty"`
	ImageURL        string    `json:"image_url"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReceiptSummary is the fixed projection returned by filtering and export:
// everything the UI needs to render a row, without raw_text.
type ReceiptSummary struct {
	ID              uuid.UUID `json:"id"`
	Merchant        string    `json:"merchant"`
	Total           float64   `json:"total"`
	PurchaseDate    time.Time `json:"purchase_date"`
	Category        *string   `json:"category,omitempty"`
	Subcategory     *string   `json:"subcategory,omitempty"`
	ConfidenceScore *float64  `json:"confidence_score,omitempty"`
	Summary         *string   `json:"summary,omitempty"`
	ImageURL        string    `json:"image_url"`
}

// Summarize projects a full receipt down to the filter-result shape.
func (r *Receipt) Summarize() ReceiptSummary {
	return ReceiptSummary{
		ID:              r.ID,
		Merchant:        r.Merchant,
		Total:           r.Total,
		PurchaseDate:    r.PurchaseDate,
		Category:        r.Category,
		Subcategory:     r.Subcategory,
		ConfidenceScore: r.ConfidenceScore,
		Summary:         r.Summary,
		ImageURL:        r.ImageURL,
	}
}
