package models

import "time"

type Product struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string   `gorm:"unique;not null" json:"title"`
	Description string   `gorm:"not null" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	CategoryID  uint     `gorm:"not null" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"category"`
	Stock       int      `gorm:"default:0" json:"stock"`
	Image       string   `gorm:"not null" json:"image"`

	Reviews []Review `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`

	// Derived: recomputed whenever a review is added, updated or deleted.
	AverageRating float64 `json:"averageRating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
