package models

import "time"

// WishlistItem is a card the user wants to acquire. Unlike owned cards and
// trade listings, the condition may be "Any". Priority runs 1 (most urgent)
// to 5 and defaults to 3.
type WishlistItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required,max=200"`
	Set       string    `json:"set" validate:"required,max=200"`
	Condition string    `json:"condition" validate:"required,oneof='Mint' 'Near Mint' 'Excellent' 'Good' 'Fair' 'Poor' 'Any'"`
	MaxPrice  float64   `json:"max_price" validate:"gte=0"`
	Type      string    `json:"type" validate:"required,oneof='Pokemon' 'Yu-Gi-Oh' 'Magic: The Gathering' 'Comic Book' 'Other'"`
	Priority  int       `json:"priority" validate:"omitempty,min=1,max=5"`
	Owner     string    `json:"owner" gorm:"index;type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultPriority is applied when a wishlist item is created without one.
const DefaultPriority = 3
