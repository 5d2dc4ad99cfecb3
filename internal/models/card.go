package models

import "time"

// Card represents a single card in a user's collection.
// Owner and CreatedAt are assigned server-side and never taken from the
// request body; Update replaces the remaining fields wholesale.
type Card struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required,max=200"`
	Set       string    `json:"set" validate:"required,max=200"`
	Condition string    `json:"condition" validate:"required,oneof='Mint' 'Near Mint' 'Excellent' 'Good' 'Fair' 'Poor'"`
	Price     float64   `json:"price" validate:"gte=0"`
	Image     string    `json:"image" validate:"omitempty,uri"`
	Type      string    `json:"type" validate:"required,oneof='Pokemon' 'Yu-Gi-Oh' 'Magic: The Gathering' 'Comic Book' 'Other'"`
	Rarity    string    `json:"rarity"`
	Owner     string    `json:"owner" gorm:"index;type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultImage is used when a card is created without an image URI.
const DefaultImage = "/images/default-card.jpg"

// DefaultRarity is used when a card is created without a rarity.
const DefaultRarity = "Common"
