package models

import "time"

// Trade is a listing offering a card up for trade. Listings are created and
// deleted; there is no edit.
type Trade struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CardName   string    `json:"card_name" validate:"required,max=200"`
	Set        string    `json:"set" validate:"required,max=200"`
	Condition  string    `json:"condition" validate:"required,oneof='Mint' 'Near Mint' 'Excellent' 'Good' 'Fair' 'Poor'"`
	Type       string    `json:"type" validate:"required,oneof='Pokemon' 'Yu-Gi-Oh' 'Magic: The Gathering' 'Comic Book' 'Other'"`
	LookingFor string    `json:"looking_for" validate:"required,max=500"`
	Owner      string    `json:"owner" gorm:"index;type:varchar(100)"`
	CreatedAt  time.Time `json:"created_at"`
}
