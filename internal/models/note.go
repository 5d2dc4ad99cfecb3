package models

import "time"

// Note is a short annotation attached to one card. Notes are created and
// deleted, never updated in place.
type Note struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CardID    string    `json:"card_id" gorm:"index;type:varchar(36)" validate:"required"`
	Content   string    `json:"content" validate:"required,min=1,max=200"`
	Owner     string    `json:"owner" gorm:"index;type:varchar(100)"`
	CreatedAt time.Time `json:"created_at"`
}
