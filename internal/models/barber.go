package models

import "time"

type Barber struct {
	ID string `gorm:"primaryKey;size:40" json:"id"`

	Name      string  `gorm:"size:100;not null" json:"name"`
	Specialty string  `gorm:"size:100" json:"specialty"`
	Rating    float64 `json:"rating"`
	AvatarURL string  `gorm:"size:255" json:"avatar_url"`
	Active    bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
