package models

import "time"

type Schedule struct {
	Start   string `json:"start"` // HH:MM
	End     string `json:"end"`   // HH:MM
	DaysOff []int  `json:"days_off"`
}

type Technician struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	Status      string   `gorm:"size:20;default:'available'" json:"status"`
	Specialties []string `gorm:"serializer:json" json:"specialties"`

	// Counters are maintained by callers, never derived from orders here.
	Rating               float64 `gorm:"default:0" json:"rating"`
	ActiveOrders         int     `gorm:"default:0" json:"active_orders"`
	TotalCompletedOrders int     `gorm:"default:0" json:"total_completed_orders"`

	Schedule *Schedule `gorm:"serializer:json" json:"schedule,omitempty"`

	JoinedAt  time.Time `json:"joined_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
