package models

import "time"

// Budget is the cost estimate attached to an order. ApprovedAt and
// RejectedAt are mutually exclusive; the budget endpoints enforce it.
type Budget struct {
	Amount     float64    `json:"amount"`
	Details    string     `json:"details"`
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
}

type Warranty struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Details   string    `json:"details"`
}

type RepairOrder struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	OrderNumber string `gorm:"size:20;uniqueIndex;not null" json:"order_number"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`
	Address     string `gorm:"size:255" json:"address"`

	ApplianceType string `gorm:"size:20" json:"appliance_type"`
	Brand         string `gorm:"size:50" json:"brand"`
	Model         string `gorm:"size:50" json:"model"`
	SerialNumber  string `gorm:"size:50" json:"serial_number,omitempty"`

	Problem     string `gorm:"size:500" json:"problem"`
	Status      string `gorm:"size:20;default:'pending'" json:"status"`
	Priority    string `gorm:"size:10;default:'medium'" json:"priority"`
	ServiceType string `gorm:"size:10;default:'workshop'" json:"service_type"`

	// Weak reference; a technician delete leaves it dangling.
	TechnicianID string `gorm:"size:36;index" json:"technician_id,omitempty"`

	ScheduledDate  *time.Time `json:"scheduled_date,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	DiagnosisNotes string     `gorm:"size:500" json:"diagnosis_notes,omitempty"`

	Budget   *Budget   `gorm:"serializer:json" json:"budget,omitempty"`
	Warranty *Warranty `gorm:"serializer:json" json:"warranty,omitempty"`
	Photos   []string  `gorm:"serializer:json" json:"photos"`

	Rating *float64 `json:"rating,omitempty"`
	Review string   `gorm:"size:500" json:"review,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
