package order

import (
	"time"

	"github.com/restoservice/repair-admin/internal/models"
)

// Patch is a partial update. Nil means "leave unchanged"; a present
// pointer to the zero value clears the field (e.g. unassigning the
// technician with an empty string).
type Patch struct {
	ClientName  *string `json:"client_name,omitempty"`
	ClientPhone *string `json:"client_phone,omitempty"`
	ClientEmail *string `json:"client_email,omitempty"`
	Address     *string `json:"address,omitempty"`

	ApplianceType *string `json:"appliance_type,omitempty" binding:"omitempty,oneof=refrigerator washer dryer dishwasher oven microwave stove air_conditioner other"`
	Brand         *string `json:"brand,omitempty"`
	Model         *string `json:"model,omitempty"`
	SerialNumber  *string `json:"serial_number,omitempty"`

	Problem     *string `json:"problem,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=pending diagnosed budgeted approved in_repair waiting_parts completed delivered cancelled"`
	Priority    *string `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	ServiceType *string `json:"service_type,omitempty" binding:"omitempty,oneof=workshop home"`

	TechnicianID *string `json:"technician_id,omitempty"`

	ScheduledDate  *time.Time `json:"scheduled_date,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	DiagnosisNotes *string    `json:"diagnosis_notes,omitempty"`

	Warranty *models.Warranty `json:"warranty,omitempty"`
	Photos   *[]string        `json:"photos,omitempty"`
}

// Apply merges the patch into the order. Timestamp stamping is the
// store's job, not the patch's.
func (p Patch) Apply(o *models.RepairOrder) {
	if p.ClientName != nil {
		o.ClientName = *p.ClientName
	}
	if p.ClientPhone != nil {
		o.ClientPhone = *p.ClientPhone
	}
	if p.ClientEmail != nil {
		o.ClientEmail = *p.ClientEmail
	}
	if p.Address != nil {
		o.Address = *p.Address
	}
	if p.ApplianceType != nil {
		o.ApplianceType = *p.ApplianceType
	}
	if p.Brand != nil {
		o.Brand = *p.Brand
	}
	if p.Model != nil {
		o.Model = *p.Model
	}
	if p.SerialNumber != nil {
		o.SerialNumber = *p.SerialNumber
	}
	if p.Problem != nil {
		o.Problem = *p.Problem
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Priority != nil {
		o.Priority = *p.Priority
	}
	if p.ServiceType != nil {
		o.ServiceType = *p.ServiceType
	}
	if p.TechnicianID != nil {
		o.TechnicianID = *p.TechnicianID
	}
	if p.ScheduledDate != nil {
		o.ScheduledDate = p.ScheduledDate
	}
	if p.CompletedAt != nil {
		o.CompletedAt = p.CompletedAt
	}
	if p.DiagnosisNotes != nil {
		o.DiagnosisNotes = *p.DiagnosisNotes
	}
	if p.Warranty != nil {
		o.Warranty = p.Warranty
	}
	if p.Photos != nil {
		o.Photos = *p.Photos
	}
}
