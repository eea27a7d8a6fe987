package technician

import "github.com/restoservice/repair-admin/internal/models"

// Patch is a partial update; nil fields are left unchanged.
type Patch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string `json:"phone,omitempty"`

	Status      *string   `json:"status,omitempty" binding:"omitempty,oneof=available busy off_duty"`
	Specialties *[]string `json:"specialties,omitempty" binding:"omitempty,min=1,dive,oneof=refrigeration washing cooking air_conditioning general"`

	Rating               *float64 `json:"rating,omitempty" binding:"omitempty,min=0,max=5"`
	ActiveOrders         *int     `json:"active_orders,omitempty" binding:"omitempty,min=0"`
	TotalCompletedOrders *int     `json:"total_completed_orders,omitempty" binding:"omitempty,min=0"`

	Schedule *models.Schedule `json:"schedule,omitempty"`
}

func (p Patch) Apply(t *models.Technician) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Email != nil {
		t.Email = *p.Email
	}
	if p.Phone != nil {
		t.Phone = *p.Phone
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Specialties != nil {
		t.Specialties = *p.Specialties
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.ActiveOrders != nil {
		t.ActiveOrders = *p.ActiveOrders
	}
	if p.TotalCompletedOrders != nil {
		t.TotalCompletedOrders = *p.TotalCompletedOrders
	}
	if p.Schedule != nil {
		t.Schedule = p.Schedule
	}
}
