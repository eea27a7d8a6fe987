package order

import (
	"strings"

	"github.com/restoservice/repair-admin/internal/models"
)

// Filters is the active display selection. It never changes the
// underlying collection, only which subset consumers see.
type Filters struct {
	Status        string `form:"status" json:"status,omitempty"`
	Priority      string `form:"priority" json:"priority,omitempty"`
	ApplianceType string `form:"appliance_type" json:"appliance_type,omitempty"`
	ServiceType   string `form:"service_type" json:"service_type,omitempty"`
	TechnicianID  string `form:"technician_id" json:"technician_id,omitempty"`
	Search        string `form:"search" json:"search,omitempty"`
}

func (f Filters) Empty() bool {
	return f == Filters{}
}

func (f Filters) Match(o *models.RepairOrder) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Priority != "" && o.Priority != f.Priority {
		return false
	}
	if f.ApplianceType != "" && o.ApplianceType != f.ApplianceType {
		return false
	}
	if f.ServiceType != "" && o.ServiceType != f.ServiceType {
		return false
	}
	if f.TechnicianID != "" && o.TechnicianID != f.TechnicianID {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(strings.TrimSpace(f.Search))
		if !strings.Contains(strings.ToLower(o.ClientName), needle) &&
			!strings.Contains(strings.ToLower(o.OrderNumber), needle) &&
			!strings.Contains(strings.ToLower(o.ClientPhone), needle) {
			return false
		}
	}

	return true
}
