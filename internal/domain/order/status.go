package order

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending      Status = "pending"
	StatusDiagnosed    Status = "diagnosed"
	StatusBudgeted     Status = "budgeted"
	StatusApproved     Status = "approved"
	StatusInRepair     Status = "in_repair"
	StatusWaitingParts Status = "waiting_parts"
	StatusCompleted    Status = "completed"
	StatusDelivered    Status = "delivered"
	StatusCancelled    Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusDiagnosed, StatusBudgeted, StatusApproved,
		StatusInRepair, StatusWaitingParts, StatusCompleted,
		StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// InProgress groups the statuses the dashboard counts as "in progress".
func (s Status) InProgress() bool {
	switch s {
	case StatusDiagnosed, StatusInRepair, StatusWaitingParts:
		return true
	}
	return false
}

// ===============================
// Priority / Service / Appliance
// ===============================

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type ServiceType string

const (
	ServiceWorkshop ServiceType = "workshop"
	ServiceHome     ServiceType = "home"
)

type ApplianceType string

const (
	ApplianceRefrigerator   ApplianceType = "refrigerator"
	ApplianceWasher         ApplianceType = "washer"
	ApplianceDryer          ApplianceType = "dryer"
	ApplianceDishwasher     ApplianceType = "dishwasher"
	ApplianceOven           ApplianceType = "oven"
	ApplianceMicrowave      ApplianceType = "microwave"
	ApplianceStove          ApplianceType = "stove"
	ApplianceAirConditioner ApplianceType = "air_conditioner"
	ApplianceOther          ApplianceType = "other"
)
