package technician

// ===============================
// Technician Status
// ===============================

type Status string

const (
	StatusAvailable Status = "available"
	StatusBusy      Status = "busy"
	StatusOffDuty   Status = "off_duty"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusBusy, StatusOffDuty:
		return true
	}
	return false
}

// ===============================
// Specialties
// ===============================

type Specialty string

const (
	SpecialtyRefrigeration   Specialty = "refrigeration"
	SpecialtyWashing         Specialty = "washing"
	SpecialtyCooking         Specialty = "cooking"
	SpecialtyAirConditioning Specialty = "air_conditioning"
	SpecialtyGeneral         Specialty = "general"
)

func ValidSpecialty(s string) bool {
	switch Specialty(s) {
	case SpecialtyRefrigeration, SpecialtyWashing, SpecialtyCooking,
		SpecialtyAirConditioning, SpecialtyGeneral:
		return true
	}
	return false
}
