package seed

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/restoservice/repair-admin/internal/models"
)

// Run inserts the canonical sample data set into an empty database:
// one branch, the admin user, three technicians and the five
// REP-2024 orders. A database that already has orders is left alone.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.RepairOrder{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("seeding sample data")

	if err := db.Create(branch()).Error; err != nil {
		return err
	}
	if err := db.Create(adminUser()).Error; err != nil {
		return err
	}
	if err := db.Create(Technicians()).Error; err != nil {
		return err
	}
	if err := db.Create(Orders()).Error; err != nil {
		return err
	}

	return nil
}

func branch() *models.Branch {
	return &models.Branch{
		ID:       "1",
		Name:     "RestoService Centro",
		Phone:    "555-0100",
		Address:  "Av. Reforma 100",
		Timezone: "America/Mexico_City",
	}
}

func adminUser() *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	return &models.User{
		ID:           "1",
		BranchID:     "1",
		Name:         "Admin User",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         "admin",
	}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func ratingPtr(v float64) *float64 {
	return &v
}

// Technicians returns the three sample technicians.
func Technicians() []models.Technician {
	return []models.Technician{
		{
			ID:                   "1",
			Name:                 "Carlos Rodríguez",
			Email:                "carlos@restoservice.com",
			Phone:                "555-0101",
			Status:               "available",
			Specialties:          []string{"refrigeration", "air_conditioning"},
			Rating:               4.8,
			ActiveOrders:         2,
			TotalCompletedOrders: 145,
			JoinedAt:             date("2023-01-15"),
			Schedule: &models.Schedule{
				Start:   "09:00",
				End:     "18:00",
				DaysOff: []int{0, 6},
			},
		},
		{
			ID:                   "2",
			Name:                 "Ana Martínez",
			Email:                "ana@restoservice.com",
			Phone:                "555-0102",
			Status:               "busy",
			Specialties:          []string{"washing", "cooking"},
			Rating:               4.9,
			ActiveOrders:         3,
			TotalCompletedOrders: 167,
			JoinedAt:             date("2023-03-20"),
			Schedule: &models.Schedule{
				Start:   "08:00",
				End:     "17:00",
				DaysOff: []int{0, 6},
			},
		},
		{
			ID:                   "3",
			Name:                 "Miguel Sánchez",
			Email:                "miguel@restoservice.com",
			Phone:                "555-0103",
			Status:               "available",
			Specialties:          []string{"refrigeration", "washing", "general"},
			Rating:               4.7,
			ActiveOrders:         1,
			TotalCompletedOrders: 98,
			JoinedAt:             date("2023-06-10"),
			Schedule: &models.Schedule{
				Start:   "10:00",
				End:     "19:00",
				DaysOff: []int{0, 6},
			},
		},
	}
}

// Orders returns the five sample repair orders.
func Orders() []models.RepairOrder {
	return []models.RepairOrder{
		{
			ID:             "1",
			OrderNumber:    "REP-2024-001",
			ClientName:     "Juan Pérez",
			ClientPhone:    "555-0123",
			ClientEmail:    "juan@example.com",
			Address:        "Calle Principal 123",
			ApplianceType:  "refrigerator",
			Brand:          "Samsung",
			Model:          "RT38K5982SL",
			Problem:        "No enfría correctamente",
			Status:         "completed",
			Priority:       "medium",
			ServiceType:    "workshop",
			TechnicianID:   "1",
			CreatedAt:      date("2024-01-15"),
			UpdatedAt:      date("2024-01-17"),
			CompletedAt:    datePtr("2024-01-17"),
			DiagnosisNotes: "Fuga de refrigerante, se realizó recarga y sellado",
			Budget: &models.Budget{
				Amount:     250,
				Details:    "Recarga de gas refrigerante y reparación de fuga",
				CreatedAt:  date("2024-01-15"),
				ApprovedAt: datePtr("2024-01-16"),
			},
			Photos: []string{},
			Rating: ratingPtr(5),
			Review: "Excelente servicio, muy profesional",
		},
		{
			ID:             "2",
			OrderNumber:    "REP-2024-002",
			ClientName:     "María González",
			ClientPhone:    "555-0124",
			ClientEmail:    "maria@example.com",
			Address:        "Av. Libertad 456",
			ApplianceType:  "washer",
			Brand:          "LG",
			Model:          "WM3400CW",
			Problem:        "No drena el agua",
			Status:         "in_repair",
			Priority:       "high",
			ServiceType:    "workshop",
			TechnicianID:   "2",
			CreatedAt:      date("2024-03-10"),
			UpdatedAt:      date("2024-03-11"),
			DiagnosisNotes: "Bomba de drenaje obstruida",
			Photos:         []string{},
		},
		{
			ID:             "3",
			OrderNumber:    "REP-2024-003",
			ClientName:     "Roberto Sánchez",
			ClientPhone:    "555-0125",
			ClientEmail:    "roberto@example.com",
			Address:        "Plaza Central 789",
			ApplianceType:  "refrigerator",
			Brand:          "Whirlpool",
			Model:          "WRX735SDHZ",
			Problem:        "Hace ruido excesivo",
			Status:         "completed",
			Priority:       "medium",
			ServiceType:    "home",
			TechnicianID:   "1",
			CreatedAt:      date("2024-02-20"),
			UpdatedAt:      date("2024-02-22"),
			CompletedAt:    datePtr("2024-02-22"),
			DiagnosisNotes: "Ventilador del condensador dañado, se reemplazó",
			Budget: &models.Budget{
				Amount:     180,
				Details:    "Reemplazo de ventilador y servicio a domicilio",
				CreatedAt:  date("2024-02-20"),
				ApprovedAt: datePtr("2024-02-21"),
			},
			Photos: []string{},
			Rating: ratingPtr(4),
			Review: "Buen servicio, resolvieron el problema rápidamente",
		},
		{
			ID:             "4",
			OrderNumber:    "REP-2024-004",
			ClientName:     "Laura Torres",
			ClientPhone:    "555-0126",
			ClientEmail:    "laura@example.com",
			Address:        "Calle Norte 321",
			ApplianceType:  "oven",
			Brand:          "GE",
			Model:          "JB655YKFS",
			Problem:        "No calienta uniformemente",
			Status:         "diagnosed",
			Priority:       "low",
			ServiceType:    "workshop",
			TechnicianID:   "2",
			CreatedAt:      date("2024-03-15"),
			UpdatedAt:      date("2024-03-16"),
			DiagnosisNotes: "Elemento calefactor inferior defectuoso",
			Budget: &models.Budget{
				Amount:    200,
				Details:   "Reemplazo de elemento calefactor",
				CreatedAt: date("2024-03-16"),
			},
			Photos: []string{},
		},
		{
			ID:             "5",
			OrderNumber:    "REP-2024-005",
			ClientName:     "Pedro Ramírez",
			ClientPhone:    "555-0127",
			ClientEmail:    "pedro@example.com",
			Address:        "Av. Sur 654",
			ApplianceType:  "washer",
			Brand:          "Samsung",
			Model:          "WF45T6000AW",
			Problem:        "No inicia el ciclo de lavado",
			Status:         "in_repair",
			Priority:       "medium",
			ServiceType:    "workshop",
			TechnicianID:   "3",
			CreatedAt:      date("2024-03-18"),
			UpdatedAt:      date("2024-03-19"),
			DiagnosisNotes: "Tarjeta de control defectuosa",
			Budget: &models.Budget{
				Amount:     300,
				Details:    "Reemplazo de tarjeta de control",
				CreatedAt:  date("2024-03-19"),
				ApprovedAt: datePtr("2024-03-19"),
			},
			Photos: []string{},
		},
	}
}
