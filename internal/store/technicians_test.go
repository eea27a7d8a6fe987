package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/restoservice/repair-admin/internal/domain/technician"
	infraRepo "github.com/restoservice/repair-admin/internal/infra/repository"
	"github.com/restoservice/repair-admin/internal/models"
	"github.com/restoservice/repair-admin/internal/store"
)

func newTechnicianStore(t *testing.T) *store.TechnicianStore {
	t.Helper()
	return store.NewTechnicianStore(infraRepo.NewTechnicianGormRepository(newSeededDB(t)))
}

func TestFetchTechniciansLoadsSeedData(t *testing.T) {
	s := newTechnicianStore(t)

	s.FetchTechnicians(context.Background())

	technicians := s.Technicians()
	require.Len(t, technicians, 3)

	assert.Equal(t, "Carlos Rodríguez", technicians[0].Name)
	assert.Equal(t, "Ana Martínez", technicians[1].Name)
	assert.Equal(t, "Miguel Sánchez", technicians[2].Name)

	assert.False(t, s.Loading())
	assert.Empty(t, s.Err())
}

func TestAddTechnicianZeroesCounters(t *testing.T) {
	s := newTechnicianStore(t)
	s.FetchTechnicians(context.Background())

	created, err := s.AddTechnician(context.Background(), store.AddTechnicianInput{
		Name:        "Lucía Fernández",
		Email:       "lucia@restoservice.mx",
		Phone:       "555-0104",
		Specialties: []string{"refrigeration", "general"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "available", created.Status)
	assert.Zero(t, created.Rating)
	assert.Zero(t, created.ActiveOrders)
	assert.Zero(t, created.TotalCompletedOrders)
	assert.False(t, created.JoinedAt.IsZero())

	assert.Len(t, s.Technicians(), 4)
}

func TestUpdateTechnicianAppliesPatch(t *testing.T) {
	s := newTechnicianStore(t)
	s.FetchTechnicians(context.Background())

	status := "off_duty"
	active := 0

	updated, err := s.UpdateTechnician(context.Background(), "2", domain.Patch{
		Status:       &status,
		ActiveOrders: &active,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "off_duty", updated.Status)
	assert.Zero(t, updated.ActiveOrders)

	// The rest of the record is untouched.
	assert.Equal(t, "Ana Martínez", updated.Name)
	assert.Equal(t, 4.9, updated.Rating)
}

func TestUpdateTechnicianMissingIDIsNoOp(t *testing.T) {
	s := newTechnicianStore(t)
	s.FetchTechnicians(context.Background())

	before := s.Technicians()

	status := "busy"
	updated, err := s.UpdateTechnician(context.Background(), "does-not-exist", domain.Patch{
		Status: &status,
	})

	assert.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, before, s.Technicians())
	assert.Empty(t, s.Err())
}

func TestDeleteTechnicianRemovesExactlyOne(t *testing.T) {
	s := newTechnicianStore(t)
	s.FetchTechnicians(context.Background())

	err := s.DeleteTechnician(context.Background(), "3")
	require.NoError(t, err)

	technicians := s.Technicians()
	require.Len(t, technicians, 2)
	for _, tech := range technicians {
		assert.NotEqual(t, "3", tech.ID)
	}
}

func TestDeleteTechnicianMissingIDIsNoOp(t *testing.T) {
	s := newTechnicianStore(t)
	s.FetchTechnicians(context.Background())

	err := s.DeleteTechnician(context.Background(), "does-not-exist")
	assert.NoError(t, err)
	assert.Len(t, s.Technicians(), 3)
}

func TestSelectTechnician(t *testing.T) {
	s := newTechnicianStore(t)
	s.FetchTechnicians(context.Background())

	assert.Nil(t, s.Selected())

	s.SelectTechnician(&models.Technician{ID: "1", Name: "Carlos Rodríguez"})

	selected := s.Selected()
	require.NotNil(t, selected)
	assert.Equal(t, "1", selected.ID)

	// Selected returns a copy; mutating it does not leak back.
	selected.Name = "changed"
	assert.Equal(t, "Carlos Rodríguez", s.Selected().Name)

	s.SelectTechnician(nil)
	assert.Nil(t, s.Selected())
}
