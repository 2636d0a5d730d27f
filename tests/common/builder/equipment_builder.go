//go:build unit || e2e

package builder

import (
	"time"

	"lab-dashboard/internal/domain/availability"
	"lab-dashboard/internal/domain/equipment"
	reqdto "lab-dashboard/internal/handler/dto/request"
	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type EquipmentBuilder struct {
	ID       uuid.UUID
	Name     string
	Type     string
	Location string
	Now      time.Time
}

func NewEquipmentBuilder() *EquipmentBuilder {
	return &EquipmentBuilder{
		ID:       uuid.New(),
		Name:     "Confocal Microscope",
		Type:     "microscope",
		Location: "Room 301",
		Now:      time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (e *EquipmentBuilder) With(mutate func(*EquipmentBuilder)) *EquipmentBuilder {
	mutate(e)
	return e
}

// Build methods
func (e *EquipmentBuilder) BuildDomain() (*equipment.Equipment, error) {
	return equipment.NewEquipment(e.Name, e.Type, e.Location, e.Now)
}

func (e *EquipmentBuilder) BuildStored() (*equipment.Equipment, error) {
	name, err := equipment.NewName(e.Name)
	if err != nil {
		return nil, err
	}
	return equipment.ReconstructEquipment(e.ID, name, e.Type, e.Location, e.Now, e.Now), nil
}

func (e *EquipmentBuilder) BuildItem() availability.EquipmentItem {
	return availability.EquipmentItem{ID: e.ID, Name: e.Name, Type: e.Type}
}

func (e *EquipmentBuilder) BuildView() *queries.EquipmentView {
	return &queries.EquipmentView{
		ID:        e.ID,
		Name:      e.Name,
		Type:      e.Type,
		Location:  e.Location,
		CreatedAt: e.Now,
		UpdatedAt: e.Now,
	}
}

func (e *EquipmentBuilder) BuildCreateRequestDTO() reqdto.CreateEquipmentRequest {
	return reqdto.CreateEquipmentRequest{
		Name:     e.Name,
		Type:     e.Type,
		Location: e.Location,
	}
}

// Fluent builder methods
func (e *EquipmentBuilder) WithID(id uuid.UUID) *EquipmentBuilder {
	e.ID = id
	return e
}

func (e *EquipmentBuilder) WithName(name string) *EquipmentBuilder {
	e.Name = name
	return e
}

func (e *EquipmentBuilder) WithType(kind string) *EquipmentBuilder {
	e.Type = kind
	return e
}

func (e *EquipmentBuilder) WithLocation(location string) *EquipmentBuilder {
	e.Location = location
	return e
}
