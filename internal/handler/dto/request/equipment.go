package request

import "lab-dashboard/internal/usecase/commands"

type CreateEquipmentRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Type     string `json:"type" binding:"max=100"`
	Location string `json:"location" binding:"max=255"`
}

func (r CreateEquipmentRequest) ToInput() commands.CreateEquipmentInput {
	return commands.CreateEquipmentInput{Name: r.Name, Type: r.Type, Location: r.Location}
}

// UpdateEquipmentRequest is a partial update; omitted fields keep their value.
type UpdateEquipmentRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Type     *string `json:"type" binding:"omitempty,max=100"`
	Location *string `json:"location" binding:"omitempty,max=255"`
}

func (r UpdateEquipmentRequest) ToInput() commands.UpdateEquipmentInput {
	return commands.UpdateEquipmentInput{Name: r.Name, Type: r.Type, Location: r.Location}
}
