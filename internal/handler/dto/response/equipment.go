package response

import (
	"time"

	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EquipmentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromEquipmentView(v *queries.EquipmentView) (*EquipmentResponse, error) {
	var resp EquipmentResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromEquipmentList(views []*queries.EquipmentView) ([]*EquipmentResponse, error) {
	resp := make([]*EquipmentResponse, 0, len(views))
	if err := copier.Copy(&resp, &views); err != nil {
		return nil, err
	}
	return resp, nil
}
