package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/vetclinic/internal/client/models"
)

type MedicalRecords struct {
	*Resource[models.MedicalRecord]
}

func NewMedicalRecords(gw Gateway) *MedicalRecords {
	return &MedicalRecords{NewResource[models.MedicalRecord](gw, "/medical-records", Messages{
		List:   "Error al cargar los historiales médicos",
		Get:    "Error al cargar el historial médico",
		Create: "Error al crear el historial médico",
		Update: "Error al actualizar el historial médico",
		Remove: "Error al eliminar el historial médico",
	})}
}

func (m *MedicalRecords) ListByPet(ctx context.Context, petID int64) Result[[]models.MedicalRecord] {
	return m.list(ctx, url.Values{"pet_id": {strconv.FormatInt(petID, 10)}})
}
