package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/vetclinic/internal/client/models"
)

type Vaccinations struct {
	*Resource[models.Vaccination]
}

func NewVaccinations(gw Gateway) *Vaccinations {
	return &Vaccinations{NewResource[models.Vaccination](gw, "/vaccinations", Messages{
		List:   "Error al cargar las vacunas",
		Get:    "Error al cargar la vacuna",
		Create: "Error al registrar la vacuna",
		Update: "Error al actualizar la vacuna",
		Remove: "Error al eliminar la vacuna",
	})}
}

func (v *Vaccinations) ListByPet(ctx context.Context, petID int64) Result[[]models.Vaccination] {
	return v.list(ctx, url.Values{"pet_id": {strconv.FormatInt(petID, 10)}})
}

// ListDue lists vaccinations whose next dose is due.
func (v *Vaccinations) ListDue(ctx context.Context) Result[[]models.Vaccination] {
	return v.list(ctx, url.Values{"status": {"due"}})
}
