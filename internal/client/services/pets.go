package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/vetclinic/internal/client/models"
)

type Pets struct {
	*Resource[models.Pet]
}

func NewPets(gw Gateway) *Pets {
	return &Pets{NewResource[models.Pet](gw, "/pets", Messages{
		List:   "Error al cargar las mascotas",
		Get:    "Error al cargar la mascota",
		Create: "Error al crear la mascota",
		Update: "Error al actualizar la mascota",
		Remove: "Error al eliminar la mascota",
	})}
}

// ListByOwner lists the pets of one owner.
func (p *Pets) ListByOwner(ctx context.Context, ownerID int64) Result[[]models.Pet] {
	return p.list(ctx, url.Values{"owner_id": {strconv.FormatInt(ownerID, 10)}})
}
