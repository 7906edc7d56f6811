package services

import "github.com/dmitrijs2005/vetclinic/internal/client/models"

type Owners struct {
	*Resource[models.Owner]
}

func NewOwners(gw Gateway) *Owners {
	return &Owners{NewResource[models.Owner](gw, "/owners", Messages{
		List:   "Error al cargar los propietarios",
		Get:    "Error al cargar el propietario",
		Create: "Error al crear el propietario",
		Update: "Error al actualizar el propietario",
		Remove: "Error al eliminar el propietario",
	})}
}
