package services

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/vetclinic/internal/client/models"
)

// Services is the catalogue of clinic services.
type Services struct {
	*Resource[models.Service]
}

func NewServices(gw Gateway) *Services {
	return &Services{NewResource[models.Service](gw, "/services", Messages{
		List:   "Error al cargar los servicios",
		Get:    "Error al cargar el servicio",
		Create: "Error al crear el servicio",
		Update: "Error al actualizar el servicio",
		Remove: "Error al eliminar el servicio",
	})}
}

func (s *Services) ListActive(ctx context.Context) Result[[]models.Service] {
	return s.list(ctx, url.Values{"status": {"active"}})
}
