package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/vetclinic/internal/client/models"
)

// ActivityLogs is the read-only audit trail.
type ActivityLogs struct {
	gw Gateway
}

func NewActivityLogs(gw Gateway) *ActivityLogs {
	return &ActivityLogs{gw: gw}
}

func (a *ActivityLogs) List(ctx context.Context, params url.Values) Result[[]models.ActivityLog] {
	resp, err := a.gw.Get(ctx, "/activity-logs", params)
	res := decode[[]models.ActivityLog](resp, err, "Error al cargar el registro de actividad")
	if res.Success && res.Data == nil {
		res.Data = []models.ActivityLog{}
	}
	return res
}

func (a *ActivityLogs) Get(ctx context.Context, id int64) Result[models.ActivityLog] {
	resp, err := a.gw.Get(ctx, "/activity-logs/"+strconv.FormatInt(id, 10), nil)
	return decode[models.ActivityLog](resp, err, "Error al cargar la actividad")
}
