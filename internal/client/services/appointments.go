package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/vetclinic/internal/client/models"
)

type Appointments struct {
	*Resource[models.Appointment]
}

func NewAppointments(gw Gateway) *Appointments {
	return &Appointments{NewResource[models.Appointment](gw, "/appointments", Messages{
		List:   "Error al cargar las citas",
		Get:    "Error al cargar la cita",
		Create: "Error al crear la cita",
		Update: "Error al actualizar la cita",
		Remove: "Error al cancelar la cita",
	})}
}

// ListByDate lists appointments on date (YYYY-MM-DD).
func (a *Appointments) ListByDate(ctx context.Context, date string) Result[[]models.Appointment] {
	return a.list(ctx, url.Values{"date": {date}})
}

// ListByVeterinarian lists a veterinarian's appointments, optionally on one
// date; an empty date means all dates.
func (a *Appointments) ListByVeterinarian(ctx context.Context, veterinarianID int64, date string) Result[[]models.Appointment] {
	q := url.Values{"veterinarian_id": {strconv.FormatInt(veterinarianID, 10)}}
	if date != "" {
		q.Set("date", date)
	}
	return a.list(ctx, q)
}

// Cancel deletes the appointment.
func (a *Appointments) Cancel(ctx context.Context, id int64) Result[json.RawMessage] {
	return a.Remove(ctx, id)
}

// Reschedule moves the appointment to when, sending only appointment_date.
func (a *Appointments) Reschedule(ctx context.Context, id int64, when string) Result[models.Appointment] {
	resp, err := a.gw.Put(ctx, a.itemPath(id), map[string]string{"appointment_date": when})
	return decode[models.Appointment](resp, err, "Error al reprogramar la cita")
}
