package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/vetclinic/internal/client/api"
	"github.com/dmitrijs2005/vetclinic/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededClinic() *fakeClinic {
	f := newFakeClinic()
	for _, name := range []string{"Ana", "Luis", "Marta"} {
		f.seed("owners", map[string]any{"first_name": name, "last_name": "Pérez"})
	}
	for _, name := range []string{"Toby", "Luna", "Rocky", "Nala", "Simba"} {
		f.seed("pets", map[string]any{"name": name, "species": "perro"})
	}
	f.seed("appointments",
		map[string]any{"appointment_date": "2026-10-18T09:00:00", "status": models.AppointmentScheduled},
		map[string]any{"appointment_date": "2026-10-18T15:30:00", "status": models.AppointmentCompleted},
		map[string]any{"appointment_date": "2026-10-19T10:00:00", "status": models.AppointmentConfirmed},
		map[string]any{"appointment_date": "2026-10-20T10:00:00", "status": models.AppointmentCancelled},
		map[string]any{"appointment_date": "2026-10-17T10:00:00", "status": models.AppointmentCompleted},
		map[string]any{"appointment_date": "2026-10-21T10:00:00", "status": models.AppointmentScheduled},
		map[string]any{"appointment_date": "", "status": models.AppointmentCancelled},
	)
	for _, name := range []string{"Consulta", "Vacunación", "Cirugía", "Baño"} {
		f.seed("services", map[string]any{"name": name, "price": 100})
	}
	return f
}

func fixedNow() time.Time {
	// 23:30 at UTC-3 is already the 18th in UTC.
	return time.Date(2026, 10, 17, 23, 30, 0, 0, time.FixedZone("ART", -3*60*60))
}

func TestDashboard_Stats(t *testing.T) {
	d := NewDashboard(newGateway(t, seededClinic()), fixedNow)

	stats, err := d.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalOwners)
	assert.Equal(t, 5, stats.TotalPets)
	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, 3, stats.PendingAppointments)
	assert.Equal(t, 4, stats.TotalServices)
	require.Len(t, stats.RecentAppointments, RecentAppointmentsLimit)
	assert.Equal(t, int64(9), stats.RecentAppointments[0].ID)
}

func TestDashboard_StatsFewAppointments(t *testing.T) {
	f := newFakeClinic()
	f.seed("appointments", map[string]any{"appointment_date": "2026-10-18T09:00:00", "status": models.AppointmentConfirmed})
	d := NewDashboard(newGateway(t, f), fixedNow)

	stats, err := d.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOwners)
	assert.Len(t, stats.RecentAppointments, 1)
	assert.Equal(t, 1, stats.PendingAppointments)
}

func TestDashboard_StatsFailsWhenAnyFetchFails(t *testing.T) {
	f := seededClinic()
	f.failures["services"] = 503
	d := NewDashboard(newGateway(t, f), fixedNow)

	stats, err := d.Stats(context.Background())
	require.Error(t, err)
	assert.Equal(t, 503, api.StatusOf(err))
	assert.Equal(t, Stats{}, stats)
}

func TestDashboard_TodayAppointments(t *testing.T) {
	d := NewDashboard(newGateway(t, seededClinic()), fixedNow)

	today, err := d.TodayAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, today, 2)
	for _, a := range today {
		assert.Equal(t, "2026-10-18", a.AppointmentDate[:10])
	}
}
