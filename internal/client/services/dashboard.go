package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/vetclinic/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// RecentAppointmentsLimit caps Stats.RecentAppointments.
const RecentAppointmentsLimit = 5

// Stats is the dashboard summary.
type Stats struct {
	TotalOwners         int
	TotalPets           int
	TodayAppointments   int
	PendingAppointments int
	TotalServices       int
	RecentAppointments  []models.Appointment
}

type Dashboard struct {
	gw  Gateway
	now func() time.Time
}

func NewDashboard(gw Gateway, now func() time.Time) *Dashboard {
	if now == nil {
		now = time.Now
	}
	return &Dashboard{gw: gw, now: now}
}

func fetchList[T any](ctx context.Context, gw Gateway, path string) ([]T, error) {
	resp, err := gw.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	var out []T
	if err := unwrapData(resp.Data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// Stats fetches owners, pets, appointments and services concurrently. If
// any fetch fails the whole call fails.
func (d *Dashboard) Stats(ctx context.Context) (Stats, error) {
	var (
		owners       []models.Owner
		pets         []models.Pet
		appointments []models.Appointment
		services     []models.Service
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		owners, err = fetchList[models.Owner](gctx, d.gw, "/owners")
		return err
	})
	g.Go(func() (err error) {
		pets, err = fetchList[models.Pet](gctx, d.gw, "/pets")
		return err
	})
	g.Go(func() (err error) {
		appointments, err = fetchList[models.Appointment](gctx, d.gw, "/appointments")
		return err
	})
	g.Go(func() (err error) {
		services, err = fetchList[models.Service](gctx, d.gw, "/services")
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	pending := 0
	for _, a := range appointments {
		if a.Pending() {
			pending++
		}
	}

	recent := appointments[:min(RecentAppointmentsLimit, len(appointments))]

	return Stats{
		TotalOwners:         len(owners),
		TotalPets:           len(pets),
		TodayAppointments:   len(onDate(appointments, d.today())),
		PendingAppointments: pending,
		TotalServices:       len(services),
		RecentAppointments:  recent,
	}, nil
}

// TodayAppointments returns the appointments dated today.
func (d *Dashboard) TodayAppointments(ctx context.Context) ([]models.Appointment, error) {
	appointments, err := fetchList[models.Appointment](ctx, d.gw, "/appointments")
	if err != nil {
		return nil, err
	}
	return onDate(appointments, d.today()), nil
}

// today is the current UTC date as YYYY-MM-DD.
func (d *Dashboard) today() string {
	return d.now().UTC().Format(time.DateOnly)
}

func onDate(appointments []models.Appointment, date string) []models.Appointment {
	out := make([]models.Appointment, 0)
	for _, a := range appointments {
		if a.AppointmentDate != "" && strings.HasPrefix(a.AppointmentDate, date) {
			out = append(out, a)
		}
	}
	return out
}
