package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/vetclinic/internal/client/api"
	"github.com/dmitrijs2005/vetclinic/internal/client/models"
	"github.com/dmitrijs2005/vetclinic/internal/client/services"
)

// fail reports a failed operation to the user and the notification registry.
func (a *App) fail(message string) {
	a.notes.Error(message)
	fmt.Fprintln(a.out, "Error:", message)
}

// check turns an unsuccessful Result into an error after reporting it.
func check[T any](a *App, res services.Result[T]) error {
	if res.Success {
		return nil
	}
	a.fail(res.Message)
	for field, msgs := range res.Errors {
		for _, m := range msgs {
			fmt.Fprintf(a.out, "  %s: %s\n", field, m)
		}
	}
	return errors.New(res.Message)
}

func (a *App) table() *tabwriter.Writer {
	return tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
}

func (a *App) Stats(ctx context.Context) error {
	s, err := a.dashboard.Stats(ctx)
	if err != nil {
		a.fail(api.MessageOf(err, "Error al cargar las estadísticas"))
		return err
	}

	w := a.table()
	fmt.Fprintf(w, "Owners\t%d\n", s.TotalOwners)
	fmt.Fprintf(w, "Pets\t%d\n", s.TotalPets)
	fmt.Fprintf(w, "Appointments today\t%d\n", s.TodayAppointments)
	fmt.Fprintf(w, "Pending appointments\t%d\n", s.PendingAppointments)
	fmt.Fprintf(w, "Services\t%d\n", s.TotalServices)
	_ = w.Flush()

	if len(s.RecentAppointments) > 0 {
		fmt.Fprintln(a.out, "Recent appointments:")
		a.printAppointments(s.RecentAppointments)
	}
	return nil
}

func (a *App) Today(ctx context.Context) error {
	list, err := a.dashboard.TodayAppointments(ctx)
	if err != nil {
		a.fail(api.MessageOf(err, "Error al cargar las citas de hoy"))
		return err
	}
	a.printAppointments(list)
	return nil
}

func (a *App) Owners(ctx context.Context) error {
	res := a.owners.List(ctx)
	if err := check(a, res); err != nil {
		return err
	}
	a.printOwners(res.Data)
	return nil
}

func (a *App) Owner(ctx context.Context, id int64) error {
	res := a.owners.Get(ctx, id)
	if err := check(a, res); err != nil {
		return err
	}
	a.printOwners([]models.Owner{res.Data})

	pets := a.pets.ListByOwner(ctx, id)
	if pets.Success && len(pets.Data) > 0 {
		fmt.Fprintln(a.out, "Pets:")
		a.printPets(pets.Data)
	}
	return nil
}

// Pets lists all pets, or those of one owner when ownerID is positive.
func (a *App) Pets(ctx context.Context, ownerID int64) error {
	var res services.Result[[]models.Pet]
	if ownerID > 0 {
		res = a.pets.ListByOwner(ctx, ownerID)
	} else {
		res = a.pets.List(ctx)
	}
	if err := check(a, res); err != nil {
		return err
	}
	a.printPets(res.Data)
	return nil
}

// Appointments lists all appointments, or those on date (YYYY-MM-DD).
func (a *App) Appointments(ctx context.Context, date string) error {
	var res services.Result[[]models.Appointment]
	if date != "" {
		res = a.appointments.ListByDate(ctx, date)
	} else {
		res = a.appointments.List(ctx)
	}
	if err := check(a, res); err != nil {
		return err
	}
	a.printAppointments(res.Data)
	return nil
}

func (a *App) Cancel(ctx context.Context, id int64) error {
	if err := check(a, a.appointments.Cancel(ctx, id)); err != nil {
		return err
	}
	a.notes.Success(fmt.Sprintf("Cita %d cancelada", id))
	fmt.Fprintf(a.out, "Appointment %d cancelled\n", id)
	return nil
}

func (a *App) DueVaccinations(ctx context.Context) error {
	res := a.vaccinations.ListDue(ctx)
	if err := check(a, res); err != nil {
		return err
	}
	a.printVaccinations(res.Data)
	return nil
}

func (a *App) PetVaccinations(ctx context.Context, petID int64) error {
	res := a.vaccinations.ListByPet(ctx, petID)
	if err := check(a, res); err != nil {
		return err
	}
	a.printVaccinations(res.Data)
	return nil
}

func (a *App) Records(ctx context.Context, petID int64) error {
	res := a.records.ListByPet(ctx, petID)
	if err := check(a, res); err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tDATE\tDIAGNOSIS\tTREATMENT")
	for _, r := range res.Data {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.ID, r.VisitDate, r.Diagnosis, r.Treatment)
	}
	return w.Flush()
}

func (a *App) Services(ctx context.Context, activeOnly bool) error {
	var res services.Result[[]models.Service]
	if activeOnly {
		res = a.services.ListActive(ctx)
	} else {
		res = a.services.List(ctx)
	}
	if err := check(a, res); err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tMINUTES\tSTATUS")
	for _, s := range res.Data {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%d\t%s\n", s.ID, s.Name, s.Price, s.Duration, s.Status)
	}
	return w.Flush()
}

// Report prints the raw report body, indented.
func (a *App) Report(ctx context.Context, kind string) error {
	res := a.reports.Get(ctx, kind, nil)
	if err := check(a, res); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, res.Data, "", "  "); err != nil {
		buf.Reset()
		buf.Write(res.Data)
	}
	fmt.Fprintln(a.out, buf.String())
	return nil
}

func (a *App) Logs(ctx context.Context) error {
	res := a.activity.List(ctx, nil)
	if err := check(a, res); err != nil {
		return err
	}

	w := a.table()
	fmt.Fprintln(w, "ID\tWHEN\tUSER\tACTION\tDESCRIPTION")
	for _, l := range res.Data {
		when := ""
		if !l.CreatedAt.IsZero() {
			when = l.CreatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", l.ID, when, l.UserID, l.Action, l.Description)
	}
	return w.Flush()
}

func (a *App) Notifications(context.Context) error {
	list := a.notes.List()
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return nil
	}
	for _, n := range list {
		fmt.Fprintf(a.out, "#%d [%s] %s\n", n.ID, n.Severity, n.Message)
	}
	return nil
}

func (a *App) ClearNotifications(context.Context) error {
	a.notes.Clear()
	return nil
}

func (a *App) printOwners(list []models.Owner) {
	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
	for _, o := range list {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n", o.ID, o.FirstName, o.LastName, o.Email, o.Phone)
	}
	_ = w.Flush()
}

func (a *App) printPets(list []models.Pet) {
	w := a.table()
	fmt.Fprintln(w, "ID\tNAME\tSPECIES\tBREED\tOWNER")
	for _, p := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Species, p.Breed, p.OwnerID)
	}
	_ = w.Flush()
}

func (a *App) printAppointments(list []models.Appointment) {
	w := a.table()
	fmt.Fprintln(w, "ID\tDATE\tPET\tSTATUS\tREASON")
	for _, ap := range list {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n", ap.ID, ap.AppointmentDate, ap.PetID, ap.Status, ap.Reason)
	}
	_ = w.Flush()
}

func (a *App) printVaccinations(list []models.Vaccination) {
	w := a.table()
	fmt.Fprintln(w, "ID\tPET\tVACCINE\tNEXT DOSE")
	for _, v := range list {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", v.ID, v.PetID, v.VaccineName, v.NextDoseDate)
	}
	_ = w.Flush()
}
