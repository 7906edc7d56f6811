package services

import (
	"context"
	"encoding/json"
	"net/url"
)

// Report kinds served under /reports/{kind}.
const (
	ReportAppointments   = "appointments"
	ReportOwners         = "owners"
	ReportPets           = "pets"
	ReportMedicalRecords = "medical-records"
	ReportVaccinations   = "vaccinations"
	ReportServices       = "services"
)

// Reports is read-only; report bodies are returned as raw JSON.
type Reports struct {
	gw Gateway
}

func NewReports(gw Gateway) *Reports {
	return &Reports{gw: gw}
}

// Get fetches /reports/{kind} with optional query parameters.
func (r *Reports) Get(ctx context.Context, kind string, params url.Values) Result[json.RawMessage] {
	resp, err := r.gw.Get(ctx, "/reports/"+kind, params)
	if err != nil {
		return fail[json.RawMessage](err, "Error al generar el reporte")
	}
	return ok(resp.Data)
}

func (r *Reports) Appointments(ctx context.Context, params url.Values) Result[json.RawMessage] {
	return r.Get(ctx, ReportAppointments, params)
}

func (r *Reports) Owners(ctx context.Context) Result[json.RawMessage] {
	return r.Get(ctx, ReportOwners, nil)
}

func (r *Reports) Pets(ctx context.Context) Result[json.RawMessage] {
	return r.Get(ctx, ReportPets, nil)
}

func (r *Reports) MedicalRecords(ctx context.Context, params url.Values) Result[json.RawMessage] {
	return r.Get(ctx, ReportMedicalRecords, params)
}

func (r *Reports) Vaccinations(ctx context.Context, params url.Values) Result[json.RawMessage] {
	return r.Get(ctx, ReportVaccinations, params)
}

func (r *Reports) Services(ctx context.Context) Result[json.RawMessage] {
	return r.Get(ctx, ReportServices, nil)
}
