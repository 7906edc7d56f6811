package models

import "time"

// Owner is a pet owner (client of the clinic).
type Owner struct {
	ID        int64     `json:"id,omitempty"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type Pet struct {
	ID        int64   `json:"id,omitempty"`
	OwnerID   int64   `json:"owner_id"`
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Breed     string  `json:"breed,omitempty"`
	Gender    string  `json:"gender,omitempty"`
	BirthDate string  `json:"birth_date,omitempty"`
	Weight    float64 `json:"weight,omitempty"`
	Color     string  `json:"color,omitempty"`
	Owner     *Owner  `json:"owner,omitempty"`
}

// Appointment statuses as the backend spells them.
const (
	AppointmentScheduled = "programada"
	AppointmentConfirmed = "confirmada"
	AppointmentCompleted = "completada"
	AppointmentCancelled = "cancelada"
)

// Appointment is a scheduled visit. AppointmentDate is kept as the backend's
// ISO string so the date prefix can be compared without timezone shifts.
type Appointment struct {
	ID              int64    `json:"id,omitempty"`
	PetID           int64    `json:"pet_id"`
	VeterinarianID  int64    `json:"veterinarian_id,omitempty"`
	ServiceID       int64    `json:"service_id,omitempty"`
	AppointmentDate string   `json:"appointment_date"`
	Status          string   `json:"status,omitempty"`
	Reason          string   `json:"reason,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	Pet             *Pet     `json:"pet,omitempty"`
	Service         *Service `json:"service,omitempty"`
}

// Pending reports whether the appointment is still to be attended.
func (a Appointment) Pending() bool {
	return a.Status == AppointmentScheduled || a.Status == AppointmentConfirmed
}

type MedicalRecord struct {
	ID             int64  `json:"id,omitempty"`
	PetID          int64  `json:"pet_id"`
	VeterinarianID int64  `json:"veterinarian_id,omitempty"`
	AppointmentID  int64  `json:"appointment_id,omitempty"`
	VisitDate      string `json:"visit_date,omitempty"`
	Symptoms       string `json:"symptoms,omitempty"`
	Diagnosis      string `json:"diagnosis,omitempty"`
	Treatment      string `json:"treatment,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type Vaccination struct {
	ID              int64  `json:"id,omitempty"`
	PetID           int64  `json:"pet_id"`
	VaccineName     string `json:"vaccine_name"`
	ApplicationDate string `json:"application_date,omitempty"`
	NextDoseDate    string `json:"next_dose_date,omitempty"`
	BatchNumber     string `json:"batch_number,omitempty"`
	Status          string `json:"status,omitempty"`
}

// Service is a billable clinic service.
type Service struct {
	ID          int64   `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// ActivityLog is a read-only audit entry.
type ActivityLog struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id,omitempty"`
	Action      string    `json:"action"`
	Entity      string    `json:"entity,omitempty"`
	EntityID    int64     `json:"entity_id,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}
