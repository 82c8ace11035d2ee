package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateEventRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Responsible  string `json:"responsible"`
	StartsAt     string `json:"starts_at"`
	EndsAt       string `json:"ends_at"`
	ChurchID     string `json:"church_id"`
	ResourceID   string `json:"resource_id"`
	AllDay       bool   `json:"all_day"`
	DepartmentID string `json:"department_id"`
	OrganID      string `json:"organ_id"`
}

type UpdateEventRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Responsible  *string `json:"responsible"`
	StartsAt     *string `json:"starts_at"`
	EndsAt       *string `json:"ends_at"`
	ChurchID     *string `json:"church_id"`
	ResourceID   *string `json:"resource_id"`
	AllDay       *bool   `json:"all_day"`
	DepartmentID *string `json:"department_id"`
	OrganID      *string `json:"organ_id"`
}

type EventDTO struct {
	EventID      string `json:"event_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Responsible  string `json:"responsible,omitempty"`
	StartsAt     string `json:"starts_at"`
	EndsAt       string `json:"ends_at"`
	CreatedBy    string `json:"created_by,omitempty"`
	ChurchID     string `json:"church_id"`
	ResourceID   string `json:"resource_id,omitempty"`
	AllDay       bool   `json:"all_day"`
	DepartmentID string `json:"department_id,omitempty"`
	OrganID      string `json:"organ_id,omitempty"`
}

type EventResponse struct {
	Event EventDTO `json:"event"`
}

type ListEventsResponse struct {
	Items []EventDTO `json:"items"`
}

type OccurrenceDTO struct {
	Kind         string `json:"kind"`
	Date         string `json:"date"`
	SourceID     string `json:"source_id"`
	Label        string `json:"label"`
	ChurchID     string `json:"church_id,omitempty"`
	ResourceID   string `json:"resource_id,omitempty"`
	DepartmentID string `json:"department_id,omitempty"`
	OrganID      string `json:"organ_id,omitempty"`
	StartsAt     string `json:"starts_at,omitempty"`
	EndsAt       string `json:"ends_at,omitempty"`
	AllDay       bool   `json:"all_day"`
}

type AgendaResponse struct {
	Items []OccurrenceDTO `json:"items"`
}
