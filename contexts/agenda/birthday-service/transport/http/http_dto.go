package httptransport

// ErrorResponse is the uniform error body for the birthday endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateBirthdayRequest struct {
	Name         string `json:"name"`
	Day          int    `json:"day"`
	Month        int    `json:"month"`
	BirthYear    *int   `json:"birthYear,omitempty"`
	ChurchID     string `json:"churchId"`
	Notes        string `json:"notes,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
	OrganID      string `json:"organId,omitempty"`
}

type UpdateBirthdayRequest struct {
	Name         *string `json:"name,omitempty"`
	Day          *int    `json:"day,omitempty"`
	Month        *int    `json:"month,omitempty"`
	BirthYear    *int    `json:"birthYear,omitempty"`
	ChurchID     *string `json:"churchId,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	OrganID      *string `json:"organId,omitempty"`
}

type BirthdayDTO struct {
	BirthdayID   string `json:"birthdayId"`
	Name         string `json:"name"`
	Day          int    `json:"day"`
	Month        int    `json:"month"`
	BirthYear    *int   `json:"birthYear,omitempty"`
	ChurchID     string `json:"churchId"`
	Notes        string `json:"notes,omitempty"`
	CreatedBy    string `json:"createdBy,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
	OrganID      string `json:"organId,omitempty"`
}

type BirthdayResponse struct {
	Birthday BirthdayDTO `json:"birthday"`
}

type ListBirthdaysResponse struct {
	Items []BirthdayDTO `json:"items"`
}

// MonthEntryDTO intentionally omits birth year and notes.
type MonthEntryDTO struct {
	BirthdayID   string `json:"birthdayId"`
	Name         string `json:"name"`
	Day          int    `json:"day"`
	Month        int    `json:"month"`
	ChurchID     string `json:"churchId"`
	DepartmentID string `json:"departmentId,omitempty"`
	OrganID      string `json:"organId,omitempty"`
}

type MonthBirthdaysResponse struct {
	Month int             `json:"month"`
	Items []MonthEntryDTO `json:"items"`
}

type UpcomingEntryDTO struct {
	BirthdayID   string `json:"birthdayId"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	DaysUntil    int    `json:"daysUntil"`
	TurnsAge     *int   `json:"turnsAge,omitempty"`
	ChurchID     string `json:"churchId"`
	DepartmentID string `json:"departmentId,omitempty"`
	OrganID      string `json:"organId,omitempty"`
}

type UpcomingBirthdaysResponse struct {
	Items []UpcomingEntryDTO `json:"items"`
}
