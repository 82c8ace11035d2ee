package httptransport

// ErrorResponse is the uniform error body for the directory endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateChurchRequest struct {
	Name        string   `json:"name"`
	Address     string   `json:"address,omitempty"`
	ColorCode   string   `json:"colorCode,omitempty"`
	Organs      []string `json:"organs,omitempty"`
	Departments []string `json:"departments,omitempty"`
}

type UpdateChurchRequest struct {
	Name        *string  `json:"name,omitempty"`
	Address     *string  `json:"address,omitempty"`
	ColorCode   *string  `json:"colorCode,omitempty"`
	Organs      []string `json:"organs,omitempty"`
	Departments []string `json:"departments,omitempty"`
}

type ChurchDTO struct {
	ChurchID    string   `json:"churchId"`
	Name        string   `json:"name"`
	Address     string   `json:"address,omitempty"`
	ColorCode   string   `json:"colorCode,omitempty"`
	Organs      []string `json:"organs,omitempty"`
	Departments []string `json:"departments,omitempty"`
}

type ChurchResponse struct {
	Church ChurchDTO `json:"church"`
}

type ListChurchesResponse struct {
	Items []ChurchDTO `json:"items"`
}

type CreateResourceRequest struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	Available *bool  `json:"available,omitempty"`
}

type UpdateResourceRequest struct {
	Name      *string `json:"name,omitempty"`
	Type      *string `json:"type,omitempty"`
	Available *bool   `json:"available,omitempty"`
}

type ResourceDTO struct {
	ResourceID string `json:"resourceId"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Available  bool   `json:"available"`
}

type ResourceResponse struct {
	Resource ResourceDTO `json:"resource"`
}

type ListResourcesResponse struct {
	Items []ResourceDTO `json:"items"`
}

type CreateUserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role,omitempty"`
	ChurchID  string `json:"churchId,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *string `json:"role,omitempty"`
	ChurchID  *string `json:"churchId,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
}

// UserDTO never carries the password hash.
type UserDTO struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ChurchID  string `json:"churchId,omitempty"`
	BirthDate string `json:"birthDate,omitempty"`
}

type UserResponse struct {
	User UserDTO `json:"user"`
}

type ListUsersResponse struct {
	Items []UserDTO `json:"items"`
}
