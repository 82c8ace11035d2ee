package httpadapter

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"agendaviva/contexts/agenda/directory-service/application/commands"
	"agendaviva/contexts/agenda/directory-service/application/queries"
	"agendaviva/contexts/agenda/directory-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/directory-service/domain/errors"
	"agendaviva/contexts/agenda/directory-service/ports"
	httptransport "agendaviva/contexts/agenda/directory-service/transport/http"
)

type Handler struct {
	CreateChurch   commands.CreateChurchUseCase
	UpdateChurch   commands.UpdateChurchUseCase
	DeleteChurch   commands.DeleteChurchUseCase
	CreateResource commands.CreateResourceUseCase
	UpdateResource commands.UpdateResourceUseCase
	DeleteResource commands.DeleteResourceUseCase
	CreateUser     commands.CreateUserUseCase
	UpdateUser     commands.UpdateUserUseCase
	DeleteUser     commands.DeleteUserUseCase
	ListChurches   queries.ListChurchesUseCase
	ListResources  queries.ListResourcesUseCase
	ListUsers      queries.ListUsersUseCase
	UserBirthdays  queries.UserBirthdaysUseCase
	Logger         *slog.Logger
}

func (h Handler) CreateChurchHandler(
	ctx context.Context,
	req httptransport.CreateChurchRequest,
) (httptransport.ChurchResponse, error) {
	church, err := h.CreateChurch.Execute(ctx, commands.CreateChurchCommand{
		Name:        req.Name,
		Address:     req.Address,
		ColorCode:   req.ColorCode,
		Organs:      req.Organs,
		Departments: req.Departments,
	})
	if err != nil {
		return httptransport.ChurchResponse{}, err
	}
	return httptransport.ChurchResponse{Church: mapChurch(church)}, nil
}

func (h Handler) UpdateChurchHandler(
	ctx context.Context,
	churchID string,
	req httptransport.UpdateChurchRequest,
) (httptransport.ChurchResponse, error) {
	church, err := h.UpdateChurch.Execute(ctx, commands.UpdateChurchCommand{
		ChurchID:    churchID,
		Name:        req.Name,
		Address:     req.Address,
		ColorCode:   req.ColorCode,
		Organs:      req.Organs,
		Departments: req.Departments,
	})
	if err != nil {
		return httptransport.ChurchResponse{}, err
	}
	return httptransport.ChurchResponse{Church: mapChurch(church)}, nil
}

func (h Handler) DeleteChurchHandler(ctx context.Context, churchID string) error {
	return h.DeleteChurch.Execute(ctx, churchID)
}

func (h Handler) ListChurchesHandler(ctx context.Context) (httptransport.ListChurchesResponse, error) {
	items, err := h.ListChurches.Execute(ctx)
	if err != nil {
		return httptransport.ListChurchesResponse{}, err
	}
	result := make([]httptransport.ChurchDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapChurch(item))
	}
	return httptransport.ListChurchesResponse{Items: result}, nil
}

func (h Handler) CreateResourceHandler(
	ctx context.Context,
	req httptransport.CreateResourceRequest,
) (httptransport.ResourceResponse, error) {
	resource, err := h.CreateResource.Execute(ctx, commands.CreateResourceCommand{
		Name:      req.Name,
		Type:      req.Type,
		Available: req.Available,
	})
	if err != nil {
		return httptransport.ResourceResponse{}, err
	}
	return httptransport.ResourceResponse{Resource: mapResource(resource)}, nil
}

func (h Handler) UpdateResourceHandler(
	ctx context.Context,
	resourceID string,
	req httptransport.UpdateResourceRequest,
) (httptransport.ResourceResponse, error) {
	resource, err := h.UpdateResource.Execute(ctx, commands.UpdateResourceCommand{
		ResourceID: resourceID,
		Name:       req.Name,
		Type:       req.Type,
		Available:  req.Available,
	})
	if err != nil {
		return httptransport.ResourceResponse{}, err
	}
	return httptransport.ResourceResponse{Resource: mapResource(resource)}, nil
}

func (h Handler) DeleteResourceHandler(ctx context.Context, resourceID string) error {
	return h.DeleteResource.Execute(ctx, resourceID)
}

func (h Handler) ListResourcesHandler(ctx context.Context) (httptransport.ListResourcesResponse, error) {
	items, err := h.ListResources.Execute(ctx)
	if err != nil {
		return httptransport.ListResourcesResponse{}, err
	}
	result := make([]httptransport.ResourceDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapResource(item))
	}
	return httptransport.ListResourcesResponse{Items: result}, nil
}

func (h Handler) CreateUserHandler(
	ctx context.Context,
	req httptransport.CreateUserRequest,
) (httptransport.UserResponse, error) {
	birthDate, err := parseOptionalDate(req.BirthDate)
	if err != nil {
		return httptransport.UserResponse{}, domainerrors.ErrInvalidInput
	}
	user, err := h.CreateUser.Execute(ctx, commands.CreateUserCommand{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		ChurchID:  req.ChurchID,
		BirthDate: birthDate,
	})
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return httptransport.UserResponse{User: mapUser(user)}, nil
}

func (h Handler) UpdateUserHandler(
	ctx context.Context,
	userID string,
	req httptransport.UpdateUserRequest,
) (httptransport.UserResponse, error) {
	var birthDate *time.Time
	if req.BirthDate != nil {
		parsed, err := parseOptionalDate(*req.BirthDate)
		if err != nil {
			return httptransport.UserResponse{}, domainerrors.ErrInvalidInput
		}
		birthDate = parsed
	}
	user, err := h.UpdateUser.Execute(ctx, commands.UpdateUserCommand{
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		ChurchID:  req.ChurchID,
		BirthDate: birthDate,
	})
	if err != nil {
		return httptransport.UserResponse{}, err
	}
	return httptransport.UserResponse{User: mapUser(user)}, nil
}

func (h Handler) DeleteUserHandler(ctx context.Context, userID string) error {
	return h.DeleteUser.Execute(ctx, userID)
}

func (h Handler) ListUsersHandler(ctx context.Context, churchID string) (httptransport.ListUsersResponse, error) {
	items, err := h.ListUsers.Execute(ctx, ports.UserFilter{ChurchID: churchID})
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	return httptransport.ListUsersResponse{Items: mapUsers(items)}, nil
}

func (h Handler) UsersBornTodayHandler(ctx context.Context) (httptransport.ListUsersResponse, error) {
	items, err := h.UserBirthdays.BornToday(ctx)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	return httptransport.ListUsersResponse{Items: mapUsers(items)}, nil
}

func (h Handler) UsersBornInMonthHandler(ctx context.Context, month string) (httptransport.ListUsersResponse, error) {
	parsed, err := strconv.Atoi(month)
	if err != nil {
		return httptransport.ListUsersResponse{}, domainerrors.ErrInvalidMonth
	}
	items, err := h.UserBirthdays.BornInMonth(ctx, parsed)
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}
	return httptransport.ListUsersResponse{Items: mapUsers(items)}, nil
}

func mapChurch(church entities.Church) httptransport.ChurchDTO {
	return httptransport.ChurchDTO{
		ChurchID:    church.ChurchID,
		Name:        church.Name,
		Address:     church.Address,
		ColorCode:   church.ColorCode,
		Organs:      church.Organs,
		Departments: church.Departments,
	}
}

func mapResource(resource entities.Resource) httptransport.ResourceDTO {
	return httptransport.ResourceDTO{
		ResourceID: resource.ResourceID,
		Name:       resource.Name,
		Type:       string(resource.Type),
		Available:  resource.Available,
	}
}

func mapUser(user entities.User) httptransport.UserDTO {
	dto := httptransport.UserDTO{
		UserID:   user.UserID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     string(user.Role),
		ChurchID: user.ChurchID,
	}
	if user.BirthDate != nil {
		dto.BirthDate = user.BirthDate.Format("2006-01-02")
	}
	return dto
}

func mapUsers(users []entities.User) []httptransport.UserDTO {
	result := make([]httptransport.UserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, mapUser(user))
	}
	return result
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
