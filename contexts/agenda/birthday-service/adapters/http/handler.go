package httpadapter

import (
	"context"
	"log/slog"
	"strconv"

	"agendaviva/contexts/agenda/birthday-service/application/commands"
	"agendaviva/contexts/agenda/birthday-service/application/queries"
	"agendaviva/contexts/agenda/birthday-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/birthday-service/domain/errors"
	httptransport "agendaviva/contexts/agenda/birthday-service/transport/http"
)

type Handler struct {
	CreateBirthday   commands.CreateBirthdayUseCase
	UpdateBirthday   commands.UpdateBirthdayUseCase
	DeleteBirthday   commands.DeleteBirthdayUseCase
	ListBirthdays    queries.ListBirthdaysUseCase
	BirthdaysInMonth queries.BirthdaysInMonthUseCase
	Upcoming         queries.UpcomingBirthdaysUseCase
	Logger           *slog.Logger
}

func (h Handler) CreateBirthdayHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateBirthdayRequest,
) (httptransport.BirthdayResponse, error) {
	birthday, err := h.CreateBirthday.Execute(ctx, commands.CreateBirthdayCommand{
		Name:         req.Name,
		Day:          req.Day,
		Month:        req.Month,
		BirthYear:    req.BirthYear,
		ChurchID:     req.ChurchID,
		Notes:        req.Notes,
		CreatedBy:    userID,
		DepartmentID: req.DepartmentID,
		OrganID:      req.OrganID,
	})
	if err != nil {
		return httptransport.BirthdayResponse{}, err
	}
	return httptransport.BirthdayResponse{Birthday: mapBirthday(birthday)}, nil
}

func (h Handler) UpdateBirthdayHandler(
	ctx context.Context,
	birthdayID string,
	req httptransport.UpdateBirthdayRequest,
) (httptransport.BirthdayResponse, error) {
	birthday, err := h.UpdateBirthday.Execute(ctx, commands.UpdateBirthdayCommand{
		BirthdayID:   birthdayID,
		Name:         req.Name,
		Day:          req.Day,
		Month:        req.Month,
		BirthYear:    req.BirthYear,
		ChurchID:     req.ChurchID,
		Notes:        req.Notes,
		DepartmentID: req.DepartmentID,
		OrganID:      req.OrganID,
	})
	if err != nil {
		return httptransport.BirthdayResponse{}, err
	}
	return httptransport.BirthdayResponse{Birthday: mapBirthday(birthday)}, nil
}

func (h Handler) DeleteBirthdayHandler(ctx context.Context, birthdayID string) error {
	return h.DeleteBirthday.Execute(ctx, birthdayID)
}

func (h Handler) ListBirthdaysHandler(
	ctx context.Context,
	churchID string,
	month string,
) (httptransport.ListBirthdaysResponse, error) {
	query := queries.ListBirthdaysQuery{ChurchID: churchID}
	if month != "" {
		parsed, err := strconv.Atoi(month)
		if err != nil {
			return httptransport.ListBirthdaysResponse{}, domainerrors.ErrInvalidMonth
		}
		query.Month = parsed
	}

	items, err := h.ListBirthdays.Execute(ctx, query)
	if err != nil {
		return httptransport.ListBirthdaysResponse{}, err
	}
	result := make([]httptransport.BirthdayDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapBirthday(item))
	}
	return httptransport.ListBirthdaysResponse{Items: result}, nil
}

func (h Handler) BirthdaysInMonthHandler(
	ctx context.Context,
	churchID string,
	month string,
) (httptransport.MonthBirthdaysResponse, error) {
	parsed, err := strconv.Atoi(month)
	if err != nil {
		return httptransport.MonthBirthdaysResponse{}, domainerrors.ErrInvalidMonth
	}

	items, err := h.BirthdaysInMonth.Execute(ctx, queries.BirthdaysInMonthQuery{
		Month:    parsed,
		ChurchID: churchID,
	})
	if err != nil {
		return httptransport.MonthBirthdaysResponse{}, err
	}
	result := make([]httptransport.MonthEntryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.MonthEntryDTO{
			BirthdayID:   item.BirthdayID,
			Name:         item.Name,
			Day:          item.Day,
			Month:        item.Month,
			ChurchID:     item.ChurchID,
			DepartmentID: item.DepartmentID,
			OrganID:      item.OrganID,
		})
	}
	return httptransport.MonthBirthdaysResponse{Month: parsed, Items: result}, nil
}

func (h Handler) UpcomingBirthdaysHandler(
	ctx context.Context,
	churchID string,
	withinDays string,
) (httptransport.UpcomingBirthdaysResponse, error) {
	query := queries.UpcomingBirthdaysQuery{ChurchID: churchID}
	if withinDays != "" {
		parsed, err := strconv.Atoi(withinDays)
		if err != nil || parsed < 0 {
			return httptransport.UpcomingBirthdaysResponse{}, domainerrors.ErrInvalidBirthdayInput
		}
		query.WithinDays = parsed
	}

	items, err := h.Upcoming.Execute(ctx, query)
	if err != nil {
		return httptransport.UpcomingBirthdaysResponse{}, err
	}
	result := make([]httptransport.UpcomingEntryDTO, 0, len(items))
	for _, item := range items {
		result = append(result, httptransport.UpcomingEntryDTO{
			BirthdayID:   item.BirthdayID,
			Name:         item.Name,
			Date:         item.NextDate.Format("2006-01-02"),
			DaysUntil:    item.DaysUntil,
			TurnsAge:     item.TurnsAge,
			ChurchID:     item.ChurchID,
			DepartmentID: item.DepartmentID,
			OrganID:      item.OrganID,
		})
	}
	return httptransport.UpcomingBirthdaysResponse{Items: result}, nil
}

func mapBirthday(birthday entities.Birthday) httptransport.BirthdayDTO {
	return httptransport.BirthdayDTO{
		BirthdayID:   birthday.BirthdayID,
		Name:         birthday.Name,
		Day:          birthday.Day,
		Month:        birthday.Month,
		BirthYear:    birthday.BirthYear,
		ChurchID:     birthday.ChurchID,
		Notes:        birthday.Notes,
		CreatedBy:    birthday.CreatedBy,
		DepartmentID: birthday.DepartmentID,
		OrganID:      birthday.OrganID,
	}
}
