package employees

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/employees/models"
)

// maxPhotoBytes ограничение размера фото мастера
const maxPhotoBytes = 5 << 20

// Service сервис мастеров. Фото передаётся в API бронирований как есть
type Service struct {
	api    EmployeeAPI
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(api EmployeeAPI, logger Logger) *Service {
	return &Service{api: api, logger: logger}
}

// List получает всех мастеров, отсортированных по имени
func (s *Service) List(ctx context.Context) ([]models.EmployeeResponse, error) {
	list, err := s.api.ListEmployees(ctx)
	if err != nil {
		s.logger.Error("List: failed to list employees: %v", err)
		return nil, mapUpstream("List", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return models.FromDomainEmployeeList(list), nil
}

// Create создает мастера
func (s *Service) Create(ctx context.Context, sess *reservationapi.Session, in domain.EmployeeInput) (*models.EmployeeResponse, error) {
	if err := validateInput(in, true); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	e, err := s.api.CreateEmployee(ctx, sess, in)
	if err != nil {
		s.logger.Error("Create: failed to create employee: %v", err)
		return nil, mapUpstream("Create", err)
	}

	s.logger.Info("Create: created employee id=%s", e.ID)
	resp := models.FromDomainEmployee(e)
	return &resp, nil
}

// Update обновляет мастера. Пустое имя означает "не менять", фото необязательно
func (s *Service) Update(ctx context.Context, sess *reservationapi.Session, id string, in domain.EmployeeInput) (*models.EmployeeResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := validateInput(in, false); err != nil {
		s.logger.Warn("Update: validation failed for employee id=%s: %v", id, err)
		return nil, err
	}

	e, err := s.api.UpdateEmployee(ctx, sess, id, in)
	if err != nil {
		s.logger.Error("Update: failed to update employee id=%s: %v", id, err)
		return nil, mapUpstream("Update", err)
	}

	s.logger.Info("Update: updated employee id=%s", id)
	resp := models.FromDomainEmployee(e)
	return &resp, nil
}

// Delete удаляет мастера
func (s *Service) Delete(ctx context.Context, sess *reservationapi.Session, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if err := s.api.DeleteEmployee(ctx, sess, id); err != nil {
		s.logger.Error("Delete: failed to delete employee id=%s: %v", id, err)
		return mapUpstream("Delete", err)
	}
	s.logger.Info("Delete: deleted employee id=%s", id)
	return nil
}

func validateInput(in domain.EmployeeInput, requireName bool) error {
	if requireName && strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.Photo != nil {
		if len(in.Photo.Data) == 0 {
			return fmt.Errorf("%w: photo is empty", ErrInvalidInput)
		}
		if len(in.Photo.Data) > maxPhotoBytes {
			return fmt.Errorf("%w: photo exceeds %d bytes", ErrInvalidInput, maxPhotoBytes)
		}
		if in.Photo.ContentType != "" && !strings.HasPrefix(in.Photo.ContentType, "image/") {
			return fmt.Errorf("%w: photo must be an image", ErrInvalidInput)
		}
	}
	return nil
}

func mapUpstream(op string, err error) error {
	switch {
	case errors.Is(err, reservationapi.ErrNotFound):
		return ErrEmployeeNotFound
	case errors.Is(err, reservationapi.ErrUnauthorized):
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: %s - reservation api error: %v", ErrInternal, op, err)
	}
}
