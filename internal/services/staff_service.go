package services

import (
	"fmt"
	"strings"

	apperrors "github.com/taniteam/catatan/internal/errors"
	"github.com/taniteam/catatan/internal/models"
	"github.com/taniteam/catatan/internal/store"
	"github.com/taniteam/catatan/internal/uuid"
)

// staffService handles staff administration and the login lookup.
type staffService struct {
	store *store.Store
}

// NewStaffService creates a new StaffServicer.
func NewStaffService(st *store.Store) StaffServicer {
	return &staffService{store: st}
}

// List returns the staff roster.
func (s *staffService) List() []models.Staff {
	return s.store.Staff()
}

// GetByID returns one staff member by id.
func (s *staffService) GetByID(id string) (*models.Staff, error) {
	for _, member := range s.store.Staff() {
		if member.ID == id {
			return &member, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

// Login resolves a username with a case-insensitive exact match. No
// password is checked anywhere; an unknown username is the only failure.
func (s *staffService) Login(username string) (*models.Staff, error) {
	for _, member := range s.store.Staff() {
		if strings.EqualFold(member.Username, username) {
			return &member, nil
		}
	}
	return nil, apperrors.ErrUnknownUsername
}

// Create registers a new staff member. Administrator only; the role
// defaults to Staff when not specified.
func (s *staffService) Create(actor models.Staff, name, username string, role models.Role) (*models.Staff, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "staff name is required")
	}
	if username == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "username is required")
	}
	if role == "" {
		role = models.RoleStaff
	}
	if !role.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown role")
	}

	member := models.Staff{
		ID:       uuid.New(),
		Name:     name,
		Username: username,
		Role:     role,
	}

	roster := append(s.store.Staff(), member)
	if err := s.store.ReplaceStaff(roster); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &member, nil
}

// UpdateRole changes only the role field of a staff member. Administrator only.
func (s *staffService) UpdateRole(actor models.Staff, id string, role models.Role) (*models.Staff, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	if !role.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown role")
	}

	roster := s.store.Staff()
	for i, member := range roster {
		if member.ID == id {
			roster[i].Role = role
			if err := s.store.ReplaceStaff(roster); err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			updated := roster[i]
			return &updated, nil
		}
	}
	return nil, apperrors.ErrStaffNotFound
}

// RequestDelete validates the removal and returns the confirmation intent
// without changing any state.
func (s *staffService) RequestDelete(actor models.Staff, id string) (*DeleteIntent, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	member, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member.Username == models.AdminUsername {
		return nil, apperrors.ErrProtectedStaff
	}

	return &DeleteIntent{
		EntityType: "staff",
		TargetID:   member.ID,
		Prompt:     fmt.Sprintf("Hapus staff %s?", member.Name),
	}, nil
}

// Delete removes a staff member. Administrator only; the reserved admin
// username is rejected regardless of caller.
func (s *staffService) Delete(actor models.Staff, id string) (*models.Staff, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	roster := s.store.Staff()
	idx := -1
	for i, member := range roster {
		if member.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrStaffNotFound
	}

	deleted := roster[idx]
	if deleted.Username == models.AdminUsername {
		return nil, apperrors.ErrProtectedStaff
	}

	roster = append(roster[:idx], roster[idx+1:]...)
	if err := s.store.ReplaceStaff(roster); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &deleted, nil
}
