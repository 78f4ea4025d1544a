package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"veltech_portal/internal/domain/entities"
	"veltech_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUserRole = errors.New("invalid user role")
)

// CreateUserInput is the minimal principal record the workflow needs for
// notification recipients and audit context.

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Role      entities.UserRole
}

type IUserUseCase interface {
	Create(ctx context.Context, input CreateUserInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Create(ctx context.Context, input CreateUserInput) (entities.User, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.Email) == "" {
		return entities.User{}, ErrIncompleteInput
	}
	if !input.Role.IsValid() {
		return entities.User{}, ErrInvalidUserRole
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:        uuid.NewString(),
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Role:      input.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
