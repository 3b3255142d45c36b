package service

import (
	"context"
	"fmt"

	"progress-service/internal/models"
)

// UserService handles user-profile operations outside the submission path.
type UserService struct {
	Users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{Users: users}
}

// SetExperienceLevel validates and persists the user's self-reported level,
// returning the sanitized user projection.
func (s *UserService) SetExperienceLevel(ctx context.Context, userID, level string) (*models.UserView, error) {
	if !models.ValidExperienceLevel(level) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid experience level %q", level)}
	}

	user, err := s.Users.FindByID(ctx, userID)
	if err != nil {
		return nil, &StoreError{Op: "find user", Err: err}
	}
	if user == nil {
		return nil, &NotFoundError{Entity: "user", ID: userID}
	}

	user.ExperienceLevel = level
	if err := s.Users.Save(ctx, user); err != nil {
		return nil, &StoreError{Op: "save user", Err: err}
	}

	view := user.View()
	return &view, nil
}
