package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mwaters/ec-api/internal/errs"
	"github.com/mwaters/ec-api/internal/lib/job"
	"github.com/mwaters/ec-api/internal/models"
	"github.com/mwaters/ec-api/internal/repository"
)

// UsersStore is the repository surface the users service depends on.
type UsersStore interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Delete(ctx context.Context, id int64) error
}

// UsersService implements user management.
type UsersService struct {
	repo   UsersStore
	jobs   *job.JobService
	logger *zerolog.Logger
}

func NewUsersService(repo UsersStore, jobs *job.JobService, logger *zerolog.Logger) *UsersService {
	return &UsersService{
		repo:   repo,
		jobs:   jobs,
		logger: logger,
	}
}

// List returns all users. An empty table yields an empty list, not an
// error.
func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Get returns one user, or a 404 when the id does not exist.
func (s *UsersService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError("Invalid user id", nil)
		}
		return nil, err
	}
	return user, nil
}

// Create persists a new user and enqueues a welcome email. A duplicate
// email surfaces as a unique violation handled by the global error
// funnel. The enqueue is fire-and-forget: a failure is logged and never
// fails the request.
func (s *UsersService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.jobs.EnqueueWelcomeEmail(user.Email, user.Name); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to enqueue welcome email")
	}

	return user, nil
}

// Update overwrites a user's fields, or returns a 404 when the id does
// not exist.
func (s *UsersService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errs.NewNotFoundError("Invalid user id", nil)
		}
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Their orders go with them via the foreign key
// cascade.
func (s *UsersService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errs.NewNotFoundError("Invalid user id", nil)
		}
		return err
	}
	return nil
}
