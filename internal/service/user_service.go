package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mstolarz/wellness-tracker/internal/auth"
	"github.com/mstolarz/wellness-tracker/internal/domain"
	"github.com/mstolarz/wellness-tracker/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context) ([]domain.UserResponse, error)
	Delete(ctx context.Context, adminID, userID uuid.UUID) error
	SystemStatistics(ctx context.Context) (*domain.SystemStatistics, error)
}

type userService struct {
	repo      repository.UserRepository
	entryRepo repository.EntryRepository
	tokens    *auth.Manager
}

func NewUserService(repo repository.UserRepository, entryRepo repository.EntryRepository, tokens *auth.Manager) UserService {
	return &userService{
		repo:      repo,
		entryRepo: entryRepo,
		tokens:    tokens,
	}
}

func (s *userService) Register(ctx context.Context, req *domain.RegisterRequest) (*domain.AuthResponse, error) {
	taken, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

func (s *userService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	return s.authResponse(user)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.UserResponse, len(users))
	for i, u := range users {
		responses[i] = u.ToResponse()
	}
	return responses, nil
}

// Delete removes a user account. Admins cannot delete themselves.
func (s *userService) Delete(ctx context.Context, adminID, userID uuid.UUID) error {
	if adminID == userID {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, userID)
}

func (s *userService) SystemStatistics(ctx context.Context) (*domain.SystemStatistics, error) {
	users, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	avg, err := s.entryRepo.GlobalAverageScore(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SystemStatistics{
		TotalUsers:           users,
		TotalEntries:         entries,
		AverageWellnessScore: avg,
	}, nil
}

func (s *userService) authResponse(user *domain.User) (*domain.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
