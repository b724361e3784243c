package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/dto"
	"github.com/mdrafsun/Advance-tracker/internal/platform/config"
	"github.com/mdrafsun/Advance-tracker/internal/utils"
)

// userService handles signup, login and profile management.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo portsrepo.UserRepository, cfg *config.Config) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, cfg: cfg}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("user with email %s: %w", req.Email, apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleIndividual
	}
	now := utils.NowLocalTimestamp()
	user := domain.User{
		UserID:        utils.NewID(utils.PrefixUser),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          role,
		PasswordHash:  hash,
		Age:           req.Age,
		Profession:    req.Profession,
		BusinessName:  req.BusinessName,
		BusinessRegNo: req.BusinessRegNo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User signed up",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

// Login verifies credentials and issues a signed token carrying the user's
// role. Bad credentials fail with apperrors.ErrAccessDenied without hinting
// whether the email exists.
func (s *userService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrAccessDenied)
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrAccessDenied)
	}

	token, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, token, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.Update(ctx, userID, func(u *domain.User) {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		if req.Phone != nil {
			u.Phone = *req.Phone
		}
		u.UpdatedAt = utils.NowLocalTimestamp()
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User profile updated", slog.String("user_id", userID))
	return user, nil
}
