package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mdrafsun/Advance-tracker/internal/apperrors"
	"github.com/mdrafsun/Advance-tracker/internal/core/domain"
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/utils"
)

// adminService implements the privileged maintenance operations without any
// access checks of its own; callers go through NewAdminProxy.
type adminService struct {
	BaseService
	repos portsrepo.RepositoryProvider
}

func NewAdminService(repos portsrepo.RepositoryProvider) portssvc.AdminSvc {
	return &adminService{repos: repos}
}

var _ portssvc.AdminSvc = (*adminService)(nil)

func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repos.User.List(ctx)
}

// DeleteUser removes the user record and cascades deletion across all four
// transaction collections and the user's notifications.
func (s *adminService) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", apperrors.ErrValidation)
	}
	removed, err := s.repos.User.Remove(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to remove user: %w", err)
	}
	if !removed {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}

	if err := s.cascadeTransactions(ctx, userID); err != nil {
		return err
	}
	if _, err := s.repos.Notification.RemoveByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to remove notifications for user %s: %w", userID, err)
	}
	s.LogInfo(ctx, "User deleted with cascading records", slog.String("user_id", userID))
	return nil
}

func (s *adminService) cascadeTransactions(ctx context.Context, userID string) error {
	income, err := s.repos.Income.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list income for cascade: %w", err)
	}
	for _, r := range income {
		if _, err := s.repos.Income.Remove(ctx, r.IncomeID); err != nil {
			return fmt.Errorf("failed to cascade income %s: %w", r.IncomeID, err)
		}
	}

	expenses, err := s.repos.Expense.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list expenses for cascade: %w", err)
	}
	for _, r := range expenses {
		if _, err := s.repos.Expense.Remove(ctx, r.ExpenseID); err != nil {
			return fmt.Errorf("failed to cascade expense %s: %w", r.ExpenseID, err)
		}
	}

	savings, err := s.repos.Savings.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list savings for cascade: %w", err)
	}
	for _, r := range savings {
		if _, err := s.repos.Savings.Remove(ctx, r.SavingsID); err != nil {
			return fmt.Errorf("failed to cascade savings %s: %w", r.SavingsID, err)
		}
	}

	loans, err := s.repos.Loan.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list loans for cascade: %w", err)
	}
	for _, r := range loans {
		if _, err := s.repos.Loan.Remove(ctx, r.LoanID); err != nil {
			return fmt.Errorf("failed to cascade loan %s: %w", r.LoanID, err)
		}
	}
	return nil
}

// Broadcast persists an admin notification for every user and returns the
// number of users reached.
func (s *adminService) Broadcast(ctx context.Context, message string) (int, error) {
	if message == "" {
		return 0, fmt.Errorf("%w: broadcast message is required", apperrors.ErrValidation)
	}
	users, err := s.repos.User.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users for broadcast: %w", err)
	}
	for _, u := range users {
		notification := domain.Notification{
			NotificationID: utils.NewID(utils.PrefixNotification),
			UserID:         u.UserID,
			Event:          domain.EventAdminBroadcast,
			Message:        message,
			At:             utils.NowLocalTimestamp(),
		}
		if err := s.repos.Notification.Add(ctx, notification); err != nil {
			return 0, fmt.Errorf("failed to persist broadcast for user %s: %w", u.UserID, err)
		}
	}
	s.LogInfo(ctx, "Broadcast delivered", slog.Int("users", len(users)))
	return len(users), nil
}

// adminProxy gates every AdminSvc operation behind an admin role check.
type adminProxy struct {
	service portssvc.AdminSvc
	role    string
}

// NewAdminProxy wraps the admin service for one caller; every operation fails
// with apperrors.ErrAccessDenied unless the role is "admin".
func NewAdminProxy(service portssvc.AdminSvc, role string) portssvc.AdminSvc {
	return &adminProxy{service: service, role: role}
}

func (p *adminProxy) ensureAdmin() error {
	if p.role != string(domain.RoleAdmin) {
		return fmt.Errorf("%w: admin role required", apperrors.ErrAccessDenied)
	}
	return nil
}

func (p *adminProxy) ListUsers(ctx context.Context) ([]domain.User, error) {
	if err := p.ensureAdmin(); err != nil {
		return nil, err
	}
	return p.service.ListUsers(ctx)
}

func (p *adminProxy) DeleteUser(ctx context.Context, userID string) error {
	if err := p.ensureAdmin(); err != nil {
		return err
	}
	return p.service.DeleteUser(ctx, userID)
}

func (p *adminProxy) Broadcast(ctx context.Context, message string) (int, error) {
	if err := p.ensureAdmin(); err != nil {
		return 0, err
	}
	return p.service.Broadcast(ctx, message)
}
