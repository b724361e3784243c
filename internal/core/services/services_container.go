package services

import (
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
	portssvc "github.com/mdrafsun/Advance-tracker/internal/core/ports/services"
	"github.com/mdrafsun/Advance-tracker/internal/platform/config"
)

// NewServiceContainer wires every service against the repositories. The
// global notification sink is registered here so every recorded transaction
// lands in the notifications collection.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	notifier := NewNotifier()
	notifier.Register(NewGlobalUserSink(repos.Notification))

	finance, err := NewFinanceService(repos, notifier)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Finance:      finance,
		Report:       NewReportService(repos),
		Admin:        NewAdminService(repos),
		User:         NewUserService(repos.User, cfg),
		Notification: NewNotificationService(repos.Notification),
	}, nil
}
