package services

// ServiceContainer bundles every service implementation for route wiring.
type ServiceContainer struct {
	Finance      FinanceSvcFacade
	Report       ReportSvcFacade
	Admin        AdminSvc
	User         UserSvcFacade
	Notification NotificationSvcFacade
}
