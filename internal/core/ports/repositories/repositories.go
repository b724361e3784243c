package repositories

// RepositoryProvider bundles every repository implementation for wiring into
// the service layer.
type RepositoryProvider struct {
	Income       IncomeRepository
	Expense      ExpenseRepository
	Savings      SavingsRepository
	Loan         LoanRepository
	User         UserRepository
	Notification NotificationRepository
}
