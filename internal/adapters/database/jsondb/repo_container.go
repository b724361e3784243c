package jsondb

import (
	portsrepo "github.com/mdrafsun/Advance-tracker/internal/core/ports/repositories"
)

// NewRepoContainer wires every repository against the given store.
func NewRepoContainer(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Income:       NewIncomeRepository(store),
		Expense:      NewExpenseRepository(store),
		Savings:      NewSavingsRepository(store),
		Loan:         NewLoanRepository(store),
		User:         NewUserRepository(store),
		Notification: NewNotificationRepository(store),
	}
}
