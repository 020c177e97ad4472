package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to keep each slot operation atomic without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction.
// Only the stores mutated by slot operations are exposed here; everything
// else is read outside the transaction boundary.
type RepositoryFactory interface {
	// NewTimetableRepository returns a TimetableRepository bound to the current transaction.
	NewTimetableRepository() TimetableRepository

	// NewPartyRepository returns a PartyRepository bound to the current transaction.
	NewPartyRepository() PartyRepository

	// NewAuditRepository returns an AuditRepository bound to the current transaction.
	NewAuditRepository() AuditRepository
}
