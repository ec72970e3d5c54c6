package port

import (
	"context"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/event"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// CustomerRepository persists and retrieves customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer model.Customer) (model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
}

// LoanRepository persists and retrieves loans.
type LoanRepository interface {
	Create(ctx context.Context, loan model.Loan) (model.Loan, error)
	FindByID(ctx context.Context, id int64) (model.Loan, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Loan, error)
}

// Transactor serializes loan creation per customer. InCustomerTx loads the
// customer under a row lock and runs fn with a loan repository bound to the
// same transaction; an error from fn rolls everything back.
type Transactor interface {
	InCustomerTx(ctx context.Context, customerID int64, fn func(customer model.Customer, loans LoanRepository) error) error
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
