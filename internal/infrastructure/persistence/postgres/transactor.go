package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/port"
	pkgpostgres "github.com/Nalwa-Jayesh/credit-system/pkg/postgres"
)

// Transactor implements port.Transactor. It locks the customer row for the
// duration of the transaction so that concurrent loan creations for the same
// customer serialize instead of deciding on stale aggregates.
type Transactor struct {
	pool *pgxpool.Pool
}

// NewTransactor creates a transactor over the given pool.
func NewTransactor(pool *pgxpool.Pool) *Transactor {
	return &Transactor{pool: pool}
}

// InCustomerTx loads the customer FOR UPDATE and runs fn with a loan
// repository bound to the same transaction.
func (t *Transactor) InCustomerTx(ctx context.Context, customerID int64, fn func(customer model.Customer, loans port.LoanRepository) error) error {
	return pkgpostgres.WithTransaction(ctx, t.pool, func(tx pgx.Tx) error {
		query := `
			SELECT ` + customerColumns + `
			FROM customers
			WHERE customer_id = $1
			FOR UPDATE
		`
		customer, err := scanCustomerRow(tx.QueryRow(ctx, query, customerID))
		if err != nil {
			return err
		}
		return fn(customer, NewLoanRepo(tx))
	})
}
