package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/usecase"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/pkg/domainerrors"
	"github.com/Nalwa-Jayesh/credit-system/pkg/testutil"
)

func TestViewLoan_Execute(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	customer := testutil.Customer(5, 50_000)
	loan := testutil.ActiveLoan(9, 5, 150_000, 24, 6, start)

	t.Run("returns the loan with its customer summary", func(t *testing.T) {
		loans := &mockLoanRepo{
			findByIDFn: func(_ context.Context, id int64) (model.Loan, error) {
				require.Equal(t, int64(9), id)
				return loan, nil
			},
		}
		customers := &mockCustomerRepo{
			findByIDFn: func(_ context.Context, id int64) (model.Customer, error) {
				require.Equal(t, int64(5), id)
				return customer, nil
			},
		}
		uc := usecase.NewViewLoanUseCase(loans, customers)

		resp, err := uc.Execute(context.Background(), 9)

		require.NoError(t, err)
		assert.Equal(t, int64(9), resp.LoanID)
		assert.Equal(t, int64(5), resp.Customer.CustomerID)
		assert.Equal(t, "Asha", resp.Customer.FirstName)
		assert.Equal(t, 150_000.0, resp.LoanAmount)
		assert.Equal(t, 14.0, resp.InterestRate)
		assert.Equal(t, 24, resp.Tenure)
	})

	t.Run("unknown loan", func(t *testing.T) {
		loans := &mockLoanRepo{
			findByIDFn: func(_ context.Context, _ int64) (model.Loan, error) {
				return model.Loan{}, domainerrors.New(domainerrors.CodeNotFound, "Loan not found.")
			},
		}
		uc := usecase.NewViewLoanUseCase(loans, &mockCustomerRepo{})

		_, err := uc.Execute(context.Background(), 9)

		assert.True(t, domainerrors.HasCode(err, domainerrors.CodeNotFound))
	})

	t.Run("missing owner propagates", func(t *testing.T) {
		loans := &mockLoanRepo{
			findByIDFn: func(_ context.Context, _ int64) (model.Loan, error) {
				return loan, nil
			},
		}
		customers := &mockCustomerRepo{
			findByIDFn: func(_ context.Context, _ int64) (model.Customer, error) {
				return model.Customer{}, domainerrors.New(domainerrors.CodeNotFound, "Customer not found.")
			},
		}
		uc := usecase.NewViewLoanUseCase(loans, customers)

		_, err := uc.Execute(context.Background(), 9)

		assert.True(t, domainerrors.HasCode(err, domainerrors.CodeNotFound))
	})
}

func TestViewCustomerLoans_Execute(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("lists loans with remaining repayments", func(t *testing.T) {
		loans := &mockLoanRepo{
			listFn: func(_ context.Context, customerID int64) ([]model.Loan, error) {
				require.Equal(t, int64(5), customerID)
				return []model.Loan{
					testutil.ActiveLoan(1, 5, 100_000, 24, 6, start),
					testutil.ActiveLoan(2, 5, 50_000, 24, 30, start), // feed overshot the tenure
				}, nil
			},
		}
		uc := usecase.NewViewCustomerLoansUseCase(loans)

		items, err := uc.Execute(context.Background(), 5)

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 18, items[0].RepaymentsLeft)
		assert.Equal(t, 0, items[1].RepaymentsLeft)
		assert.Equal(t, 100_000.0, items[0].LoanAmount)
	})

	t.Run("customer with no loans is reported as not found", func(t *testing.T) {
		uc := usecase.NewViewCustomerLoansUseCase(&mockLoanRepo{})

		_, err := uc.Execute(context.Background(), 5)

		assert.True(t, domainerrors.HasCode(err, domainerrors.CodeNotFound))
		assert.ErrorContains(t, err, "No loans found for this customer.")
	})
}
