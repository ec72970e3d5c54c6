package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/dto"
	"github.com/Nalwa-Jayesh/credit-system/internal/application/usecase"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/service"
	"github.com/Nalwa-Jayesh/credit-system/pkg/domainerrors"
	"github.com/Nalwa-Jayesh/credit-system/pkg/testutil"
)

func loanRequest() dto.LoanApplicationRequest {
	return dto.LoanApplicationRequest{
		CustomerID:   5,
		LoanAmount:   200_000,
		InterestRate: 10,
		Tenure:       12,
	}
}

func newCreateLoanUseCase(tx *mockTransactor, publisher *mockPublisher) *usecase.CreateLoanUseCase {
	return usecase.NewCreateLoanUseCase(tx, publisher, service.NewScoringEngine(), service.NewDecisionEngine(), discardLogger())
}

func TestCreateLoan_Execute(t *testing.T) {
	customer := testutil.Customer(5, 50_000)
	old := time.Now().UTC().AddDate(-2, 0, 0)
	goodHistory := func(_ context.Context, _ int64) ([]model.Loan, error) {
		return []model.Loan{testutil.PaidOffLoan(1, 5, 100_000, old)}, nil
	}

	t.Run("approved loan is persisted with the corrected rate", func(t *testing.T) {
		loans := &mockLoanRepo{
			listFn: goodHistory,
			createFn: func(_ context.Context, l model.Loan) (model.Loan, error) {
				l.ID = 42
				return l, nil
			},
		}
		publisher := &mockPublisher{}
		uc := newCreateLoanUseCase(&mockTransactor{customer: customer, loans: loans}, publisher)

		resp, err := uc.Execute(context.Background(), loanRequest())

		require.NoError(t, err)
		assert.True(t, resp.LoanApproved)
		assert.Equal(t, service.MsgApproved, resp.Message)
		require.NotNil(t, resp.LoanID)
		assert.Equal(t, int64(42), *resp.LoanID)
		require.NotNil(t, resp.MonthlyInstallment)
		want := model.MonthlyInstallment(testutil.Dec(200_000), 10, 12)
		assert.InDelta(t, want.InexactFloat64(), *resp.MonthlyInstallment, 0.001)

		require.Len(t, loans.created, 1)
		saved := loans.created[0]
		assert.Equal(t, 10.0, saved.InterestRate)
		assert.Equal(t, 0, saved.EMIsPaidOnTime)
		assert.Equal(t, int64(5), saved.CustomerID)

		require.Len(t, publisher.published, 1)
		assert.Equal(t, "credit.loan.created", publisher.published[0].EventType())
	})

	t.Run("rejection persists nothing and emits loan.rejected", func(t *testing.T) {
		loans := &mockLoanRepo{} // no history, score 0
		publisher := &mockPublisher{}
		uc := newCreateLoanUseCase(&mockTransactor{customer: customer, loans: loans}, publisher)

		resp, err := uc.Execute(context.Background(), loanRequest())

		require.NoError(t, err)
		assert.False(t, resp.LoanApproved)
		assert.Equal(t, service.MsgScoreTooLow, resp.Message)
		assert.Nil(t, resp.LoanID)
		assert.Nil(t, resp.MonthlyInstallment)
		assert.Empty(t, loans.created)

		require.Len(t, publisher.published, 1)
		assert.Equal(t, "credit.loan.rejected", publisher.published[0].EventType())
	})

	t.Run("existing obligations above half salary block the loan", func(t *testing.T) {
		loans := &mockLoanRepo{
			listFn: func(_ context.Context, _ int64) ([]model.Loan, error) {
				// EMI on 600k over 24 months comfortably exceeds 25k.
				return []model.Loan{testutil.ActiveLoan(1, 5, 600_000, 24, 0, old)}, nil
			},
		}
		uc := newCreateLoanUseCase(&mockTransactor{customer: customer, loans: loans}, &mockPublisher{})

		resp, err := uc.Execute(context.Background(), loanRequest())

		require.NoError(t, err)
		assert.False(t, resp.LoanApproved)
		assert.Equal(t, service.MsgEMITooHigh, resp.Message)
		assert.Empty(t, loans.created)
	})

	t.Run("unknown customer surfaces not found and emits nothing", func(t *testing.T) {
		tx := &mockTransactor{err: domainerrors.New(domainerrors.CodeNotFound, "Customer not found.")}
		publisher := &mockPublisher{}
		uc := newCreateLoanUseCase(tx, publisher)

		_, err := uc.Execute(context.Background(), loanRequest())

		assert.True(t, domainerrors.HasCode(err, domainerrors.CodeNotFound))
		assert.Empty(t, publisher.published)
	})

	t.Run("persistence failure rolls back without events", func(t *testing.T) {
		loans := &mockLoanRepo{
			listFn: goodHistory,
			createFn: func(_ context.Context, _ model.Loan) (model.Loan, error) {
				return model.Loan{}, errors.New("connection reset")
			},
		}
		publisher := &mockPublisher{}
		uc := newCreateLoanUseCase(&mockTransactor{customer: customer, loans: loans}, publisher)

		_, err := uc.Execute(context.Background(), loanRequest())

		assert.ErrorContains(t, err, "create loan")
		assert.Empty(t, publisher.published)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		loans := &mockLoanRepo{listFn: goodHistory}
		publisher := &mockPublisher{err: errors.New("broker down")}
		uc := newCreateLoanUseCase(&mockTransactor{customer: customer, loans: loans}, publisher)

		resp, err := uc.Execute(context.Background(), loanRequest())

		require.NoError(t, err)
		assert.True(t, resp.LoanApproved)
	})
}
