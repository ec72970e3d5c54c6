package usecase

import (
	"context"
	"fmt"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/dto"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/port"
	"github.com/Nalwa-Jayesh/credit-system/pkg/domainerrors"
)

// ViewCustomerLoansUseCase lists a customer's loans with remaining repayments.
type ViewCustomerLoansUseCase struct {
	loans port.LoanRepository
}

// NewViewCustomerLoansUseCase wires dependencies.
func NewViewCustomerLoansUseCase(loans port.LoanRepository) *ViewCustomerLoansUseCase {
	return &ViewCustomerLoansUseCase{loans: loans}
}

// Execute returns the customer's loans. A customer with no loans is reported
// as not found, matching the external contract.
func (uc *ViewCustomerLoansUseCase) Execute(ctx context.Context, customerID int64) ([]dto.CustomerLoanItem, error) {
	loans, err := uc.loans.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	if len(loans) == 0 {
		return nil, domainerrors.New(domainerrors.CodeNotFound, "No loans found for this customer.")
	}

	items := make([]dto.CustomerLoanItem, 0, len(loans))
	for _, l := range loans {
		items = append(items, dto.CustomerLoanItem{
			LoanID:             l.ID,
			LoanAmount:         l.LoanAmount.InexactFloat64(),
			InterestRate:       l.InterestRate,
			MonthlyInstallment: l.MonthlyInstallment.InexactFloat64(),
			RepaymentsLeft:     l.RepaymentsLeft(),
		})
	}
	return items, nil
}
