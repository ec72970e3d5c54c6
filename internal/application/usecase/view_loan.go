package usecase

import (
	"context"
	"fmt"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/dto"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/port"
)

// ViewLoanUseCase retrieves a loan with its owning customer's summary.
type ViewLoanUseCase struct {
	loans     port.LoanRepository
	customers port.CustomerRepository
}

// NewViewLoanUseCase wires dependencies.
func NewViewLoanUseCase(loans port.LoanRepository, customers port.CustomerRepository) *ViewLoanUseCase {
	return &ViewLoanUseCase{loans: loans, customers: customers}
}

// Execute returns the loan detail for the given ID.
func (uc *ViewLoanUseCase) Execute(ctx context.Context, loanID int64) (dto.LoanDetailResponse, error) {
	loan, err := uc.loans.FindByID(ctx, loanID)
	if err != nil {
		return dto.LoanDetailResponse{}, fmt.Errorf("find loan: %w", err)
	}

	customer, err := uc.customers.FindByID(ctx, loan.CustomerID)
	if err != nil {
		return dto.LoanDetailResponse{}, fmt.Errorf("find customer %d for loan %d: %w", loan.CustomerID, loanID, err)
	}

	return dto.LoanDetailResponse{
		LoanID: loan.ID,
		Customer: dto.LoanCustomerResponse{
			CustomerID:  customer.ID,
			FirstName:   customer.FirstName,
			LastName:    customer.LastName,
			PhoneNumber: customer.PhoneNumber,
			Age:         customer.Age,
		},
		LoanAmount:         loan.LoanAmount.InexactFloat64(),
		InterestRate:       loan.InterestRate,
		MonthlyInstallment: loan.MonthlyInstallment.InexactFloat64(),
		Tenure:             loan.Tenure,
	}, nil
}
