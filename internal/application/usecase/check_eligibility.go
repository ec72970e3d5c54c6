package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/dto"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/port"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/service"
)

// CheckEligibilityUseCase scores a customer and evaluates the approval policy
// without persisting anything.
type CheckEligibilityUseCase struct {
	customers port.CustomerRepository
	loans     port.LoanRepository
	scorer    *service.ScoringEngine
	decider   *service.DecisionEngine
}

// NewCheckEligibilityUseCase wires dependencies.
func NewCheckEligibilityUseCase(
	customers port.CustomerRepository,
	loans port.LoanRepository,
	scorer *service.ScoringEngine,
	decider *service.DecisionEngine,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		customers: customers,
		loans:     loans,
		scorer:    scorer,
		decider:   decider,
	}
}

// Execute returns the decision for the requested terms. It is read-only:
// calling it any number of times leaves no trace.
func (uc *CheckEligibilityUseCase) Execute(ctx context.Context, req dto.LoanApplicationRequest) (dto.EligibilityResponse, error) {
	customer, err := uc.customers.FindByID(ctx, req.CustomerID)
	if err != nil {
		return dto.EligibilityResponse{}, fmt.Errorf("find customer: %w", err)
	}

	loans, err := uc.loans.ListByCustomer(ctx, customer.ID)
	if err != nil {
		return dto.EligibilityResponse{}, fmt.Errorf("list loans: %w", err)
	}

	now := time.Now().UTC()
	score := uc.scorer.Score(customer, loans, now)
	decision := uc.decider.Evaluate(customer, score, service.LoanTerms{
		Amount:       decimal.NewFromFloat(req.LoanAmount),
		InterestRate: req.InterestRate,
		TenureMonths: req.Tenure,
	}, model.TotalInstallment(loans))

	return dto.EligibilityResponse{
		CustomerID:            customer.ID,
		Approval:              decision.Approved,
		InterestRate:          req.InterestRate,
		CorrectedInterestRate: decision.CorrectedInterestRate,
		Tenure:                req.Tenure,
		MonthlyInstallment:    decision.MonthlyInstallment.InexactFloat64(),
	}, nil
}
