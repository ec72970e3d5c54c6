package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/dto"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/event"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/port"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/service"
)

// CreateLoanUseCase evaluates a loan request and persists the loan when
// approved. The whole read-decide-write sequence runs inside one transaction
// holding a row lock on the customer, so two concurrent requests for the same
// customer cannot both pass the obligation checks on stale aggregates.
type CreateLoanUseCase struct {
	transactor port.Transactor
	publisher  port.EventPublisher
	scorer     *service.ScoringEngine
	decider    *service.DecisionEngine
	logger     *slog.Logger
}

// NewCreateLoanUseCase wires dependencies.
func NewCreateLoanUseCase(
	transactor port.Transactor,
	publisher port.EventPublisher,
	scorer *service.ScoringEngine,
	decider *service.DecisionEngine,
	logger *slog.Logger,
) *CreateLoanUseCase {
	return &CreateLoanUseCase{
		transactor: transactor,
		publisher:  publisher,
		scorer:     scorer,
		decider:    decider,
		logger:     logger,
	}
}

// Execute runs the decision and, on approval, persists the loan with the
// corrected rate, a zero repayment counter, and dates derived from today.
func (uc *CreateLoanUseCase) Execute(ctx context.Context, req dto.LoanApplicationRequest) (dto.CreateLoanResponse, error) {
	var (
		decision service.Decision
		score    float64
		created  *model.Loan
	)

	err := uc.transactor.InCustomerTx(ctx, req.CustomerID, func(customer model.Customer, loans port.LoanRepository) error {
		existing, err := loans.ListByCustomer(ctx, customer.ID)
		if err != nil {
			return fmt.Errorf("list loans: %w", err)
		}

		now := time.Now().UTC()
		score = uc.scorer.Score(customer, existing, now)
		decision = uc.decider.Evaluate(customer, score, service.LoanTerms{
			Amount:       decimal.NewFromFloat(req.LoanAmount),
			InterestRate: req.InterestRate,
			TenureMonths: req.Tenure,
		}, model.TotalInstallment(existing))

		if !decision.Approved {
			return nil
		}

		loan := model.NewLoan(
			customer.ID,
			decimal.NewFromFloat(req.LoanAmount),
			req.Tenure,
			decision.CorrectedInterestRate,
			decision.MonthlyInstallment,
			now,
		)
		saved, err := loans.Create(ctx, loan)
		if err != nil {
			return fmt.Errorf("create loan: %w", err)
		}
		created = &saved
		return nil
	})
	if err != nil {
		return dto.CreateLoanResponse{}, fmt.Errorf("create loan for customer %d: %w", req.CustomerID, err)
	}

	uc.publishOutcome(ctx, req.CustomerID, score, decision, created)

	resp := dto.CreateLoanResponse{
		CustomerID:   req.CustomerID,
		LoanApproved: decision.Approved,
		Message:      decision.Message,
	}
	if created != nil {
		resp.LoanID = &created.ID
		installment := decision.MonthlyInstallment.InexactFloat64()
		resp.MonthlyInstallment = &installment
	}
	return resp, nil
}

// publishOutcome emits loan.created or loan.rejected after the transaction
// has committed. Failures are logged, never surfaced: the decision is durable.
func (uc *CreateLoanUseCase) publishOutcome(ctx context.Context, customerID int64, score float64, decision service.Decision, created *model.Loan) {
	var evt event.DomainEvent
	if created != nil {
		evt = event.NewLoanCreated(*created)
	} else {
		evt = event.NewLoanRejected(customerID, score, decision.Message)
	}
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish loan decision event",
			"error", err,
			"customer_id", customerID,
			"approved", decision.Approved,
		)
	}
}
