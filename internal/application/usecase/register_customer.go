package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/dto"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/event"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/port"
	"github.com/Nalwa-Jayesh/credit-system/pkg/domainerrors"
)

// RegisterCustomerUseCase registers a customer with a derived approved limit.
type RegisterCustomerUseCase struct {
	customers port.CustomerRepository
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewRegisterCustomerUseCase wires dependencies.
func NewRegisterCustomerUseCase(customers port.CustomerRepository, publisher port.EventPublisher, logger *slog.Logger) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{
		customers: customers,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute creates and persists the customer, then emits customer.registered.
func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, req dto.RegisterCustomerRequest) (dto.CustomerResponse, error) {
	customer, err := model.NewCustomer(
		req.FirstName, req.LastName, req.PhoneNumber,
		req.Age, decimal.NewFromFloat(req.MonthlyIncome),
	)
	if err != nil {
		return dto.CustomerResponse{}, domainerrors.Wrap(err, domainerrors.CodeValidation, err.Error())
	}

	saved, err := uc.customers.Create(ctx, customer)
	if err != nil {
		return dto.CustomerResponse{}, fmt.Errorf("create customer: %w", err)
	}

	// Event publishing is best-effort: the registration is already durable.
	if err := uc.publisher.Publish(ctx, event.NewCustomerRegistered(saved)); err != nil {
		uc.logger.WarnContext(ctx, "failed to publish customer.registered", "error", err, "customer_id", saved.ID)
	}

	return toCustomerResponse(saved), nil
}

func toCustomerResponse(c model.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		CustomerID:    c.ID,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		PhoneNumber:   c.PhoneNumber,
		Age:           c.Age,
		MonthlySalary: c.MonthlySalary.InexactFloat64(),
		ApprovedLimit: c.ApprovedLimit.InexactFloat64(),
		CurrentDebt:   c.CurrentDebt.InexactFloat64(),
	}
}
