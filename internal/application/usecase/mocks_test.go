package usecase_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/Nalwa-Jayesh/credit-system/internal/domain/event"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/port"
)

// Hand-rolled port mocks. Unset function fields fall back to benign defaults
// so each test only wires what it asserts on.

type mockCustomerRepo struct {
	createFn   func(ctx context.Context, c model.Customer) (model.Customer, error)
	findByIDFn func(ctx context.Context, id int64) (model.Customer, error)
}

func (m *mockCustomerRepo) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	c.ID = 1
	return c, nil
}

func (m *mockCustomerRepo) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	return m.findByIDFn(ctx, id)
}

type mockLoanRepo struct {
	createFn   func(ctx context.Context, l model.Loan) (model.Loan, error)
	findByIDFn func(ctx context.Context, id int64) (model.Loan, error)
	listFn     func(ctx context.Context, customerID int64) ([]model.Loan, error)

	created []model.Loan
}

func (m *mockLoanRepo) Create(ctx context.Context, l model.Loan) (model.Loan, error) {
	if m.createFn != nil {
		saved, err := m.createFn(ctx, l)
		if err != nil {
			return model.Loan{}, err
		}
		m.created = append(m.created, saved)
		return saved, nil
	}
	l.ID = int64(len(m.created) + 1)
	m.created = append(m.created, l)
	return l, nil
}

func (m *mockLoanRepo) FindByID(ctx context.Context, id int64) (model.Loan, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockLoanRepo) ListByCustomer(ctx context.Context, customerID int64) ([]model.Loan, error) {
	if m.listFn != nil {
		return m.listFn(ctx, customerID)
	}
	return nil, nil
}

// mockTransactor hands fn the configured customer and loan repo, emulating the
// locked-row transaction without a database.
type mockTransactor struct {
	customer model.Customer
	loans    *mockLoanRepo
	err      error
}

func (m *mockTransactor) InCustomerTx(_ context.Context, _ int64, fn func(customer model.Customer, loans port.LoanRepository) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(m.customer, m.loans)
}

type mockPublisher struct {
	err       error
	published []event.DomainEvent
}

func (m *mockPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, events...)
	return nil
}

var (
	_ port.CustomerRepository = (*mockCustomerRepo)(nil)
	_ port.LoanRepository     = (*mockLoanRepo)(nil)
	_ port.Transactor         = (*mockTransactor)(nil)
	_ port.EventPublisher     = (*mockPublisher)(nil)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
