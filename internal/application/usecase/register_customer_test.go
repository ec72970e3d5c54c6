package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/dto"
	"github.com/Nalwa-Jayesh/credit-system/internal/application/usecase"
	"github.com/Nalwa-Jayesh/credit-system/internal/domain/model"
	"github.com/Nalwa-Jayesh/credit-system/pkg/domainerrors"
)

func validRegisterRequest() dto.RegisterCustomerRequest {
	return dto.RegisterCustomerRequest{
		FirstName:     "Asha",
		LastName:      "Verma",
		PhoneNumber:   "9876543210",
		Age:           34,
		MonthlyIncome: 50_000,
	}
}

func TestRegisterCustomer_Execute(t *testing.T) {
	t.Run("derives the approved limit and emits an event", func(t *testing.T) {
		customers := &mockCustomerRepo{
			createFn: func(_ context.Context, c model.Customer) (model.Customer, error) {
				c.ID = 7
				return c, nil
			},
		}
		publisher := &mockPublisher{}
		uc := usecase.NewRegisterCustomerUseCase(customers, publisher, discardLogger())

		resp, err := uc.Execute(context.Background(), validRegisterRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(7), resp.CustomerID)
		assert.Equal(t, 1_800_000.0, resp.ApprovedLimit)
		assert.Zero(t, resp.CurrentDebt)
		require.Len(t, publisher.published, 1)
		assert.Equal(t, "credit.customer.registered", publisher.published[0].EventType())
	})

	t.Run("rejects invalid input before touching the repository", func(t *testing.T) {
		createCalled := false
		customers := &mockCustomerRepo{
			createFn: func(_ context.Context, c model.Customer) (model.Customer, error) {
				createCalled = true
				return c, nil
			},
		}
		uc := usecase.NewRegisterCustomerUseCase(customers, &mockPublisher{}, discardLogger())

		req := validRegisterRequest()
		req.Age = -1
		_, err := uc.Execute(context.Background(), req)

		assert.True(t, domainerrors.HasCode(err, domainerrors.CodeValidation))
		assert.False(t, createCalled)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		customers := &mockCustomerRepo{
			createFn: func(_ context.Context, _ model.Customer) (model.Customer, error) {
				return model.Customer{}, errors.New("connection reset")
			},
		}
		uc := usecase.NewRegisterCustomerUseCase(customers, &mockPublisher{}, discardLogger())

		_, err := uc.Execute(context.Background(), validRegisterRequest())

		assert.ErrorContains(t, err, "create customer")
	})

	t.Run("publish failure does not fail the registration", func(t *testing.T) {
		publisher := &mockPublisher{err: errors.New("broker down")}
		uc := usecase.NewRegisterCustomerUseCase(&mockCustomerRepo{}, publisher, discardLogger())

		resp, err := uc.Execute(context.Background(), validRegisterRequest())

		require.NoError(t, err)
		assert.NotZero(t, resp.CustomerID)
	})
}
