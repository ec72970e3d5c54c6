package model

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a registered borrower. ApprovedLimit is fixed at registration
// and never recomputed; CurrentDebt is maintained by the external ingestion
// feed and is read-only here.
type Customer struct {
	ID            int64
	FirstName     string
	LastName      string
	PhoneNumber   string
	Age           int
	MonthlySalary decimal.Decimal
	ApprovedLimit decimal.Decimal
	CurrentDebt   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCustomer builds an unsaved customer with the approved limit derived
// from the monthly salary.
func NewCustomer(firstName, lastName, phoneNumber string, age int, monthlySalary decimal.Decimal) (Customer, error) {
	if strings.TrimSpace(firstName) == "" {
		return Customer{}, errors.New("first name is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return Customer{}, errors.New("last name is required")
	}
	if strings.TrimSpace(phoneNumber) == "" {
		return Customer{}, errors.New("phone number is required")
	}
	if age <= 0 {
		return Customer{}, errors.New("age must be positive")
	}
	if monthlySalary.LessThanOrEqual(decimal.Zero) {
		return Customer{}, errors.New("monthly salary must be positive")
	}

	return Customer{
		FirstName:     firstName,
		LastName:      lastName,
		PhoneNumber:   phoneNumber,
		Age:           age,
		MonthlySalary: monthlySalary,
		ApprovedLimit: ApprovedLimitFor(monthlySalary),
		CurrentDebt:   decimal.Zero,
	}, nil
}

// ApprovedLimitFor returns 36x the monthly salary rounded to the nearest
// lakh (100,000): round(36*salary/100000)*100000.
func ApprovedLimitFor(monthlySalary decimal.Decimal) decimal.Decimal {
	lakhs := math.Round(monthlySalary.InexactFloat64() * 36 / 100_000)
	return decimal.NewFromFloat(lakhs * 100_000)
}
