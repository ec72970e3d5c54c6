package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Nalwa-Jayesh/credit-system/internal/application/dto"
	"github.com/Nalwa-Jayesh/credit-system/pkg/domainerrors"
)

// Use case contracts consumed by the handler. Returning DTOs keeps the
// handler free of domain types.
type (
	RegisterCustomer interface {
		Execute(ctx context.Context, req dto.RegisterCustomerRequest) (dto.CustomerResponse, error)
	}
	CheckEligibility interface {
		Execute(ctx context.Context, req dto.LoanApplicationRequest) (dto.EligibilityResponse, error)
	}
	CreateLoan interface {
		Execute(ctx context.Context, req dto.LoanApplicationRequest) (dto.CreateLoanResponse, error)
	}
	ViewLoan interface {
		Execute(ctx context.Context, loanID int64) (dto.LoanDetailResponse, error)
	}
	ViewCustomerLoans interface {
		Execute(ctx context.Context, customerID int64) ([]dto.CustomerLoanItem, error)
	}
)

// Handler exposes the loan eligibility API over HTTP.
type Handler struct {
	register    RegisterCustomer
	eligibility CheckEligibility
	createLoan  CreateLoan
	viewLoan    ViewLoan
	viewLoans   ViewCustomerLoans
	logger      *slog.Logger
}

// NewHandler wires the use cases.
func NewHandler(
	register RegisterCustomer,
	eligibility CheckEligibility,
	createLoan CreateLoan,
	viewLoan ViewLoan,
	viewLoans ViewCustomerLoans,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		register:    register,
		eligibility: eligibility,
		createLoan:  createLoan,
		viewLoan:    viewLoan,
		viewLoans:   viewLoans,
		logger:      logger,
	}
}

// Register attaches the API routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/check-eligibility", h.handleCheckEligibility)
	r.Post("/create-loan", h.handleCreateLoan)
	r.Get("/view-loan/{loan_id}", h.handleViewLoan)
	r.Get("/view-loans/{customer_id}", h.handleViewCustomerLoans)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[dto.RegisterCustomerRequest](w, r, h.logger)
	if !ok {
		return
	}

	resp, err := h.register.Execute(r.Context(), *req)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "register customer failed", "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[dto.LoanApplicationRequest](w, r, h.logger)
	if !ok {
		return
	}

	resp, err := h.eligibility.Execute(r.Context(), *req)
	if err != nil {
		if !domainerrors.HasCode(err, domainerrors.CodeNotFound) {
			h.logger.ErrorContext(r.Context(), "check eligibility failed", "error", err, "customer_id", req.CustomerID)
		}
		writeError(w, err)
		return
	}

	recordDecision("check_eligibility", resp.Approval)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreateLoan(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeAndValidate[dto.LoanApplicationRequest](w, r, h.logger)
	if !ok {
		return
	}

	resp, err := h.createLoan.Execute(r.Context(), *req)
	if err != nil {
		// The not-found response keeps the create-loan body shape.
		if domainerrors.HasCode(err, domainerrors.CodeNotFound) {
			writeJSON(w, http.StatusNotFound, dto.CreateLoanResponse{
				CustomerID:   req.CustomerID,
				LoanApproved: false,
				Message:      "Customer not found.",
			})
			return
		}
		h.logger.ErrorContext(r.Context(), "create loan failed", "error", err, "customer_id", req.CustomerID)
		writeError(w, err)
		return
	}

	recordDecision("create_loan", resp.LoanApproved)
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleViewLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := strconv.ParseInt(chi.URLParam(r, "loan_id"), 10, 64)
	if err != nil {
		writeError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid loan id"))
		return
	}

	resp, err := h.viewLoan.Execute(r.Context(), loanID)
	if err != nil {
		if !domainerrors.HasCode(err, domainerrors.CodeNotFound) {
			h.logger.ErrorContext(r.Context(), "view loan failed", "error", err, "loan_id", loanID)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleViewCustomerLoans(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(chi.URLParam(r, "customer_id"), 10, 64)
	if err != nil {
		writeError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid customer id"))
		return
	}

	resp, err := h.viewLoans.Execute(r.Context(), customerID)
	if err != nil {
		if !domainerrors.HasCode(err, domainerrors.CodeNotFound) {
			h.logger.ErrorContext(r.Context(), "view customer loans failed", "error", err, "customer_id", customerID)
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// decodeAndValidate decodes the JSON body into T and validates it. On failure
// it writes the error response and returns false.
func decodeAndValidate[T any](w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(r.Context(), "failed to decode request body", "error", err)
		writeError(w, domainerrors.New(domainerrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	if err := validateRequest(req); err != nil {
		writeError(w, err)
		return nil, false
	}
	return &req, true
}
