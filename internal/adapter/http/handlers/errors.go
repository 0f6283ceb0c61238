package handlers

import (
	"errors"
	"net/http"

	"atelie_crm/internal/usecase"
	"atelie_crm/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request payload", http.StatusBadRequest)

// mapSessionError translates the session's sentinel errors into the stable
// API error codes. Unknown errors are reported as internal and keep their
// cause for the logs only.
func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrClientNotFound),
		errors.Is(err, usecase.ErrServiceNotFound),
		errors.Is(err, usecase.ErrOrderNotFound),
		errors.Is(err, usecase.ErrEntryNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEntryAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Financial entry already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Record store unavailable", err, http.StatusBadGateway)
	case isValidationError(err):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		usecase.ErrInvalidClientID, usecase.ErrInvalidClientName, usecase.ErrInvalidClientPhone,
		usecase.ErrInvalidServiceID, usecase.ErrInvalidServiceName, usecase.ErrInvalidServiceCategory, usecase.ErrInvalidServicePrice,
		usecase.ErrInvalidOrderID, usecase.ErrInvalidOrderClient, usecase.ErrEmptyOrderItems,
		usecase.ErrInvalidOrderItem, usecase.ErrInvalidOrderQty, usecase.ErrInvalidOrderPrice, usecase.ErrInvalidOrderStatus,
		usecase.ErrInvalidEntryID, usecase.ErrInvalidEntryKind, usecase.ErrInvalidEntryAmount,
		usecase.ErrInvalidEntryDesc, usecase.ErrInvalidEntryDueDate,
		usecase.ErrInvalidMovementKind, usecase.ErrInvalidMovementAmount,
		usecase.ErrInvalidMovementDesc, usecase.ErrInvalidMovementCategory,
		usecase.ErrInvalidPeriod,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
