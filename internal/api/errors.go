package api

import (
	"errors"
	"net/http"

	"github.com/guttosm/stockpulse/internal/alphavantage"
	"github.com/guttosm/stockpulse/internal/indicator"
	"github.com/guttosm/stockpulse/internal/service"
)

// statusFor maps a service error onto an HTTP status and a client-facing message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidSymbol),
		errors.Is(err, service.ErrEmptyBatch),
		errors.Is(err, service.ErrBatchTooLarge):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, indicator.ErrInsufficientHistory):
		return http.StatusUnprocessableEntity, indicator.InsufficientData
	case errors.Is(err, indicator.ErrMalformedSeries):
		return http.StatusBadGateway, "upstream returned a malformed price series"
	case errors.Is(err, alphavantage.ErrSymbolNotFound),
		errors.Is(err, alphavantage.ErrNoData):
		return http.StatusNotFound, "symbol not found"
	case errors.Is(err, alphavantage.ErrRateLimited):
		return http.StatusServiceUnavailable, "market data provider rate limit reached"
	case alphavantage.IsTimeout(err):
		return http.StatusGatewayTimeout, "request timed out"
	default:
		return http.StatusInternalServerError, "failed to analyze symbol"
	}
}
