package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInsufficientStock
	ErrReauthRequired
	ErrRateLimited
	ErrTransientUpstream
	ErrInvalidState
	ErrListingAlreadyLinked
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:              "success",
	ErrInternal:             "error internal",
	ErrNotFound:             "data not found",
	ErrInvalidRequest:       "invalid request",
	ErrUnauthorize:          "unauthorize request",
	ErrInsufficientStock:    "insufficient stock at origin warehouse",
	ErrReauthRequired:       "marketplace account requires reconnection",
	ErrRateLimited:          "marketplace rate limit exceeded",
	ErrTransientUpstream:    "marketplace temporarily unavailable",
	ErrInvalidState:         "unknown or expired authorization state",
	ErrListingAlreadyLinked: "listing is already linked to a product",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:              http.StatusOK,
	ErrInternal:             http.StatusInternalServerError,
	ErrNotFound:             http.StatusBadRequest,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrUnauthorize:          http.StatusUnauthorized,
	ErrInsufficientStock:    http.StatusConflict,
	ErrReauthRequired:       http.StatusUnauthorized,
	ErrRateLimited:          http.StatusTooManyRequests,
	ErrTransientUpstream:    http.StatusBadGateway,
	ErrInvalidState:         http.StatusBadRequest,
	ErrListingAlreadyLinked: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:              "0000",
	ErrInternal:             "0001",
	ErrNotFound:             "0002",
	ErrInvalidRequest:       "0003",
	ErrUnauthorize:          "0004",
	ErrInsufficientStock:    "0005",
	ErrReauthRequired:       "0006",
	ErrRateLimited:          "0007",
	ErrTransientUpstream:    "0008",
	ErrInvalidState:         "0009",
	ErrListingAlreadyLinked: "0010",
}
