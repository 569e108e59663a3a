// Package apperr carries domain failures from services to the HTTP boundary.
// Every failure has a kind, an HTTP status and an opaque message key that the
// boundary resolves through the locale table. Anything that is not an *Error
// is treated as an internal fault: logged in full, shown as a generic 500.
package apperr

import "errors"

type Kind string

const (
	KindEmailExists        Kind = "email_exists"
	KindUserNotFound       Kind = "user_not_found"
	KindAlreadyVerified    Kind = "already_verified"
	KindOtpInvalid         Kind = "otp_invalid"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindNotVerified        Kind = "not_verified"
	KindInvalidRequest     Kind = "invalid_request"
	KindInvalidToken       Kind = "invalid_token"
	KindForbiddenAdmin     Kind = "forbidden_admin"
	KindUnauthorized       Kind = "unauthorized"
	KindMissingFields      Kind = "missing_fields"
	KindSkuExists          Kind = "sku_exists"
	KindInvalidID          Kind = "invalid_id"
	KindNotFound           Kind = "not_found"
	KindInvalidItems       Kind = "invalid_items"
	KindProductNotFound    Kind = "product_not_found"
	KindInsufficientStock  Kind = "insufficient_stock"
)

type Error struct {
	Kind       Kind
	Status     int
	MessageKey string
	// Data feeds placeholder interpolation in the localized message,
	// e.g. {"product": "Widget"} for insufficient_stock.
	Data map[string]string
}

func (e *Error) Error() string { return string(e.Kind) + ": " + e.MessageKey }

func New(kind Kind, status int, messageKey string) *Error {
	return &Error{Kind: kind, Status: status, MessageKey: messageKey}
}

func (e *Error) WithData(data map[string]string) *Error {
	return &Error{Kind: e.Kind, Status: e.Status, MessageKey: e.MessageKey, Data: data}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err is a domain failure of the given kind.
func IsKind(err error, kind Kind) bool {
	if e, ok := As(err); ok {
		return e.Kind == kind
	}
	return false
}

var (
	ErrEmailExists        = New(KindEmailExists, 400, "auth.email_exists")
	ErrUserNotFound       = New(KindUserNotFound, 404, "auth.user_not_found")
	ErrAlreadyVerified    = New(KindAlreadyVerified, 400, "auth.already_verified")
	ErrOtpInvalid         = New(KindOtpInvalid, 400, "auth.otp_invalid")
	ErrInvalidCredentials = New(KindInvalidCredentials, 401, "auth.invalid_credentials")
	ErrNotVerified        = New(KindNotVerified, 403, "auth.not_verified")
	ErrInvalidRequest     = New(KindInvalidRequest, 400, "auth.invalid_request")
	ErrInvalidToken       = New(KindInvalidToken, 401, "auth.invalid_token")
	ErrForbiddenAdmin     = New(KindForbiddenAdmin, 403, "auth.forbidden_admin")
	ErrUnauthorized       = New(KindUnauthorized, 403, "auth.unauthorized")
	ErrMissingFields      = New(KindMissingFields, 400, "product.missing_fields")
	ErrSkuExists          = New(KindSkuExists, 400, "product.sku_exists")
	ErrInvalidProductID   = New(KindInvalidID, 400, "product.invalid_id")
	ErrProductMissing     = New(KindNotFound, 404, "product.not_found")
	ErrOrderMissing       = New(KindNotFound, 404, "order.not_found")
	ErrInvalidItems       = New(KindInvalidItems, 400, "order.invalid_items")
)

func ProductNotFound(id string) *Error {
	return New(KindProductNotFound, 404, "order.product_not_found").
		WithData(map[string]string{"id": id})
}

func InsufficientStock(productName string) *Error {
	return New(KindInsufficientStock, 400, "order.insufficient_stock").
		WithData(map[string]string{"product": productName})
}
