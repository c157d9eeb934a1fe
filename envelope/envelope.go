// Package envelope defines the uniform three-way service result:
// success, validation error, or server error. Services build one of the
// three shapes; the HTTP layer maps it to a status code and serializes it.
package envelope

import "net/http"

type Kind int

const (
	KindOK Kind = iota
	KindCreated
	KindInvalid
	KindServerError
)

// FieldError is one violated constraint on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the envelope returned by every service call.
type Result struct {
	Kind    Kind
	Message string
	Errors  []FieldError
	Data    map[string]interface{}

	// underlying cause, exposed only outside release mode
	err error
}

func OK(data map[string]interface{}) Result {
	return Result{Kind: KindOK, Data: data}
}

func Created(data map[string]interface{}) Result {
	return Result{Kind: KindCreated, Data: data}
}

func Invalid(message string, errs ...FieldError) Result {
	return Result{Kind: KindInvalid, Message: message, Errors: errs}
}

// NotFound is a validation-class error: absent records map to 400, not
// 404, matching the established API contract.
func NotFound(resource string) Result {
	return Invalid(resource + " not found")
}

func ServerError(message string, err error) Result {
	return Result{Kind: KindServerError, Message: message, err: err}
}

// Err returns the underlying cause of a server error, if any.
func (r Result) Err() error {
	return r.err
}

func (r Result) HTTPStatus() int {
	switch r.Kind {
	case KindCreated:
		return http.StatusCreated
	case KindInvalid:
		return http.StatusBadRequest
	case KindServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}

// Body builds the JSON payload. withDetail attaches the underlying
// error string to server errors; keep it off in release mode.
func (r Result) Body(withDetail bool) map[string]interface{} {
	switch r.Kind {
	case KindInvalid:
		body := map[string]interface{}{
			"success": false,
			"message": r.Message,
		}
		if len(r.Errors) > 0 {
			body["errors"] = r.Errors
		}
		return body
	case KindServerError:
		body := map[string]interface{}{
			"success": false,
			"message": r.Message,
		}
		if withDetail && r.err != nil {
			body["error"] = r.err.Error()
		}
		return body
	default:
		body := map[string]interface{}{"success": true}
		for k, v := range r.Data {
			body[k] = v
		}
		return body
	}
}
