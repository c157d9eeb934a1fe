package envelope

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusOK, OK(nil).HTTPStatus())
	assert.Equal(t, http.StatusCreated, Created(nil).HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, Invalid("nope").HTTPStatus())
	// Absent records deliberately map to 400, not 404
	assert.Equal(t, http.StatusBadRequest, NotFound("Customer").HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ServerError("boom", nil).HTTPStatus())
}

func TestBodyShapes(t *testing.T) {
	ok := OK(map[string]interface{}{"customer": "c"}).Body(false)
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, "c", ok["customer"])

	inv := Invalid("Validation failed", FieldError{Field: "phone", Message: "is required"}).Body(false)
	assert.Equal(t, false, inv["success"])
	assert.Equal(t, "Validation failed", inv["message"])
	assert.Len(t, inv["errors"], 1)
}

func TestServerErrorDetailSuppressedInRelease(t *testing.T) {
	res := ServerError("Failed to load customer", errors.New("disk on fire"))

	release := res.Body(false)
	assert.NotContains(t, release, "error")

	dev := res.Body(true)
	assert.Equal(t, "disk on fire", dev["error"])
}
