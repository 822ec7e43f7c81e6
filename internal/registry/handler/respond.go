package handler

import (
	"errors"
	"net/http"

	"registry7/internal/registry/model"

	"github.com/labstack/echo/v4"
)

const msgInternalError = "An internal server error occurred"

// listBody is the wire shape of a successful collection response.
type listBody[E any] struct {
	Items      []E                  `json:"items"`
	Pagination model.PaginationInfo `json:"pagination"`
}

func writeError(c echo.Context, status int, message string, key model.MessageKey) error {
	return c.JSON(status, model.NewErrorResponse(status, message, key))
}

func writeInternalError(c echo.Context) error {
	return writeError(c, http.StatusInternalServerError, msgInternalError, model.KeyInternalServerError)
}

// validationError maps a request Validate failure to a BAD_REQUEST body.
func validationError(c echo.Context, err error) error {
	var fieldErr *model.FieldError
	if errors.As(err, &fieldErr) {
		return writeError(c, http.StatusBadRequest, fieldErr.Message, fieldErr.Key)
	}
	return writeError(c, http.StatusBadRequest, err.Error(), model.KeyMandatoryFieldsMissing)
}

// writeResult translates a single-entity result into an HTTP response.
// successStatus is 201 for create and 200 everywhere else. A successful
// result without a payload is a server bug and answers 500.
func writeResult[E any](c echo.Context, res *model.Result[E], successStatus int) error {
	if res == nil {
		return writeInternalError(c)
	}

	switch res.Outcome {
	case model.OutcomeBadRequest:
		return writeError(c, http.StatusBadRequest, res.Message, res.Key)
	case model.OutcomeNotFound:
		return writeError(c, http.StatusNotFound, res.Message, res.Key)
	case model.OutcomeConflict:
		return writeError(c, http.StatusConflict, res.Message, res.Key)
	case model.OutcomeSuccess:
		if res.Payload == nil {
			return writeInternalError(c)
		}
		return c.JSON(successStatus, res.Payload)
	default:
		return writeInternalError(c)
	}
}

// writeListResult translates a collection result into an HTTP response.
func writeListResult[E any](c echo.Context, res *model.ListResult[E]) error {
	if res == nil {
		return writeInternalError(c)
	}

	switch res.Outcome {
	case model.OutcomeBadRequest:
		return writeError(c, http.StatusBadRequest, res.Message, res.Key)
	case model.OutcomeNotFound:
		return writeError(c, http.StatusNotFound, res.Message, res.Key)
	case model.OutcomeSuccess:
		return c.JSON(http.StatusOK, listBody[E]{Items: res.Items, Pagination: res.Pagination})
	default:
		return writeInternalError(c)
	}
}

// writeDeleteAll translates a delete-all result. Success answers 204 with
// the entity-specific confirmation text.
func writeDeleteAll[E any](c echo.Context, res *model.Result[E], confirmation string) error {
	if res == nil {
		return writeInternalError(c)
	}

	switch res.Outcome {
	case model.OutcomeNotFound:
		return writeError(c, http.StatusNotFound, res.Message, res.Key)
	case model.OutcomeSuccess:
		return c.String(http.StatusNoContent, confirmation)
	default:
		return writeInternalError(c)
	}
}
