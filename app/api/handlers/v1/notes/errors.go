package notes

import (
	"errors"
	"fmt"
	"github.com/RAprogramm/notes-api/business/v1/note"
	store "github.com/RAprogramm/notes-api/persistence/v1/note"
	"github.com/RAprogramm/notes-api/platform/web/handler"
	"net/http"
)

// fail maps a service error to its http result.
func fail(err error) handler.Result {
	var (
		invalidID  store.InvalidIDError
		pagination store.PaginationError
		duplicate  store.DuplicateKeyError
		serialize  store.SerializeError
		query      store.QueryError
		malformed  note.MalformedDocumentError
	)

	switch {
	case errors.As(err, &invalidID):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Status: "fail", Message: invalidID.Error()},
		}
	case errors.As(err, &pagination):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Status: "fail", Message: pagination.Error()},
		}
	case errors.As(err, &duplicate):
		return handler.Result{
			Status: http.StatusConflict,
			Body:   handler.Error{Status: "fail", Message: "Duplicate key error"},
		}
	case errors.As(err, &malformed):
		return handler.Result{
			Status: http.StatusBadRequest,
			Body:   handler.Error{Status: "fail", Message: "validation error"},
		}
	case errors.As(err, &serialize):
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Status: "fail", Message: "Error serializing BSON"},
		}
	case errors.As(err, &query):
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Status: "fail", Message: "Error during mongodb query"},
		}
	default:
		return handler.Result{
			Status: http.StatusInternalServerError,
			Body:   handler.Error{Status: "error", Message: "Internal Server Error"},
		}
	}
}

// notFound is the result for ids that match no note.
func notFound(id string) handler.Result {
	return handler.Result{
		Status: http.StatusNotFound,
		Body:   handler.Error{Status: "fail", Message: fmt.Sprintf("Note with ID: %s not found", id)},
	}
}
