package request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var (
	ErrMissingID = errors.New("id is required")
	ErrInvalidID = errors.New("invalid id format")
)

// ID reads the positive integer {id} route parameter.
func ID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, ErrMissingID
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}
