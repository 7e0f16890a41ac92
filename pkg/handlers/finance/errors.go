package finance

import (
	"errors"
	"net/http"

	"github.com/de-tools/hospital-atlas/pkg/models/api"
	"github.com/de-tools/hospital-atlas/pkg/models/domain"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/rs/zerolog"
)

// requestError marks a malformed query parameter.
type requestError struct {
	err error
}

func (e *requestError) Error() string { return e.err.Error() }
func (e *requestError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return &requestError{err: err}
}

func statusOf(err error) int {
	var (
		reqErr      *requestError
		rangeErr    *domain.InvalidRangeError
		templateErr *domain.UnknownTemplateError
		predictErr  *dashboard.UnsupportedPredictionError
		daysErr     *dashboard.TooManyDaysError
	)
	switch {
	case errors.As(err, &reqErr), errors.As(err, &rangeErr), errors.As(err, &predictErr),
		errors.As(err, &daysErr):
		return http.StatusBadRequest
	case errors.As(err, &templateErr):
		return http.StatusNotFound
	case errors.Is(err, dashboard.ErrNoPredictionProvider):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError hides the cause of internal failures from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		message = http.StatusText(status)
	}
	writeJSON(w, r, status, api.Error{Error: message})
}
