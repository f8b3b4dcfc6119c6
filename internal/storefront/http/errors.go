package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// writeServiceError maps a service or gateway failure onto an HTTP error.
// The description is the remote service's message when there is one.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := slogx.FromContext(r.Context())
	msg := shopsdk.Message(err, fallback)

	var apiErr *shopsdk.APIError
	switch {
	case errors.Is(err, service.ErrLoginRequired), errors.Is(err, shopsdk.ErrUnauthorized):
		httpx.WriteError(w, http.StatusUnauthorized, httpx.ErrorCodeLoginRequired, "login required")
	case errors.Is(err, service.ErrAdminRequired),
		errors.Is(err, shopsdk.ErrMissingRole),
		errors.Is(err, shopsdk.ErrForbidden):
		httpx.WriteError(w, http.StatusForbidden, httpx.ErrorCodeForbidden, msg)
	case errors.Is(err, service.ErrNotCancellable):
		httpx.WriteError(w, http.StatusConflict, httpx.ErrorCodeConflict, err.Error())
	case errors.Is(err, service.ErrAddressRequired), errors.Is(err, service.ErrInvalidPayment):
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCoupon) && !errors.As(err, &apiErr):
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, shopsdk.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.ErrorCodeNotFound, msg)
	case errors.Is(err, shopsdk.ErrRejected):
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, msg)
	case errors.As(err, &apiErr):
		log.Warn("upstream failure", "status", apiErr.StatusCode, "error", err)
		httpx.WriteError(w, http.StatusBadGateway, httpx.ErrorCodeUpstream, msg)
	default:
		log.Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusBadGateway, httpx.ErrorCodeUpstream, msg)
	}
}

func writeBadRequest(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, err.Error())
}

// pathID parses the int64 path value name. It writes the error itself.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func writeNoContent(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}
