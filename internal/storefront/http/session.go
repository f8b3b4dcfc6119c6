package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

type SessionHandler struct {
	Session *service.SessionService
}

// HandleGet returns the local session.
//
//	@Summary	Current session
//	@Tags		Session
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Router		/v1/session [get].
func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(h.Session.Snapshot()))
}

// HandleLogin exchanges email and password for a session.
//
//	@Summary	Log in with email and password
//	@Tags		Session
//	@Accept		json
//	@Produce	json
//	@Param		request	body		LoginRequest	true	"Credentials"
//	@Success	200		{object}	SessionResponse
//	@Failure	400		{object}	httpx.ErrorBody	"Invalid credentials"
//	@Failure	429		{object}	httpx.ErrorBody	"Too many attempts"
//	@Router		/v1/session/login [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, errors.New("email and password are required"))
		return
	}

	if err := h.Session.LoginWithPassword(r.Context(), req.Email, req.Password); err != nil {
		h.writeLoginError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(h.Session.Snapshot()))
}

// HandleRegister creates an account and signs into it.
//
//	@Summary	Register
//	@Tags		Session
//	@Accept		json
//	@Produce	json
//	@Param		request	body		shopsdk.RegisterRequest	true	"Account"
//	@Success	200		{object}	SessionResponse
//	@Failure	400		{object}	httpx.ErrorBody	"Rejected"
//	@Router		/v1/session/register [post].
func (h *SessionHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req shopsdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeBadRequest(w, errors.New("email and password are required"))
		return
	}

	if err := h.Session.Register(r.Context(), req); err != nil {
		h.writeLoginError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(h.Session.Snapshot()))
}

// HandleGoogle signs in with a Google id token.
//
//	@Summary	Log in with Google
//	@Tags		Session
//	@Accept		json
//	@Produce	json
//	@Param		request	body		GoogleLoginRequest	true	"Google id token"
//	@Success	200		{object}	SessionResponse
//	@Failure	400		{object}	httpx.ErrorBody	"Rejected"
//	@Router		/v1/session/google [post].
func (h *SessionHandler) HandleGoogle(w http.ResponseWriter, r *http.Request) {
	var req GoogleLoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, err)
		return
	}
	if req.IDToken == "" {
		writeBadRequest(w, errors.New("idToken is required"))
		return
	}

	if err := h.Session.LoginWithGoogle(r.Context(), req.IDToken); err != nil {
		h.writeLoginError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(h.Session.Snapshot()))
}

// HandleLogout ends the local session. It always succeeds.
//
//	@Summary	Log out
//	@Tags		Session
//	@Produce	json
//	@Success	200	{object}	SessionResponse
//	@Router		/v1/session/logout [post].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Session.Logout(r.Context())
	httpx.WriteJSON(w, http.StatusOK, sessionResponse(h.Session.Snapshot()))
}

// writeLoginError reports credential failures as 400 with the service's
// message rather than 401, which the shell reserves for expiry.
func (h *SessionHandler) writeLoginError(w http.ResponseWriter, r *http.Request, err error) {
	slogx.FromContext(r.Context()).Info("login failed", "error", err)

	if errors.Is(err, shopsdk.ErrRejected) || errors.Is(err, shopsdk.ErrUnauthorized) {
		httpx.WriteError(w, http.StatusBadRequest, httpx.ErrorCodeInvalidRequest, shopsdk.Message(err, "Login failed."))
		return
	}
	writeServiceError(w, r, err, "Login failed.")
}
