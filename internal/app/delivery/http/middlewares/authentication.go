package middlewares

import (
	"context"
	"net/http"
	"strings"

	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/exceptions"
	"ogec-service/internal/pkg/utils"
)

// Authenticate requires a valid gateway bearer token and a live session
// behind it. The session is loaded once per request and stashed in the
// context for handlers downstream.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		session, err := m.SessionRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil || session.User == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RedirectAuthenticated short-circuits the guest-only endpoints: a caller
// who already holds a live session gets a redirect payload to the dashboard
// instead of a second credential exchange. Anything short of a live session
// (no header, bad token, dead session) falls through to the handler.
func (m *Middlewares) RedirectAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		session, err := m.SessionRepository.GetSession(r.Context(), sessionID)
		if err != nil || session == nil || session.User == nil {
			next.ServeHTTP(w, r)
			return
		}

		utils.BuildRedirectResponse(w, constvars.StatusOK, constvars.AlreadyAuthenticated, constvars.DashboardPath, nil)
	})
}

// RequireRoute gates a request on the allow set of the client route the
// screen belongs to. Routes absent from the table are open to any
// authenticated user.
func (m *Middlewares) RequireRoute(routePath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
			if !ok || session == nil || session.User == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSession(nil))
				return
			}

			roles, gated := m.NavigationUsecase.AllowedRoles(routePath)
			if gated && !roleAllowed(roles, session.User.Role) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoles gates a request on an explicit allow set.
func (m *Middlewares) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
			if !ok || session == nil || session.User == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSession(nil))
				return
			}

			if !roleAllowed(roles, session.User.Role) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrPermissionDenied(nil))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func roleAllowed(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
