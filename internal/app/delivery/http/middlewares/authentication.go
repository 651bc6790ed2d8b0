package middlewares

import (
	"context"
	"net/http"
	"strings"

	"bimar-service/internal/app/models"
	"bimar-service/internal/pkg/constvars"
	"bimar-service/internal/pkg/exceptions"
	"bimar-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token to a server-side session and stores
// it in the request context. The token carries only the session id; identity
// and role live in Redis.
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
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a subtree on the role stored in the verified session.
// The check never looks at anything the client sent in the request itself.
func (m *Middlewares) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
			if !ok || session == nil {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingSessionData(nil))
				return
			}

			for _, role := range roles {
				if session.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized(nil))
		})
	}
}

func (m *Middlewares) RequireAdmin(next http.Handler) http.Handler {
	return m.RequireRole(constvars.BimarRoleAdmin)(next)
}

// SessionFromContext is the single accessor controllers use to read the
// authenticated session.
func SessionFromContext(ctx context.Context) (*models.Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return nil, exceptions.ErrMissingSessionData(nil)
	}
	return session, nil
}
