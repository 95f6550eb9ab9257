package http

import (
	"net/http"

	"github.com/revisor-lab/revisor/pkg/domain/model/auth"
	"github.com/revisor-lab/revisor/pkg/usecase"
)

const sessionCookieName = "session_id"

// authMiddleware rejects requests that carry no valid session
func authMiddleware(authUC *usecase.AuthUseCase) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(sessionCookieName)
			if err != nil {
				writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
				return
			}

			session, err := authUC.CurrentSession(r.Context())
			if err != nil || session.ID.String() != cookie.Value {
				writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: "invalid session"})
				return
			}

			ctx := auth.ContextWithUser(r.Context(), &session.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
