package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "photocatalog/internal/delivery/http/helpers"
	"photocatalog/internal/domain"
)

type clientIDKey struct{}

// SetClientID returns a context carrying the authenticated client id.
func SetClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, clientID)
}

// ClientIDFromContext returns the client id set by RequireAuth, if any.
func ClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(clientIDKey{}).(string)
	return id, ok
}

var (
	errMissingAuth   = errors.New("missing authorization header")
	errNotBearer     = errors.New("invalid authorization format")
	errMissingToken  = errors.New("missing token")
	errTokenRejected = errors.New("invalid or expired token")
)

// RequireAuth guards catalog writes. The wrapped handler only runs for a
// request whose bearer token the verifier accepts; the client id is then
// available through ClientIDFromContext. A nil verifier leaves handlers
// unguarded.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		if verifier == nil {
			return next
		}
		return func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				unauthorized(w, err)
				return
			}
			clientID, err := verifier.Verify(token)
			if err != nil {
				requestID, _ := RequestIDFromContext(r.Context())
				logger.WarnContext(r.Context(), "token rejected",
					"method", r.Method, "path", r.URL.Path, "request_id", requestID, "err", err)
				unauthorized(w, errTokenRejected)
				return
			}
			logger.DebugContext(r.Context(), "catalog write", "client_id", clientID, "method", r.Method, "path", r.URL.Path)
			next(w, r.WithContext(SetClientID(r.Context(), clientID)))
		}
	}
}

// bearerToken extracts the token from "Authorization: Bearer <token>". The
// scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, error) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return "", errMissingAuth
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found && strings.EqualFold(scheme, "bearer") {
		return "", errMissingToken
	}
	if !strings.EqualFold(scheme, "bearer") {
		return "", errNotBearer
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="photocatalog"`)
	h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, err.Error())
}
