package terminal

import (
	"context"
	"net/http"
	"strconv"

	"github.com/festipay/festipay/internal/domain"
	"github.com/festipay/festipay/pkg/utils"
)

type ContextKey string

// TillKey holds the *domain.Till the request terminal is registered as.
const TillKey ContextKey = "till"

type TillGetter interface {
	GetTill(ctx context.Context, id int) (*domain.Till, error)
}

// Middleware resolves the X-Till-ID header into the till entity. Requests
// from unregistered terminals never reach a handler.
func Middleware(tills TillGetter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tillID, err := strconv.Atoi(r.Header.Get("X-Till-ID"))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Missing or invalid X-Till-ID header")
				return
			}

			till, err := tills.GetTill(r.Context(), tillID)
			if err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if till == nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unknown till")
				return
			}

			ctx := context.WithValue(r.Context(), TillKey, till)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
