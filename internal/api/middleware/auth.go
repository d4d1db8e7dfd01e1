package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

const msgAdminSessionRequired = "требуется вход администратора"

// AuthService проверка административной сессии
type AuthService interface {
	IsLoggedIn(ctx context.Context) (bool, error)
}

// AdminAuth пропускает запрос только при установленной административной
// сессии. Сессия общая для всех админов, без идентификации конкретного
// пользователя, так устроена исходная модель доступа
func AdminAuth(authService AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, err := authService.IsLoggedIn(r.Context())
			if err != nil {
				handlers.RespondInternalError(w)
				return
			}
			if !ok {
				handlers.RespondUnauthorized(w, msgAdminSessionRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
