package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/crewops/crewops-backend-go/internal/domain/worker"
	"github.com/crewops/crewops-backend-go/internal/handler/http/response"
	"github.com/crewops/crewops-backend-go/internal/pkg/rolecache"
)

// RequireTimesheetManager restricts an endpoint to staff and lead labor.
// The caller's category comes from the JWT claims' worker id, resolved
// against the worker directory through the TTL role cache so the directory
// is not hit on every request.
func RequireTimesheetManager(cache *rolecache.Cache, workers worker.WorkerRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, "Staff or lead labor role required")
				return
			}

			workerID, ok := claims["worker_id"].(string)
			if !ok || workerID == "" {
				response.Forbidden(w, "Staff or lead labor role required")
				return
			}

			role, ok := cache.Get(workerID)
			if !ok {
				wk, err := workers.GetByID(r.Context(), workerID)
				if err != nil {
					response.Forbidden(w, "Staff or lead labor role required")
					return
				}
				role = string(wk.Category)
				cache.Set(workerID, role)
			}

			if role != string(worker.CategoryStaff) && role != string(worker.CategoryLeadLabor) {
				response.Forbidden(w, "Staff or lead labor role required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
