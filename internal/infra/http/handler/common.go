// Package handler contains the HTTP handlers for the console API.
package handler

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/secposture/console-api/internal/infra/http/middleware"
	"github.com/secposture/console-api/pkg/apierror"
	"github.com/secposture/console-api/pkg/domain/permission"
)

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an API error, echoing the request ID.
func writeError(w http.ResponseWriter, r *http.Request, err *apierror.Error) {
	err.WriteJSONWithRequestID(w, middleware.GetRequestID(r.Context()))
}

// permissionStrings renders a permission set as a sorted string list.
func permissionStrings(set *permission.Set) []string {
	out := permission.ToStrings(set.Permissions())
	sort.Strings(out)
	return out
}
