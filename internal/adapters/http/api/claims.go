package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/claimtrainer/internal/domain/claims"
)

// ClaimsHandler handles the claims browser and claim detail requests.
type ClaimsHandler struct {
	deps ClaimsDependencies
}

// NewClaimsHandler creates a new claims handler.
func NewClaimsHandler(deps ClaimsDependencies) *ClaimsHandler {
	return &ClaimsHandler{deps: deps}
}

type claimsResponse struct {
	Claims []claims.Row `json:"claims"`
	Total  int          `json:"total"`
}

// HandleList handles GET /api/claims?search=&category=&status=&sort=&dir= requests.
// sort accepts a column index or name; dir is asc (default) or desc.
func (h *ClaimsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_claims"
	q, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	rows, err := h.deps.ListClaims(r.Context(), q)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, claimsResponse{Claims: rows, Total: len(rows)})
}

// HandleOptions handles GET /api/claims/options requests.
func (h *ClaimsHandler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deps.Options(r.Context()))
}

// HandleGet handles GET /api/claims/{id} requests.
func (h *ClaimsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_claim"
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	detail, err := h.deps.Claim(r.Context(), id)
	if err != nil {
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func parseQuery(r *http.Request) (claims.Query, error) {
	v := r.URL.Query()
	q := claims.Query{
		Search:   v.Get("search"),
		Category: v.Get("category"),
		Status:   v.Get("status"),
	}
	sort := strings.TrimSpace(v.Get("sort"))
	if sort == "" {
		return q, nil
	}
	col, err := claims.ParseColumn(sort)
	if err != nil {
		return claims.Query{}, err
	}
	dir, err := claims.ParseDirection(v.Get("dir"))
	if err != nil {
		return claims.Query{}, err
	}
	q.Sort = &claims.SortSpec{Column: col, Direction: dir}
	return q, nil
}
