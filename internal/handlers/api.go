package handlers

import (
	"net/http"

	"github.com/stormhq/storm-admin/auth"
	"github.com/stormhq/storm-admin/httpx"
)

// Session reports whether the current cookie resolves to a live session.
// JSON endpoint under the guard's excluded /api/ prefix; page scripts
// poll it to detect expiry without a full reload.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.TokenFromContext(r.Context()); !ok {
		httpx.JSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}
	ident, err := h.api.Me(r.Context())
	if err != nil {
		auth.ClearToken(w)
		httpx.JSONError(w, http.StatusUnauthorized, "session expired", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"authenticated": true, "user": ident})
}
