package handlers

import "net/http"

// Dashboard renders the landing page. Visitors tied to a contract get
// the analytics iframe; the embed URL is exchanged fresh on every load
// because it is signed and short-lived.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ident, r, ok := h.requireIdentity(w, r)
	if !ok {
		return
	}

	data := h.pageData(r, ident)
	if ident.ContractID == "" {
		data["NoContract"] = true
		h.render(w, r, "dashboard.html", data)
		return
	}

	iframeURL, err := h.api.MetabaseIframe(r.Context(), ident.ContractID)
	if err != nil {
		data["Error"] = apiMessage(r, err, "load_error")
		h.render(w, r, "dashboard.html", data)
		return
	}
	data["IframeURL"] = iframeURL
	h.render(w, r, "dashboard.html", data)
}

// Health answers liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
