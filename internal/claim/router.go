package claim

import "net/http"

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/claims", h.SubmitClaim)
	mux.HandleFunc("GET /api/claims/{billNo}", h.GetBillDetails)

	return mux
}
