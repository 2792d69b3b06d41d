package claim

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service,
	log *slog.Logger,
) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func (h *Handler) SubmitClaim(
	w http.ResponseWriter,
	r *http.Request,
) {
	var req SubmitClaimRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// QR-code entry: bill number and amount may arrive in the URL
	// instead of the form body.
	query := r.URL.Query()
	if req.BillNo == "" {
		req.BillNo = query.Get("bill_no")
	}
	if req.Amount == 0 {
		if raw := query.Get("amount"); raw != "" {
			amount, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				http.Error(w, "invalid amount", http.StatusBadRequest)
				return
			}
			req.Amount = amount
		}
	}

	result, err := h.service.Submit(r.Context(), Submission{
		Name:        req.Name,
		Mobile:      req.Mobile,
		BillNo:      req.BillNo,
		Amount:      req.Amount,
		Nationality: req.Nationality,
		Email:       req.Email,
		Address:     req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateBill), errors.Is(err, ErrDuplicateMobile):
			http.Error(w,
				fmt.Sprintf("%s: %s", err.Error(), req.BillNo),
				http.StatusConflict)
		case errors.Is(err, ErrMissingFields):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrInsufficientAmount):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		case errors.Is(err, ErrLedgerUnavailable):
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(SubmitClaimResponse{
		Vouchers:  result.Vouchers,
		Count:     result.Count,
		FollowURL: result.FollowURL,
	})
}

func (h *Handler) GetBillDetails(
	w http.ResponseWriter,
	r *http.Request,
) {
	billNo := r.PathValue("billNo")
	if billNo == "" {
		http.Error(w, "bill number required", http.StatusBadRequest)
		return
	}

	details, err := h.service.GetBillDetails(r.Context(), billNo)
	if err != nil {
		switch {
		case errors.Is(err, ErrBillNotFound):
			http.Error(w,
				fmt.Sprintf("%s: %s", err.Error(), billNo),
				http.StatusNotFound)
		case errors.Is(err, ErrLedgerUnavailable):
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(BillDetailsResponse{
		BillNo:   details.BillNo,
		Name:     details.Name,
		Mobile:   details.Mobile,
		Amount:   details.Amount,
		Vouchers: details.Vouchers,
	})
}
