package main

import (
	"net/http"

	"github.com/fariskabeerc-lab/billing-voucher/internal/claim"
)

func NewRouter(handler *claim.Handler) http.Handler {
	root := http.NewServeMux()
	root.Handle("/api/", handler.Routes())

	return root
}
