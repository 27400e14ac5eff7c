package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/metrics-api/internal/usecases/sharing"
	"github.com/vfg2006/metrics-api/pkg/middleware"
)

type createShareRequest struct {
	OwnerName string `json:"ownerName"`
}

// CreateShare usa o nome do corpo ou, se ausente, o cabeçalho X-Owner-Name
func CreateShare(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerName := middleware.OwnerNameFromContext(r.Context())

		if r.ContentLength > 0 {
			var input createShareRequest
			if !decodeJSON(w, r, &input) {
				return
			}
			if input.OwnerName != "" {
				ownerName = input.OwnerName
			}
		}

		share, err := service.CreateInvite(r.Context(), middleware.OwnerFromContext(r.Context()), ownerName)
		if err != nil {
			writeServiceError(w, r, "create-invite", err)
			return
		}

		writeJSON(w, http.StatusCreated, share)
	})
}

func ListShares(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		shares, err := service.ListInvites(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, "list-invites", err)
			return
		}

		writeJSON(w, http.StatusOK, shares)
	})
}

func AcceptShare(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := httprouter.ParamsFromContext(r.Context()).ByName("code")

		share, err := service.Accept(r.Context(), code, middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, "accept-share", err)
			return
		}

		writeJSON(w, http.StatusOK, share)
	})
}

func RevokeShare(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := httprouter.ParamsFromContext(r.Context()).ByName("code")

		if err := service.Revoke(r.Context(), middleware.OwnerFromContext(r.Context()), code); err != nil {
			writeServiceError(w, r, "revoke-share", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func SharedWithMe(service sharing.Sharer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summaries, err := service.SharedWithYou(r.Context(), middleware.OwnerFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, "shared-with-you", err)
			return
		}

		writeJSON(w, http.StatusOK, summaries)
	})
}
