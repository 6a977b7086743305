package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
		"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/collecting"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	"github.com/vfg2006/fluxweave-api/pkg/apiErrors"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

// CreateSession abre uma coleção vazia; produto e marca são opcionais aqui
func CreateSession(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.AdKitRequest
		if !decodeOptionalBody(w, r, &request) {
			return
		}

		writeJSON(w, http.StatusCreated, service.Create(request))
	})
}

func GenerateSessionKit(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, sessionID := withSession(r)

		log.ForContext(r.Context()).Info("INIT - GenerateSessionKit")

		var request domain.AdKitRequest
		if !decodeOptionalBody(w, r, &request) {
			return
		}

		resp, err := service.GenerateKit(r.Context(), sessionID, request)
		if err != nil {
			var details any
			if errors.Is(err, generating.ErrAllPlatformsFailed) {
				details = map[string]any{"failures": resp.Failures}
			}
			writeUseCaseError(w, r, err, "Erro ao gerar kit da sessão", details)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func ListSessionAds(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, sessionID := withSession(r)

		resp, err := service.List(sessionID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar anúncios da sessão", nil)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

func VarySessionAd(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, sessionID := withSession(r)

		index, ok := adIndex(w, httprouter.ParamsFromContext(r.Context()))
		if !ok {
			return
		}

		var request domain.SessionVariationRequest
		if !decodeOptionalBody(w, r, &request) {
			return
		}

		ad, err := service.Vary(r.Context(), sessionID, index, request.Style)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gerar variação do anúncio", nil)
			return
		}

		writeJSON(w, http.StatusOK, ad)
	})
}

func RestoreSessionAd(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, sessionID := withSession(r)

		index, ok := adIndex(w, httprouter.ParamsFromContext(r.Context()))
		if !ok {
			return
		}

		var request domain.RestoreRequest
		if !decodeBody(w, r, &request) {
			return
		}

		ad, err := service.Restore(sessionID, index, request.ImageURL)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao restaurar variação", nil)
			return
		}

		writeJSON(w, http.StatusOK, ad)
	})
}

func DeleteSession(service collecting.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r, sessionID := withSession(r)

		if err := service.Delete(sessionID); err != nil {
			writeUseCaseError(w, r, err, "Erro ao remover sessão", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// withSession lê o id da rota e o anexa ao contexto de log da requisição
func withSession(r *http.Request) (*http.Request, string) {
	sessionID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	ctx := log.ContextWithFields(r.Context(), log.Fields{"session_id": sessionID})
	return r.WithContext(ctx), sessionID
}

func adIndex(w http.ResponseWriter, params httprouter.Params) (int, bool) {
	index, err := strconv.Atoi(params.ByName("index"))
	if err != nil || index < 0 {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Índice de anúncio inválido", map[string]string{"index": params.ByName("index")})
		return 0, false
	}
	return index, true
}
