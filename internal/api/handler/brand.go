package handler

import (
	"net/http"

	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/branding"
)

func AnalyzeBrandStyle(service branding.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.BrandStyleRequest
		if !decodeBody(w, r, &request) {
			return
		}

		resp, err := service.AnalyzeStyle(r.Context(), request)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao analisar estilo da marca", nil)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
