package handler

import (
	"net/http"

	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/varying"
)

func GenerateVariation(service varying.Varier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.VariationRequest
		if !decodeBody(w, r, &request) {
			return
		}

		resp, err := service.Preview(r.Context(), request)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gerar variação", nil)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}
