package handler

import (
	"errors"
	"net/http"

		"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

// GenerateAd gera um único anúncio para a plataforma informada
func GenerateAd(service generating.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.AdRequest
		if !decodeBody(w, r, &request) {
			return
		}

		resp, err := service.GenerateSingle(r.Context(), request)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gerar anúncio", nil)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	})
}

// GenerateAdKit gera o kit completo sem guardar estado. Falhas parciais
// voltam em "failures" junto com os anúncios gerados.
func GenerateAdKit(service generating.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - GenerateAdKit")

		var request domain.AdKitRequest
		if !decodeBody(w, r, &request) {
			return
		}

		kit, err := service.GenerateKit(r.Context(), request.Product, request.BrandSpec)
		if err != nil {
			var details any
			if errors.Is(err, generating.ErrAllPlatformsFailed) {
				details = map[string]any{"failures": kit.Failures}
			}
			writeUseCaseError(w, r, err, "Erro ao gerar kit de anúncios", details)
			return
		}

		writeJSON(w, http.StatusOK, domain.AdKitResponse{
			Ads:      kit.Ads,
			Failures: kit.Failures,
		})
	})
}

func EnhanceScene(service generating.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.EnhanceRequest
		if !decodeBody(w, r, &request) {
			return
		}

		url, err := service.Enhance(r.Context(), request.ImageURL, request.Style)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao aprimorar imagem", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.EnhanceResponse{EnhancedURL: url})
	})
}

func GenerateImages(service generating.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.ImageGenerateRequest
		if !decodeBody(w, r, &request) {
			return
		}

		images, err := service.GenerateImages(r.Context(), request.Prompt)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gerar imagens", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.ImagesResponse{Images: images})
	})
}

func ComposeAesthetic(service generating.Generator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.AestheticRequest
		if !decodeBody(w, r, &request) {
			return
		}

		images, err := service.Compose(r.Context(), request.Prompt, request.Images)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao compor estética", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.ImagesResponse{Images: images})
	})
}
