package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/copywriting"
)

func GenerateHashtags(service copywriting.Copywriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.HashtagsRequest
		if !decodeBody(w, r, &request) {
			return
		}

		platform, err := requiredPlatform(request.Platform)
		if err != nil {
			writeUseCaseError(w, r, err, "Plataforma inválida", nil)
			return
		}

		hashtags, err := service.Hashtags(r.Context(), platform, request.Product)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gerar hashtags", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.HashtagsResponse{Hashtags: hashtags})
	})
}

func GenerateCaption(service copywriting.Copywriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.CaptionRequest
		if !decodeBody(w, r, &request) {
			return
		}

		caption, err := service.Caption(r.Context(), request.Prompt)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gerar legenda", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.CaptionResponse{Caption: caption})
	})
}

func GenerateDescription(service copywriting.Copywriter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.DescriptionRequest
		if !decodeBody(w, r, &request) {
			return
		}

		platform, err := requiredPlatform(request.Platform)
		if err != nil {
			writeUseCaseError(w, r, err, "Plataforma inválida", nil)
			return
		}

		description, err := service.Description(r.Context(), platform, request.Product)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gerar descrição", nil)
			return
		}

		writeJSON(w, http.StatusOK, domain.DescriptionResponse{Description: description})
	})
}

func requiredPlatform(value string) (domain.Platform, error) {
	if strings.TrimSpace(value) == "" {
		return "", domain.ErrPlatformRequired
	}
	return domain.ParsePlatform(value)
}
