package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fluxweave-api/internal/domain"
	"github.com/vfg2006/fluxweave-api/internal/usecases/branding"
	"github.com/vfg2006/fluxweave-api/internal/usecases/collecting"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	"github.com/vfg2006/fluxweave-api/pkg/apiErrors"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// decodeBody lê o corpo JSON da requisição; em caso de falha a resposta de erro já foi escrita
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decode(w, r, dst, false)
}

// decodeOptionalBody aceita corpo vazio, mantendo dst com os valores zero
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	return decode(w, r, dst, true)
}

func decode(w http.ResponseWriter, r *http.Request, dst any, optional bool) bool {
	var raw []byte
	if r.Body != nil {
		var err error
		if raw, err = io.ReadAll(r.Body); err != nil {
			writeDecodeError(w, r, err)
			return false
		}
	}

	if optional && len(bytes.TrimSpace(raw)) == 0 {
		return true
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		writeDecodeError(w, r, err)
		return false
	}
	return true
}

func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Corpo da requisição acima do limite", map[string]int64{"limit": maxErr.Limit})
		return
	}

	log.ForContext(r.Context()).WithError(err).Warn("Erro ao decodificar o corpo da requisição")
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Erro ao codificar a resposta")
	}
}

// writeUseCaseError traduz os erros dos casos de uso para o formato padronizado da API
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error, fallback string, details any) {
	var genErr *generating.GenerationError
	if errors.As(err, &genErr) && details == nil {
		details = map[string]string{"platform": genErr.Platform.String()}
	}

	code, message := classify(err, fallback)

	entry := log.ForContext(r.Context()).WithFields(log.Fields{
		"code":  code,
		"error": err.Error(),
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Warn(message)
	}

	apiErrors.WriteError(w, code, message, details)
}

func classify(err error, fallback string) (string, string) {
	switch {
	case errors.Is(err, domain.ErrProductRequired):
		return apiErrors.ErrMissingRequiredData, "Produto é obrigatório"
	case errors.Is(err, domain.ErrPlatformRequired):
		return apiErrors.ErrMissingRequiredData, "Plataforma é obrigatória"
	case errors.Is(err, domain.ErrPromptRequired):
		return apiErrors.ErrMissingRequiredData, "Prompt é obrigatório"
	case errors.Is(err, domain.ErrImagesRequired):
		return apiErrors.ErrMissingRequiredData, "Informe ao menos uma imagem"
	case errors.Is(err, domain.ErrImageURLRequired):
		return apiErrors.ErrMissingRequiredData, "URL da imagem é obrigatória"
	case errors.Is(err, branding.ErrImageRequired):
		return apiErrors.ErrMissingRequiredData, "Nenhuma imagem de marca enviada"
	case errors.Is(err, domain.ErrUnknownPlatform):
		return apiErrors.ErrInvalidFormat, "Plataforma desconhecida"

	case errors.Is(err, collecting.ErrSessionNotFound):
		return apiErrors.ErrSessionNotFound, "Sessão não encontrada"
	case errors.Is(err, collecting.ErrIndexOutOfRange):
		return apiErrors.ErrAdNotFound, "Anúncio não encontrado na coleção"
	case errors.Is(err, domain.ErrVariationNotFound):
		return apiErrors.ErrVariationNotFound, "Imagem não pertence ao histórico do anúncio"
	case errors.Is(err, collecting.ErrStaleRun):
		return apiErrors.ErrStaleCollection, "A coleção foi substituída por um novo kit"

	case errors.Is(err, generating.ErrAllPlatformsFailed):
		return apiErrors.ErrPipeline, "Nenhuma plataforma conseguiu gerar o anúncio"
	case errors.Is(err, domain.ErrNoImage):
		return apiErrors.ErrNoImage, "O provedor de imagem não retornou resultados"
	case errors.Is(err, domain.ErrTextProvider):
		return apiErrors.ErrTextProvider, "Erro no provedor de texto"
	case errors.Is(err, domain.ErrImageProvider):
		return apiErrors.ErrImageProvider, "Erro no provedor de imagem"
	}

	return apiErrors.ErrInternalServer, fallback
}
