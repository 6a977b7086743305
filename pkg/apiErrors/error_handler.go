package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrPayloadTooLarge     = "VAL_004" // Corpo acima do limite
	ErrMethodNotAllowed    = "VAL_005" // Método HTTP não suportado pela rota

	// Erros de recurso (3000-3999)
	ErrSessionNotFound   = "RES_001" // Sessão inexistente ou expirada
	ErrAdNotFound        = "RES_002" // Índice de anúncio fora da coleção
	ErrVariationNotFound = "RES_003" // URL fora do histórico de variações
	ErrStaleCollection   = "RES_004" // Coleção substituída durante a operação
	ErrRouteNotFound     = "RES_005" // Rota inexistente

	// Erros de geração (4000-4999)
	ErrTextProvider  = "GEN_001" // Falha no provedor de texto
	ErrImageProvider = "GEN_002" // Falha no provedor de imagem
	ErrNoImage       = "GEN_003" // Provedor de imagem sem resultado
	ErrPipeline      = "GEN_004" // Todas as unidades de um lote falharam

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrPayloadTooLarge:     http.StatusRequestEntityTooLarge,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrSessionNotFound:     http.StatusNotFound,
	ErrAdNotFound:          http.StatusNotFound,
	ErrVariationNotFound:   http.StatusConflict,
	ErrStaleCollection:     http.StatusConflict,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrTextProvider:        http.StatusBadGateway,
	ErrImageProvider:       http.StatusBadGateway,
	ErrNoImage:             http.StatusBadGateway,
	ErrPipeline:            http.StatusBadGateway,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Error   string `json:"error,omitempty"`   // Espelho de Message para clientes legados
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Error:   message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	if err := json.NewEncoder(w).Encode(apiErr); err != nil {
		logrus.WithError(err).Warn("Erro ao codificar a resposta de erro")
	}
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
			Error:   "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
		Error:   err.Error(),
	}
}
