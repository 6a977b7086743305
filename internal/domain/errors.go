package domain

import "errors"

// Erros compartilhados entre os casos de uso de geração
var (
	// Erros de validação: nenhuma chamada ao provedor é feita
	ErrProductRequired  = errors.New("product is required")
	ErrPlatformRequired = errors.New("platform is required")
	ErrPromptRequired   = errors.New("prompt is required")
	ErrImagesRequired   = errors.New("at least one image is required")
	ErrImageURLRequired = errors.New("image url is required")

	// Erros de serviços externos
	ErrTextProvider  = errors.New("text provider request failed")
	ErrImageProvider = errors.New("image provider request failed")
	ErrNoImage       = errors.New("image provider returned no images")
)
