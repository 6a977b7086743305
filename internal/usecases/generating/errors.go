package generating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/fluxweave-api/internal/domain"
)

// ErrAllPlatformsFailed indica falha de pipeline: nenhuma plataforma do kit teve sucesso
var ErrAllPlatformsFailed = errors.New("all platforms failed to generate")

// GenerationError é a falha de uma unidade (uma plataforma) com contexto
type GenerationError struct {
	Err      error           // Erro base (domain.ErrTextProvider, domain.ErrImageProvider...)
	Platform domain.Platform // Plataforma envolvida
	Cause    error           // Erro original do provedor
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Platform, e.Err.Error(), e.Cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.Platform, e.Err.Error())
}

// Unwrap expõe tanto o erro base quanto a causa para errors.Is/As
func (e *GenerationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func NewGenerationError(err error, platform domain.Platform, cause error) *GenerationError {
	return &GenerationError{
		Err:      err,
		Platform: platform,
		Cause:    cause,
	}
}
