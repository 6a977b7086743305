package domain

import (
	"errors"
	"fmt"
)

var ErrVariationNotFound = errors.New("variation not found in ad history")

// AdCopy é o contrato estruturado extraído da resposta do provedor de texto
type AdCopy struct {
	Headline     string `json:"headline"`
	Caption      string `json:"caption"`
	VisualPrompt string `json:"visual_prompt"`
}

// Ad é uma peça gerada para uma plataforma. Variations é um log append-only
// e Image sempre aponta para um de seus elementos.
type Ad struct {
	ID         string   `json:"id"`
	Platform   Platform `json:"platform"`
	Headline   string   `json:"headline"`
	Caption    string   `json:"caption"`
	Image      string   `json:"image"`
	Variations []string `json:"variations"`
}

func NewAd(id string, platform Platform, copy AdCopy, image string) Ad {
	return Ad{
		ID:         id,
		Platform:   platform,
		Headline:   copy.Headline,
		Caption:    copy.Caption,
		Image:      image,
		Variations: []string{image},
	}
}

// Clone devolve uma cópia profunda do anúncio
func (a Ad) Clone() Ad {
	clone := a
	clone.Variations = make([]string, len(a.Variations))
	copy(clone.Variations, a.Variations)
	return clone
}

// WithVariation produz um novo registro com a imagem atualizada, a URL anexada
// ao histórico e o estilo anotado na legenda. O receptor não é alterado.
func (a Ad) WithVariation(imageURL, style string) Ad {
	next := a.Clone()
	next.Image = imageURL
	next.Variations = append(next.Variations, imageURL)
	next.Caption = a.Caption + StyleSuffix(style)
	return next
}

// Restore move o ponteiro da imagem atual dentro do histórico existente
func (a Ad) Restore(imageURL string) (Ad, error) {
	if !a.HasVariation(imageURL) {
		return a, fmt.Errorf("%w: %s", ErrVariationNotFound, imageURL)
	}
	next := a.Clone()
	next.Image = imageURL
	return next, nil
}

func (a Ad) HasVariation(imageURL string) bool {
	for _, v := range a.Variations {
		if v == imageURL {
			return true
		}
	}
	return false
}

// StyleSuffix é a anotação legível acrescentada à legenda a cada variação
func StyleSuffix(style string) string {
	return fmt.Sprintf(" (%s style)", style)
}

// PlatformResult é o resultado assentado de uma tentativa por plataforma:
// Ad preenchido em caso de sucesso, Err preenchido em caso de falha.
type PlatformResult struct {
	Platform Platform
	Ad       *Ad
	Err      error
}

func (r PlatformResult) Succeeded() bool {
	return r.Err == nil && r.Ad != nil
}

// PlatformFailure é o marcador explícito de uma plataforma que falhou no kit
type PlatformFailure struct {
	Platform Platform `json:"platform"`
	Error    string   `json:"error"`
}

// KitResult agrega um lote assentado na ordem fixa das plataformas
type KitResult struct {
	Ads      []Ad              `json:"ads"`
	Failures []PlatformFailure `json:"failures,omitempty"`
}
