package copywriting

import (
	"fmt"
	"strings"
	"unicode"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/fluxweave-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultHeadline = "New Arrival"
	DefaultCaption  = "Discover the innovation that defines tomorrow."

	DefaultBrandSummary = "Brand aesthetic extracted successfully — use this style in future ads."

	MaxHashtags = 4
)

// DefaultVisualPrompt é o prompt visual usado quando o provedor não informa um
func DefaultVisualPrompt(product string) string {
	return fmt.Sprintf("Ad for %s", product)
}

// ParseResult é o resultado marcado do parser: Fallback indica que ao menos
// um campo veio dos valores padrão, e Reason explica o motivo.
type ParseResult struct {
	Copy     domain.AdCopy
	Fallback bool
	Reason   string
}

// ParseAdCopy aplica o contrato {headline, caption, visual_prompt} sobre uma
// resposta não confiável. Nunca falha: erros de contrato são absorvidos.
func ParseAdCopy(raw string, product string) ParseResult {
	defaults := domain.AdCopy{
		Headline:     DefaultHeadline,
		Caption:      DefaultCaption,
		VisualPrompt: DefaultVisualPrompt(product),
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return ParseResult{Copy: defaults, Fallback: true, Reason: "invalid json: " + err.Error()}
	}
	if payload == nil {
		return ParseResult{Copy: defaults, Fallback: true, Reason: "response is not a json object"}
	}

	result := ParseResult{Copy: defaults}
	var missing []string

	if v, ok := stringField(payload, "headline"); ok {
		result.Copy.Headline = v
	} else {
		missing = append(missing, "headline")
	}
	if v, ok := stringField(payload, "caption"); ok {
		result.Copy.Caption = v
	} else {
		missing = append(missing, "caption")
	}
	if v, ok := stringField(payload, "visual_prompt"); ok {
		result.Copy.VisualPrompt = v
	} else {
		missing = append(missing, "visual_prompt")
	}

	if len(missing) > 0 {
		result.Fallback = true
		result.Reason = "missing or invalid keys: " + strings.Join(missing, ", ")
	}
	return result
}

func stringField(payload map[string]any, key string) (string, bool) {
	v, ok := payload[key].(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

// ParseHashtags espera um array JSON de strings. Se o contrato falhar, ou se o
// array não trouxer nenhuma string útil, divide o texto bruto em "#" e
// sintetiza tokens curtos, limitados a MaxHashtags.
func ParseHashtags(raw string) []string {
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		hashtags := make([]string, 0, len(items))
		for _, item := range items {
			tag, ok := item.(string)
			if !ok || strings.TrimSpace(tag) == "" {
				continue
			}
			hashtags = append(hashtags, strings.TrimSpace(tag))
			if len(hashtags) == MaxHashtags {
				break
			}
		}
		if len(hashtags) > 0 {
			return hashtags
		}
	}

	hashtags := make([]string, 0, MaxHashtags)
	for _, chunk := range strings.Split(raw, "#") {
		token := hashtagToken(chunk)
		if token == "" {
			continue
		}
		hashtags = append(hashtags, "#"+token)
		if len(hashtags) == MaxHashtags {
			break
		}
	}
	return hashtags
}

// hashtagToken devolve a primeira sequência de letras, dígitos ou "_" do trecho
func hashtagToken(chunk string) string {
	isWord := func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}

	chunk = strings.TrimLeftFunc(chunk, func(r rune) bool { return !isWord(r) })
	if end := strings.IndexFunc(chunk, func(r rune) bool { return !isWord(r) }); end >= 0 {
		chunk = chunk[:end]
	}
	return chunk
}

// ParseBrandAnalysis segue a mesma filosofia de fallback para a análise de marca.
// O booleano indica se o contrato foi respeitado.
func ParseBrandAnalysis(raw string) (domain.BrandAnalysis, bool) {
	fallback := domain.BrandAnalysis{
		Colors:  []string{},
		Summary: DefaultBrandSummary,
	}

	var analysis domain.BrandAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return fallback, false
	}

	if analysis.Colors == nil {
		analysis.Colors = []string{}
	}
	if strings.TrimSpace(analysis.Summary) == "" {
		analysis.Summary = DefaultBrandSummary
	}
	return analysis, true
}
