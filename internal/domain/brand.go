package domain

import "strings"

const (
	DefaultBrand   = "FluxWeave"
	DefaultPalette = "charcoal and electric blue"
	DefaultVibe    = "sleek, futuristic, premium aesthetic"
	DefaultCTAHint = "Shop Now"
)

// BrandSpec é o conjunto imutável de parâmetros de marca de uma geração
type BrandSpec struct {
	Brand   string `json:"brand"`
	Palette string `json:"palette"`
	Vibe    string `json:"vibe"`
	CTAHint string `json:"ctaHint"`
	Logo    string `json:"logo,omitempty"`
}

func DefaultBrandSpec() BrandSpec {
	return BrandSpec{
		Brand:   DefaultBrand,
		Palette: DefaultPalette,
		Vibe:    DefaultVibe,
		CTAHint: DefaultCTAHint,
	}
}

// WithDefaults preenche os campos vazios com os valores padrão
func (b BrandSpec) WithDefaults() BrandSpec {
	defaults := DefaultBrandSpec()
	if strings.TrimSpace(b.Brand) == "" {
		b.Brand = defaults.Brand
	}
	if strings.TrimSpace(b.Palette) == "" {
		b.Palette = defaults.Palette
	}
	if strings.TrimSpace(b.Vibe) == "" {
		b.Vibe = defaults.Vibe
	}
	if strings.TrimSpace(b.CTAHint) == "" {
		b.CTAHint = defaults.CTAHint
	}
	return b
}

// Merge sobrepõe campo a campo os valores não vazios de override
func (b BrandSpec) Merge(override BrandSpec) BrandSpec {
	pick := func(current, next string) string {
		if strings.TrimSpace(next) == "" {
			return current
		}
		return next
	}

	return BrandSpec{
		Brand:   pick(b.Brand, override.Brand),
		Palette: pick(b.Palette, override.Palette),
		Vibe:    pick(b.Vibe, override.Vibe),
		CTAHint: pick(b.CTAHint, override.CTAHint),
		Logo:    pick(b.Logo, override.Logo),
	}
}

// BrandAnalysis é a saída do analista de marca a partir de uma imagem de referência
type BrandAnalysis struct {
	Colors  []string `json:"colors"`
	Mood    string   `json:"mood"`
	Tone    string   `json:"tone"`
	Summary string   `json:"summary"`
}

// ToBrandSpec deriva um BrandSpec da análise; campos vazios mantêm a base
func (a BrandAnalysis) ToBrandSpec(base BrandSpec) BrandSpec {
	colors := make([]string, 0, len(a.Colors))
	for _, c := range a.Colors {
		if c = strings.TrimSpace(c); c != "" {
			colors = append(colors, c)
		}
	}

	spec := base
	if len(colors) > 0 {
		spec.Palette = strings.Join(colors, ", ")
	}
	if mood := strings.TrimSpace(a.Mood); mood != "" {
		spec.Vibe = mood
	}
	return spec.WithDefaults()
}
