package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrNoProfile é o valor de panic de ProfileFor; nunca deve ser recuperado
	ErrNoProfile = errors.New("platform has no profile")
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformSnapchat  Platform = "snapchat"
	PlatformPinterest Platform = "pinterest"
	PlatformX         Platform = "x"
)

// platformOrder é a ordem fixa de enumeração usada em toda saída de kit
var platformOrder = []Platform{
	PlatformInstagram,
	PlatformLinkedIn,
	PlatformSnapchat,
	PlatformPinterest,
	PlatformX,
}

// Platforms retorna o conjunto fechado de plataformas na ordem de enumeração
func Platforms() []Platform {
	platforms := make([]Platform, len(platformOrder))
	copy(platforms, platformOrder)
	return platforms
}

// ParsePlatform valida o identificador recebido do cliente
func ParsePlatform(value string) (Platform, error) {
	normalized := Platform(strings.ToLower(strings.TrimSpace(value)))
	for _, p := range platformOrder {
		if p == normalized {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, value)
}

func (p Platform) String() string {
	return string(p)
}

// PlatformProfile reúne o que cada plataforma impõe à geração
type PlatformProfile struct {
	Label     string
	ImageSize string
	StyleHint string
	ToneGuide string
}

var profiles = map[Platform]PlatformProfile{
	PlatformInstagram: {
		Label:     "Instagram",
		ImageSize: "square_hd",
		StyleHint: "vibrant lighting, lifestyle background, bold colors, modern typography",
		ToneGuide: "trendy, vibrant, emoji-rich, lifestyle-focused",
	},
	PlatformLinkedIn: {
		Label:     "LinkedIn",
		ImageSize: "landscape_16_9",
		StyleHint: "clean minimal photography, professional lighting, corporate tone",
		ToneGuide: "elegant, professional, performance-driven",
	},
	PlatformSnapchat: {
		Label:     "Snapchat",
		ImageSize: "portrait_16_9",
		StyleHint: "bright colors, emojis, fun graphics, playful vibe",
		ToneGuide: "youthful, fun, slangy, bold visuals",
	},
	PlatformPinterest: {
		Label:     "Pinterest",
		ImageSize: "portrait_4_3",
		StyleHint: "soft light, natural aesthetic, cozy composition",
		ToneGuide: "cozy, artistic, aspirational, pastel tones",
	},
	PlatformX: {
		Label:     "X (Twitter)",
		ImageSize: "landscape_16_9",
		StyleHint: "dark high-contrast, cinematic composition, minimalist layout",
		ToneGuide: "short, witty, impactful, hashtag-friendly",
	},
}

// ProfileFor consulta a tabela de perfis. A tabela cobre todo o enum;
// uma ausência é defeito de programação e não erro recuperável.
func ProfileFor(p Platform) PlatformProfile {
	profile, ok := profiles[p]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrNoProfile, p))
	}
	return profile
}

// ToneGuideTable monta o guia de tom de todas as plataformas, uma por linha
func ToneGuideTable() string {
	lines := make([]string, 0, len(platformOrder))
	for _, p := range platformOrder {
		profile := ProfileFor(p)
		lines = append(lines, fmt.Sprintf("- %s → %s", profile.Label, profile.ToneGuide))
	}
	return strings.Join(lines, "\n")
}
