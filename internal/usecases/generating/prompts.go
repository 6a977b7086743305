package generating

import (
	"fmt"
	"strings"

	"github.com/vfg2006/fluxweave-api/internal/domain"
)

func buildCopyPrompt(platform domain.Platform, product string, brand domain.BrandSpec) string {
	return fmt.Sprintf(`
You are a senior creative director crafting a %[1]s ad.

Platform tone guide:
%[2]s

Product: %[3]s
Brand: %[4]s
Palette: %[5]s
Vibe: %[6]s
CTA: %[7]s

Return STRICT JSON:
{
  "headline": "catchy short headline for ad image",
  "caption": "long persuasive ad copy (6–8 sentences) that sells the product emotionally and factually for %[1]s",
  "visual_prompt": "vivid visual scene describing composition, lighting, mood, background and elements that fit %[1]s style"
}`, platform, domain.ToneGuideTable(), product, brand.Brand, brand.Palette, brand.Vibe, brand.CTAHint)
}

// buildImagePrompt funde o prompt visual com o texto sobreposto, a dica de estilo
// da plataforma e a identidade da marca
func buildImagePrompt(copy domain.AdCopy, profile domain.PlatformProfile, brand domain.BrandSpec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s. Include overlay text %q and %q.", copy.VisualPrompt, copy.Headline, copy.Caption)
	fmt.Fprintf(&b, " Platform tone: %s.", profile.StyleHint)
	fmt.Fprintf(&b, " Brand tone: %s.", brand.Vibe)
	fmt.Fprintf(&b, " Use color palette: %s.", brand.Palette)

	if strings.TrimSpace(brand.Logo) != "" {
		b.WriteString(" Include the uploaded brand logo in the top-right corner of the image for visual consistency.")
	}

	return b.String()
}

func buildEnhancePrompt(style string) string {
	return fmt.Sprintf("Enhance this image with %s lighting and aesthetic — maintain realistic detail.", style)
}
