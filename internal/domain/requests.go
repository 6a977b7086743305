package domain

// AdRequest é o corpo de generate-single-ad
type AdRequest struct {
	Platform string `json:"platform"`
	Product  string `json:"product"`
	BrandSpec
}

type AdResponse struct {
	Platform   Platform `json:"platform"`
	Images     []string `json:"images"`
	Headline   string   `json:"headline"`
	Caption    string   `json:"caption"`
	PromptUsed string   `json:"promptUsed"`
	Ad         Ad       `json:"ad"`
}

// AdKitRequest é o corpo de generate-kit
type AdKitRequest struct {
	Product string `json:"product"`
	BrandSpec
}

type AdKitResponse struct {
	RunID    string            `json:"runId,omitempty"`
	Ads      []Ad              `json:"ads"`
	Failures []PlatformFailure `json:"failures,omitempty"`
}

// VariationRequest é o corpo de generate-variation
type VariationRequest struct {
	Platform string `json:"platform"`
	Product  string `json:"product"`
	Style    string `json:"style"`
}

type VariationResponse struct {
	VariationPrompt string `json:"variationPrompt"`
	Image           string `json:"image"`
}

// EnhanceRequest é o corpo de enhance-image
type EnhanceRequest struct {
	ImageURL string `json:"imageUrl"`
	Style    string `json:"style"`
}

type EnhanceResponse struct {
	EnhancedURL string `json:"enhancedUrl"`
}

type HashtagsRequest struct {
	Platform string `json:"platform"`
	Product  string `json:"product"`
}

type HashtagsResponse struct {
	Hashtags []string `json:"hashtags"`
}

type CaptionRequest struct {
	Prompt string `json:"prompt"`
}

type CaptionResponse struct {
	Caption string `json:"caption"`
}

type DescriptionRequest struct {
	Platform string `json:"platform"`
	Product  string `json:"product"`
}

type DescriptionResponse struct {
	Description string `json:"description"`
}

type BrandStyleRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

type BrandStyleResponse struct {
	Analysis  BrandAnalysis `json:"analysis"`
	BrandSpec BrandSpec     `json:"brandSpec"`
}

type ImageGenerateRequest struct {
	Prompt string `json:"prompt"`
}

type ImagesResponse struct {
	Images []string `json:"images"`
}

type AestheticRequest struct {
	Prompt string   `json:"prompt"`
	Images []string `json:"images"`
}

// SessionResponse descreve uma sessão de coleção de anúncios
type SessionResponse struct {
	ID    string `json:"id"`
	RunID string `json:"runId,omitempty"`
	Ads   []Ad   `json:"ads"`
}

type SessionVariationRequest struct {
	Style string `json:"style"`
}

type RestoreRequest struct {
	ImageURL string `json:"imageUrl"`
}
