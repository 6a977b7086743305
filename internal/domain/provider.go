package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	DefaultImageFormat = "png"
)

// TextRequest é a fronteira com o provedor de geração de texto
type TextRequest struct {
	Model     string
	MaxTokens int
	Turns     []Turn
}

// Turn é um turno da conversa; pode carregar texto e/ou imagens inline
type Turn struct {
	Role   string
	Text   string
	Images []InlineImage
}

// InlineImage carrega a imagem em base64 sem o prefixo data URL
type InlineImage struct {
	MediaType string
	Data      string
}

// UserPrompt monta a requisição mais comum: um único turno de texto do usuário
func UserPrompt(prompt string, maxTokens int) TextRequest {
	return TextRequest{
		MaxTokens: maxTokens,
		Turns:     []Turn{{Role: RoleUser, Text: prompt}},
	}
}

// ImageRequest é a fronteira com o provedor de síntese de imagens.
// SeedImageURLs preenchido indica o modo de edição/composição.
type ImageRequest struct {
	Prompt        string
	Size          string
	OutputFormat  string
	SeedImageURLs []string
}

func (r ImageRequest) IsEdit() bool {
	return len(r.SeedImageURLs) > 0
}
