package falclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Input é o corpo comum aos modelos text-to-image e edit-image
type Input struct {
	Prompt       string   `json:"prompt"`
	ImageSize    string   `json:"image_size,omitempty"`
	OutputFormat string   `json:"output_format,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty"`
}

type Image struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

type Output struct {
	Images []Image `json:"images"`
	Seed   int64   `json:"seed,omitempty"`
}

// URLs devolve as URLs não vazias na ordem recebida
func (o *Output) URLs() []string {
	if o == nil {
		return nil
	}
	urls := make([]string, 0, len(o.Images))
	for _, img := range o.Images {
		if img.URL != "" {
			urls = append(urls, img.URL)
		}
	}
	return urls
}

// APIError representa uma resposta não-2xx do fal.ai
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fal: status %d: %s", e.StatusCode, e.Detail)
}

func (c *FalClient) Run(ctx context.Context, model string, input Input) (*Output, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, errors.Wrap(err, "fal: erro ao serializar a requisição")
	}

	endpoint := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(model, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "fal: erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Key "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fal: erro ao executar a requisição")
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "fal: erro ao ler a resposta")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Detail: strings.TrimSpace(string(rawBody))}
	}

	var output Output
	if err := json.Unmarshal(rawBody, &output); err != nil {
		return nil, errors.Wrap(err, "fal: erro ao decodificar a resposta")
	}

	return &output, nil
}
