package llm

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// MistralClient talks to Mistral's chat completion API, which speaks the
// OpenAI wire format, through the openai-go SDK.
type MistralClient struct {
	apiKey  string
	model   string
	baseURL string
}

func NewMistralClient(apiKey, model, baseURL string) *MistralClient {
	return &MistralClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
	}
}

func (c *MistralClient) Model() string {
	return c.model
}

func (c *MistralClient) Complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", &ConfigError{Missing: "MISTRAL_API_KEY"}
	}

	opts := []option.RequestOption{option.WithAPIKey(c.apiKey)}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{
				Provider:   "mistral",
				StatusCode: apiErr.StatusCode,
				Message:    apiErr.Message,
				Err:        err,
			}
		}
		return "", &ProviderError{Provider: "mistral", Message: "request failed", Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: "mistral", Message: "response contains no choices"}
	}

	return resp.Choices[0].Message.Content, nil
}
