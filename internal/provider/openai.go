package provider

import (
	"context"
	"errors"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// directivePrompt keeps answers short and on the topic of neural networks.
const directivePrompt = "Отвечай кратко по теме нейросетей. Умещай ответ в 200 символов."

var errEmptyResponse = errors.New("empty response from API")

type OpenAIConfig struct {
	APIKey         string
	Model          string
	MaxTokens      int
	Temperature    float64
	ImageModel     string
	ImageSize      string
	RequestTimeout time.Duration
}

// OpenAIProvider implements both AnswerProvider and ImageProvider over the
// OpenAI API. Every call is bounded by the configured request timeout.
type OpenAIProvider struct {
	client *openai.Client
	config OpenAIConfig
	logger *zap.Logger
}

func NewOpenAIProvider(config OpenAIConfig, logger *zap.Logger) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(config.APIKey),
		config: config,
		logger: logger,
	}
}

func (p *OpenAIProvider) Answer(ctx context.Context, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.RequestTimeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: p.config.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: directivePrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: question,
				},
			},
			MaxTokens:   p.config.MaxTokens,
			Temperature: float32(p.config.Temperature),
		},
	)
	if err != nil {
		p.logger.Error("Failed to get chat completion", zap.Error(err))
		return "", &Error{Op: "answer", Err: err}
	}

	if len(resp.Choices) == 0 {
		p.logger.Error("Chat completion returned no choices",
			zap.String("model", p.config.Model))
		return "", &Error{Op: "answer", Err: errEmptyResponse}
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.RequestTimeout)
	defer cancel()

	resp, err := p.client.CreateImage(
		ctx,
		openai.ImageRequest{
			Model:          p.config.ImageModel,
			Prompt:         prompt,
			N:              1,
			Size:           p.config.ImageSize,
			ResponseFormat: openai.CreateImageResponseFormatURL,
		},
	)
	if err != nil {
		p.logger.Error("Failed to generate image", zap.Error(err))
		return "", &Error{Op: "generate_image", Err: err}
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		p.logger.Error("Image generation returned no data",
			zap.String("model", p.config.ImageModel))
		return "", &Error{Op: "generate_image", Err: errEmptyResponse}
	}

	return resp.Data[0].URL, nil
}
