package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	genai "google.golang.org/genai"

	"social-spark/internal/entity"
	"social-spark/pkg/config"
)

// BatchSize is the fixed number of drafts produced by one initial
// generation request.
const BatchSize = 4

var ErrInvalidResponse = errors.New("gemini: invalid response from model")

// ContentClient is the remote generation surface used by the orchestrator.
// Implemented by Client; mocked in tests.
type ContentClient interface {
	GenerateDrafts(ctx context.Context, idea string, tone entity.Tone) ([]entity.PostDraft, error)
	RegenerateText(ctx context.Context, idea string, tone entity.Tone, previousText string) (entity.TextVariant, error)
	GenerateImagePrompt(ctx context.Context, postText, hashtags string) (string, error)
	GenerateImage(ctx context.Context, prompt string, ratio entity.AspectRatio) (string, error)
}

// Client is a thin wrapper around the official genai client. Text calls use
// structured JSON output; image calls go through the Imagen model.
type Client struct {
	cli        *genai.Client
	textModel  string
	imageModel string
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini: GEMINI_API_KEY is not set")
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Client{
		cli:        cli,
		textModel:  cfg.GeminiTextModel,
		imageModel: cfg.GeminiImageModel,
	}, nil
}

// generateJSON sends prompt to the text model requesting application/json
// constrained by schema, and unmarshals the first candidate into out.
func (c *Client) generateJSON(ctx context.Context, prompt string, schema *genai.Schema, out interface{}) error {
	resp, err := c.cli.Models.GenerateContent(ctx, c.textModel,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		},
	)
	if err != nil {
		return err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ErrInvalidResponse
	}
	txt := resp.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(txt), out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) GenerateDrafts(ctx context.Context, idea string, tone entity.Tone) ([]entity.PostDraft, error) {
	var result struct {
		Posts []struct {
			PostText    string `json:"postText"`
			Hashtags    string `json:"hashtags"`
			ImagePrompt string `json:"imagePrompt"`
		} `json:"posts"`
	}
	if err := c.generateJSON(ctx, buildBatchPrompt(idea, tone), batchSchema, &result); err != nil {
		return nil, err
	}
	if len(result.Posts) != BatchSize {
		return nil, fmt.Errorf("%w: expected %d posts, got %d", ErrInvalidResponse, BatchSize, len(result.Posts))
	}
	drafts := make([]entity.PostDraft, 0, BatchSize)
	for _, p := range result.Posts {
		if p.PostText == "" || p.Hashtags == "" || p.ImagePrompt == "" {
			return nil, fmt.Errorf("%w: empty field in draft", ErrInvalidResponse)
		}
		drafts = append(drafts, entity.PostDraft{
			PostText:    p.PostText,
			Hashtags:    p.Hashtags,
			ImagePrompt: p.ImagePrompt,
		})
	}
	return drafts, nil
}

func (c *Client) RegenerateText(ctx context.Context, idea string, tone entity.Tone, previousText string) (entity.TextVariant, error) {
	var result struct {
		PostText string `json:"postText"`
		Hashtags string `json:"hashtags"`
	}
	if err := c.generateJSON(ctx, buildTextVariantPrompt(idea, tone, previousText), textVariantSchema, &result); err != nil {
		return entity.TextVariant{}, err
	}
	if result.PostText == "" {
		return entity.TextVariant{}, fmt.Errorf("%w: empty post text", ErrInvalidResponse)
	}
	return entity.TextVariant{PostText: result.PostText, Hashtags: result.Hashtags}, nil
}

func (c *Client) GenerateImagePrompt(ctx context.Context, postText, hashtags string) (string, error) {
	var result struct {
		ImagePrompt string `json:"imagePrompt"`
	}
	if err := c.generateJSON(ctx, buildImagePromptPrompt(postText, hashtags), imagePromptSchema, &result); err != nil {
		return "", err
	}
	if result.ImagePrompt == "" {
		return "", fmt.Errorf("%w: model returned an empty image prompt", ErrInvalidResponse)
	}
	return result.ImagePrompt, nil
}

// GenerateImage renders one JPEG for prompt at the requested aspect ratio
// and returns it base64-encoded.
func (c *Client) GenerateImage(ctx context.Context, prompt string, ratio entity.AspectRatio) (string, error) {
	resp, err := c.cli.Models.GenerateImages(ctx, c.imageModel, prompt,
		&genai.GenerateImagesConfig{
			NumberOfImages: 1,
			OutputMIMEType: "image/jpeg",
			AspectRatio:    string(ratio),
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return "", fmt.Errorf("%w: no image was generated", ErrInvalidResponse)
	}
	return base64.StdEncoding.EncodeToString(resp.GeneratedImages[0].Image.ImageBytes), nil
}
