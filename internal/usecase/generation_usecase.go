package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"social-spark/internal/entity"
	"social-spark/internal/gemini"
	"social-spark/pkg/logger"
)

// imageStagger is the delay between issuing consecutive image requests in a
// batch. A rate-limiting courtesy to the backend, not a correctness
// requirement.
const imageStagger = 200 * time.Millisecond

type GenerationUseCase interface {
	GenerateBatch(ctx context.Context, idea string, tone entity.Tone, ratio entity.AspectRatio) ([]entity.SocialPost, error)
	RegenerateText(ctx context.Context, idea string, tone entity.Tone, currentText string) (entity.TextVariant, error)
	RegenerateImage(ctx context.Context, postText, hashtags string, ratio entity.AspectRatio) (string, string, error)
}

type generationUseCase struct {
	client  gemini.ContentClient
	logger  *logger.Logger
	stagger time.Duration
}

func NewGenerationUseCase(client gemini.ContentClient, log *logger.Logger) GenerationUseCase {
	return &generationUseCase{
		client:  client,
		logger:  log,
		stagger: imageStagger,
	}
}

// GenerateBatch obtains a fixed-size batch of drafts for the idea and tone,
// then renders one image per draft concurrently. Each draft's image request
// goes through the two-step prompt-then-render flow conditioned on the
// draft's text and hashtags. Any failure fails the whole batch; no partial
// list is returned.
func (uc *generationUseCase) GenerateBatch(ctx context.Context, idea string, tone entity.Tone, ratio entity.AspectRatio) ([]entity.SocialPost, error) {
	drafts, err := uc.client.GenerateDrafts(ctx, idea, tone)
	if err != nil {
		uc.logger.Error("draft generation failed: %v", err)
		return nil, gemini.Classify("initial post generation", err)
	}

	posts := make([]entity.SocialPost, len(drafts))
	g, gctx := errgroup.WithContext(ctx)
	for i, draft := range drafts {
		g.Go(func() error {
			select {
			case <-time.After(time.Duration(i) * uc.stagger):
			case <-gctx.Done():
				return gctx.Err()
			}
			prompt, image, err := uc.RegenerateImage(gctx, draft.PostText, draft.Hashtags, ratio)
			if err != nil {
				return err
			}
			posts[i] = entity.SocialPost{
				ID:          uuid.New().String(),
				PostText:    draft.PostText,
				Hashtags:    draft.Hashtags,
				ImagePrompt: prompt,
				Image:       image,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.logger.Error("batch image generation failed: %v", err)
		return nil, err
	}
	return posts, nil
}

// RegenerateText produces an alternative text+hashtags pair for a post. The
// caller decides what to do with the existing post on failure.
func (uc *generationUseCase) RegenerateText(ctx context.Context, idea string, tone entity.Tone, currentText string) (entity.TextVariant, error) {
	variant, err := uc.client.RegenerateText(ctx, idea, tone, currentText)
	if err != nil {
		uc.logger.Error("text regeneration failed: %v", err)
		return entity.TextVariant{}, gemini.Classify("text regeneration", err)
	}
	return variant, nil
}

// RegenerateImage derives a fresh image prompt from the post's text and
// hashtags, then renders it. Returns the new prompt and the base64 image
// payload.
func (uc *generationUseCase) RegenerateImage(ctx context.Context, postText, hashtags string, ratio entity.AspectRatio) (string, string, error) {
	prompt, err := uc.client.GenerateImagePrompt(ctx, postText, hashtags)
	if err != nil {
		uc.logger.Error("image prompt regeneration failed: %v", err)
		return "", "", gemini.Classify("image prompt regeneration", err)
	}
	image, err := uc.client.GenerateImage(ctx, prompt, ratio)
	if err != nil {
		uc.logger.Error("image generation failed: %v", err)
		return "", "", gemini.Classify("image generation", err)
	}
	return prompt, image, nil
}
