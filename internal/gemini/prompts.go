package gemini

import (
	"fmt"

	genai "google.golang.org/genai"

	"social-spark/internal/entity"
)

var postSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"postText": {
			Type:        genai.TypeString,
			Description: "The main body of a versatile social media post.",
		},
		"hashtags": {
			Type:        genai.TypeString,
			Description: "A string of relevant hashtags, separated by spaces (e.g., \"#AI #Tech #Innovation\").",
		},
		"imagePrompt": {
			Type:        genai.TypeString,
			Description: "A detailed, creative prompt for an image generation model to create a visually appealing image that complements the post content.",
		},
	},
	Required: []string{"postText", "hashtags", "imagePrompt"},
}

var batchSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"posts": {
			Type:  genai.TypeArray,
			Items: postSchema,
		},
	},
	Required: []string{"posts"},
}

var textVariantSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"postText": {Type: genai.TypeString},
		"hashtags": {Type: genai.TypeString},
	},
	Required: []string{"postText", "hashtags"},
}

var imagePromptSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"imagePrompt": {Type: genai.TypeString},
	},
	Required: []string{"imagePrompt"},
}

func buildBatchPrompt(idea string, tone entity.Tone) string {
	return fmt.Sprintf(`Based on the following idea, generate an array of %d distinct and versatile social media post variations.
The tone of voice must be: %s.

Idea: %q

For each variation, provide:
1. A unique and engaging post text.
2. A string of relevant hashtags.
3. A detailed and creative prompt for an image generation AI to create a compelling visual. The image prompt should be descriptive and artistic.

Return the output as a single JSON object containing a key "posts" which is an array of post objects that match the provided schema.`,
		BatchSize, tone, idea)
}

func buildTextVariantPrompt(idea string, tone entity.Tone, previousText string) string {
	return fmt.Sprintf(`You are an AI assistant helping a user refine a social media post.
The original idea is: %q
The desired tone is: %q
The previous post text was: %q

Please generate a new, alternative version for the post text and hashtags.
Be creative and make it distinct from the previous version.
Return a single JSON object with "postText" and "hashtags".`,
		idea, tone, previousText)
}

func buildImagePromptPrompt(postText, hashtags string) string {
	return fmt.Sprintf(`Based on the following social media post text and hashtags, create a new, detailed, and artistic prompt for an image generation AI.
The new prompt should offer a fresh and creative visual interpretation of the content.

Post Text: %q
Hashtags: %q

Return a single JSON object with the key "imagePrompt".`,
		postText, hashtags)
}
