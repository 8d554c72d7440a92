package entity

type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneWitty        Tone = "Witty"
	ToneUrgent       Tone = "Urgent"
)

type AspectRatio string

const (
	RatioSquare   AspectRatio = "1:1"
	RatioWide     AspectRatio = "16:9"
	RatioPortrait AspectRatio = "3:4"
	RatioStory    AspectRatio = "9:16"
)

// ValidTone reports whether t is one of the supported tone presets.
func ValidTone(t Tone) bool {
	switch t {
	case ToneProfessional, ToneWitty, ToneUrgent:
		return true
	}
	return false
}

// ValidAspectRatio reports whether r is one of the supported image ratios.
func ValidAspectRatio(r AspectRatio) bool {
	switch r {
	case RatioSquare, RatioWide, RatioPortrait, RatioStory:
		return true
	}
	return false
}

// PostDraft is the text-only generation output before an image is attached.
// Drafts are immutable once produced; regeneration replaces them wholesale.
type PostDraft struct {
	PostText    string `json:"post_text"`
	Hashtags    string `json:"hashtags"`
	ImagePrompt string `json:"image_prompt"`
}

// TextVariant is an alternative text+hashtags pair for an existing post.
type TextVariant struct {
	PostText string `json:"post_text"`
	Hashtags string `json:"hashtags"`
}

// SocialPost is a draft plus its rendered image and a session-unique ID.
// Image holds the base64-encoded JPEG payload; clients render it as a
// data:image/jpeg;base64 URI.
type SocialPost struct {
	ID          string `json:"id"`
	PostText    string `json:"post_text"`
	Hashtags    string `json:"hashtags"`
	ImagePrompt string `json:"image_prompt"`
	Image       string `json:"image"`
}

type GenerationRequest struct {
	Idea        string      `json:"idea"`
	Tone        Tone        `json:"tone"`
	AspectRatio AspectRatio `json:"aspect_ratio"`
}
