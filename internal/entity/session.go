package entity

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeMatrix Theme = "matrix"
)

// NormalizeTheme maps unknown or empty stored values to the dark default.
func NormalizeTheme(t Theme) Theme {
	switch t {
	case ThemeLight, ThemeDark, ThemeMatrix:
		return t
	}
	return ThemeDark
}

// CardState is the per-post presenter state: local edit buffers, edit mode,
// transient flags for copy feedback and in-flight regenerations. The draft
// buffers are display truth until the canonical post text changes from the
// outside, at which point they are resynchronized and local edits discarded.
type CardState struct {
	Editing           bool   `json:"editing"`
	DraftText         string `json:"draft_text"`
	DraftHashtags     string `json:"draft_hashtags"`
	Copied            bool   `json:"copied"`
	TextRegenerating  bool   `json:"text_regenerating"`
	ImageRegenerating bool   `json:"image_regenerating"`
	Error             string `json:"error,omitempty"`
}

// Card pairs a canonical post with its presenter state.
type Card struct {
	Post  SocialPost `json:"post"`
	State CardState  `json:"state"`
}

// Session is the canonical per-session state record. The session store owns
// the card list; handlers only ever see copies of it.
type Session struct {
	ID             string      `json:"session_id"`
	Idea           string      `json:"idea"`
	Tone           Tone        `json:"tone"`
	AspectRatio    AspectRatio `json:"aspect_ratio"`
	Theme          Theme       `json:"theme"`
	Cards          []Card      `json:"cards"`
	Loading        bool        `json:"loading"`
	LoadingMessage string      `json:"loading_message,omitempty"`
	Error          string      `json:"error,omitempty"`
	ShareEnabled   bool        `json:"share_enabled"`
}

// SharePayload is what a client hands to the platform share sheet.
// Image is included only when file sharing is enabled.
type SharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}
