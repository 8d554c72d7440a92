package gemini

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category ErrorCategory
	}{
		{"invalid key", errors.New("API key not valid. Please pass a valid API key."), ErrorAuth},
		{"quota", errors.New("Resource has been exhausted: quota exceeded"), ErrorQuota},
		{"status 429", errors.New("HTTP 429 Too Many Requests"), ErrorQuota},
		{"network", errors.New("failed to fetch response"), ErrorNetwork},
		{"connection refused", errors.New("dial tcp 127.0.0.1:443: connection refused"), ErrorNetwork},
		{"safety", errors.New("Candidate was blocked due to SAFETY"), ErrorSafety},
		{"unknown", errors.New("something else entirely"), ErrorUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ue := Classify("initial post generation", tt.err)
			assert.Equal(t, tt.category, ue.Category)
			assert.NotEmpty(t, ue.Message)
			assert.ErrorIs(t, ue, tt.err)
		})
	}
}

func TestClassify_UnknownNamesOperation(t *testing.T) {
	ue := Classify("image regeneration", errors.New("boom"))
	assert.Equal(t, ErrorUnknown, ue.Category)
	assert.Contains(t, ue.Message, "image regeneration")
}

func TestClassify_CaseInsensitive(t *testing.T) {
	ue := Classify("text regeneration", errors.New("QUOTA limit hit"))
	assert.Equal(t, ErrorQuota, ue.Category)
}
