package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"social-spark/internal/entity"
	"social-spark/internal/gemini"
	"social-spark/internal/usecase"
	"social-spark/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSessionUseCase is a mock implementation of SessionUseCase
type MockSessionUseCase struct {
	mock.Mock
}

func (m *MockSessionUseCase) Create(ctx context.Context) (*entity.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionUseCase) Get(id string) (*entity.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *MockSessionUseCase) SubmitIdea(id, idea string) error {
	args := m.Called(id, idea)
	return args.Error(0)
}

func (m *MockSessionUseCase) SelectTone(id string, tone entity.Tone) error {
	args := m.Called(id, tone)
	return args.Error(0)
}

func (m *MockSessionUseCase) SelectAspectRatio(id string, ratio entity.AspectRatio) error {
	args := m.Called(id, ratio)
	return args.Error(0)
}

func (m *MockSessionUseCase) StartGeneration(id string, req entity.GenerationRequest) error {
	args := m.Called(id, req)
	return args.Error(0)
}

func (m *MockSessionUseCase) ApplyTextUpdate(id, postID, postText, hashtags string) error {
	args := m.Called(id, postID, postText, hashtags)
	return args.Error(0)
}

func (m *MockSessionUseCase) ApplyImageUpdate(id, postID, imagePrompt, image string) error {
	args := m.Called(id, postID, imagePrompt, image)
	return args.Error(0)
}

func (m *MockSessionUseCase) SetTheme(ctx context.Context, id string, theme entity.Theme) error {
	args := m.Called(ctx, id, theme)
	return args.Error(0)
}

func (m *MockSessionUseCase) BeginEdit(id, postID string) error {
	args := m.Called(id, postID)
	return args.Error(0)
}

func (m *MockSessionUseCase) SaveEdit(id, postID string) error {
	args := m.Called(id, postID)
	return args.Error(0)
}

func (m *MockSessionUseCase) UpdateDraft(id, postID, draftText, draftHashtags string) error {
	args := m.Called(id, postID, draftText, draftHashtags)
	return args.Error(0)
}

func (m *MockSessionUseCase) Copy(id, postID string) (string, error) {
	args := m.Called(id, postID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionUseCase) SharePayload(id, postID string) (*entity.SharePayload, error) {
	args := m.Called(id, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SharePayload), args.Error(1)
}

func (m *MockSessionUseCase) RegenerateText(ctx context.Context, id, postID string) (*entity.Card, error) {
	args := m.Called(ctx, id, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

func (m *MockSessionUseCase) RegenerateImage(ctx context.Context, id, postID string) (*entity.Card, error) {
	args := m.Called(ctx, id, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Card), args.Error(1)
}

var _ usecase.SessionUseCase = (*MockSessionUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func mockSession(id string) *entity.Session {
	return &entity.Session{
		ID:           id,
		Tone:         entity.ToneProfessional,
		AspectRatio:  entity.RatioSquare,
		Theme:        entity.ThemeDark,
		ShareEnabled: true,
	}
}

func TestCreateSession(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/sessions", handler.CreateSession)

	mockUseCase.On("Create", mock.Anything).Return(mockSession("session-123"), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "session-123", response["session_id"])
	assert.Equal(t, "dark", response["theme"])

	mockUseCase.AssertExpectations(t)
}

func TestGetSession_NotFound(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.GET("/sessions/:id", handler.GetSession)

	mockUseCase.On("Get", "missing").Return(nil, usecase.ErrSessionNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sessions/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestUpdateSession_PartialFields(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/sessions/:id", handler.UpdateSession)

	sessionID := "session-123"
	mockUseCase.On("SelectTone", sessionID, entity.ToneWitty).Return(nil)
	mockUseCase.On("Get", sessionID).Return(mockSession(sessionID), nil)

	body := `{"tone":"Witty"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/sessions/"+sessionID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertNotCalled(t, "SubmitIdea")
	mockUseCase.AssertNotCalled(t, "SelectAspectRatio")
	mockUseCase.AssertExpectations(t)
}

func TestUpdateSession_InvalidTone(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/sessions/:id", handler.UpdateSession)

	body := `{"tone":"Sarcastic"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/sessions/session-123", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SelectTone")
}

func TestGenerate_Accepted(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/sessions/:id/generate", handler.Generate)

	sessionID := "session-123"
	genReq := entity.GenerationRequest{
		Idea:        "launch a coffee brand",
		Tone:        entity.ToneWitty,
		AspectRatio: entity.RatioWide,
	}
	loading := mockSession(sessionID)
	loading.Loading = true
	loading.LoadingMessage = "Connecting to creative AI..."

	mockUseCase.On("StartGeneration", sessionID, genReq).Return(nil)
	mockUseCase.On("Get", sessionID).Return(loading, nil)

	body := `{"idea":"launch a coffee brand","tone":"Witty","aspect_ratio":"16:9"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/"+sessionID+"/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, true, response["loading"])

	mockUseCase.AssertExpectations(t)
}

func TestGenerate_EmptyIdea(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/sessions/:id/generate", handler.Generate)

	mockUseCase.On("StartGeneration", "session-123", mock.Anything).Return(usecase.ErrEmptyIdea)

	body := `{"idea":"   ","tone":"Professional","aspect_ratio":"1:1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/session-123/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Please enter a content idea.", response["error"])

	mockUseCase.AssertExpectations(t)
}

func TestGenerate_InvalidAspectRatio(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.POST("/sessions/:id/generate", handler.Generate)

	body := `{"idea":"idea","tone":"Professional","aspect_ratio":"2:1"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/sessions/session-123/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "StartGeneration")
}

func TestSetTheme(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/sessions/:id/theme", handler.SetTheme)

	mockUseCase.On("SetTheme", mock.Anything, "session-123", entity.ThemeMatrix).Return(nil)

	body := `{"theme":"matrix"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/sessions/session-123/theme", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "matrix", response["theme"])

	mockUseCase.AssertExpectations(t)
}

func TestSetTheme_Invalid(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	router := setupTestRouter()
	router.PUT("/sessions/:id/theme", handler.SetTheme)

	body := `{"theme":"neon"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/sessions/session-123/theme", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "SetTheme")
}

func TestRespondError_Categories(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"quota", &gemini.UserError{Category: gemini.ErrorQuota, Message: "API Limit Reached"}, http.StatusTooManyRequests},
		{"safety", &gemini.UserError{Category: gemini.ErrorSafety, Message: "blocked"}, http.StatusUnprocessableEntity},
		{"auth", &gemini.UserError{Category: gemini.ErrorAuth, Message: "invalid key"}, http.StatusBadGateway},
		{"network", &gemini.UserError{Category: gemini.ErrorNetwork, Message: "network down"}, http.StatusBadGateway},
		{"unknown", &gemini.UserError{Category: gemini.ErrorUnknown, Message: "oops"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			assert.Equal(t, tt.expected, w.Code)
			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			assert.Equal(t, tt.err.(*gemini.UserError).Message, response["error"])
		})
	}
}

func TestNewSessionHandler(t *testing.T) {
	mockUseCase := new(MockSessionUseCase)
	logger := logger.New()
	handler := NewSessionHandler(mockUseCase, logger)

	assert.NotNil(t, handler)
}
