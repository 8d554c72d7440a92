package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"social-spark/internal/entity"
	"social-spark/internal/repo/persistent"
	"social-spark/pkg/logger"
)

const (
	loadingMessageInterval = 2500 * time.Millisecond
	copiedTTL              = 2 * time.Second

	emptyIdeaMessage = "Please enter a content idea."
	shareTitle       = "AI-Generated Social Media Post"
)

var loadingMessages = []string{
	"Connecting to creative AI...",
	"Drafting compelling posts...",
	"Generating unique visuals...",
	"Assembling your content...",
	"Finalizing creations...",
}

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrEmptyIdea       = errors.New(emptyIdeaMessage)
	ErrShareDisabled   = errors.New("native share is not available on this platform")
)

type SessionUseCase interface {
	Create(ctx context.Context) (*entity.Session, error)
	Get(id string) (*entity.Session, error)
	SubmitIdea(id, idea string) error
	SelectTone(id string, tone entity.Tone) error
	SelectAspectRatio(id string, ratio entity.AspectRatio) error
	StartGeneration(id string, req entity.GenerationRequest) error
	ApplyTextUpdate(id, postID, postText, hashtags string) error
	ApplyImageUpdate(id, postID, imagePrompt, image string) error
	SetTheme(ctx context.Context, id string, theme entity.Theme) error

	BeginEdit(id, postID string) error
	SaveEdit(id, postID string) error
	UpdateDraft(id, postID, draftText, draftHashtags string) error
	Copy(id, postID string) (string, error)
	SharePayload(id, postID string) (*entity.SharePayload, error)
	RegenerateText(ctx context.Context, id, postID string) (*entity.Card, error)
	RegenerateImage(ctx context.Context, id, postID string) (*entity.Card, error)
}

// card pairs a canonical post with its presenter state. The seq counters are
// monotonically increasing per-request generations: a completion applies its
// result only when its captured counter still matches, so late-arriving
// stale results are discarded.
type card struct {
	post  entity.SocialPost
	state entity.CardState

	textSeq  uint64
	imageSeq uint64
	copySeq  uint64
}

type session struct {
	id         string
	idea       string
	tone       entity.Tone
	ratio      entity.AspectRatio
	theme      entity.Theme
	cards      []*card
	loading    bool
	loadingMsg string
	errMsg     string

	// generation guards the initial-batch flow the same way the per-card
	// counters guard regenerations.
	generation uint64
	stopTicker chan struct{}
}

type sessionUseCase struct {
	gen    GenerationUseCase
	themes persistent.ThemeRepository
	logger *logger.Logger

	shareEnabled bool
	shareFiles   bool

	msgInterval time.Duration
	copyTTL     time.Duration

	// One store-wide mutex: state transitions are applied atomically, the
	// moral equivalent of the single-threaded UI event loop.
	mu       sync.Mutex
	sessions map[string]*session
}

func NewSessionUseCase(gen GenerationUseCase, themes persistent.ThemeRepository, log *logger.Logger, shareEnabled, shareFiles bool) SessionUseCase {
	return &sessionUseCase{
		gen:          gen,
		themes:       themes,
		logger:       log,
		shareEnabled: shareEnabled,
		shareFiles:   shareFiles,
		msgInterval:  loadingMessageInterval,
		copyTTL:      copiedTTL,
		sessions:     make(map[string]*session),
	}
}

func (uc *sessionUseCase) Create(ctx context.Context) (*entity.Session, error) {
	theme, err := uc.themes.Get(ctx)
	if err != nil {
		uc.logger.Warn("theme preference unavailable, using default: %v", err)
		theme = entity.ThemeDark
	}

	s := &session{
		id:    uuid.New().String(),
		tone:  entity.ToneProfessional,
		ratio: entity.RatioSquare,
		theme: theme,
	}

	uc.mu.Lock()
	uc.sessions[s.id] = s
	snap := uc.snapshot(s)
	uc.mu.Unlock()

	return snap, nil
}

func (uc *sessionUseCase) Get(id string) (*entity.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return uc.snapshot(s), nil
}

func (uc *sessionUseCase) SubmitIdea(id, idea string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.idea = idea
	return nil
}

func (uc *sessionUseCase) SelectTone(id string, tone entity.Tone) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if !entity.ValidTone(tone) {
		return errors.New("unsupported tone")
	}
	s.tone = tone
	return nil
}

func (uc *sessionUseCase) SelectAspectRatio(id string, ratio entity.AspectRatio) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	if !entity.ValidAspectRatio(ratio) {
		return errors.New("unsupported aspect ratio")
	}
	s.ratio = ratio
	return nil
}

// StartGeneration validates the idea, then kicks off the batch in the
// background while the session cycles through human-readable status
// messages. A superseding call bumps the generation counter so the earlier
// batch's result is discarded when it eventually settles.
func (uc *sessionUseCase) StartGeneration(id string, req entity.GenerationRequest) error {
	uc.mu.Lock()

	s, ok := uc.sessions[id]
	if !ok {
		uc.mu.Unlock()
		return ErrSessionNotFound
	}

	if strings.TrimSpace(req.Idea) == "" {
		s.errMsg = emptyIdeaMessage
		uc.mu.Unlock()
		return ErrEmptyIdea
	}

	s.idea = req.Idea
	s.tone = req.Tone
	s.ratio = req.AspectRatio
	s.errMsg = ""
	s.cards = nil
	s.loading = true
	s.loadingMsg = loadingMessages[0]
	s.generation++
	gen := s.generation

	if s.stopTicker != nil {
		close(s.stopTicker)
	}
	stop := make(chan struct{})
	s.stopTicker = stop

	uc.mu.Unlock()

	go uc.rotateLoadingMessages(s, gen, stop)
	go uc.runGeneration(s, gen, stop, req)

	return nil
}

func (uc *sessionUseCase) rotateLoadingMessages(s *session, gen uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(uc.msgInterval)
	defer ticker.Stop()

	idx := 0
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			uc.mu.Lock()
			if s.generation == gen && s.loading {
				idx = (idx + 1) % len(loadingMessages)
				s.loadingMsg = loadingMessages[idx]
			}
			uc.mu.Unlock()
		}
	}
}

func (uc *sessionUseCase) runGeneration(s *session, gen uint64, stop chan struct{}, req entity.GenerationRequest) {
	// Detached from the request context: the HTTP call that triggered the
	// generation returns immediately and clients poll for progress.
	posts, err := uc.gen.GenerateBatch(context.Background(), req.Idea, req.Tone, req.AspectRatio)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s.generation != gen {
		uc.logger.Warn("discarding stale batch result for session %s", s.id)
		return
	}

	close(stop)
	s.stopTicker = nil
	s.loading = false
	s.loadingMsg = ""

	if err != nil {
		s.errMsg = err.Error()
		return
	}

	cards := make([]*card, 0, len(posts))
	for _, p := range posts {
		cards = append(cards, &card{
			post: p,
			state: entity.CardState{
				DraftText:     p.PostText,
				DraftHashtags: p.Hashtags,
			},
		})
	}
	s.cards = cards
	uc.logger.Info("session %s: generated %d posts", s.id, len(cards))
}

// ApplyTextUpdate replaces only the post's text and hashtags and
// resynchronizes the card's draft buffers, discarding unsaved local edits.
// Unknown post IDs are a no-op.
func (uc *sessionUseCase) ApplyTextUpdate(id, postID, postText, hashtags string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	c := s.find(postID)
	if c == nil {
		return nil
	}
	c.post.PostText = postText
	c.post.Hashtags = hashtags
	c.state.DraftText = postText
	c.state.DraftHashtags = hashtags
	return nil
}

// ApplyImageUpdate replaces only the post's image prompt and image payload.
// Unknown post IDs are a no-op.
func (uc *sessionUseCase) ApplyImageUpdate(id, postID, imagePrompt, image string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, ok := uc.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	c := s.find(postID)
	if c == nil {
		return nil
	}
	c.post.ImagePrompt = imagePrompt
	c.post.Image = image
	return nil
}

func (uc *sessionUseCase) SetTheme(ctx context.Context, id string, theme entity.Theme) error {
	theme = entity.NormalizeTheme(theme)

	uc.mu.Lock()
	s, ok := uc.sessions[id]
	if !ok {
		uc.mu.Unlock()
		return ErrSessionNotFound
	}
	s.theme = theme
	uc.mu.Unlock()

	return uc.themes.Set(ctx, theme)
}

func (uc *sessionUseCase) BeginEdit(id, postID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	_, c, err := uc.findCard(id, postID)
	if err != nil {
		return err
	}
	c.state.Editing = true
	return nil
}

// SaveEdit exits edit mode. The draft buffers stay display truth until the
// next external regeneration resync; manual edits are an intentional
// local-only affordance and never flow back into the canonical post.
func (uc *sessionUseCase) SaveEdit(id, postID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	_, c, err := uc.findCard(id, postID)
	if err != nil {
		return err
	}
	c.state.Editing = false
	return nil
}

func (uc *sessionUseCase) UpdateDraft(id, postID, draftText, draftHashtags string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	_, c, err := uc.findCard(id, postID)
	if err != nil {
		return err
	}
	c.state.DraftText = draftText
	c.state.DraftHashtags = draftHashtags
	return nil
}

// Copy returns the clipboard payload (draft text, blank line, hashtags) and
// raises the copied flag for the feedback window. Overlapping copies extend
// the window; the flag never clears early.
func (uc *sessionUseCase) Copy(id, postID string) (string, error) {
	uc.mu.Lock()

	_, c, err := uc.findCard(id, postID)
	if err != nil {
		uc.mu.Unlock()
		return "", err
	}
	text := c.state.DraftText + "\n\n" + c.state.DraftHashtags
	c.state.Copied = true
	c.copySeq++
	seq := c.copySeq
	uc.mu.Unlock()

	time.AfterFunc(uc.copyTTL, func() {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		if c.copySeq == seq {
			c.state.Copied = false
		}
	})

	return text, nil
}

func (uc *sessionUseCase) SharePayload(id, postID string) (*entity.SharePayload, error) {
	if !uc.shareEnabled {
		return nil, ErrShareDisabled
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	_, c, err := uc.findCard(id, postID)
	if err != nil {
		return nil, err
	}
	payload := &entity.SharePayload{
		Title: shareTitle,
		Text:  c.state.DraftText + "\n\n" + c.state.DraftHashtags,
	}
	if uc.shareFiles && c.post.Image != "" {
		payload.Image = c.post.Image
	}
	return payload, nil
}

// RegenerateText exits edit mode, runs the remote call with the regenerating
// flag raised, and applies the result only if no newer text regeneration was
// issued for the card in the meantime. Failures surface as a per-card error.
func (uc *sessionUseCase) RegenerateText(ctx context.Context, id, postID string) (*entity.Card, error) {
	uc.mu.Lock()

	s, c, err := uc.findCard(id, postID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	c.state.Editing = false
	c.state.TextRegenerating = true
	c.state.Error = ""
	c.textSeq++
	seq := c.textSeq
	idea, tone, current := s.idea, s.tone, c.post.PostText
	uc.mu.Unlock()

	variant, genErr := uc.gen.RegenerateText(ctx, idea, tone, current)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if c.textSeq != seq {
		uc.logger.Warn("discarding stale text regeneration for post %s", postID)
		snap := cardSnapshot(c)
		return &snap, nil
	}
	c.state.TextRegenerating = false

	if genErr != nil {
		c.state.Error = genErr.Error()
		return nil, genErr
	}

	c.post.PostText = variant.PostText
	c.post.Hashtags = variant.Hashtags
	c.state.DraftText = variant.PostText
	c.state.DraftHashtags = variant.Hashtags

	snap := cardSnapshot(c)
	return &snap, nil
}

// RegenerateImage mirrors RegenerateText for the image prompt and payload.
func (uc *sessionUseCase) RegenerateImage(ctx context.Context, id, postID string) (*entity.Card, error) {
	uc.mu.Lock()

	s, c, err := uc.findCard(id, postID)
	if err != nil {
		uc.mu.Unlock()
		return nil, err
	}
	c.state.ImageRegenerating = true
	c.state.Error = ""
	c.imageSeq++
	seq := c.imageSeq
	postText, hashtags, ratio := c.post.PostText, c.post.Hashtags, s.ratio
	uc.mu.Unlock()

	prompt, image, genErr := uc.gen.RegenerateImage(ctx, postText, hashtags, ratio)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if c.imageSeq != seq {
		uc.logger.Warn("discarding stale image regeneration for post %s", postID)
		snap := cardSnapshot(c)
		return &snap, nil
	}
	c.state.ImageRegenerating = false

	if genErr != nil {
		c.state.Error = genErr.Error()
		return nil, genErr
	}

	c.post.ImagePrompt = prompt
	c.post.Image = image

	snap := cardSnapshot(c)
	return &snap, nil
}

// findCard resolves a session and card; the caller must hold uc.mu.
func (uc *sessionUseCase) findCard(id, postID string) (*session, *card, error) {
	s, ok := uc.sessions[id]
	if !ok {
		return nil, nil, ErrSessionNotFound
	}
	c := s.find(postID)
	if c == nil {
		return nil, nil, ErrPostNotFound
	}
	return s, c, nil
}

func (s *session) find(postID string) *card {
	for _, c := range s.cards {
		if c.post.ID == postID {
			return c
		}
	}
	return nil
}

// snapshot copies the session for handlers; the caller must hold uc.mu.
func (uc *sessionUseCase) snapshot(s *session) *entity.Session {
	cards := make([]entity.Card, 0, len(s.cards))
	for _, c := range s.cards {
		cards = append(cards, cardSnapshot(c))
	}
	return &entity.Session{
		ID:             s.id,
		Idea:           s.idea,
		Tone:           s.tone,
		AspectRatio:    s.ratio,
		Theme:          s.theme,
		Cards:          cards,
		Loading:        s.loading,
		LoadingMessage: s.loadingMsg,
		Error:          s.errMsg,
		ShareEnabled:   uc.shareEnabled,
	}
}

func cardSnapshot(c *card) entity.Card {
	return entity.Card{Post: c.post, State: c.state}
}
