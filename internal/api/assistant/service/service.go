package assistantService

import (
	"context"
	"sync"
	"time"

	"VoiceCommerce/internal/api/assistant"
	browseService "VoiceCommerce/internal/api/browse/service"
	cartService "VoiceCommerce/internal/api/cart/service"
	catalogService "VoiceCommerce/internal/api/catalog/service"
	profileService "VoiceCommerce/internal/api/profile/service"
	"VoiceCommerce/internal/entity"
	"VoiceCommerce/internal/events"
	"VoiceCommerce/internal/navigation"
	"VoiceCommerce/pkg/gemini"
	"VoiceCommerce/pkg/utils"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// actionLogCapacity bounds the feedback history kept in memory.
	actionLogCapacity = 20
	// maxConsecutiveErrors is the failure streak that forces a listener restart.
	maxConsecutiveErrors = 3
	// dispatchTimeout bounds a single transcript's full handling chain.
	dispatchTimeout = 10 * time.Second
)

type IAssistantService interface {
	HandleTranscript(ctx context.Context, transcript string) error
	ActionLog() []entity.ActionLogEntry
	OnRestart(fn func())
}

type AssistantService struct {
	log       *logrus.Logger
	catalog   catalogService.ICatalogService
	filters   browseService.IFilterStore
	selection browseService.ISelectionStore
	profile   profileService.IProfileService
	cart      cartService.ICartService
	nav       navigation.INavigator
	bus       events.IBus
	caps      assistant.Capabilities
	utils     utils.IUtils

	// complete is the oracle call. Taken from gemini.IGemini at construction
	// time so tests can swap in canned completions.
	complete func(ctx context.Context, template string, params map[string]interface{}) (string, error)

	mu                sync.Mutex
	actionLog         []entity.ActionLogEntry
	consecutiveErrors int
	restartFn         func()
	submitInFlight    bool
}

func New(
	log *logrus.Logger,
	oracle gemini.IGemini,
	catalog catalogService.ICatalogService,
	filters browseService.IFilterStore,
	selection browseService.ISelectionStore,
	profile profileService.IProfileService,
	cart cartService.ICartService,
	nav navigation.INavigator,
	bus events.IBus,
	caps assistant.Capabilities,
	util utils.IUtils,
) *AssistantService {
	s := &AssistantService{
		log:       log,
		catalog:   catalog,
		filters:   filters,
		selection: selection,
		profile:   profile,
		cart:      cart,
		nav:       nav,
		bus:       bus,
		caps:      caps,
		utils:     util,
		complete:  oracle.Complete,
		actionLog: make([]entity.ActionLogEntry, 0, actionLogCapacity),
	}
	if s.caps == nil {
		s.caps = NewCapabilities(log, catalog, selection, cart, nav)
	}
	return s
}

// OnRestart registers the callback invoked after the failure streak limit
// is reached. The listener wires its restart here.
func (s *AssistantService) OnRestart(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restartFn = fn
}

// ActionLog returns the recorded feedback entries, newest first.
func (s *AssistantService) ActionLog() []entity.ActionLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.ActionLogEntry, len(s.actionLog))
	copy(out, s.actionLog)
	return out
}

func (s *AssistantService) recordAction(message string, success bool) {
	now := time.Now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		id = uuid.NewString()
	}

	s.mu.Lock()
	entry := entity.ActionLogEntry{
		ID:        id,
		Timestamp: now,
		Action:    message,
		Success:   success,
	}
	s.actionLog = append([]entity.ActionLogEntry{entry}, s.actionLog...)
	if len(s.actionLog) > actionLogCapacity {
		s.actionLog = s.actionLog[:actionLogCapacity]
	}
	s.mu.Unlock()

	s.bus.Publish(events.Event{
		Topic:   events.TopicLastAction,
		Message: message,
		Success: success,
		At:      entry.Timestamp,
	})
}

func (s *AssistantService) recordSuccess(message string) {
	s.mu.Lock()
	s.consecutiveErrors = 0
	s.mu.Unlock()

	s.recordAction(message, true)
}

// recordFailure bumps the failure streak and triggers a listener restart
// once the streak hits the limit. The streak resets on the next success
// or on restart.
func (s *AssistantService) recordFailure(message string) {
	s.recordAction(message, false)

	s.mu.Lock()
	s.consecutiveErrors++
	restart := s.consecutiveErrors >= maxConsecutiveErrors
	if restart {
		s.consecutiveErrors = 0
	}
	fn := s.restartFn
	s.mu.Unlock()

	if !restart {
		return
	}

	s.log.WithFields(logrus.Fields{
		"streak": maxConsecutiveErrors,
	}).Warn("Too many consecutive command failures, restarting listener")

	s.bus.Publish(events.Event{
		Topic:   events.TopicAssistantRestarted,
		Message: "Assistant restarted after repeated errors",
		At:      time.Now(),
	})
	if fn != nil {
		fn()
	}
}
