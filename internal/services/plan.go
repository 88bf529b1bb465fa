package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
)

var (
	// ErrPlanNotFound covers both a missing plan and a plan owned by
	// someone else; callers cannot tell the two apart.
	ErrPlanNotFound = errors.New("plan not found or no access")
	// ErrPastStartTime is returned when a plan would start at or before
	// the current instant.
	ErrPastStartTime = errors.New("start time must be in the future")
	// ErrInvalidPlanInput is returned for structurally invalid drafts.
	ErrInvalidPlanInput = errors.New("invalid plan input")
)

// PlanReader defines plan read operations used by the service.
type PlanReader interface {
	GetByIDAndUser(ctx context.Context, planID, userID uuid.UUID) (*models.PlanDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.PlanDB, error)
}

// PlanWriter defines plan write operations used by the service.
type PlanWriter interface {
	Save(ctx context.Context, plan models.PlanDB) error
	Delete(ctx context.Context, planID, userID uuid.UUID) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PlanService enforces ownership and temporal-validity rules around plan
// storage and publishes lifecycle events.
type PlanService struct {
	reader      PlanReader
	writer      PlanWriter
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewPlanService creates a new PlanService. The clock defaults to
// time.Now and is injectable for tests.
func NewPlanService(reader PlanReader, writer PlanWriter, kafkaWriter KafkaWriter, now func() time.Time) *PlanService {
	if now == nil {
		now = time.Now
	}
	return &PlanService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		now:         now,
	}
}

// publishEvent publishes a plan lifecycle event to Kafka. Event delivery
// is best effort and never fails the originating request.
func (s *PlanService) publishEvent(ctx context.Context, planID, userID uuid.UUID, operation string) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.PlanEvent{
		EventID:   uuid.NewString(),
		PlanID:    planID.String(),
		UserID:    userID.String(),
		Operation: operation,
		Timestamp: s.now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal plan event", "plan_id", event.PlanID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PlanID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish plan event", "plan_id", event.PlanID, "operation", operation, "error", err)
	} else {
		logger.Log.Infow("plan event published", "plan_id", event.PlanID, "operation", operation)
	}
}

// normalizeStartTime brings every start time into UTC so the temporal
// comparison is zone-independent.
func normalizeStartTime(t time.Time) time.Time {
	return t.UTC()
}

// validateStartTime requires the start to be strictly later than now.
func (s *PlanService) validateStartTime(t time.Time) error {
	if !normalizeStartTime(t).After(s.now().UTC()) {
		return ErrPastStartTime
	}
	return nil
}

// Get returns the plan under the caller's ownership, or ErrPlanNotFound.
func (s *PlanService) Get(ctx context.Context, planID, userID uuid.UUID) (*models.PlanDB, error) {
	plan, err := s.reader.GetByIDAndUser(ctx, planID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get plan", "plan_id", planID, "error", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return plan, nil
}

// List returns the caller's plans in storage order.
func (s *PlanService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.PlanDB, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	plans, err := s.reader.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		logger.Log.Errorw("failed to list plans", "user_id", userID, "error", err)
		return nil, err
	}
	return plans, nil
}

// Create validates the draft, assigns identifier and owner, and persists
// the plan. The owner always comes from the authenticated caller.
func (s *PlanService) Create(ctx context.Context, userID uuid.UUID, draft models.PlanCreate) (*models.PlanDB, error) {
	if draft.Name == "" || draft.TilesetURL == "" {
		return nil, ErrInvalidPlanInput
	}
	if err := s.validateStartTime(draft.StartTime); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	plan := models.PlanDB{
		PlanID:      uuid.New(),
		Name:        draft.Name,
		Description: draft.Description,
		StartTime:   normalizeStartTime(draft.StartTime),
		Camera:      draft.Camera,
		TilesetURL:  draft.TilesetURL,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.writer.Save(ctx, plan); err != nil {
		logger.Log.Errorw("failed to save plan", "plan_id", plan.PlanID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, plan.PlanID, userID, "created")
	return &plan, nil
}

// Update merges the patch over the stored record under the caller's
// ownership. A patched start time is re-validated; the merge cannot touch
// ownership because the patch type carries no user id. All-or-nothing: a
// rejected start time leaves the record unchanged.
func (s *PlanService) Update(ctx context.Context, planID, userID uuid.UUID, patch models.PlanPatch) (*models.PlanDB, error) {
	stored, err := s.reader.GetByIDAndUser(ctx, planID, userID)
	if err != nil {
		logger.Log.Errorw("failed to get plan for update", "plan_id", planID, "error", err)
		return nil, err
	}
	if stored == nil {
		return nil, ErrPlanNotFound
	}

	if patch.StartTime != nil {
		if err := s.validateStartTime(*patch.StartTime); err != nil {
			return nil, err
		}
		normalized := normalizeStartTime(*patch.StartTime)
		patch.StartTime = &normalized
	}

	updated := patch.Apply(*stored)
	updated.UpdatedAt = s.now().UTC()

	if err := s.writer.Save(ctx, updated); err != nil {
		logger.Log.Errorw("failed to save plan", "plan_id", planID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, planID, userID, "updated")
	return &updated, nil
}

// Delete removes the plan under the caller's ownership. Absence is a
// normal outcome, reported as false.
func (s *PlanService) Delete(ctx context.Context, planID, userID uuid.UUID) (bool, error) {
	deleted, err := s.writer.Delete(ctx, planID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete plan", "plan_id", planID, "error", err)
		return false, err
	}

	if deleted {
		s.publishEvent(ctx, planID, userID, "deleted")
	}
	return deleted, nil
}

// IsExpired reports whether the plan's start time has already passed.
// Pure predicate; callers use it to flag stale plans without deleting them.
func (s *PlanService) IsExpired(plan *models.PlanDB) bool {
	return !normalizeStartTime(plan.StartTime).After(s.now().UTC())
}
