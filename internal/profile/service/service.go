package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"profiles/internal/profile/domain/shared"
	"profiles/internal/profile/metrics"
	"profiles/internal/profile/models"
	"profiles/internal/profile/ports"
	id "profiles/pkg/domain"
	dErrors "profiles/pkg/domain-errors"
	"profiles/pkg/platform/sentinel"
	"profiles/pkg/requestcontext"
)

const tracerName = "profiles/internal/profile/service"

// Service runs the profile use cases against a Repository.
type Service struct {
	repo      ports.Repository
	parser    *shared.Parser
	publisher ports.EventPublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithPublisher enables ProfileCreated events after a successful create.
func WithPublisher(p ports.EventPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithParser replaces the value-object parser, e.g. to share a Rules set
// compiled at startup.
func WithParser(p *shared.Parser) Option {
	return func(s *Service) {
		s.parser = p
	}
}

// New constructs a Service.
func New(repo ports.Repository, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, errors.New("profile repository is required")
	}
	s := &Service{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	if s.parser == nil {
		s.parser = shared.NewParser(nil)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s, nil
}

// CreateProfile registers a new profile holding only an ID and an email.
//
// The request is normalized and validated, the ID and email are parsed into
// value objects, and the repository is asked whether the ID is taken. A taken
// ID yields AlreadyExists; a failed lookup yields InvalidData and nothing is
// written. Otherwise exactly one write is issued. Every error returned is a
// *models.ProfileError.
func (s *Service) CreateProfile(ctx context.Context, req *models.CreateProfileRequest) error {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "profile.CreateProfile")
	defer span.End()

	profile, err := s.createProfile(ctx, req)
	s.observeCreate(start)
	if err != nil {
		kind := models.KindOf(err)
		span.SetAttributes(attribute.String("profile.error_kind", kind.String()))
		span.RecordError(err)
		span.SetStatus(codes.Error, kind.String())
		s.incrementFailure(kind)
		s.logWarn(ctx, "profile create rejected", "error", err, "kind", kind.String())
		return err
	}

	span.SetAttributes(attribute.String("profile.id", profile.ID().String()))
	s.incrementCreated()
	s.logEvent(ctx, "profile_created", "profile_id", profile.ID().String())
	s.publishCreated(ctx, profile)
	return nil
}

// createProfile works on a copy of req; the caller's request is never modified.
func (s *Service) createProfile(ctx context.Context, req *models.CreateProfileRequest) (*models.Profile, error) {
	if req != nil {
		normalized := *req
		req = &normalized
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, models.NewInvalidData(err)
	}

	profileID, err := id.ParseProfileID(req.ID)
	if err != nil {
		return nil, models.NewInvalidData(err)
	}
	email, err := s.parser.Email(req.Email)
	if err != nil {
		return nil, models.NewInvalidData(err)
	}

	existing, err := s.repo.GetProfileByID(ctx, profileID)
	if err != nil {
		return nil, models.NewInvalidData(err)
	}
	if existing != nil {
		return nil, models.NewAlreadyExists(req.ID)
	}

	profile := models.NewProfile(profileID, email)
	if err := s.persist(ctx, profile); err != nil {
		if errors.Is(err, sentinel.ErrConflict) || dErrors.HasCode(err, dErrors.CodeConflict) {
			return nil, models.NewAlreadyExists(req.ID)
		}
		return nil, models.NewInvalidData(err)
	}
	return profile, nil
}

// persist prefers an atomic insert when the repository offers one, closing
// the window between the lookup and the write.
func (s *Service) persist(ctx context.Context, p *models.Profile) error {
	if cs, ok := s.repo.(ports.ConditionalSaver); ok {
		return cs.CreateIfAbsent(ctx, p)
	}
	return s.repo.Save(ctx, p)
}

// publishCreated is best effort: a delivery failure is logged and counted
// but the profile is already stored.
func (s *Service) publishCreated(ctx context.Context, p *models.Profile) {
	if s.publisher == nil {
		return
	}
	event := ports.NewProfileCreated(p, requestcontext.Now(ctx))
	if err := s.publisher.PublishProfileCreated(ctx, event); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementEventPublishFailures()
		}
		s.logError(ctx, "failed to publish profile created event", "error", err, "profile_id", event.ProfileID)
	}
}

func (s *Service) logEvent(ctx context.Context, event string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)
}

func (s *Service) logWarn(ctx context.Context, msg string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	s.logger.WarnContext(ctx, msg, attributes...)
}

func (s *Service) logError(ctx context.Context, msg string, attributes ...any) {
	if s.logger == nil {
		return
	}
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	s.logger.ErrorContext(ctx, msg, attributes...)
}

func (s *Service) observeCreate(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveCreateProfile(start)
	}
}

func (s *Service) incrementCreated() {
	if s.metrics != nil {
		s.metrics.IncrementProfilesCreated()
	}
}

func (s *Service) incrementFailure(kind models.ProfileErrorKind) {
	if s.metrics != nil {
		s.metrics.IncrementCreateFailure(kind.String())
	}
}
