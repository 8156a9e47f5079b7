package service

import (
	"context"
	"encoding/json"
	"time"

	"lead-generator-be/internal/dto"
	"lead-generator-be/internal/entity"
	"lead-generator-be/internal/mapper"
	"lead-generator-be/internal/pkg/logger"
	"lead-generator-be/internal/repository/contract"
	"lead-generator-be/pkg/events"

	"github.com/google/uuid"
)

type notFoundError string

func (e notFoundError) Error() string  { return string(e) }
func (e notFoundError) NotFound() bool { return true }

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound error = notFoundError("session not found")

// DashboardBroadcaster pushes a rendered dashboard to live listeners of a session.
type DashboardBroadcaster interface {
	BroadcastToSession(sessionId uuid.UUID, payload []byte)
}

type ISessionService interface {
	Create(ctx context.Context) (*dto.SessionResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error)
	UpdateSelection(ctx context.Context, id uuid.UUID, req dto.SelectionRequest) (*dto.DashboardResponse, error)
	Dashboard(ctx context.Context, id uuid.UUID) (*dto.DashboardResponse, error)
	Table(ctx context.Context, id uuid.UUID) (*dto.LeadTableResponse, error)
	Export(ctx context.Context, id uuid.UUID) (*dto.ExportResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionService struct {
	repo        contract.SessionRepository
	leadService ILeadService
	broadcaster DashboardBroadcaster
	publisher   IPublisherService
	logger      logger.ILogger
}

func NewSessionService(
	repo contract.SessionRepository,
	leadService ILeadService,
	broadcaster DashboardBroadcaster,
	publisher IPublisherService,
	logger logger.ILogger,
) ISessionService {
	return &sessionService{
		repo:        repo,
		leadService: leadService,
		broadcaster: broadcaster,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *sessionService) Create(ctx context.Context) (*dto.SessionResponse, error) {
	now := time.Now()
	session := &entity.Session{
		Id:        uuid.New(),
		Selection: s.leadService.DefaultSelection(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.BaseEvent{Type: events.TypeSessionCreated, SessionId: session.Id.String()})
	s.logger.Info("SessionService", "Session created", map[string]interface{}{"session_id": session.Id})
	return mapper.ToSessionResponse(session), nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*dto.SessionResponse, error) {
	session, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ToSessionResponse(session), nil
}

func (s *sessionService) UpdateSelection(ctx context.Context, id uuid.UUID, req dto.SelectionRequest) (*dto.DashboardResponse, error) {
	session, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Selection = mapper.ApplySelectionRequest(session.Selection, req)
	session.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	s.publisher.Publish(ctx, events.BaseEvent{Type: events.TypeSelectionChanged, SessionId: id.String()})

	res := s.leadService.Dashboard(ctx, session.Selection)
	s.broadcast(id, res)
	return res, nil
}

func (s *sessionService) Dashboard(ctx context.Context, id uuid.UUID) (*dto.DashboardResponse, error) {
	session, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.leadService.Dashboard(ctx, session.Selection), nil
}

func (s *sessionService) Table(ctx context.Context, id uuid.UUID) (*dto.LeadTableResponse, error) {
	session, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.leadService.Table(ctx, session.Selection), nil
}

func (s *sessionService) Export(ctx context.Context, id uuid.UUID) (*dto.ExportResult, error) {
	session, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.leadService.Export(ctx, session.Selection)
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *sessionService) find(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	session, found, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *sessionService) broadcast(id uuid.UUID, res *dto.DashboardResponse) {
	if s.broadcaster == nil {
		return
	}
	payload, err := json.Marshal(dto.NewDashboardMessage(res))
	if err != nil {
		s.logger.Error("SessionService", "Failed to encode dashboard", map[string]interface{}{"session_id": id, "error": err.Error()})
		return
	}
	s.broadcaster.BroadcastToSession(id, payload)
}
