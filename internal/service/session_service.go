package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ndagen/internal/config"
	"ndagen/internal/domain"
	"ndagen/internal/filename"
	"ndagen/internal/port"
)

const previewNameRunes = 20

// SessionService drives the agreement form flow:
// name_entry -> address_pending -> address_confirmed -> ready.
type SessionService interface {
	Create(ctx context.Context) (*domain.SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SessionView, error)
	SetCompanyName(ctx context.Context, id uuid.UUID, name string) (*domain.SessionView, error)
	SetAddress(ctx context.Context, id uuid.UUID, address string) (*domain.SessionView, error)
	Generate(ctx context.Context, id uuid.UUID) (*domain.GeneratedDocument, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type sessionService struct {
	repo      port.SessionRepository
	templates TemplateService
	resolver  port.AddressResolver
	mode      domain.AddressMode
	output    config.OutputConfig
	locks     *keyedMutex
	now       func() time.Time
	logger    *zap.Logger
}

// NewSessionService creates a new SessionService implementation. resolver may
// be nil, in which case every session falls through to manual entry.
func NewSessionService(
	repo port.SessionRepository,
	templates TemplateService,
	resolver port.AddressResolver,
	cfg *config.Config,
	logger *zap.Logger,
) SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &sessionService{
		repo:      repo,
		templates: templates,
		resolver:  resolver,
		mode:      cfg.Flow.AddressMode,
		output:    cfg.Output,
		locks:     newKeyedMutex(),
		now:       time.Now,
		logger:    logger.Named("session"),
	}
}

func (s *sessionService) Create(ctx context.Context) (*domain.SessionView, error) {
	session := domain.NewSession(s.now())
	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return newView(session), nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*domain.SessionView, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return newView(session), nil
}

func (s *sessionService) SetCompanyName(ctx context.Context, id uuid.UUID, name string) (*domain.SessionView, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	session.CompanyName = name
	session.Address = ""
	session.AddressSource = domain.AddressSourceNone
	session.Ready = false
	session.UpdatedAt = s.now()

	if name == "" {
		session.State = domain.FlowStateNameEntry
		if err := s.repo.Update(ctx, session); err != nil {
			return nil, err
		}
		return nil, domain.ErrCompanyNameRequired
	}

	session.State = domain.FlowStateAddressPending
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}

	if s.mode != domain.AddressModeManual && s.resolver != nil {
		if addr, ok := s.resolver.Resolve(ctx, name); ok {
			session.Address = strings.TrimSpace(addr)
		}
	}

	session.State = domain.FlowStateAddressConfirmed
	if session.Address != "" {
		session.AddressSource = domain.AddressSourceLookup
		session.State = domain.FlowStateReady
		session.Ready = true
	} else {
		session.AddressSource = domain.AddressSourceManual
	}
	session.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("company name set",
		zap.String("session_id", id.String()),
		zap.String("company", name),
		zap.String("address_source", string(session.AddressSource)))
	return newView(session), nil
}

func (s *sessionService) SetAddress(ctx context.Context, id uuid.UUID, address string) (*domain.SessionView, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.CompanyName == "" {
		return nil, domain.ErrCompanyNameRequired
	}

	address = strings.TrimSpace(address)
	if address != session.Address {
		session.AddressSource = domain.AddressSourceManual
	}
	session.Address = address
	session.Ready = address != ""
	if session.Ready {
		session.State = domain.FlowStateReady
	} else {
		session.State = domain.FlowStateAddressConfirmed
	}
	session.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}
	return newView(session), nil
}

func (s *sessionService) Generate(ctx context.Context, id uuid.UUID) (*domain.GeneratedDocument, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !session.Ready || session.State != domain.FlowStateReady {
		return nil, domain.ErrSessionNotReady
	}

	data, err := s.templates.Fill(session.CompanyName, session.Address)
	if err != nil {
		s.logger.Error("filling template failed",
			zap.String("session_id", id.String()),
			zap.String("company", session.CompanyName),
			zap.Error(err))
		return nil, err
	}

	now := s.now()
	doc := &domain.GeneratedDocument{
		FileName:    filename.Build(s.output.Prefix, session.CompanyName, s.output.Separator, s.output.MaxNameLength, now),
		ContentType: domain.DocxContentType,
		Data:        data,
		CreatedAt:   now,
	}

	session.LastGenerated = &domain.GeneratedRecord{
		CompanyName: session.CompanyName,
		FileName:    doc.FileName,
		GeneratedAt: now,
	}
	session.UpdatedAt = now
	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("agreement generated",
		zap.String("session_id", id.String()),
		zap.String("filename", doc.FileName),
		zap.Int("size_bytes", len(data)))
	return doc, nil
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	unlock := s.locks.Lock(id)
	defer unlock()
	return s.repo.Delete(ctx, id)
}

func newView(session *domain.Session) *domain.SessionView {
	name := []rune(session.CompanyName)
	preview := session.CompanyName
	if len(name) > previewNameRunes {
		preview = string(name[:previewNameRunes]) + "..."
	}
	return &domain.SessionView{
		Session: session,
		Preview: domain.SessionPreview{
			CompanyName:   preview,
			AddressLength: len([]rune(session.Address)),
		},
	}
}
