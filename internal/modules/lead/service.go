package lead

import (
	"context"
	"log"
	"regexp"
	"strings"
	"unicode/utf8"

	"solarsite/internal/domain"
	"solarsite/internal/monitoring"
	"solarsite/internal/notify"
)

var (
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe = regexp.MustCompile(`^[0-9+().\-\s]{8,20}$`)
)

const sourceLimit = 32

// Repository is the append-only lead store.
type Repository interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id int64) (*domain.Lead, error)
}

// Notifier dispatches a stored lead to the alert channels.
type Notifier interface {
	Dispatch(ctx context.Context, s notify.LeadSummary) map[string]notify.Outcome
}

type Service struct {
	repo          Repository
	notifier      Notifier
	defaultSource string
}

func NewService(repo Repository, notifier Notifier, defaultSource string) *Service {
	return &Service{
		repo:          repo,
		notifier:      notifier,
		defaultSource: defaultSource,
	}
}

// Submit validates the submission, stores the lead, and fires best-effort
// alerts. The lead must be durably stored before success is reported;
// alert failures never fail the submission.
func (s *Service) Submit(ctx context.Context, sub Submission) (*domain.Lead, error) {
	l, err := s.validate(sub)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	monitoring.LeadsStored.Inc()

	// Read back by ID so the alert payload reflects exactly what was stored.
	stored, err := s.repo.GetByID(ctx, l.ID)
	if err != nil {
		log.Printf("warning: lead #%d read-back failed, notifying from input: %v", l.ID, err)
		stored = l
	}

	if s.notifier != nil {
		s.notifier.Dispatch(ctx, notify.Summarize(stored))
	}

	return l, nil
}

// Get returns a stored lead by ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

// validate applies the submission rules in order, first failure wins:
// honeypot, name, phone, email (only if present), consent.
func (s *Service) validate(sub Submission) (*domain.Lead, error) {
	if strings.TrimSpace(sub.Website) != "" {
		return nil, ErrSpam
	}

	name := strings.TrimSpace(sub.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, ErrInvalidName
	}

	phone := strings.TrimSpace(sub.Phone)
	if !phoneRe.MatchString(phone) {
		return nil, ErrInvalidPhone
	}

	email := strings.TrimSpace(sub.Email)
	if email != "" && !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	if !sub.Consent {
		return nil, ErrConsentRequired
	}

	source := strings.TrimSpace(sub.Source)
	if source == "" {
		source = s.defaultSource
	}
	if utf8.RuneCountInString(source) > sourceLimit {
		source = string([]rune(source)[:sourceLimit])
	}

	return &domain.Lead{
		Name:    name,
		Phone:   phone,
		Email:   optional(email),
		City:    optional(strings.TrimSpace(sub.City)),
		Message: optional(strings.TrimSpace(sub.Message)),
		Source:  source,
	}, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
