package repository

import (
	"context"
	"errors"
	"time"

	"solarsite/internal/domain"

	"gorm.io/gorm"
)

var ErrLeadNotFound = errors.New("lead not found")

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:120;not null"`
	Phone     string    `gorm:"column:phone;size:50;not null"`
	Email     *string   `gorm:"column:email;size:160"`
	City      *string   `gorm:"column:city;size:120"`
	Message   *string   `gorm:"column:message;type:text"`
	Source    string    `gorm:"column:source;size:32"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) *domain.Lead {
	return &domain.Lead{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		City:      m.City,
		Message:   m.Message,
		Source:    m.Source,
		CreatedAt: m.CreatedAt,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	return leadModel{
		ID:        l.ID,
		Name:      l.Name,
		Phone:     l.Phone,
		Email:     l.Email,
		City:      l.City,
		Message:   l.Message,
		Source:    l.Source,
		CreatedAt: l.CreatedAt,
	}
}

// Create inserts the lead and fills in the store-assigned ID and timestamp.
func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}

	l.ID = m.ID
	l.CreatedAt = m.CreatedAt
	return nil
}

// GetByID returns the lead or ErrLeadNotFound.
func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*domain.Lead, error) {
	var m leadModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return toDomainLead(m), nil
}

// Migrate creates the leads table if it does not exist yet.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&leadModel{})
}
