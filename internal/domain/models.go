package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the transient per-user state of one agreement form.
type Session struct {
	ID            uuid.UUID        `json:"id"`
	CompanyName   string           `json:"company_name"`
	Address       string           `json:"address"`
	AddressSource AddressSource    `json:"address_source"`
	State         FlowState        `json:"state"`
	Ready         bool             `json:"ready"`
	LastGenerated *GeneratedRecord `json:"last_generated,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewSession returns a session in the initial name entry state.
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		State:     FlowStateNameEntry,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a copy that shares no mutable state with s.
func (s *Session) Clone() *Session {
	c := *s
	if s.LastGenerated != nil {
		rec := *s.LastGenerated
		c.LastGenerated = &rec
	}
	return &c
}

// GeneratedRecord summarises the most recent download produced by a session.
type GeneratedRecord struct {
	CompanyName string    `json:"company"`
	FileName    string    `json:"filename"`
	GeneratedAt time.Time `json:"time"`
}

// GeneratedDocument is a filled agreement ready to be streamed to the client.
type GeneratedDocument struct {
	FileName    string
	ContentType string
	Data        []byte
	CreatedAt   time.Time
}

// TemplateStatus describes the loaded agreement template.
type TemplateStatus struct {
	Source            string          `json:"source"`
	SizeBytes         int64           `json:"size_bytes"`
	SizeKB            float64         `json:"size_kb"`
	ModifiedAt        *time.Time      `json:"modified_at,omitempty"`
	Placeholders      map[string]bool `json:"placeholders"`
	PlaceholdersReady bool            `json:"placeholders_ready"`
}

// PlaceholderMatch is one paragraph that contains a searched text.
type PlaceholderMatch struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// PlaceholderReport is the result of locating a text inside the template.
type PlaceholderReport struct {
	Target  string             `json:"target"`
	Found   bool               `json:"found"`
	Matches []PlaceholderMatch `json:"matches"`
	Preview []string           `json:"preview,omitempty"`
}

// CompanyEntry is one known company from the local directory.
type CompanyEntry struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// SessionPreview is the summary shown next to the form.
type SessionPreview struct {
	CompanyName   string `json:"company_name"`
	AddressLength int    `json:"address_length"`
}

// SessionView is a session together with its derived preview.
type SessionView struct {
	*Session
	Preview SessionPreview `json:"preview"`
}
