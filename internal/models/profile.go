package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Profile holds the professional data attached 1:1 to a User. The
// uniqueIndex on UserID is what enforces one profile per account.
type Profile struct {
	ID             uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	User           *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Company        string         `gorm:"size:255" json:"company"`
	Website        string         `gorm:"size:255" json:"website"`
	Location       string         `gorm:"size:255" json:"location"`
	Status         string         `gorm:"size:255;not null" json:"status"`
	Bio            string         `gorm:"type:text" json:"bio"`
	GithubUsername string         `gorm:"size:255" json:"githubusername"`
	Skills         pq.StringArray `gorm:"type:text" json:"skills"`
	AvatarURL      string         `gorm:"size:255" json:"avatar_url"`
	Youtube        string         `gorm:"size:255" json:"youtube"`
	Twitter        string         `gorm:"size:255" json:"twitter"`
	Facebook       string         `gorm:"size:255" json:"facebook"`
	Linkedin       string         `gorm:"size:255" json:"linkedin"`
	Instagram      string         `gorm:"size:255" json:"instagram"`
	Experience     []Experience   `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experience"`
	Education      []Education    `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"education"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Experience is a single work-history entry. Each entry carries its own
// id so it can be removed independently.
type Experience struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID   uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"-"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Company     string     `gorm:"size:255;not null" json:"company"`
	Location    string     `gorm:"size:255" json:"location"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `gorm:"default:false" json:"current"`
	Description string     `gorm:"type:text" json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Education mirrors Experience over schooling history.
type Education struct {
	ID           uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID    uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"-"`
	School       string     `gorm:"size:255;not null" json:"school"`
	Degree       string     `gorm:"size:255;not null" json:"degree"`
	FieldOfStudy string     `gorm:"size:255;not null" json:"fieldofstudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `gorm:"default:false" json:"current"`
	Description  string     `gorm:"type:text" json:"description"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
