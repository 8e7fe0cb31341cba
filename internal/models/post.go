package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a piece of user content. Name and Avatar are snapshots of the
// author at creation time; they are not re-synced if the author later
// changes either.
type Post struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `gorm:"size:255" json:"name"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Likes     []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	Comments  []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Like records one account liking one post. The composite unique index
// is what guarantees at most one like per account per post.
type Like struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	PostID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_post_user_like" json:"-"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_post_user_like" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Comment is immutable once created except for deletion. Name and Avatar
// snapshot the commenter the same way Post snapshots its author.
type Comment struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	PostID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"-"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `gorm:"size:255" json:"name"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
