package model

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeModule struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(128);not null;uniqueIndex"`
	Priority  int       `gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (KnowledgeModule) TableName() string {
	return "knowledge_modules"
}
