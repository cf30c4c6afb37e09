package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Bursary struct {
	Id               uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name             string                      `gorm:"type:varchar(255);not null;uniqueIndex"`
	Provider         string                      `gorm:"type:varchar(255)"`
	CitizenshipReq   string                      `gorm:"type:varchar(8)"`
	MinAPS           int                         `gorm:"default:0"`
	RequiredSubjects datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IncomeCeiling    int                         `gorm:"default:0"`
	Deadline         time.Time                   `gorm:"index"`
	Fields           datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Amount           string                      `gorm:"type:varchar(255)"`
	CreatedAt        time.Time                   `gorm:"autoCreateTime"`
}

func (Bursary) TableName() string {
	return "bursaries"
}
