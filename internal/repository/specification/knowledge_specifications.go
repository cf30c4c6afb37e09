package specification

import (
	"strings"

	"gorm.io/gorm"
)

// CareerAliasPattern builds the LIKE pattern for career metadata lookups.
// The column side is LOWER()'d, so the pattern must be lowercased too or
// mixed-case display names ("Software Developer") would never match.
func CareerAliasPattern(alias string) string {
	return "%" + strings.ToLower(alias) + "%"
}

// ByCareerMetadata matches the career_name metadata field case-insensitively.
type ByCareerMetadata struct {
	Career string
}

func (s ByCareerMetadata) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(metadata->>'career_name') LIKE ?", CareerAliasPattern(s.Career))
}

// MissingEmbedding selects chunks whose vector has not been computed yet.
type MissingEmbedding struct{}

func (s MissingEmbedding) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("embedding IS NULL")
}

// ByName exact-matches a name column.
type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}
