package scope

import "gorm.io/gorm"

// OrderByCreatedAsc keeps seeded reference data in authoring order.
func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// OrderByDeadlineAsc sorts funding programs soonest-closing first.
func OrderByDeadlineAsc(db *gorm.DB) *gorm.DB {
	return db.Order("deadline ASC")
}
