package db

import (
	"time"

	"gorm.io/datatypes"
)

// PageRevision is an append-only snapshot of a page's content. Publishing a
// revision copies its snapshot onto the page row.
type PageRevision struct {
	ID        uint `gorm:"primaryKey"`
	PageID    uint `gorm:"index;not null"`
	Snapshot  datatypes.JSONType[PageSnapshot]
	CreatedAt time.Time
}
