package domain

import (
	"time"
)

// RecordsTable is the table every record write notifies.
const RecordsTable = "maintenance_records"

// Record is a single equipment maintenance entry.
// ID 0 means the record has not been persisted yet.
type Record struct {
	ID            int64
	Title         string
	Content       string
	EquipmentName string
	// ImagePaths is the persisted comma-joined form. See SplitImagePaths.
	ImagePaths string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsNew reports whether the record has never been saved.
func (r Record) IsNew() bool {
	return r.ID == 0
}

// Images returns the ordered image path list.
func (r Record) Images() []string {
	return SplitImagePaths(r.ImagePaths)
}

// NewRecord builds an unsaved record stamped with now for both timestamps.
func NewRecord(title, content, equipmentName string, images []string, now time.Time) Record {
	now = TruncateMillis(now)
	return Record{
		Title:         title,
		Content:       content,
		EquipmentName: equipmentName,
		ImagePaths:    JoinImagePaths(images),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// TruncateMillis drops sub-millisecond precision, matching what the store keeps.
func TruncateMillis(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.UnixMilli(t.UnixMilli())
}

// ToMillis converts a timestamp into its stored form.
func ToMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

// FromMillis converts a stored timestamp back. 0 maps to the zero time.
func FromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
