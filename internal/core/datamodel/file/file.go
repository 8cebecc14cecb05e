package file

import "time"

// File records are immutable once written; there is no update or delete path.
type File struct {
	FileID    string    `json:"file_id" gorm:"column:file_id;primaryKey"`
	UserID    string    `json:"user_id" gorm:"column:user_id;not null"`
	URI       string    `json:"uri" gorm:"column:uri;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (File) TableName() string {
	return "files"
}
