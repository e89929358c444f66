package models

import "time"

type Technique struct {
	ID             int64      `db:"id" json:"id"`
	UserID         int64      `db:"user_id" json:"user_id"`
	Name           string     `db:"name" json:"name"`
	Group          string     `db:"group" json:"group"`
	SubGroup       string     `db:"sub_group" json:"subGroup"`
	Family         string     `db:"family" json:"family"`
	KyuGoKyoNoWaza string     `db:"kyu_go_kyo_no_waza" json:"kyuGoKyoNoWaza"`
	GoKyoNoWaza    string     `db:"go_kyo_no_waza" json:"goKyoNoWaza"`
	Description    string     `db:"description" json:"description"`
	Image          string     `db:"image" json:"image"`
	YoutubeID      string     `db:"youtube_id" json:"youtubeId"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt      *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
}

// Trashed reports whether the technique is soft deleted.
func (t *Technique) Trashed() bool {
	return t.DeletedAt != nil
}
