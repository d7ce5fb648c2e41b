package domain

import "time"

// BestiaryModel is the GORM model for the bestiaries table. The table is
// owned by the catalog service; this service only reads it.
type BestiaryModel struct {
	ID            int64     `gorm:"primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Author        int64     `gorm:"index;not null"`
	DateCreation  time.Time `gorm:"not null"`
	LatestUpdate  time.Time `gorm:"not null"`
	IsStar        bool      `gorm:"default:false"`
	Rang          float64   `gorm:"default:0"`
	CountViews    int64     `gorm:"default:0"`
	AverageRating float64   `gorm:"default:0"`
	Description   string    `gorm:"type:text"`
	SrcIcon       string    `gorm:"type:varchar(512)"`
	IsPublished   bool      `gorm:"index;default:false"`
	IsDeleted     bool      `gorm:"index;default:false"`
}

// TableName specifies the table name for BestiaryModel.
func (BestiaryModel) TableName() string {
	return "bestiaries"
}

// UserModel is the subset of the users table needed for the author join.
type UserModel struct {
	ID       int64  `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(50);not null"`
}

// TableName specifies the table name for UserModel.
func (UserModel) TableName() string {
	return "users"
}

// BestiaryRow is one row of the bestiaries/users join.
type BestiaryRow struct {
	BestiaryModel
	Username string
}

// ToDomain converts a joined row to a domain Bestiary.
func (r *BestiaryRow) ToDomain() Bestiary {
	return Bestiary{
		ID:            r.ID,
		Name:          r.Name,
		AuthorID:      r.Author,
		AuthorName:    r.Username,
		DateCreation:  r.DateCreation,
		LatestUpdate:  r.LatestUpdate,
		IsStar:        r.IsStar,
		Rang:          r.Rang,
		CountViews:    r.CountViews,
		AverageRating: r.AverageRating,
		Description:   r.Description,
		SrcIcon:       r.SrcIcon,
	}
}
