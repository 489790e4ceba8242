package models

import (
	"database/sql"
	"time"
)

type Member struct {
	ID        uint64         `json:"id" gorm:"primaryKey"`
	UID       string         `json:"uid"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Phone     sql.NullString `json:"phone"`
	Timezone  string         `json:"timezone" gorm:"default:America/Sao_Paulo"`
	Role      string         `json:"role"`
	State     string         `json:"state"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Location resolves the member's IANA timezone. Every date-boundary
// comparison in the aggregation package runs in this location.
func (m *Member) Location() *time.Location {
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
