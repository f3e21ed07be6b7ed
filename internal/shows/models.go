package shows

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Film defines a movie available for scheduling
type Film struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Genre       string    `gorm:"type:varchar(50)" json:"genre"`
	DurationMin int       `gorm:"not null" json:"duration_min"`
	Synopsis    string    `gorm:"type:text" json:"synopsis,omitempty"`
	PosterURL   string    `json:"poster_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Studio defines a screening room
type Studio struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Capacity int       `gorm:"not null" json:"capacity"`
}

// Showtime defines a scheduled screening of a film in a studio.
// Immutable within a checkout; Price is the unit ticket price in rupiah.
type Showtime struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FilmID    uuid.UUID `gorm:"type:uuid;index;not null" json:"film_id"`
	StudioID  uuid.UUID `gorm:"type:uuid;index;not null" json:"studio_id"`
	Price     int64     `gorm:"not null" json:"price"`
	StartsAt  time.Time `gorm:"index;not null" json:"starts_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Film   *Film   `json:"film,omitempty" gorm:"foreignKey:FilmID"`
	Studio *Studio `json:"studio,omitempty" gorm:"foreignKey:StudioID"`
}

// Seat defines a chair in a studio, identified by its label ("A1").
// Rows created lazily by the checkout engine; uniqueness of
// (studio_id, chair_number) is enforced by a database index.
type Seat struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudioID    uuid.UUID `gorm:"type:uuid;index;not null" json:"studio_id"`
	ChairNumber string    `gorm:"type:varchar(10);not null" json:"chair_number"`
	RowLine     string    `gorm:"type:varchar(2);not null" json:"row_line"`
	ColumnNo    int       `gorm:"not null" json:"column_no"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Film) TableName() string     { return "films" }
func (Studio) TableName() string   { return "studios" }
func (Showtime) TableName() string { return "showtimes" }
func (Seat) TableName() string     { return "seats" }

// ParseChairNumber splits a chair label like "A12" into its row letter and
// column number.
func ParseChairNumber(label string) (row string, column int, err error) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if len(label) < 2 {
		return "", 0, fmt.Errorf("invalid chair label %q", label)
	}

	row = label[:1]
	if row[0] < 'A' || row[0] > 'Z' {
		return "", 0, fmt.Errorf("invalid row in chair label %q", label)
	}

	column, err = strconv.Atoi(label[1:])
	if err != nil || column <= 0 {
		return "", 0, fmt.Errorf("invalid column in chair label %q", label)
	}

	return row, column, nil
}
