package event

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("event name cannot be empty")
	ErrEmptyDescription = errors.New("event description cannot be empty")
	ErrEmptyCategory    = errors.New("event category cannot be empty")
	ErrEmptyVenue       = errors.New("event venue cannot be empty")
	ErrMissingDate      = errors.New("event date is required")
	ErrFieldTooLong     = errors.New("event field is too long")
)

const (
	MaxNameLength        = 255
	MaxCategoryLength    = 100
	MaxVenueLength       = 255
	MaxDescriptionLength = 5000
)

type Event struct {
	id          uuid.UUID
	name        string
	description string
	category    string
	date        time.Time
	venue       string
	price       Price
	image       *string
	createdAt   time.Time
	updatedAt   time.Time
}

// Draft carries the required attributes of a new event.
type Draft struct {
	Name        string
	Description string
	Category    string
	Date        time.Time
	Venue       string
	Price       float64
}

// Patch carries the attributes an update supplies; nil fields stay untouched.
type Patch struct {
	Name        *string
	Description *string
	Category    *string
	Date        *time.Time
	Venue       *string
	Price       *float64
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Category == nil &&
		p.Date == nil && p.Venue == nil && p.Price == nil
}

func NewEvent(d Draft, image *string) (*Event, error) {
	e := &Event{id: uuid.New(), image: image}
	if err := e.assign(d); err != nil {
		return nil, err
	}
	return e, nil
}

func ReconstructEvent(
	id uuid.UUID,
	name, description, category string,
	date time.Time,
	venue string,
	price float64,
	image *string,
	createdAt, updatedAt time.Time,
) *Event {
	return &Event{
		id:          id,
		name:        name,
		description: description,
		category:    category,
		date:        date,
		venue:       venue,
		price:       Price{value: price},
		image:       image,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Apply overwrites only the supplied fields. The event is left unchanged on error.
func (e *Event) Apply(p Patch) error {
	d := Draft{
		Name:        e.name,
		Description: e.description,
		Category:    e.category,
		Date:        e.date,
		Venue:       e.venue,
		Price:       e.price.Value(),
	}
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Category != nil {
		d.Category = *p.Category
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.Venue != nil {
		d.Venue = *p.Venue
	}
	if p.Price != nil {
		d.Price = *p.Price
	}

	next := *e
	if err := next.assign(d); err != nil {
		return err
	}
	*e = next
	return nil
}

// ReplaceImage sets a new image reference and returns the one it replaced.
func (e *Event) ReplaceImage(ref string) *string {
	prev := e.image
	e.image = &ref
	return prev
}

// IsUpcoming reports whether the event starts at or after now.
func (e *Event) IsUpcoming(now time.Time) bool {
	return !e.date.Before(now)
}

func (e *Event) assign(d Draft) error {
	name, err := requiredText(d.Name, MaxNameLength, ErrEmptyName)
	if err != nil {
		return err
	}
	description, err := requiredText(d.Description, MaxDescriptionLength, ErrEmptyDescription)
	if err != nil {
		return err
	}
	category, err := requiredText(d.Category, MaxCategoryLength, ErrEmptyCategory)
	if err != nil {
		return err
	}
	venue, err := requiredText(d.Venue, MaxVenueLength, ErrEmptyVenue)
	if err != nil {
		return err
	}
	if d.Date.IsZero() {
		return ErrMissingDate
	}
	price, err := NewPrice(d.Price)
	if err != nil {
		return err
	}

	e.name = name
	e.description = description
	e.category = category
	e.venue = venue
	e.date = d.Date.UTC()
	e.price = price
	return nil
}

func requiredText(s string, maxLen int, emptyErr error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", emptyErr
	}
	if utf8.RuneCountInString(s) > maxLen {
		return "", ErrFieldTooLong
	}
	return s, nil
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Name() string         { return e.name }
func (e *Event) Description() string  { return e.description }
func (e *Event) Category() string     { return e.category }
func (e *Event) Date() time.Time      { return e.date }
func (e *Event) Venue() string        { return e.venue }
func (e *Event) Price() Price         { return e.price }
func (e *Event) Image() *string       { return e.image }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }
