package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser converts absolute or relative date strings to time.Time in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserInLocation creates a parser for an already loaded location.
func NewParserInLocation(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's time zone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a date string to an absolute time.Time.
// Supported: RFC 3339, "YYYY-MM-DD[ T]HH:MM[:SS]", "YYYY-MM-DD" (start of day),
// "today", "tomorrow", "yesterday", "in N days|weeks|months", "next <weekday>".
// baseTime is the reference point for relative forms (usually time.Now()).
func (p *Parser) Parse(value string, baseTime time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrUnrecognized
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range absoluteLayouts {
		if t, err := time.ParseInLocation(layout, value, p.location); err == nil {
			return t, nil
		}
	}
	if t, err := time.ParseInLocation(DateLayout, value, p.location); err == nil {
		return t, nil
	}

	return p.parseRelative(strings.ToLower(value), baseTime)
}

func (p *Parser) parseRelative(relative string, baseTime time.Time) (time.Time, error) {
	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.In(p.location).AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.In(p.location).AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("%w: invalid duration format %q", ErrUnrecognized, relative)
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
	}
	base := baseTime.In(p.location)

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown weekday %q", ErrUnrecognized, dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// StartOfDay returns midnight at the start of t's day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// DayBounds returns [start, end) of t's calendar day in the parser's timezone.
// The end is the next midnight, so DST days are 23 or 25 hours long.
func (p *Parser) DayBounds(t time.Time) (time.Time, time.Time) {
	start := p.StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}
