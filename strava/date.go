package strava

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format for dates sent to and read from the API.
const DateLayout = "2006-01-02T15:04:05-07:00"

// FormatDate renders t in DateLayout. Sub-second precision is dropped.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a date in DateLayout. The RFC3339 "Z" form the API uses
// for UTC timestamps is accepted too.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Time is a timestamp encoded with the shared date codec.
type Time struct {
	time.Time
}

// NewTime wraps t.
func NewTime(t time.Time) *Time {
	return &Time{Time: t}
}

// MarshalJSON implements json.Marshaler
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(FormatDate(t.Time))
}

// UnmarshalJSON implements json.Unmarshaler
func (t *Time) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// LatLng is a [latitude, longitude] pair.
type LatLng [2]float64

// Lat returns the latitude.
func (l LatLng) Lat() float64 { return l[0] }

// Lng returns the longitude.
func (l LatLng) Lng() float64 { return l[1] }

// UnmarshalJSON implements json.Unmarshaler
func (l *LatLng) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("latlng must have 2 elements, got %d", len(pair))
	}
	*l = LatLng{pair[0], pair[1]}
	return nil
}

// Coordinate is an optional position. The API sends an empty array for
// activities recorded without GPS; that decodes to a Coordinate without a
// point and encodes back to [].
type Coordinate struct {
	point LatLng
	valid bool
}

// NewCoordinate returns a Coordinate holding the given point.
func NewCoordinate(lat, lng float64) *Coordinate {
	return &Coordinate{point: LatLng{lat, lng}, valid: true}
}

// Point returns the position, if there is one. It is safe on a nil Coordinate.
func (c *Coordinate) Point() (LatLng, bool) {
	if c == nil || !c.valid {
		return LatLng{}, false
	}
	return c.point, true
}

// MarshalJSON implements json.Marshaler
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.valid {
		return []byte("[]"), nil
	}
	return json.Marshal([2]float64(c.point))
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	switch len(pair) {
	case 0:
		*c = Coordinate{}
	case 2:
		*c = Coordinate{point: LatLng{pair[0], pair[1]}, valid: true}
	default:
		return fmt.Errorf("latlng must have 0 or 2 elements, got %d", len(pair))
	}
	return nil
}
