// Package binjson reads and writes bin collections in the dashboard's JSON
// exchange format: an array of {id, lat, lng, level, lastUpdate} objects.
package binjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"waste-route-service/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Bin is the wire shape of a single bin record.
// Pointer fields distinguish a missing value from a legitimate zero.
type Bin struct {
	ID         string   `json:"id" validate:"required"`
	Lat        *float64 `json:"lat" validate:"required,latitude"`
	Lng        *float64 `json:"lng" validate:"required,longitude"`
	Level      *int     `json:"level" validate:"required,min=0,max=100"`
	LastUpdate string   `json:"lastUpdate,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type batch struct {
	Bins []Bin `validate:"unique=ID,dive"`
}

var validate = validator.New()

// Decode reads a complete bin collection from r.
//
// The whole document is decoded and validated before anything is returned:
// any syntax error, non-array document, wrong field type, missing field,
// out-of-range value or duplicate id fails with an error wrapping
// domain.ErrInvalidBinData. Unknown fields are ignored.
func Decode(r io.Reader) ([]domain.BinRecord, error) {
	dec := json.NewDecoder(r)

	var payload []Bin
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode bins: %w: %v", domain.ErrInvalidBinData, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("decode bins: %w: document must contain a single JSON array", domain.ErrInvalidBinData)
	}
	// `null` decodes without error into a nil slice.
	if payload == nil {
		return nil, fmt.Errorf("decode bins: %w: expected a JSON array", domain.ErrInvalidBinData)
	}

	if err := validate.Struct(batch{Bins: payload}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("decode bins: %w: %s", domain.ErrInvalidBinData, describe(verrs[0]))
		}
		return nil, fmt.Errorf("decode bins: %w: %v", domain.ErrInvalidBinData, err)
	}

	bins := make([]domain.BinRecord, 0, len(payload))
	for _, b := range payload {
		bins = append(bins, ToDomain(b))
	}
	return bins, nil
}

// Decode a bin collection from a file on disk.
func ReadFile(path string) ([]domain.BinRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bins %q: %w", path, err)
	}

	bins, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read bins %q: %w", path, err)
	}
	return bins, nil
}

// Encode writes bins to w as an indented JSON array.
func Encode(w io.Writer, bins []domain.BinRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromDomainList(bins)); err != nil {
		return fmt.Errorf("encode bins: %w", err)
	}
	return nil
}

func WriteFile(path string, bins []domain.BinRecord) error {
	var buf bytes.Buffer
	if err := Encode(&buf, bins); err != nil {
		return fmt.Errorf("write bins %q: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write bins %q: %w", path, err)
	}
	return nil
}

func ToDomain(b Bin) domain.BinRecord {
	rec := domain.BinRecord{ID: b.ID, LastUpdate: b.LastUpdate}
	if b.Lat != nil {
		rec.Lat = *b.Lat
	}
	if b.Lng != nil {
		rec.Lng = *b.Lng
	}
	if b.Level != nil {
		rec.Level = *b.Level
	}
	return rec
}

func FromDomain(b domain.BinRecord) Bin {
	lat, lng, level := b.Lat, b.Lng, b.Level
	return Bin{ID: b.ID, Lat: &lat, Lng: &lng, Level: &level, LastUpdate: b.LastUpdate}
}

// FromDomainList never returns nil so an empty collection encodes as [].
func FromDomainList(bins []domain.BinRecord) []Bin {
	out := make([]Bin, 0, len(bins))
	for _, b := range bins {
		out = append(out, FromDomain(b))
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	case "unique":
		return "bin ids must be unique"
	case "datetime":
		return fmt.Sprintf("%s must be an ISO-8601 timestamp", fe.Namespace())
	}
	return fmt.Sprintf("%s failed %s=%s (value %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
}
