package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/weiawesome/bestiary-search/internal/domain"
)

// Kind tags the shape of a cached payload.
type Kind string

const (
	KindList   Kind = "list"
	KindRecord Kind = "record"
)

// Entry is the unit stored in the cache: either a full ordered result list
// or a single bestiary. Entries are always replaced whole.
type Entry struct {
	Kind    Kind              `json:"kind"`
	Record  *domain.Bestiary  `json:"record,omitempty"`
	Records []domain.Bestiary `json:"records,omitempty"`
}

// NewListEntry wraps an ordered result list.
func NewListEntry(records []domain.Bestiary) *Entry {
	return &Entry{Kind: KindList, Records: records}
}

// NewRecordEntry wraps a single bestiary.
func NewRecordEntry(b domain.Bestiary) *Entry {
	return &Entry{Kind: KindRecord, Record: &b}
}

func (e *Entry) validate() error {
	switch e.Kind {
	case KindList:
		if e.Record != nil {
			return errors.New("list entry carries a record")
		}
	case KindRecord:
		if e.Record == nil {
			return errors.New("record entry is empty")
		}
		if e.Records != nil {
			return errors.New("record entry carries a list")
		}
	default:
		return fmt.Errorf("unknown entry kind %q", e.Kind)
	}
	return nil
}

// Encode serializes an entry as tagged JSON.
func Encode(e *Entry) ([]byte, error) {
	if e == nil {
		return nil, errors.New("nil cache entry")
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(e)
}

// Decode parses a payload produced by Encode. Unknown fields, trailing
// data, and a kind that does not match the payload shape are rejected with
// an error wrapping ErrCorrupt.
func Decode(data []byte) (*Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var e Entry
	if err := dec.Decode(&e); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data", ErrCorrupt)
	}
	if err := e.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &e, nil
}
