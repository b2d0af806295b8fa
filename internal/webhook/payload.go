// Package webhook receives Plex webhooks and processes new items in the
// background.
package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vmunix/rustizarr/internal/plex"
)

// EventLibraryNew is sent by Plex when an item is added to a library.
const EventLibraryNew = "library.new"

// maxPayloadBytes bounds the JSON part; Plex may also attach a thumbnail.
const maxPayloadBytes = 1 << 20

// ErrNoPayload indicates the multipart body has no payload field.
var ErrNoPayload = errors.New("missing payload field")

// Payload is the JSON document of a Plex webhook.
type Payload struct {
	Event    string   `json:"event"`
	Metadata Metadata `json:"Metadata"`
}

// Metadata identifies the item an event is about.
type Metadata struct {
	RatingKey string    `json:"ratingKey"`
	Type      plex.Kind `json:"type"`
	Title     string    `json:"title,omitempty"`
}

// Actionable reports whether the event asks for a new poster.
func (p *Payload) Actionable() bool {
	if p.Event != EventLibraryNew || p.Metadata.RatingKey == "" {
		return false
	}
	return p.Metadata.Type == plex.KindMovie || p.Metadata.Type == plex.KindShow
}

// ParseRequest streams the multipart body of r and decodes its payload field.
func ParseRequest(r *http.Request) (*Payload, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, fmt.Errorf("read multipart: %w", err)
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPayload
		}
		if err != nil {
			return nil, fmt.Errorf("read multipart: %w", err)
		}

		if part.FormName() != "payload" {
			_ = part.Close()
			continue
		}

		var p Payload
		err = json.NewDecoder(io.LimitReader(part, maxPayloadBytes)).Decode(&p)
		_ = part.Close()
		if err != nil {
			return nil, fmt.Errorf("decode payload: %w", err)
		}
		return &p, nil
	}
}
