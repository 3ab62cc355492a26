// Package media converts salon images to WebP and stores them in object storage.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

var (
	ErrInvalidImage = httperr.ErrBusiness("invalid_image")
	ErrUnavailable  = httperr.ErrBusiness("media_unavailable")
)

type Processor struct {
	transcoder Transcoder
	store      ObjectStore
}

// NewProcessor returns a processor; store may be nil, in which case inline
// images are kept as they came and uploads are refused.
func NewProcessor(t Transcoder, store ObjectStore) *Processor {
	return &Processor{transcoder: t, store: store}
}

func (p *Processor) Enabled() bool {
	return p != nil && p.store != nil
}

// Image is a salon image ready to be stored: either a URL kept as is, or
// transcoded WebP bytes waiting for upload.
type Image struct {
	URL  string
	webp []byte
}

// Prepare decodes and transcodes value when it is an inline data URL. It does
// no I/O, so callers can reject bad images before writing anything.
func (p *Processor) Prepare(value string) (Image, error) {
	if !p.Enabled() || !IsDataURL(value) {
		return Image{URL: value}, nil
	}

	_, data, err := DecodeDataURL(value)
	if err != nil {
		return Image{}, err
	}
	body, err := p.transcoder.ToWebP(bytes.NewReader(data))
	if err != nil {
		return Image{}, err
	}
	return Image{webp: body}, nil
}

func (p *Processor) PrepareAll(values []string) ([]Image, error) {
	out := make([]Image, 0, len(values))
	for _, v := range values {
		img, err := p.Prepare(v)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

// Store uploads a prepared image under salonID and returns its public URL.
func (p *Processor) Store(ctx context.Context, salonID string, img Image) (string, error) {
	if img.webp == nil {
		return img.URL, nil
	}
	return p.put(ctx, salonID, img.webp)
}

func (p *Processor) StoreAll(ctx context.Context, salonID string, imgs []Image) ([]string, error) {
	out := make([]string, 0, len(imgs))
	for _, img := range imgs {
		u, err := p.Store(ctx, salonID, img)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

// Normalize uploads value when it is an inline data URL and returns the public
// URL. Anything else comes back unchanged.
func (p *Processor) Normalize(ctx context.Context, salonID, value string) (string, error) {
	img, err := p.Prepare(value)
	if err != nil {
		return "", err
	}
	return p.Store(ctx, salonID, img)
}

func (p *Processor) NormalizeAll(ctx context.Context, salonID string, values []string) ([]string, error) {
	imgs, err := p.PrepareAll(values)
	if err != nil {
		return nil, err
	}
	return p.StoreAll(ctx, salonID, imgs)
}

func (p *Processor) Upload(ctx context.Context, salonID string, r io.Reader) (string, error) {
	if !p.Enabled() {
		return "", ErrUnavailable
	}

	body, err := p.transcoder.ToWebP(r)
	if err != nil {
		return "", err
	}
	return p.put(ctx, salonID, body)
}

func (p *Processor) put(ctx context.Context, salonID string, body []byte) (string, error) {
	key := fmt.Sprintf("salons/%s/%s.webp", salonID, uuid.NewString())
	return p.store.Put(ctx, key, body, "image/webp")
}
