package clubsite

import (
	"context"
	"encoding/json"
	"fmt"
)

// PagesRepo owns the pages document: the editable content of the named
// public pages. Pages and their sections are typed; unknown names are
// rejected instead of being stored as free-form blobs.
type PagesRepo struct {
	storage Storage
	locks   *docLocks
}

// NewPagesRepo creates a repository over the pages document.
func NewPagesRepo(storage Storage, locks *docLocks) *PagesRepo {
	return &PagesRepo{storage: storage, locks: locks}
}

// Load returns the whole pages document, or the default shape (every known
// page present and empty) if it has never been written.
func (r *PagesRepo) Load(ctx context.Context) (PagesData, error) {
	raw, err := r.storage.ReadDocument(ctx, pagesDocument)
	if err == ErrDocumentNotFound {
		return defaultPagesData(), nil
	}
	if err != nil {
		return PagesData{}, err
	}
	var data PagesData
	if err := json.Unmarshal(raw, &data); err != nil {
		return PagesData{}, fmt.Errorf("decode %s: %w", pagesDocument, err)
	}
	return data, nil
}

func (r *PagesRepo) save(ctx context.Context, data PagesData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", pagesDocument, err)
	}
	return r.storage.WriteDocument(ctx, pagesDocument, raw)
}

// GetPage returns one named page, or ErrNotFound for an unknown or absent page.
func (r *PagesRepo) GetPage(ctx context.Context, name string) (*PageData, error) {
	data, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	slot := data.page(name)
	if slot == nil || *slot == nil {
		return nil, ErrNotFound
	}
	return *slot, nil
}

// ReplacePage replaces the whole named page.
func (r *PagesRepo) ReplacePage(ctx context.Context, sess Session, name string, page PageData) (*PageData, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}
	unlock := r.locks.lock(pagesDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	slot := data.page(name)
	if slot == nil || *slot == nil {
		return nil, ErrNotFound
	}
	*slot = &page
	if err := r.save(ctx, data); err != nil {
		return nil, err
	}
	return *slot, nil
}

// ReplaceSection replaces a single typed section of the named page, leaving
// every other section untouched. Unknown section names return
// ErrUnknownSection.
func (r *PagesRepo) ReplaceSection(ctx context.Context, sess Session, name, section string, raw json.RawMessage) (*PageData, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}
	unlock := r.locks.lock(pagesDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	slot := data.page(name)
	if slot == nil || *slot == nil {
		return nil, ErrNotFound
	}
	page := *slot

	if err := setSection(page, section, raw); err != nil {
		return nil, err
	}
	if err := r.save(ctx, data); err != nil {
		return nil, err
	}
	return page, nil
}

func setSection(page *PageData, section string, raw json.RawMessage) error {
	decode := func(v any) error {
		if err := json.Unmarshal(raw, v); err != nil {
			return fmt.Errorf("decode %s section: %w", section, err)
		}
		return nil
	}
	switch section {
	case "hero":
		var v Hero
		if err := decode(&v); err != nil {
			return err
		}
		page.Hero = &v
	case "mission":
		var v Mission
		if err := decode(&v); err != nil {
			return err
		}
		page.Mission = &v
	case "team":
		var v Team
		if err := decode(&v); err != nil {
			return err
		}
		page.Team = &v
	case "stats":
		var v []Stat
		if err := decode(&v); err != nil {
			return err
		}
		page.Stats = v
	case "metrics":
		var v []Metric
		if err := decode(&v); err != nil {
			return err
		}
		page.Metrics = v
	case "testimonials":
		var v []Testimonial
		if err := decode(&v); err != nil {
			return err
		}
		page.Testimonials = v
	case "callToAction":
		var v PageCTA
		if err := decode(&v); err != nil {
			return err
		}
		page.CallToAction = &v
	default:
		return ErrUnknownSection
	}
	return nil
}
