package clubsite

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ContentRepo owns the events document: the events list and the photo
// gallery. All mutations follow the same shape: load the whole document,
// change it in memory, write it back. A per-document lock serializes the
// sequence for in-process writers.
type ContentRepo struct {
	storage Storage
	locks   *docLocks
}

// NewContentRepo creates a repository over the events document.
func NewContentRepo(storage Storage, locks *docLocks) *ContentRepo {
	return &ContentRepo{storage: storage, locks: locks}
}

// Load returns the whole events document, or its default shape if the
// document has never been written.
func (r *ContentRepo) Load(ctx context.Context) (EventsData, error) {
	raw, err := r.storage.ReadDocument(ctx, eventsDocument)
	if err == ErrDocumentNotFound {
		return defaultEventsData(), nil
	}
	if err != nil {
		return EventsData{}, err
	}
	var data EventsData
	if err := json.Unmarshal(raw, &data); err != nil {
		return EventsData{}, fmt.Errorf("decode %s: %w", eventsDocument, err)
	}
	if data.Events == nil {
		data.Events = []ContentItem{}
	}
	if data.Gallery == nil {
		data.Gallery = []ContentItem{}
	}
	return data, nil
}

func (r *ContentRepo) save(ctx context.Context, data EventsData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", eventsDocument, err)
	}
	return r.storage.WriteDocument(ctx, eventsDocument, raw)
}

// Get returns the item with the given id from either sub-collection.
func (r *ContentRepo) Get(ctx context.Context, id string) (ContentItem, error) {
	data, err := r.Load(ctx)
	if err != nil {
		return ContentItem{}, err
	}
	for _, item := range data.Events {
		if item.ID == id {
			return item, nil
		}
	}
	for _, item := range data.Gallery {
		if item.ID == id {
			return item, nil
		}
	}
	return ContentItem{}, ErrNotFound
}

// Create appends a new item to the sub-collection selected by its category
// ("events" goes to the events list, everything else to the gallery).
// Unset optional fields get defaults: today's date in long form, "TBD"
// location, "All members" audience, empty tags. The assigned id is the
// creation timestamp in milliseconds, bumped until unique in the document.
func (r *ContentRepo) Create(ctx context.Context, sess Session, item ContentItem) (ContentItem, error) {
	if !sess.Valid() {
		return ContentItem{}, ErrUnauthorized
	}
	unlock := r.locks.lock(eventsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return ContentItem{}, err
	}

	now := time.Now()
	if item.Date == "" {
		item.Date = longDate(now)
	}
	if item.Location == "" {
		item.Location = "TBD"
	}
	if item.Audience == "" {
		item.Audience = "All members"
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	item.CreatedAt = now.UTC().Format(time.RFC3339)
	item.ID = r.newID(data, now)

	if item.Category == "events" {
		data.Events = append(data.Events, item)
	} else {
		data.Gallery = append(data.Gallery, item)
	}
	if err := r.save(ctx, data); err != nil {
		return ContentItem{}, err
	}
	return item, nil
}

// newID derives an id from the millisecond timestamp, bumping it while it
// collides with an existing id in either sub-collection.
func (r *ContentRepo) newID(data EventsData, now time.Time) string {
	ms := now.UnixMilli()
	id := strconv.FormatInt(ms, 10)
	for containsID(data, id) {
		ms++
		id = strconv.FormatInt(ms, 10)
	}
	return id
}

func containsID(data EventsData, id string) bool {
	for _, item := range data.Events {
		if item.ID == id {
			return true
		}
	}
	for _, item := range data.Gallery {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Update shallow-merges the partial over the item with the given id,
// wherever it lives. The id field is never overwritten. Returns ErrNotFound
// when the id is absent from both sub-collections.
func (r *ContentRepo) Update(ctx context.Context, sess Session, id string, partial map[string]json.RawMessage) (ContentItem, error) {
	if !sess.Valid() {
		return ContentItem{}, ErrUnauthorized
	}
	unlock := r.locks.lock(eventsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return ContentItem{}, err
	}

	merged, found, err := mergeInto(data.Events, id, partial)
	if err != nil {
		return ContentItem{}, err
	}
	if !found {
		merged, found, err = mergeInto(data.Gallery, id, partial)
		if err != nil {
			return ContentItem{}, err
		}
	}
	if !found {
		return ContentItem{}, ErrNotFound
	}
	if err := r.save(ctx, data); err != nil {
		return ContentItem{}, err
	}
	return merged, nil
}

// mergeInto merges partial over the matching item in place and reports
// whether a match was found.
func mergeInto(items []ContentItem, id string, partial map[string]json.RawMessage) (ContentItem, bool, error) {
	for i, item := range items {
		if item.ID != id {
			continue
		}
		merged, err := mergeJSON(item, partial, "id")
		if err != nil {
			return ContentItem{}, false, err
		}
		items[i] = merged
		return merged, true, nil
	}
	return ContentItem{}, false, nil
}

// Delete removes the item with the given id from whichever sub-collection
// holds it. Returns ErrNotFound when neither sub-collection shrinks; the
// document is not rewritten in that case.
func (r *ContentRepo) Delete(ctx context.Context, sess Session, id string) error {
	if !sess.Valid() {
		return ErrUnauthorized
	}
	unlock := r.locks.lock(eventsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return err
	}

	events := removeID(data.Events, id)
	gallery := removeID(data.Gallery, id)
	if len(events) == len(data.Events) && len(gallery) == len(data.Gallery) {
		return ErrNotFound
	}
	data.Events = events
	data.Gallery = gallery
	return r.save(ctx, data)
}

func removeID(items []ContentItem, id string) []ContentItem {
	out := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}
