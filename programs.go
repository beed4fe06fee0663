package clubsite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// ProgramsRepo owns the programs document.
type ProgramsRepo struct {
	storage Storage
	locks   *docLocks
}

// NewProgramsRepo creates a repository over the programs document.
func NewProgramsRepo(storage Storage, locks *docLocks) *ProgramsRepo {
	return &ProgramsRepo{storage: storage, locks: locks}
}

// Load returns the whole programs document, or its default shape if the
// document has never been written.
func (r *ProgramsRepo) Load(ctx context.Context) (ProgramsData, error) {
	raw, err := r.storage.ReadDocument(ctx, programsDocument)
	if err == ErrDocumentNotFound {
		return defaultProgramsData(), nil
	}
	if err != nil {
		return ProgramsData{}, err
	}
	var data ProgramsData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ProgramsData{}, fmt.Errorf("decode %s: %w", programsDocument, err)
	}
	return data, nil
}

func (r *ProgramsRepo) save(ctx context.Context, data ProgramsData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", programsDocument, err)
	}
	return r.storage.WriteDocument(ctx, programsDocument, raw)
}

// Merge shallow-merges the provided top-level sections (hero, comingSoon,
// tracks, faqs, callToAction, ...) over the current document and returns the
// result.
func (r *ProgramsRepo) Merge(ctx context.Context, sess Session, partial map[string]json.RawMessage) (ProgramsData, error) {
	if !sess.Valid() {
		return ProgramsData{}, ErrUnauthorized
	}
	unlock := r.locks.lock(programsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return ProgramsData{}, err
	}
	merged, err := mergeJSON(data, partial)
	if err != nil {
		return ProgramsData{}, err
	}
	if err := r.save(ctx, merged); err != nil {
		return ProgramsData{}, err
	}
	return merged, nil
}

// AddProgram appends a program with a generated "program-<ms>" id.
func (r *ProgramsRepo) AddProgram(ctx context.Context, sess Session, p Program) (Program, error) {
	if !sess.Valid() {
		return Program{}, ErrUnauthorized
	}
	unlock := r.locks.lock(programsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return Program{}, err
	}
	p.ID = fmt.Sprintf("program-%d", time.Now().UnixMilli())
	data.Programs = append(data.Programs, p)
	if err := r.save(ctx, data); err != nil {
		return Program{}, err
	}
	return p, nil
}

// DeleteProgram removes the program with the given id. Deleting an absent id
// rewrites the document unchanged rather than failing.
func (r *ProgramsRepo) DeleteProgram(ctx context.Context, sess Session, id string) error {
	if !sess.Valid() {
		return ErrUnauthorized
	}
	unlock := r.locks.lock(programsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]Program, 0, len(data.Programs))
	for _, p := range data.Programs {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	data.Programs = kept
	return r.save(ctx, data)
}
