package clubsite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// ProjectsRepo owns the projects document.
type ProjectsRepo struct {
	storage Storage
	locks   *docLocks
}

// NewProjectsRepo creates a repository over the projects document.
func NewProjectsRepo(storage Storage, locks *docLocks) *ProjectsRepo {
	return &ProjectsRepo{storage: storage, locks: locks}
}

// Load returns the whole projects document, or its default shape if the
// document has never been written.
func (r *ProjectsRepo) Load(ctx context.Context) (ProjectsData, error) {
	raw, err := r.storage.ReadDocument(ctx, projectsDocument)
	if err == ErrDocumentNotFound {
		return defaultProjectsData(), nil
	}
	if err != nil {
		return ProjectsData{}, err
	}
	var data ProjectsData
	if err := json.Unmarshal(raw, &data); err != nil {
		return ProjectsData{}, fmt.Errorf("decode %s: %w", projectsDocument, err)
	}
	return data, nil
}

func (r *ProjectsRepo) save(ctx context.Context, data ProjectsData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", projectsDocument, err)
	}
	return r.storage.WriteDocument(ctx, projectsDocument, raw)
}

// Merge shallow-merges the provided top-level sections over the current
// document and returns the result.
func (r *ProjectsRepo) Merge(ctx context.Context, sess Session, partial map[string]json.RawMessage) (ProjectsData, error) {
	if !sess.Valid() {
		return ProjectsData{}, ErrUnauthorized
	}
	unlock := r.locks.lock(projectsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return ProjectsData{}, err
	}
	merged, err := mergeJSON(data, partial)
	if err != nil {
		return ProjectsData{}, err
	}
	if err := r.save(ctx, merged); err != nil {
		return ProjectsData{}, err
	}
	return merged, nil
}

// AddProject appends a project with a generated "project-<ms>" id.
func (r *ProjectsRepo) AddProject(ctx context.Context, sess Session, p Project) (Project, error) {
	if !sess.Valid() {
		return Project{}, ErrUnauthorized
	}
	unlock := r.locks.lock(projectsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return Project{}, err
	}
	p.ID = fmt.Sprintf("project-%d", time.Now().UnixMilli())
	data.Projects = append(data.Projects, p)
	if err := r.save(ctx, data); err != nil {
		return Project{}, err
	}
	return p, nil
}

// PatchProject shallow-merges the partial over the project with the given
// id, preserving the id. Returns ErrNotFound when no project matches.
func (r *ProjectsRepo) PatchProject(ctx context.Context, sess Session, id string, partial map[string]json.RawMessage) (Project, error) {
	if !sess.Valid() {
		return Project{}, ErrUnauthorized
	}
	unlock := r.locks.lock(projectsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return Project{}, err
	}
	for i, p := range data.Projects {
		if p.ID != id {
			continue
		}
		merged, err := mergeJSON(p, partial, "id")
		if err != nil {
			return Project{}, err
		}
		data.Projects[i] = merged
		if err := r.save(ctx, data); err != nil {
			return Project{}, err
		}
		return merged, nil
	}
	return Project{}, ErrNotFound
}

// DeleteProject removes the project with the given id. Deleting an absent id
// rewrites the document unchanged rather than failing.
func (r *ProjectsRepo) DeleteProject(ctx context.Context, sess Session, id string) error {
	if !sess.Valid() {
		return ErrUnauthorized
	}
	unlock := r.locks.lock(projectsDocument)
	defer unlock()

	data, err := r.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]Project, 0, len(data.Projects))
	for _, p := range data.Projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	data.Projects = kept
	return r.save(ctx, data)
}
