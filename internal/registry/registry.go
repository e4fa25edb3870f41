// internal/registry/registry.go
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"bizplan-engine/internal/common/errors"
	"bizplan-engine/internal/common/logger"
	"bizplan-engine/internal/common/metrics"
	"bizplan-engine/internal/common/validation"
	"bizplan-engine/internal/models"
	"bizplan-engine/internal/store"
)

// Registry is the source of truth for available business templates.
// Built-ins are loaded at construction and immutable; user-defined
// templates layer on top and write through to the flat store.
type Registry struct {
	builtins map[string]*models.ProjectTypeSchema

	mu     sync.RWMutex
	custom map[string]*models.ProjectTypeSchema

	store store.Store
	log   logger.Logger
}

// New builds a registry with all built-in templates and, when a store is
// supplied, reloads previously persisted user-defined templates. Persisted
// entries that no longer validate are skipped and logged, not fatal.
func New(log logger.Logger, st store.Store) *Registry {
	r := &Registry{
		builtins: builtinTemplates(),
		custom:   make(map[string]*models.ProjectTypeSchema),
		store:    st,
		log:      log.WithFields(map[string]interface{}{"component": "registry"}),
	}

	if st != nil {
		persisted, err := st.ListTemplates(context.Background())
		if err != nil {
			r.log.Warn("could not load persisted templates", map[string]interface{}{"error": err.Error()})
			return r
		}
		for _, schema := range persisted {
			if _, reserved := r.builtins[schema.ID]; reserved {
				r.log.Warn("persisted template shadows a built-in id, skipped", map[string]interface{}{"typeId": schema.ID})
				continue
			}
			if result := validation.ValidateTemplate(schema); !result.Valid {
				r.log.Warn("persisted template failed validation, skipped", map[string]interface{}{
					"typeId": schema.ID,
					"errors": result.Summary(),
				})
				continue
			}
			normalize(schema)
			r.custom[schema.ID] = schema
		}
	}
	return r
}

// Get resolves a project type by id. A miss is a distinguishable failure,
// never a silent nil.
func (r *Registry) Get(id string) (*models.ProjectTypeSchema, error) {
	if schema, ok := r.builtins[id]; ok {
		return schema.Clone(), nil
	}
	r.mu.RLock()
	schema, ok := r.custom[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.NewProjectTypeNotFoundError(id)
	}
	return schema.Clone(), nil
}

// All returns every template keyed by id, built-ins merged with
// user-defined. User schemas never shadow built-in ids.
func (r *Registry) All() map[string]*models.ProjectTypeSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*models.ProjectTypeSchema, len(r.builtins)+len(r.custom))
	for id, schema := range r.builtins {
		out[id] = schema.Clone()
	}
	for id, schema := range r.custom {
		out[id] = schema.Clone()
	}
	return out
}

// ByBusinessType returns all templates carrying the given category tag,
// ordered by display name for stable rendering.
func (r *Registry) ByBusinessType(tag string) []*models.ProjectTypeSchema {
	all := r.All()
	out := make([]*models.ProjectTypeSchema, 0)
	for _, schema := range all {
		if schema.BusinessType == tag {
			out = append(out, schema)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// IsBuiltin reports whether an id belongs to a built-in template.
func (r *Registry) IsBuiltin(id string) bool {
	_, ok := r.builtins[id]
	return ok
}

// Set registers or replaces a user-defined template. The schema is
// validated before any state changes; registering under a built-in id is
// rejected with a reserved-id error.
func (r *Registry) Set(ctx context.Context, id string, schema *models.ProjectTypeSchema) error {
	if schema != nil && schema.ID == "" {
		schema.ID = id
	}
	if schema != nil && schema.ID != id {
		metrics.TemplatesRegistered.WithLabelValues("rejected").Inc()
		return errors.NewTemplateValidationError(fmt.Sprintf("schema id %q does not match registration id %q", schema.ID, id))
	}
	if result := validation.ValidateTemplate(schema); !result.Valid {
		metrics.TemplatesRegistered.WithLabelValues("rejected").Inc()
		return errors.NewTemplateValidationError(result.Summary())
	}
	if _, reserved := r.builtins[id]; reserved {
		metrics.TemplatesRegistered.WithLabelValues("rejected").Inc()
		return errors.NewReservedIDError(id)
	}

	clone := schema.Clone()
	normalize(clone)

	r.mu.Lock()
	r.custom[id] = clone
	r.mu.Unlock()

	r.persist(ctx, clone)
	metrics.TemplatesRegistered.WithLabelValues("accepted").Inc()
	r.log.Info("template registered", map[string]interface{}{"typeId": id})
	return nil
}

// Delete removes a user-defined template. Built-ins cannot be deleted.
func (r *Registry) Delete(ctx context.Context, id string) error {
	if _, reserved := r.builtins[id]; reserved {
		return errors.NewBuiltinProtectedError(id)
	}
	r.mu.Lock()
	_, ok := r.custom[id]
	if ok {
		delete(r.custom, id)
	}
	r.mu.Unlock()
	if !ok {
		return errors.NewProjectTypeNotFoundError(id)
	}

	if r.store != nil {
		if err := r.store.DeleteTemplate(ctx, id); err != nil {
			r.log.Warn("could not delete persisted template", map[string]interface{}{"typeId": id, "error": err.Error()})
		}
	}
	r.log.Info("template deleted", map[string]interface{}{"typeId": id})
	return nil
}

// CreateFromTemplate deep-clones an existing template under a new id and
// name and registers it as user-defined.
func (r *Registry) CreateFromTemplate(ctx context.Context, baseID, newID, newName string) (*models.ProjectTypeSchema, error) {
	base, err := r.Get(baseID)
	if err != nil {
		return nil, err
	}
	if newID == "" || newName == "" {
		return nil, errors.NewTemplateValidationError("new id and name are required")
	}
	if _, reserved := r.builtins[newID]; reserved {
		return nil, errors.NewReservedIDError(newID)
	}
	r.mu.RLock()
	_, exists := r.custom[newID]
	r.mu.RUnlock()
	if exists {
		return nil, errors.NewTemplateValidationError(fmt.Sprintf("template id %q already exists", newID))
	}

	clone := base.Clone()
	clone.ID = newID
	clone.Name = newName
	clone.Description = fmt.Sprintf("Based on the %s template", base.Name)

	if err := r.Set(ctx, newID, clone); err != nil {
		return nil, err
	}
	return clone.Clone(), nil
}

// persist writes through to the flat store. Failures are logged, not
// surfaced: the in-memory registration already happened and persistence is
// fire-and-forget by design.
func (r *Registry) persist(ctx context.Context, schema *models.ProjectTypeSchema) {
	if r.store == nil {
		return
	}
	if err := r.store.SaveTemplate(ctx, schema); err != nil {
		r.log.Warn("could not persist template", map[string]interface{}{"typeId": schema.ID, "error": err.Error()})
	}
}
