// internal/registry/export.go
package registry

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"bizplan-engine/internal/common/errors"
	"bizplan-engine/internal/common/validation"
	"bizplan-engine/internal/models"
	"bizplan-engine/pkg/bundle"
)

// SkippedEntry names one template dropped during import and why.
type SkippedEntry struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// ImportReport is the per-entry outcome of a configuration import. Invalid
// entries are skipped, never abort the import, and stay observable here.
type ImportReport struct {
	Imported []string       `json:"imported"`
	Skipped  []SkippedEntry `json:"skipped"`
}

// Export serializes the full template set in the interchange format.
func (r *Registry) Export() *bundle.Bundle {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &bundle.Bundle{
		Default:    make(map[string]*models.ProjectTypeSchema, len(r.builtins)),
		Custom:     make(map[string]*models.ProjectTypeSchema, len(r.custom)),
		ExportDate: time.Now().UTC().Format(time.RFC3339),
	}
	for id, schema := range r.builtins {
		out.Default[id] = schema.Clone()
	}
	for id, schema := range r.custom {
		out.Custom[id] = schema.Clone()
	}
	return out
}

// Import registers the custom templates from an exported bundle. The
// "default" section is ignored (built-ins are code, not data). Each entry
// is validated on its own; failures are reported and skipped.
func (r *Registry) Import(ctx context.Context, data []byte) (*ImportReport, error) {
	var raw bundle.RawBundle
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewImportParseError(err)
	}

	ids := make([]string, 0, len(raw.Custom))
	for id := range raw.Custom {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	report := &ImportReport{}
	for _, id := range ids {
		entry := raw.Custom[id]

		var doc map[string]interface{}
		if err := json.Unmarshal(entry, &doc); err != nil {
			report.skip(r, id, "entry is not a JSON object: "+err.Error())
			continue
		}
		if err := validation.ValidateImportEntry(doc); err != nil {
			report.skip(r, id, err.Error())
			continue
		}

		var schema models.ProjectTypeSchema
		if err := json.Unmarshal(entry, &schema); err != nil {
			report.skip(r, id, "decode failed: "+err.Error())
			continue
		}
		if schema.ID == "" {
			schema.ID = id
		}
		if err := r.Set(ctx, schema.ID, &schema); err != nil {
			report.skip(r, id, err.Error())
			continue
		}
		report.Imported = append(report.Imported, schema.ID)
	}
	return report, nil
}

func (rep *ImportReport) skip(r *Registry, id, reason string) {
	rep.Skipped = append(rep.Skipped, SkippedEntry{ID: id, Reason: reason})
	r.log.Warn("import entry skipped", map[string]interface{}{"typeId": id, "reason": reason})
}
