// internal/models/scenario.go
package models

import "time"

// Scenario is a named snapshot of field values for one project type.
type Scenario struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ProjectTypeID string    `json:"projectTypeId"`
	Values        ValueBag  `json:"values"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SelectionState is the persisted UI selection: which business type tab is
// open, which project types are selected and which one is active.
type SelectionState struct {
	BusinessType    string   `json:"businessType,omitempty"`
	SelectedTypeIDs []string `json:"selectedTypeIds,omitempty"`
	ActiveTypeID    string   `json:"activeTypeId,omitempty"`
}
