package sitecontent

import (
	"context"
	"encoding/json"
	"fmt"
)

// SettingsRepository manages the singleton site settings document. There is
// no add or delete; the document is read and written whole, with partial
// updates merged in memory before the write-back.
type SettingsRepository struct {
	store Store
}

// NewSettingsRepository creates the settings repository.
func NewSettingsRepository(store Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

// Get returns the site settings, seeding the defaults on first read.
func (r *SettingsRepository) Get(ctx context.Context) Settings {
	return ReadDocument(ctx, r.store, KeySettings, defaultSettings())
}

// Update shallow-merges the partial JSON document into the current settings
// and writes the whole object back, returning the merged settings. A partial
// that does not decode against Settings returns the current settings unchanged
// together with an error wrapping ErrMalformedPartial; nothing is written.
func (r *SettingsRepository) Update(ctx context.Context, partial json.RawMessage) (Settings, error) {
	current := r.Get(ctx)
	if err := json.Unmarshal(partial, &current); err != nil {
		return r.Get(ctx), fmt.Errorf("%w: %v", ErrMalformedPartial, err)
	}
	current.UpdatedAt = nowFunc()
	WriteDocument(ctx, r.store, KeySettings, current)
	return current, nil
}
