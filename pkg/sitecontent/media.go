package sitecontent

import (
	"context"
	"sort"
)

// MediaRepository tracks media file records under the media-files key. The
// records reference objects in the remote store; the mediasync package
// reconciles the two lists.
type MediaRepository struct {
	store Store
}

// NewMediaRepository creates the media repository.
func NewMediaRepository(store Store) *MediaRepository {
	return &MediaRepository{store: store}
}

// All returns every tracked media file, newest upload first, seeding the
// built-in static assets on first read.
func (r *MediaRepository) All(ctx context.Context) []MediaFile {
	return ReadDocument(ctx, r.store, KeyMediaFiles, defaultMediaFiles())
}

// ByID returns the media file with the given id, or nil if none exists.
func (r *MediaRepository) ByID(ctx context.Context, id string) *MediaFile {
	for _, m := range r.All(ctx) {
		if m.ID == id {
			m := m
			return &m
		}
	}
	return nil
}

// Add appends a media file record and writes the list back.
func (r *MediaRepository) Add(ctx context.Context, m MediaFile) {
	r.write(ctx, append(r.All(ctx), m))
}

// Delete removes the media file with the given id, reporting whether anything
// was removed. Records with Deletable == false are built-in assets and are
// never removed.
func (r *MediaRepository) Delete(ctx context.Context, id string) bool {
	removed := r.DeleteMany(ctx, []string{id})
	return len(removed) == 1
}

// DeleteMany removes every deletable media file whose id is in ids using a
// single write-back, returning the ids actually removed.
func (r *MediaRepository) DeleteMany(ctx context.Context, ids []string) []string {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	list := r.All(ctx)
	kept := make([]MediaFile, 0, len(list))
	var removed []string
	for _, m := range list {
		if wanted[m.ID] && m.Deletable {
			removed = append(removed, m.ID)
			continue
		}
		kept = append(kept, m)
	}
	r.write(ctx, kept)
	return removed
}

func (r *MediaRepository) write(ctx context.Context, list []MediaFile) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].UploadedAt.After(list[j].UploadedAt)
	})
	WriteDocument(ctx, r.store, KeyMediaFiles, list)
}
