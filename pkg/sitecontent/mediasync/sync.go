// Package mediasync reconciles the locally tracked media file list against
// the authoritative remote object listing. It is a periodic or on-demand
// pass, not a live invariant: records whose backing object no longer exists
// are removed in one batch, and a second run with an unchanged listing is a
// no-op.
package mediasync

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/markasai/site-content/pkg/sitecontent"
)

// Syncer runs the reconciliation pass.
type Syncer struct {
	media  *sitecontent.MediaRepository
	lister sitecontent.ObjectLister
}

// New creates a Syncer over the given media repository and remote listing.
func New(media *sitecontent.MediaRepository, lister sitecontent.ObjectLister) *Syncer {
	return &Syncer{media: media, lister: lister}
}

// Result contains statistics about one reconciliation pass.
type Result struct {
	// TotalChecked is the number of local records examined.
	TotalChecked int `json:"totalChecked"`

	// TotalValid is the number of records that resolved to a remote object.
	TotalValid int `json:"totalValid"`

	// RemovedIDs contains the ids of stale records that were deleted.
	RemovedIDs []string `json:"removedIds,omitempty"`

	// FailedIDs contains the ids of stale records whose deletion failed;
	// failures do not abort the remaining deletions.
	FailedIDs []string `json:"failedIds,omitempty"`
}

// Sync fetches both lists and removes every stale local record. A failed
// remote listing aborts the whole pass with no partial deletion.
func (s *Syncer) Sync(ctx context.Context) (*Result, error) {
	remote, err := s.lister.ListObjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sitecontent.ErrListingFailed, err)
	}

	result := &Result{}
	var stale []string

	for _, m := range s.media.All(ctx) {
		result.TotalChecked++
		// Built-in/static assets have no backing remote object.
		if !m.Deletable {
			result.TotalValid++
			continue
		}
		if matchesRemote(m, remote) {
			result.TotalValid++
			continue
		}
		stale = append(stale, m.ID)
	}

	if len(stale) == 0 {
		return result, nil
	}

	result.RemovedIDs = s.media.DeleteMany(ctx, stale)

	removed := make(map[string]bool, len(result.RemovedIDs))
	for _, id := range result.RemovedIDs {
		removed[id] = true
	}
	for _, id := range stale {
		if !removed[id] {
			result.FailedIDs = append(result.FailedIDs, id)
		}
	}

	slog.Info("media sync completed",
		"checked", result.TotalChecked,
		"valid", result.TotalValid,
		"removed", len(result.RemovedIDs),
		"failed", len(result.FailedIDs))

	return result, nil
}

// matchesRemote decides whether a local record still resolves to a remote
// object, trying in order: exact URL match, path-component match, and
// filename-suffix match. A rename of a content-identical object can still
// produce a false positive here; that is a known trade-off of URL-shape
// matching.
func matchesRemote(m sitecontent.MediaFile, remote []sitecontent.RemoteObject) bool {
	localPath := urlPath(m.URL)
	localName := path.Base(localPath)

	for _, obj := range remote {
		if m.URL == obj.URL {
			return true
		}
		if localPath != "" && (localPath == urlPath(obj.URL) || localPath == "/"+obj.Key || strings.HasSuffix(urlPath(obj.URL), localPath)) {
			return true
		}
		if localName != "" && localName != "/" && path.Base(obj.Key) == localName {
			return true
		}
	}
	return false
}

// urlPath extracts the path component of a URL, falling back to the raw
// string for local paths that do not parse as URLs.
func urlPath(raw string) string {
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		return u.Path
	}
	return raw
}
