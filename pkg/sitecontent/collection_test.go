package sitecontent_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markasai/site-content/pkg/sitecontent"
	"github.com/markasai/site-content/pkg/sitecontent/storage/memory"
)

func emptyBlogRepo(t *testing.T) (*sitecontent.Repository[sitecontent.BlogPost], sitecontent.Store) {
	t.Helper()
	store := memory.New()
	// Overwrite the default seed so tests start from an empty collection.
	require.NoError(t, store.Write(context.Background(), sitecontent.KeyBlogPosts, []byte("[]")))
	return sitecontent.NewBlogRepository(store), store
}

func post(id, slug string, status sitecontent.Status, published time.Time) sitecontent.BlogPost {
	return sitecontent.BlogPost{
		ID:          id,
		Title:       "Post " + id,
		Slug:        slug,
		Body:        "body of " + id,
		Status:      status,
		PublishedAt: published,
	}
}

func TestRepository_CRUDRoundTrip(t *testing.T) {
	repo, _ := emptyBlogRepo(t)
	ctx := context.Background()

	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	original := post("1", "hello-world", sitecontent.StatusDraft, now)
	original.Tags = []string{"ai", "bisnis"}
	repo.Add(ctx, original)

	t.Run("ByID", func(t *testing.T) {
		got := repo.ByID(ctx, "1")
		require.NotNil(t, got)
		assert.Equal(t, original, *got)
	})

	t.Run("BySlug", func(t *testing.T) {
		got := repo.BySlug(ctx, "hello-world")
		require.NotNil(t, got)
		assert.Equal(t, "1", got.ID)
	})

	t.Run("ByID_NotFound", func(t *testing.T) {
		assert.Nil(t, repo.ByID(ctx, "missing"))
	})

	t.Run("Update_MergesOnlyGivenFields", func(t *testing.T) {
		updated, err := repo.Update(ctx, "1", json.RawMessage(`{"title":"New Title"}`))
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, original.Slug, updated.Slug)
		assert.Equal(t, original.Body, updated.Body)
		assert.Equal(t, original.Tags, updated.Tags)
	})

	t.Run("Update_CannotReassignID", func(t *testing.T) {
		updated, err := repo.Update(ctx, "1", json.RawMessage(`{"id":"2","excerpt":"short"}`))
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "1", updated.ID)
		assert.Equal(t, "short", updated.Excerpt)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		updated, err := repo.Update(ctx, "missing", json.RawMessage(`{"title":"x"}`))
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("Update_TypeMismatchIsNotNotFound", func(t *testing.T) {
		// A well-formed object with a wrong field type is a validation
		// failure, not a missing entity.
		updated, err := repo.Update(ctx, "1", json.RawMessage(`{"title":123}`))
		require.ErrorIs(t, err, sitecontent.ErrMalformedPartial)
		assert.Nil(t, updated)

		// The entity still exists, untouched by the failed merge.
		got := repo.ByID(ctx, "1")
		require.NotNil(t, got)
		assert.NotEqual(t, "123", got.Title)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.True(t, repo.Delete(ctx, "1"))
		assert.Nil(t, repo.ByID(ctx, "1"))
		assert.False(t, repo.Delete(ctx, "1"))
	})
}

func TestRepository_PublicationFilter(t *testing.T) {
	repo, _ := emptyBlogRepo(t)
	ctx := context.Background()

	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	repo.Add(ctx, post("1", "one", sitecontent.StatusPublished, base.AddDate(0, 0, 3)))
	repo.Add(ctx, post("2", "two", sitecontent.StatusDraft, base.AddDate(0, 0, 2)))
	repo.Add(ctx, post("3", "three", sitecontent.StatusPublished, base.AddDate(0, 0, 1)))

	all := repo.All(ctx)
	require.Len(t, all, 3)

	published := repo.Published(ctx)
	require.Len(t, published, 2)
	// Same relative order as the full list.
	assert.Equal(t, "1", published[0].ID)
	assert.Equal(t, "3", published[1].ID)

	t.Run("PublishedBySlug_HidesDrafts", func(t *testing.T) {
		assert.Nil(t, repo.PublishedBySlug(ctx, "two"))
		assert.NotNil(t, repo.BySlug(ctx, "two"))
		assert.NotNil(t, repo.PublishedBySlug(ctx, "one"))
	})
}

func TestRepository_NewestFirstOrdering(t *testing.T) {
	repo, _ := emptyBlogRepo(t)
	ctx := context.Background()

	base := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	// Added oldest-last on purpose: every write re-sorts.
	repo.Add(ctx, post("old", "old", sitecontent.StatusPublished, base))
	repo.Add(ctx, post("newest", "newest", sitecontent.StatusPublished, base.AddDate(0, 1, 0)))
	repo.Add(ctx, post("middle", "middle", sitecontent.StatusPublished, base.AddDate(0, 0, 15)))

	all := repo.All(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "newest", all[0].ID)
	assert.Equal(t, "middle", all[1].ID)
	assert.Equal(t, "old", all[2].ID)
}

func TestRepository_LastWriteWinsAtDocumentGranularity(t *testing.T) {
	repo, store := emptyBlogRepo(t)
	ctx := context.Background()

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	repo.Add(ctx, post("1", "one", sitecontent.StatusDraft, now))

	// Two writers start from the same initial read and write back the whole
	// collection. Exactly one of the two updates is observable afterward;
	// the collections never merge.
	initial := repo.All(ctx)

	first := make([]sitecontent.BlogPost, len(initial))
	copy(first, initial)
	first[0].Title = "writer A"
	sitecontent.WriteDocument(ctx, store, sitecontent.KeyBlogPosts, first)

	second := make([]sitecontent.BlogPost, len(initial))
	copy(second, initial)
	second[0].Excerpt = "writer B"
	sitecontent.WriteDocument(ctx, store, sitecontent.KeyBlogPosts, second)

	final := repo.All(ctx)
	require.Len(t, final, 1)
	assert.Equal(t, "writer B", final[0].Excerpt)
	// Writer A's change was lost with its whole document, not merged.
	assert.NotEqual(t, "writer A", final[0].Title)
}

func TestRepository_SeedsDefaultContent(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	repos := sitecontent.NewRepositories(store)

	posts := repos.Blog.All(ctx)
	assert.NotEmpty(t, posts)

	exists, err := store.Exists(ctx, sitecontent.KeyBlogPosts)
	require.NoError(t, err)
	assert.True(t, exists)

	products := repos.Products.All(ctx)
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.NotEmpty(t, p.Slug)
	}
}

// The end-to-end scenario: draft content is invisible publicly until its
// status flips to published.
func TestRepository_DraftToPublishedScenario(t *testing.T) {
	repo, _ := emptyBlogRepo(t)
	ctx := context.Background()

	repo.Add(ctx, post("1", "hello", sitecontent.StatusDraft, time.Now()))

	require.NotNil(t, repo.BySlug(ctx, "hello"))
	assert.Empty(t, repo.Published(ctx))

	updated, err := repo.Update(ctx, "1", json.RawMessage(`{"status":"published"}`))
	require.NoError(t, err)
	require.NotNil(t, updated)

	published := repo.Published(ctx)
	require.Len(t, published, 1)
	assert.Equal(t, "1", published[0].ID)
}

func TestSettingsRepository(t *testing.T) {
	store := memory.New()
	repo := sitecontent.NewSettingsRepository(store)
	ctx := context.Background()

	t.Run("Get_SeedsDefaults", func(t *testing.T) {
		settings := repo.Get(ctx)
		assert.Equal(t, "MarkasAI", settings.SiteName)
		assert.False(t, settings.MaintenanceMode)
	})

	t.Run("Update_MergesPartial", func(t *testing.T) {
		updated, err := repo.Update(ctx, json.RawMessage(`{"maintenanceMode":true}`))
		require.NoError(t, err)
		assert.True(t, updated.MaintenanceMode)
		// Untouched fields survive the merge.
		assert.Equal(t, "MarkasAI", updated.SiteName)

		// And the merge was written back whole.
		again := repo.Get(ctx)
		assert.True(t, again.MaintenanceMode)
	})

	t.Run("Update_TypeMismatchChangesNothing", func(t *testing.T) {
		before := repo.Get(ctx)

		got, err := repo.Update(ctx, json.RawMessage(`{"maintenanceMode":"yes"}`))
		require.ErrorIs(t, err, sitecontent.ErrMalformedPartial)
		assert.Equal(t, before, got)
		assert.Equal(t, before, repo.Get(ctx))
	})
}

func TestMediaRepository_DeleteMany(t *testing.T) {
	store := memory.New()
	require.NoError(t, store.Write(context.Background(), sitecontent.KeyMediaFiles, []byte("[]")))
	repo := sitecontent.NewMediaRepository(store)
	ctx := context.Background()

	now := time.Now()
	repo.Add(ctx, sitecontent.MediaFile{ID: "a", Name: "a.jpg", URL: "/media/a.jpg", Type: sitecontent.MediaTypeImage, Deletable: true, UploadedAt: now})
	repo.Add(ctx, sitecontent.MediaFile{ID: "b", Name: "b.jpg", URL: "/media/b.jpg", Type: sitecontent.MediaTypeImage, Deletable: true, UploadedAt: now})
	repo.Add(ctx, sitecontent.MediaFile{ID: "static", Name: "logo.png", URL: "/images/logo.png", Type: sitecontent.MediaTypeImage, Deletable: false, UploadedAt: now})

	removed := repo.DeleteMany(ctx, []string{"a", "static", "missing"})
	assert.Equal(t, []string{"a"}, removed)

	left := repo.All(ctx)
	require.Len(t, left, 2)
	assert.Nil(t, repo.ByID(ctx, "a"))
	// Built-in assets survive delete requests.
	assert.NotNil(t, repo.ByID(ctx, "static"))
}
