package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagmark/tagmark/internal/domain"
	"github.com/tagmark/tagmark/internal/logger"
	"github.com/tagmark/tagmark/internal/service"
	"github.com/tagmark/tagmark/internal/store/memory"
)

const seedYAML = `
- owner: peter
  bookmarks:
    - url: https://go.dev
      title: The Go Programming Language
      tags: [go, docs]
    - url: https://github.com
      title: GitHub
      tags: [code]
- owner: work
  bookmarks:
    - url: https://example.com
      title: Example
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSeederSeedsEmptyOwners(t *testing.T) {
	ctx := context.Background()
	svc := service.New(memory.New())
	seeder := NewSeeder(writeSeedFile(t, seedYAML), svc, logger.NewNop())

	require.NoError(t, seeder.Run(ctx))

	peters, err := svc.FindByOwner(ctx, "peter")
	require.NoError(t, err)
	assert.Len(t, peters, 2)

	works, err := svc.FindByOwner(ctx, "work")
	require.NoError(t, err)
	require.Len(t, works, 1)
	assert.Equal(t, "https://example.com", works[0].URL)
}

func TestSeederSkipsOwnersWithBookmarks(t *testing.T) {
	ctx := context.Background()
	svc := service.New(memory.New())
	existing := domain.NewBookmark("peter", "https://kept.example", "Kept")
	require.NoError(t, svc.Save(ctx, existing))

	seeder := NewSeeder(writeSeedFile(t, seedYAML), svc, logger.NewNop())
	require.NoError(t, seeder.Run(ctx))

	peters, err := svc.FindByOwner(ctx, "peter")
	require.NoError(t, err)
	require.Len(t, peters, 1, "seeding must not touch a non-empty account")
	assert.Equal(t, "https://kept.example", peters[0].URL)

	works, err := svc.FindByOwner(ctx, "work")
	require.NoError(t, err)
	assert.Len(t, works, 1)
}

func TestSeederRunTwiceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := service.New(memory.New())
	seeder := NewSeeder(writeSeedFile(t, seedYAML), svc, logger.NewNop())

	require.NoError(t, seeder.Run(ctx))
	require.NoError(t, seeder.Run(ctx))

	peters, err := svc.FindByOwner(ctx, "peter")
	require.NoError(t, err)
	assert.Len(t, peters, 2)
}

func TestSeederMissingFile(t *testing.T) {
	svc := service.New(memory.New())
	seeder := NewSeeder(filepath.Join(t.TempDir(), "absent.yaml"), svc, logger.NewNop())

	assert.Error(t, seeder.Run(context.Background()))
}

func TestLoaderRejectsBadYAML(t *testing.T) {
	loader := NewLoader(writeSeedFile(t, "owner: [unbalanced"))

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestMapperSkipsEntriesWithoutURL(t *testing.T) {
	mapper := NewMapper()

	bookmarks, err := mapper.MapOwner(OwnerFixtures{
		Owner: "peter",
		Bookmarks: []Entry{
			{URL: "https://go.dev", Title: "Go", Tags: []string{"Go"}},
			{Title: "no url"},
		},
	})
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, []string{"go"}, bookmarks[0].Tags)
}

func TestMapperRejectsMissingOwner(t *testing.T) {
	_, err := NewMapper().MapOwner(OwnerFixtures{})
	assert.Error(t, err)
}
