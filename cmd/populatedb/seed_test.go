package main

import (
	"context"
	"testing"

	"locallibrary/internal/config"
	"locallibrary/internal/infrastructure/memstore"
	"locallibrary/pkg/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSample(t *testing.T) {
	require.NoError(t, validateSample())
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	c := container.NewMemoryContainer(&config.Config{}, memstore.New())

	counts, err := seed(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, len(sampleAuthors), counts.Authors)
	assert.Equal(t, len(sampleGenres), counts.Genres)
	assert.Equal(t, len(sampleBooks), counts.Books)
	assert.Equal(t, len(sampleCopies), counts.BookInstances)

	stored, err := c.CatalogService.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, counts.Books, stored.Books)
	assert.Equal(t, 5, stored.AvailableInstances)

	// genres are deduplicated on a second run, everything else is added again
	again, err := seed(ctx, c)
	require.NoError(t, err)
	assert.Zero(t, again.Genres)
	assert.Equal(t, len(sampleBooks), again.Books)
}
