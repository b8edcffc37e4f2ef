package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"smartpet-backend/internal/repository"
)

func TestVoteIndexIsUniqueOnUserAndPost(t *testing.T) {
	votes := Indexes()[repository.ColVotes]
	require.NotEmpty(t, votes)

	first := votes[0]
	assert.Equal(t, bson.D{{Key: "user_id", Value: 1}, {Key: "post_id", Value: 1}}, first.Keys)

	var opts options.IndexOptions
	for _, set := range first.Options.List() {
		require.NoError(t, set(&opts))
	}
	require.NotNil(t, opts.Unique)
	assert.True(t, *opts.Unique)
}

func TestEveryCollectionHasNamedIndexes(t *testing.T) {
	for col, models := range Indexes() {
		for _, m := range models {
			var opts options.IndexOptions
			for _, set := range m.Options.List() {
				require.NoError(t, set(&opts))
			}
			require.NotNil(t, opts.Name, col)
			assert.NotEmpty(t, *opts.Name, col)
		}
	}
}
