package cursor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestCommentCursor(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 30, 0, 123e6, time.UTC)
	id := bson.NewObjectID()

	gotT, gotID, err := DecodeCommentCursor(EncodeCommentCursor(at, id))
	require.NoError(t, err)
	assert.True(t, at.Equal(gotT))
	assert.Equal(t, id, gotID)

	for _, bad := range []string{"%%%", "bm90IGpzb24=", "eyJjcmVhdGVkQXQiOjEsImlkIjoieiJ9"} {
		_, _, err := DecodeCommentCursor(bad)
		assert.ErrorIs(t, err, ErrInvalidCursor, bad)
	}
}

func TestBefore(t *testing.T) {
	at := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	lo, _ := bson.ObjectIDFromHex("000000000000000000000001")
	hi, _ := bson.ObjectIDFromHex("000000000000000000000002")

	assert.True(t, Before(at.Add(-time.Second), hi, at, lo))
	assert.True(t, Before(at, lo, at, hi))
	assert.False(t, Before(at, hi, at, lo))
	assert.False(t, Before(at, lo, at, lo))
	assert.False(t, Before(at.Add(time.Second), lo, at, hi))
}
