package cursor

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor (created_at + _id) of the last comment on a page.
type Cursor struct {
	CreatedAt int64  `json:"createdAt"`
	ID        string `json:"id"`
}

func EncodeCommentCursor(t time.Time, id bson.ObjectID) string {
	b, _ := json.Marshal(Cursor{
		CreatedAt: t.UnixMilli(),
		ID:        id.Hex(),
	})
	return base64.URLEncoding.EncodeToString(b)
}

func DecodeCommentCursor(s string) (time.Time, bson.ObjectID, error) {
	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return time.Time{}, bson.NilObjectID, errors.Join(ErrInvalidCursor, err)
	}

	var p Cursor
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, bson.NilObjectID, errors.Join(ErrInvalidCursor, err)
	}

	oid, err := bson.ObjectIDFromHex(p.ID)
	if err != nil {
		return time.Time{}, bson.NilObjectID, errors.Join(ErrInvalidCursor, err)
	}

	return time.UnixMilli(p.CreatedAt).UTC(), oid, nil
}

// Before reports whether (t, id) sorts strictly after the cursor position in a
// newest-first listing.
func Before(t time.Time, id bson.ObjectID, curT time.Time, curID bson.ObjectID) bool {
	if t.Before(curT) {
		return true
	}
	return t.Equal(curT) && id.Hex() < curID.Hex()
}
