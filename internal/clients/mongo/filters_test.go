package mongo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestSetUnset(t *testing.T) {
	tests := []struct {
		name   string
		fields map[string]any
		want   bson.M
	}{
		{
			name:   "set only",
			fields: map[string]any{"role": "admin"},
			want:   bson.M{"$set": bson.M{"role": "admin"}},
		},
		{
			name:   "nil values are unset",
			fields: map[string]any{"authenticationKey": nil, "firstName": "Ada"},
			want: bson.M{
				"$set":   bson.M{"firstName": "Ada"},
				"$unset": bson.M{"authenticationKey": ""},
			},
		},
		{
			name:   "empty",
			fields: map[string]any{},
			want:   bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, setUnset(tt.fields))
		})
	}
}

func TestTranslateNotFound(t *testing.T) {
	domain := errors.New("gone")
	other := errors.New("socket closed")

	assert.Equal(t, domain, translateNotFound(mongo.ErrNoDocuments, domain))
	assert.Equal(t, other, translateNotFound(other, domain))
}
