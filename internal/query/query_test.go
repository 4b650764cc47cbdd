package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestValidateFilter(t *testing.T) {
	tests := []struct {
		name    string
		filter  bson.M
		wantErr bool
	}{
		{
			name:   "plain equality",
			filter: bson.M{"status": "active"},
		},
		{
			name:   "comparison and membership",
			filter: bson.M{"rating": bson.M{"$gte": 3}, "country": bson.M{"$in": bson.A{"AE", "QA"}}},
		},
		{
			name: "or with regex",
			filter: bson.M{"$or": bson.A{
				bson.M{"title": bson.M{"$regex": "engineer", "$options": "i"}},
				bson.M{"description": bson.M{"$regex": "engineer", "$options": "i"}},
			}},
		},
		{
			name:    "where is rejected",
			filter:  bson.M{"$where": "function() { return true }"},
			wantErr: true,
		},
		{
			name:    "expr is rejected",
			filter:  bson.M{"$expr": bson.M{"$gt": bson.A{"$a", "$b"}}},
			wantErr: true,
		},
		{
			name:    "nested lookup-style operator is rejected",
			filter:  bson.M{"status": bson.M{"$function": "x"}},
			wantErr: true,
		},
		{
			name:    "rejection inside or branch",
			filter:  bson.M{"$or": bson.A{bson.M{"a": bson.M{"$mod": bson.A{2, 0}}}}},
			wantErr: true,
		},
		{
			name:   "plain map payloads from JSON decoding",
			filter: bson.M{"candidate": map[string]any{"name": "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilter(tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name    string
		update  bson.M
		wantErr bool
	}{
		{
			name:   "set and inc",
			update: bson.M{"$set": bson.M{"status": "screening"}, "$inc": bson.M{"views": 1}},
		},
		{
			name:   "push a note",
			update: bson.M{"$push": bson.M{"notes": bson.M{"text": "called candidate"}}},
		},
		{
			name:    "bare field replacement",
			update:  bson.M{"status": "screening"},
			wantErr: true,
		},
		{
			name:    "rename is rejected",
			update:  bson.M{"$rename": bson.M{"a": "b"}},
			wantErr: true,
		},
		{
			name:    "nested operator smuggled under set",
			update:  bson.M{"$set": bson.M{"status": bson.M{"$literal": "x"}}},
			wantErr: true,
		},
		{
			name:    "empty update",
			update:  bson.M{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpdate(tt.update)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument(bson.M{"id": "x", "title": "Job"}))
	assert.Error(t, ValidateDocument(bson.M{}))
	assert.Error(t, ValidateDocument(bson.M{"$set": bson.M{"a": 1}}))
	assert.Error(t, ValidateDocument(bson.M{"nested": bson.M{"$gt": 1}}))
}
