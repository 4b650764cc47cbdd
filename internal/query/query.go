package query

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Package query validates caller-supplied filter and update payloads
// before they reach the document store. Only a closed set of operators
// is accepted; anything outside it is rejected rather than passed
// through unexamined.

// filterOps are the operators accepted anywhere inside a find filter.
var filterOps = map[string]bool{
	"$eq":      true,
	"$ne":      true,
	"$gt":      true,
	"$gte":     true,
	"$lt":      true,
	"$lte":     true,
	"$in":      true,
	"$nin":     true,
	"$regex":   true,
	"$options": true,
	"$exists":  true,
	"$or":      true,
	"$and":     true,
}

// updateOps are the top-level operators accepted in an update document.
var updateOps = map[string]bool{
	"$set":   true,
	"$unset": true,
	"$inc":   true,
	"$push":  true,
	"$pull":  true,
}

// ValidateFilter walks a filter payload and rejects unsupported operators.
func ValidateFilter(filter bson.M) error {
	return walkFilter(filter)
}

func walkFilter(v any) error {
	switch val := v.(type) {
	case bson.M:
		for k, sub := range val {
			if strings.HasPrefix(k, "$") && !filterOps[k] {
				return fmt.Errorf("unsupported filter operator %q", k)
			}
			if err := walkFilter(sub); err != nil {
				return err
			}
		}
	case map[string]any:
		for k, sub := range val {
			if strings.HasPrefix(k, "$") && !filterOps[k] {
				return fmt.Errorf("unsupported filter operator %q", k)
			}
			if err := walkFilter(sub); err != nil {
				return err
			}
		}
	case bson.A:
		for _, sub := range val {
			if err := walkFilter(sub); err != nil {
				return err
			}
		}
	case []any:
		for _, sub := range val {
			if err := walkFilter(sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateUpdate checks an update document: every top-level key must be
// one of the supported update operators, and the field documents beneath
// them may not smuggle in further operators.
func ValidateUpdate(update bson.M) error {
	if len(update) == 0 {
		return fmt.Errorf("empty update")
	}
	for k, sub := range update {
		if !strings.HasPrefix(k, "$") {
			return fmt.Errorf("bare field %q in update; use an update operator", k)
		}
		if !updateOps[k] {
			return fmt.Errorf("unsupported update operator %q", k)
		}
		if err := walkOperatorFree(sub); err != nil {
			return err
		}
	}
	return nil
}

// walkOperatorFree rejects any nested $-prefixed keys.
func walkOperatorFree(v any) error {
	switch val := v.(type) {
	case bson.M:
		for k, sub := range val {
			if strings.HasPrefix(k, "$") {
				return fmt.Errorf("unsupported nested operator %q", k)
			}
			if err := walkOperatorFree(sub); err != nil {
				return err
			}
		}
	case map[string]any:
		for k, sub := range val {
			if strings.HasPrefix(k, "$") {
				return fmt.Errorf("unsupported nested operator %q", k)
			}
			if err := walkOperatorFree(sub); err != nil {
				return err
			}
		}
	case bson.A:
		for _, sub := range val {
			if err := walkOperatorFree(sub); err != nil {
				return err
			}
		}
	case []any:
		for _, sub := range val {
			if err := walkOperatorFree(sub); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateDocument rejects insert payloads containing any $-operators.
func ValidateDocument(doc bson.M) error {
	if len(doc) == 0 {
		return fmt.Errorf("empty document")
	}
	return walkOperatorFree(doc)
}
