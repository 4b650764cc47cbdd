package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"jobboard/internal/query"
	"jobboard/internal/repository"
)

const (
	findDefaultLimit = 50
	findMaxLimit     = 500
)

// Capability is the set of gateway operations permitted on a collection.
type Capability struct {
	Find   bool
	Insert bool
	Update bool
	Delete bool
}

// capabilities is the fixed allow-list. A collection absent from this
// table is unreachable through the gateway regardless of caller role.
// audit_logs is append-and-read only: the audit trail is not editable
// through the generic surface.
var capabilities = map[string]Capability{
	"jobs":         {Find: true, Insert: true, Update: true, Delete: true},
	"applications": {Find: true, Insert: true, Update: true, Delete: true},
	"media":        {Find: true, Insert: true, Update: true, Delete: true},
	"users":        {Find: true, Insert: true, Update: true, Delete: true},
	"settings":     {Find: true, Insert: true, Update: true, Delete: true},
	"audit_logs":   {Find: true, Insert: true},
	"pages":        {Find: true, Insert: true, Update: true, Delete: true},
}

// FindRequest is the generic find payload.
type FindRequest struct {
	Collection string         `json:"collection"`
	Filter     map[string]any `json:"filter"`
	Projection map[string]int `json:"projection,omitempty"`
	// Sort is an ordered list of [field, direction] pairs.
	Sort  [][2]any `json:"sort,omitempty"`
	Limit int64    `json:"limit,omitempty"`
	Skip  int64    `json:"skip,omitempty"`
}

// AdminService is the generic allow-listed document gateway. Callers are
// authorized before the service runs; this layer enforces the capability
// table and the closed query-operator set.
type AdminService interface {
	Find(ctx context.Context, req FindRequest) ([]bson.M, error)
	InsertOne(ctx context.Context, collection string, doc map[string]any) (string, error)
	UpdateOne(ctx context.Context, collection string, filter, update map[string]any) (matched, modified int64, err error)
	DeleteOne(ctx context.Context, collection string, filter map[string]any) (int64, error)
}

type adminService struct {
	repo repository.AdminRepository
}

// NewAdminService constructs a new AdminService.
func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminService{repo: repo}
}

func allowed(collection string, op func(Capability) bool) error {
	c, ok := capabilities[collection]
	if !ok {
		return ErrCollectionNotAllowed
	}
	if !op(c) {
		return ErrOperationNotAllowed
	}
	return nil
}

func (s *adminService) Find(ctx context.Context, req FindRequest) ([]bson.M, error) {
	if err := allowed(req.Collection, func(c Capability) bool { return c.Find }); err != nil {
		return nil, err
	}

	filter := bson.M(req.Filter)
	if filter == nil {
		filter = bson.M{}
	}
	if err := query.ValidateFilter(filter); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = findDefaultLimit
	}
	if limit > findMaxLimit {
		limit = findMaxLimit
	}
	skip := req.Skip
	if skip < 0 {
		skip = 0
	}

	q := repository.AdminQuery{
		Filter: filter,
		Limit:  limit,
		Skip:   skip,
	}
	if req.Projection != nil {
		proj := bson.M{}
		for k, v := range req.Projection {
			proj[k] = v
		}
		q.Projection = proj
	}
	for _, pair := range req.Sort {
		field, ok := pair[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: sort field must be a string", ErrBadQuery)
		}
		f, ok := pair[1].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: sort direction must be numeric", ErrBadQuery)
		}
		dir := 1
		if f < 0 {
			dir = -1
		}
		q.Sort = append(q.Sort, bson.E{Key: field, Value: dir})
	}

	return s.repo.Find(ctx, req.Collection, q)
}

func (s *adminService) InsertOne(ctx context.Context, collection string, doc map[string]any) (string, error) {
	if err := allowed(collection, func(c Capability) bool { return c.Insert }); err != nil {
		return "", err
	}
	d := bson.M(doc)
	if err := query.ValidateDocument(d); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadQuery, err)
	}
	return s.repo.InsertOne(ctx, collection, d)
}

func (s *adminService) UpdateOne(ctx context.Context, collection string, filter, update map[string]any) (int64, int64, error) {
	if err := allowed(collection, func(c Capability) bool { return c.Update }); err != nil {
		return 0, 0, err
	}
	f := bson.M(filter)
	if f == nil {
		f = bson.M{}
	}
	if err := query.ValidateFilter(f); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}
	u := bson.M(update)
	if err := query.ValidateUpdate(u); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}
	return s.repo.UpdateOne(ctx, collection, f, u)
}

func (s *adminService) DeleteOne(ctx context.Context, collection string, filter map[string]any) (int64, error) {
	if err := allowed(collection, func(c Capability) bool { return c.Delete }); err != nil {
		return 0, err
	}
	f := bson.M(filter)
	if len(f) == 0 {
		// An empty filter would delete an arbitrary document.
		return 0, fmt.Errorf("%w: delete requires a filter", ErrBadQuery)
	}
	if err := query.ValidateFilter(f); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadQuery, err)
	}
	return s.repo.DeleteOne(ctx, collection, f)
}
