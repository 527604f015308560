package lineage

import (
	"fmt"
)

// Fluent accumulates lineage list options and turns them into a ListRequest.
//
// Fluent is a value: every method returns a modified copy and never touches
// the receiver, so a partially configured Fluent can be reused as a template.
//
// IncludesInResults filters only what is returned, traversal continues past
// assets that do not match. WhereAssets and WhereRelationships prune the
// traversal itself, so anything reachable only through an excluded asset or
// relationship is excluded too.
type Fluent struct {
	startingGUID           string
	depth                  int
	direction              Direction
	size                   int
	excludeMeanings        bool
	excludeClassifications bool
	immediateNeighbors     bool

	includesInResults  []Filter
	includeOnResults   []Field
	whereAssets        []Filter
	whereRelationships []Filter

	includesCondition           Condition
	whereAssetsCondition        Condition
	whereRelationshipsCondition Condition
}

func NewFluent(startingGUID string) Fluent {
	return Fluent{
		startingGUID:                startingGUID,
		depth:                       DefaultDepth,
		direction:                   DirectionDownstream,
		size:                        DefaultSize,
		excludeMeanings:             true,
		excludeClassifications:      true,
		includesCondition:           ConditionAnd,
		whereAssetsCondition:        ConditionAnd,
		whereRelationshipsCondition: ConditionAnd,
	}
}

func (f Fluent) StartingGUID() string { return f.startingGUID }

func (f Fluent) Depth(depth int) Fluent {
	f.depth = depth
	return f
}

func (f Fluent) Direction(dir Direction) Fluent {
	f.direction = dir
	return f
}

func (f Fluent) Size(size int) Fluent {
	f.size = size
	return f
}

func (f Fluent) ExcludeMeanings(exclude bool) Fluent {
	f.excludeMeanings = exclude
	return f
}

func (f Fluent) ExcludeClassifications(exclude bool) Fluent {
	f.excludeClassifications = exclude
	return f
}

// ImmediateNeighbors asks the catalog to also return one-hop neighbours of
// every returned asset.
func (f Fluent) ImmediateNeighbors(include bool) Fluent {
	f.immediateNeighbors = include
	return f
}

// IncludesInResults adds result filters.
func (f Fluent) IncludesInResults(filters ...Filter) Fluent {
	f.includesInResults = appendCopy(f.includesInResults, filters...)
	return f
}

// IncludeOnResults adds attributes to project onto every returned asset.
func (f Fluent) IncludeOnResults(fields ...Field) Fluent {
	f.includeOnResults = appendCopy(f.includeOnResults, fields...)
	return f
}

// WhereAssets adds asset traversal filters.
func (f Fluent) WhereAssets(filters ...Filter) Fluent {
	f.whereAssets = appendCopy(f.whereAssets, filters...)
	return f
}

// WhereRelationships adds relationship traversal filters.
func (f Fluent) WhereRelationships(filters ...Filter) Fluent {
	f.whereRelationships = appendCopy(f.whereRelationships, filters...)
	return f
}

func (f Fluent) IncludesCondition(c Condition) Fluent {
	f.includesCondition = c
	return f
}

func (f Fluent) WhereAssetsCondition(c Condition) Fluent {
	f.whereAssetsCondition = c
	return f
}

func (f Fluent) WhereRelationshipsCondition(c Condition) Fluent {
	f.whereRelationshipsCondition = c
	return f
}

// Request materialises the accumulated options.
func (f Fluent) Request() (ListRequest, error) {
	if f.startingGUID == "" {
		return ListRequest{}, ErrMissingStartingGUID
	}

	req := NewListRequest(f.startingGUID)
	if f.depth > 0 {
		req.Depth = f.depth
	}
	if f.direction != "" {
		req.Direction = f.direction
	}
	if f.size > 0 {
		req.Size = f.size
	}
	req.ExcludeMeanings = f.excludeMeanings
	req.ExcludeClassifications = f.excludeClassifications
	req.ImmediateNeighbors = f.immediateNeighbors

	req.EntityFilters = newFilterList(f.includesCondition, f.includesInResults)
	req.EntityTraversalFilters = newFilterList(f.whereAssetsCondition, f.whereAssets)
	req.RelationshipTraversalFilters = newFilterList(f.whereRelationshipsCondition, f.whereRelationships)

	if len(f.includeOnResults) > 0 {
		req.Attributes = make([]string, 0, len(f.includeOnResults))
		for _, field := range f.includeOnResults {
			req.Attributes = append(req.Attributes, field.Name)
		}
	}

	if err := req.Validate(); err != nil {
		return ListRequest{}, fmt.Errorf("invalid lineage list request: %w", err)
	}
	return req, nil
}

// appendCopy never writes into the backing array of s, so slices shared with
// earlier Fluent values stay untouched.
func appendCopy[T any](s []T, values ...T) []T {
	out := make([]T, 0, len(s)+len(values))
	out = append(out, s...)
	return append(out, values...)
}
