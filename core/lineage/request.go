package lineage

import (
	"github.com/goto/lineage/core/asset"
	"github.com/goto/lineage/core/validator"
)

const (
	// DefaultDepth is large enough to behave as an unbounded traversal.
	DefaultDepth = 1000000
	DefaultSize  = 10
)

// ListRequest is the wire request of the paged lineage list endpoint.
type ListRequest struct {
	GUID                         string      `json:"guid" validate:"required"`
	Depth                        int         `json:"depth" validate:"min=1"`
	Direction                    Direction   `json:"direction" validate:"oneof=INPUT OUTPUT"`
	EntityFilters                *FilterList `json:"entityFilters,omitempty"`
	EntityTraversalFilters       *FilterList `json:"entityTraversalFilters,omitempty"`
	RelationshipTraversalFilters *FilterList `json:"relationshipTraversalFilters,omitempty"`
	Offset                       int         `json:"from" validate:"gte=0"`
	Size                         int         `json:"size" validate:"min=1"`
	ExcludeMeanings              bool        `json:"excludeMeanings"`
	ExcludeClassifications       bool        `json:"excludeClassifications"`
	ImmediateNeighbors           bool        `json:"immediateNeighbors"`
	Attributes                   []string    `json:"attributes,omitempty"`
}

// NewListRequest returns a downstream request for guid with default paging.
func NewListRequest(guid string) ListRequest {
	return ListRequest{
		GUID:                   guid,
		Depth:                  DefaultDepth,
		Direction:              DirectionDownstream,
		Offset:                 0,
		Size:                   DefaultSize,
		ExcludeMeanings:        true,
		ExcludeClassifications: true,
	}
}

// Validate checks the request can be sent. BOTH is not a valid direction for
// the list endpoint.
func (r ListRequest) Validate() error {
	return validator.ValidateStruct(r)
}

// ListResponse is one page of the lineage list endpoint.
type ListResponse struct {
	Entities         []asset.Asset `json:"entities"`
	HasMore          bool          `json:"hasMore"`
	EntityCount      int           `json:"entityCount"`
	SearchParameters *ListRequest  `json:"searchParameters,omitempty"`
}

// GraphRequest asks for the full relation graph around GUID.
type GraphRequest struct {
	GUID                string    `json:"guid" validate:"required"`
	Depth               int       `json:"depth" validate:"min=1"`
	Direction           Direction `json:"direction" validate:"oneof=INPUT OUTPUT BOTH"`
	HideProcess         bool      `json:"hideProcess"`
	AllowDeletedProcess bool      `json:"allowDeletedProcess"`
}

func NewGraphRequest(guid string) GraphRequest {
	return GraphRequest{
		GUID:      guid,
		Depth:     DefaultDepth,
		Direction: DirectionDownstream,
	}
}

func (r GraphRequest) Validate() error {
	return validator.ValidateStruct(r)
}
