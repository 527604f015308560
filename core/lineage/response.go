package lineage

import (
	"sync"

	"github.com/goto/lineage/core/asset"
)

// Response is a fetched lineage payload: the assets involved keyed by guid and
// the flat relation list between them. The graph over Relations is built on
// first use and cached; Relations must not be modified after that.
//
// Every query method takes a guid; an empty guid means BaseEntityGUID.
type Response struct {
	BaseEntityGUID            string                 `json:"baseEntityGuid"`
	Direction                 Direction              `json:"lineageDirection"`
	Depth                     int                    `json:"lineageDepth"`
	Limit                     int                    `json:"limit"`
	Offset                    int                    `json:"offset"`
	HasMoreUpstreamVertices   bool                   `json:"hasMoreUpstreamVertices"`
	HasMoreDownstreamVertices bool                   `json:"hasMoreDownstreamVertices"`
	GUIDEntityMap             map[string]asset.Asset `json:"guidEntityMap"`
	Relations                 []Relation             `json:"relations"`

	graphOnce sync.Once
	graph     *Graph
	graphErr  error
}

// Graph returns the lineage graph of the response, building it once.
func (r *Response) Graph() (*Graph, error) {
	if r == nil {
		return nil, ErrNilResponse
	}
	r.graphOnce.Do(func() {
		r.graph, r.graphErr = NewGraph(r.Relations)
	})
	return r.graph, r.graphErr
}

func (r *Response) AllDownstreamAssetsDFS(guid string) ([]asset.Asset, error) {
	return r.assets(guid, (*Graph).AllDownstreamAssetGUIDsDFS)
}

func (r *Response) AllUpstreamAssetsDFS(guid string) ([]asset.Asset, error) {
	return r.assets(guid, (*Graph).AllUpstreamAssetGUIDsDFS)
}

func (r *Response) DownstreamAssets(guid string) ([]asset.Asset, error) {
	return r.assets(guid, (*Graph).DownstreamAssetGUIDs)
}

func (r *Response) UpstreamAssets(guid string) ([]asset.Asset, error) {
	return r.assets(guid, (*Graph).UpstreamAssetGUIDs)
}

func (r *Response) DownstreamProcesses(guid string) ([]asset.Asset, error) {
	return r.assets(guid, (*Graph).DownstreamProcessGUIDs)
}

func (r *Response) UpstreamProcesses(guid string) ([]asset.Asset, error) {
	return r.assets(guid, (*Graph).UpstreamProcessGUIDs)
}

// Asset resolves a single guid against the entity map.
func (r *Response) Asset(guid string) (asset.Asset, error) {
	a, ok := r.GUIDEntityMap[guid]
	if !ok {
		return asset.Asset{}, NotFoundError{GUID: guid}
	}
	return a, nil
}

func (r *Response) assets(guid string, query func(*Graph, string) []string) ([]asset.Asset, error) {
	g, err := r.Graph()
	if err != nil {
		return nil, err
	}
	if guid == "" {
		guid = r.BaseEntityGUID
	}

	guids := query(g, guid)
	assets := make([]asset.Asset, 0, len(guids))
	for _, id := range guids {
		a, err := r.Asset(id)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, nil
}
