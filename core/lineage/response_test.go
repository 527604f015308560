package lineage_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/goto/lineage/core/asset"
	"github.com/goto/lineage/core/lineage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(guid string) asset.Asset {
	return asset.Asset{TypeName: asset.TypeTable, GUID: guid}
}

func process(guid string) asset.Asset {
	return asset.Asset{TypeName: asset.TypeProcess, GUID: guid}
}

func sampleResponse() *lineage.Response {
	return &lineage.Response{
		BaseEntityGUID: "t1",
		Direction:      lineage.DirectionBoth,
		GUIDEntityMap: map[string]asset.Asset{
			"t1": table("t1"),
			"t2": table("t2"),
			"t3": table("t3"),
			"p1": process("p1"),
			"p2": process("p2"),
		},
		Relations: []lineage.Relation{
			rel("t1", "p1", "t2"),
			rel("t2", "p2", "t3"),
		},
	}
}

func guidsOf(assets []asset.Asset) []string {
	out := make([]string, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.GUID)
	}
	return out
}

func TestResponse_Graph(t *testing.T) {
	t.Run("should build the graph once and reuse it", func(t *testing.T) {
		resp := sampleResponse()

		g1, err := resp.Graph()
		require.NoError(t, err)
		g2, err := resp.Graph()
		require.NoError(t, err)

		assert.Same(t, g1, g2)
	})
	t.Run("should cache the build error", func(t *testing.T) {
		resp := sampleResponse()
		resp.Relations = append(resp.Relations, lineage.Relation{FromEntityID: "t3", ToEntityID: "t4"})

		_, err := resp.Graph()
		assert.ErrorIs(t, err, lineage.ErrNoGraphWithoutProcess)
		_, err = resp.Graph()
		assert.ErrorIs(t, err, lineage.ErrNoGraphWithoutProcess)

		_, err = resp.DownstreamAssets("")
		assert.ErrorIs(t, err, lineage.ErrNoGraphWithoutProcess)
	})
	t.Run("nil response", func(t *testing.T) {
		var resp *lineage.Response
		_, err := resp.Graph()
		assert.ErrorIs(t, err, lineage.ErrNilResponse)
	})
}

func TestResponse_Assets(t *testing.T) {
	resp := sampleResponse()

	type testCase struct {
		Description string
		Query       func(string) ([]asset.Asset, error)
		GUID        string
		Expected    []string
		Unordered   bool
	}
	testCases := []testCase{
		{
			Description: "all downstream defaults to the base entity",
			Query:       resp.AllDownstreamAssetsDFS,
			Expected:    []string{"t1", "t2", "t3"},
			Unordered:   true,
		},
		{
			Description: "all upstream from explicit guid",
			Query:       resp.AllUpstreamAssetsDFS,
			GUID:        "t3",
			Expected:    []string{"t1", "t2", "t3"},
			Unordered:   true,
		},
		{
			Description: "one hop downstream",
			Query:       resp.DownstreamAssets,
			GUID:        "t2",
			Expected:    []string{"t3"},
		},
		{
			Description: "one hop upstream",
			Query:       resp.UpstreamAssets,
			GUID:        "t2",
			Expected:    []string{"t1"},
		},
		{
			Description: "downstream processes of the base entity",
			Query:       resp.DownstreamProcesses,
			Expected:    []string{"p1"},
		},
		{
			Description: "upstream processes",
			Query:       resp.UpstreamProcesses,
			GUID:        "t3",
			Expected:    []string{"p2"},
		},
		{
			Description: "unknown guid has no neighbours",
			Query:       resp.DownstreamAssets,
			GUID:        "unknown-guid",
			Expected:    []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got, err := tc.Query(tc.GUID)
			require.NoError(t, err)
			if tc.Unordered {
				assert.ElementsMatch(t, tc.Expected, guidsOf(got))
				return
			}
			assert.Equal(t, tc.Expected, guidsOf(got))
		})
	}
}

func TestResponse_DanglingReference(t *testing.T) {
	resp := sampleResponse()
	delete(resp.GUIDEntityMap, "t3")

	_, err := resp.AllDownstreamAssetsDFS("")

	var notFound lineage.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "t3", notFound.GUID)

	got, err := resp.UpstreamAssets("t2")
	require.NoError(t, err)
	assert.Equal(t, []string{"t1"}, guidsOf(got))
}

func TestResponse_DecodeJSON(t *testing.T) {
	raw := `{
		"baseEntityGuid": "t1",
		"lineageDirection": "OUTPUT",
		"lineageDepth": 3,
		"hasMoreDownstreamVertices": true,
		"guidEntityMap": {
			"t1": {"typeName": "Table", "guid": "t1", "attributes": {"name": "orders"}},
			"p1": {"typeName": "Process", "guid": "p1"},
			"t2": {"typeName": "View", "guid": "t2"}
		},
		"relations": [
			{"fromEntityId": "t1", "toEntityId": "t2", "processId": "p1", "relationshipId": "r1"}
		]
	}`

	var resp lineage.Response
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	assert.Equal(t, lineage.DirectionDownstream, resp.Direction)
	assert.Equal(t, 3, resp.Depth)
	assert.True(t, resp.HasMoreDownstreamVertices)
	assert.Equal(t, "r1", resp.Relations[0].RelationshipID)

	got, err := resp.DownstreamAssets("")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, asset.TypeView, got[0].TypeName)
}
