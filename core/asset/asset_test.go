package asset_test

import (
	"encoding/json"
	"testing"

	"github.com/goto/lineage/core/asset"
	"github.com/r3labs/diff/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetDiff(t *testing.T) {
	cases := []struct {
		Name           string
		Source, Target string
		Changelog      diff.Changelog
	}{
		{
			"ignored field won't be compared",
			`{
				"typeName": "Table",
				"guid": "1234"
			}`,
			`{
				"typeName": "View",
				"guid": "5678"
			}`,
			nil,
		},
		{
			"updated header field should be reflected",
			`{
				"status": "ACTIVE"
			}`,
			`{
				"status": "DELETED"
			}`,
			diff.Changelog{
				diff.Change{Type: diff.UPDATE, Path: []string{"status"}, From: "ACTIVE", To: "DELETED"},
			},
		},
		{
			"updated attribute should be reflected",
			`{
				"attributes": {"name": "orders"}
			}`,
			`{
				"attributes": {"name": "orders_v2"}
			}`,
			diff.Changelog{
				diff.Change{Type: diff.UPDATE, Path: []string{"attributes", "name"}, From: "orders", To: "orders_v2"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			var sourceAsset asset.Asset
			require.NoError(t, json.Unmarshal([]byte(tc.Source), &sourceAsset))

			var targetAsset asset.Asset
			require.NoError(t, json.Unmarshal([]byte(tc.Target), &targetAsset))

			cl, err := sourceAsset.Diff(&targetAsset)
			require.NoError(t, err)
			assert.Equal(t, tc.Changelog, cl)
		})
	}
}

func TestAssetAccessors(t *testing.T) {
	a := asset.Asset{
		TypeName:    asset.TypeTable,
		DisplayText: "Orders",
		Attributes: map[string]interface{}{
			"qualifiedName": "default/snowflake/db/orders",
		},
	}

	assert.Equal(t, "default/snowflake/db/orders", a.QualifiedName())
	assert.Equal(t, "Orders", a.Name())

	a.Attributes["name"] = "orders"
	assert.Equal(t, "orders", a.Name())

	assert.Equal(t, "", asset.Asset{}.QualifiedName())
	assert.True(t, asset.TypeColumnProcess.IsProcess())
	assert.False(t, asset.TypeTable.IsProcess())
}
