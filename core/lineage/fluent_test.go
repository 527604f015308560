package lineage_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goto/lineage/core/lineage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	typeName      = lineage.Attribute("__typeName")
	qualifiedName = lineage.Field{Name: "qualifiedName", InternalName: "qualifiedName.keyword"}
	certificate   = lineage.Attribute("certificateStatus")
)

func TestFluent_Request(t *testing.T) {
	type testCase struct {
		Description string
		Fluent      lineage.Fluent
		Expected    lineage.ListRequest
		ErrString   string
	}

	testCases := []testCase{
		{
			Description: "defaults only",
			Fluent:      lineage.NewFluent("guid-1"),
			Expected:    lineage.NewListRequest("guid-1"),
		},
		{
			Description: "scalar options are copied across",
			Fluent: lineage.NewFluent("guid-1").
				Depth(3).
				Direction(lineage.DirectionUpstream).
				Size(50).
				ExcludeMeanings(false).
				ExcludeClassifications(false).
				ImmediateNeighbors(true),
			Expected: lineage.ListRequest{
				GUID:               "guid-1",
				Depth:              3,
				Direction:          lineage.DirectionUpstream,
				Size:               50,
				ImmediateNeighbors: true,
			},
		},
		{
			Description: "result and traversal filters stay separate",
			Fluent: lineage.NewFluent("guid-1").
				IncludesInResults(typeName.Eq("Table")).
				WhereAssets(certificate.Neq("DEPRECATED")).
				WhereRelationships(typeName.Neq("ColumnProcess")).
				IncludeOnResults(qualifiedName, certificate),
			Expected: func() lineage.ListRequest {
				req := lineage.NewListRequest("guid-1")
				req.EntityFilters = &lineage.FilterList{
					Condition: lineage.ConditionAnd,
					Criteria: []lineage.EntityFilter{
						{AttributeName: "__typeName", Operator: lineage.OperatorEq, AttributeValue: "Table"},
					},
				}
				req.EntityTraversalFilters = &lineage.FilterList{
					Condition: lineage.ConditionAnd,
					Criteria: []lineage.EntityFilter{
						{AttributeName: "certificateStatus", Operator: lineage.OperatorNeq, AttributeValue: "DEPRECATED"},
					},
				}
				req.RelationshipTraversalFilters = &lineage.FilterList{
					Condition: lineage.ConditionAnd,
					Criteria: []lineage.EntityFilter{
						{AttributeName: "__typeName", Operator: lineage.OperatorNeq, AttributeValue: "ColumnProcess"},
					},
				}
				req.Attributes = []string{"qualifiedName", "certificateStatus"}
				return req
			}(),
		},
		{
			Description: "conditions and internal field names are honoured",
			Fluent: lineage.NewFluent("guid-1").
				IncludesInResults(qualifiedName.StartsWith("default/snowflake"), typeName.Eq("View")).
				IncludesCondition(lineage.ConditionOr),
			Expected: func() lineage.ListRequest {
				req := lineage.NewListRequest("guid-1")
				req.EntityFilters = &lineage.FilterList{
					Condition: lineage.ConditionOr,
					Criteria: []lineage.EntityFilter{
						{AttributeName: "qualifiedName.keyword", Operator: lineage.OperatorStartsWith, AttributeValue: "default/snowflake"},
						{AttributeName: "__typeName", Operator: lineage.OperatorEq, AttributeValue: "View"},
					},
				}
				return req
			}(),
		},
		{
			Description: "missing starting guid fails",
			Fluent:      lineage.NewFluent(""),
			ErrString:   lineage.ErrMissingStartingGUID.Error(),
		},
		{
			Description: "both direction is rejected for list requests",
			Fluent:      lineage.NewFluent("guid-1").Direction(lineage.DirectionBoth),
			ErrString:   "invalid lineage list request: error value \"BOTH\" for key \"direction\" not recognized, only support \"INPUT OUTPUT\"",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got, err := tc.Fluent.Request()
			if tc.ErrString != "" {
				require.Error(t, err)
				assert.Equal(t, tc.ErrString, err.Error())
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.Expected, got); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFluent_CopyOnWrite(t *testing.T) {
	t.Run("where assets leaves the receiver untouched", func(t *testing.T) {
		b1 := lineage.NewFluent("guid-1")
		b2 := b1.WhereAssets(certificate.Eq("VERIFIED"))

		r1, err := b1.Request()
		require.NoError(t, err)
		r2, err := b2.Request()
		require.NoError(t, err)

		assert.Nil(t, r1.EntityTraversalFilters)
		require.NotNil(t, r2.EntityTraversalFilters)
		assert.Equal(t, "certificateStatus", r2.EntityTraversalFilters.Criteria[0].AttributeName)
	})
	t.Run("siblings derived from one template do not share filters", func(t *testing.T) {
		template := lineage.NewFluent("guid-1").
			IncludesInResults(typeName.Eq("Table")).
			IncludesInResults(typeName.Eq("View"))

		tables := template.IncludesInResults(certificate.Eq("VERIFIED"))
		views := template.IncludesInResults(certificate.Eq("DRAFT"))

		rt, err := tables.Request()
		require.NoError(t, err)
		rv, err := views.Request()
		require.NoError(t, err)
		rtpl, err := template.Request()
		require.NoError(t, err)

		assert.Len(t, rtpl.EntityFilters.Criteria, 2)
		assert.Equal(t, "VERIFIED", rt.EntityFilters.Criteria[2].AttributeValue)
		assert.Equal(t, "DRAFT", rv.EntityFilters.Criteria[2].AttributeValue)
	})
	t.Run("scalar setters return copies", func(t *testing.T) {
		b1 := lineage.NewFluent("guid-1")
		_ = b1.Depth(2).Size(99).Direction(lineage.DirectionUpstream)

		r1, err := b1.Request()
		require.NoError(t, err)
		assert.Equal(t, lineage.NewListRequest("guid-1"), r1)
	})
}

func TestListRequest_JSON(t *testing.T) {
	req, err := lineage.NewFluent("guid-1").
		Depth(2).
		WhereAssets(certificate.HasAnyValue()).
		IncludeOnResults(qualifiedName).
		Request()
	require.NoError(t, err)

	b, err := json.Marshal(req)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"guid": "guid-1",
		"depth": 2,
		"direction": "OUTPUT",
		"entityTraversalFilters": {
			"condition": "AND",
			"criterion": [{"attributeName": "certificateStatus", "operator": "notNull", "attributeValue": ""}]
		},
		"from": 0,
		"size": 10,
		"excludeMeanings": true,
		"excludeClassifications": true,
		"immediateNeighbors": false,
		"attributes": ["qualifiedName"]
	}`, string(b))
}
