package lineage_test

import (
	"testing"

	"github.com/goto/lineage/core/lineage"
	"github.com/stretchr/testify/assert"
)

func TestFieldPredicates(t *testing.T) {
	f := lineage.Attribute("rowCount")

	cases := []struct {
		filter   lineage.Filter
		operator lineage.Operator
		value    string
	}{
		0:  {f.Eq("a"), lineage.OperatorEq, "a"},
		1:  {f.Neq("a"), lineage.OperatorNeq, "a"},
		2:  {f.StartsWith("a"), lineage.OperatorStartsWith, "a"},
		3:  {f.EndsWith("a"), lineage.OperatorEndsWith, "a"},
		4:  {f.Contains("a"), lineage.OperatorContains, "a"},
		5:  {f.NotContains("a"), lineage.OperatorNotContains, "a"},
		6:  {f.HasAnyValue(), lineage.OperatorNotNull, ""},
		7:  {f.HasNoValue(), lineage.OperatorIsNull, ""},
		8:  {f.EqBool(true), lineage.OperatorEq, "true"},
		9:  {f.Lt(10), lineage.OperatorLt, "10"},
		10: {f.Lte(1.5), lineage.OperatorLte, "1.5"},
		11: {f.Gt(0), lineage.OperatorGt, "0"},
		12: {f.Gte(1e6), lineage.OperatorGte, "1000000"},
	}
	for i, tc := range cases {
		assert.Equal(t, tc.operator, tc.filter.Operator, "test[%d]", i)
		assert.Equal(t, tc.value, tc.filter.Value, "test[%d]", i)
		assert.Equal(t, f, tc.filter.Field, "test[%d]", i)
		assert.True(t, tc.filter.Operator.IsValid(), "test[%d]", i)
	}
	assert.False(t, lineage.Operator("like").IsValid())
}

func TestParseDirection(t *testing.T) {
	cases := []struct {
		in       string
		expected lineage.Direction
		err      bool
	}{
		{in: "upstream", expected: lineage.DirectionUpstream},
		{in: "INPUT", expected: lineage.DirectionUpstream},
		{in: " Downstream ", expected: lineage.DirectionDownstream},
		{in: "output", expected: lineage.DirectionDownstream},
		{in: "both", expected: lineage.DirectionBoth},
		{in: "sideways", err: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := lineage.ParseDirection(tc.in)
			if tc.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.True(t, got.IsValid())
		})
	}
	assert.Equal(t, "upstream", lineage.DirectionUpstream.String())
}

func TestGraphRequest_Validate(t *testing.T) {
	assert.NoError(t, lineage.NewGraphRequest("guid-1").Validate())

	both := lineage.NewGraphRequest("guid-1")
	both.Direction = lineage.DirectionBoth
	assert.NoError(t, both.Validate())

	err := lineage.GraphRequest{Direction: lineage.DirectionUpstream, Depth: 0}.Validate()
	assert.EqualError(t, err, "guid is required and depth cannot be less than 1")
}

func TestListRequest_Validate(t *testing.T) {
	req := lineage.NewListRequest("guid-1")
	req.Size = 0
	req.Offset = -1
	assert.EqualError(t, req.Validate(), "from cannot be less than 0 and size cannot be less than 1")

	req = lineage.NewListRequest("guid-1")
	req.EntityFilters = &lineage.FilterList{
		Condition: "XOR",
		Criteria:  []lineage.EntityFilter{{AttributeName: "name", Operator: lineage.OperatorEq}},
	}
	assert.EqualError(t, req.Validate(), "error value \"XOR\" for key \"condition\" not recognized, only support \"AND OR\"")
}
