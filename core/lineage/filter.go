package lineage

import (
	"strconv"
)

// Condition combines the criteria of a FilterList.
type Condition string

const (
	ConditionAnd Condition = "AND"
	ConditionOr  Condition = "OR"
)

// Operator is a comparison understood by the catalog's lineage filters.
type Operator string

const (
	OperatorEq          Operator = "eq"
	OperatorNeq         Operator = "neq"
	OperatorLt          Operator = "lt"
	OperatorLte         Operator = "lte"
	OperatorGt          Operator = "gt"
	OperatorGte         Operator = "gte"
	OperatorStartsWith  Operator = "startsWith"
	OperatorEndsWith    Operator = "endsWith"
	OperatorContains    Operator = "contains"
	OperatorNotContains Operator = "not_contains"
	OperatorIsNull      Operator = "isNull"
	OperatorNotNull     Operator = "notNull"
)

func (op Operator) IsValid() bool {
	switch op {
	case OperatorEq, OperatorNeq, OperatorLt, OperatorLte, OperatorGt, OperatorGte,
		OperatorStartsWith, OperatorEndsWith, OperatorContains, OperatorNotContains,
		OperatorIsNull, OperatorNotNull:
		return true
	}
	return false
}

// EntityFilter is a single wire-format comparison.
type EntityFilter struct {
	AttributeName  string   `json:"attributeName" validate:"required"`
	Operator       Operator `json:"operator" validate:"required"`
	AttributeValue string   `json:"attributeValue"`
}

// FilterList is a group of comparisons joined by Condition.
type FilterList struct {
	Condition Condition      `json:"condition" validate:"oneof=AND OR"`
	Criteria  []EntityFilter `json:"criterion" validate:"dive"`
}

// Field names an asset attribute. Name is the attribute name used when
// projecting attributes on results, InternalName the one filters run against.
type Field struct {
	Name         string
	InternalName string
}

// Attribute returns a Field whose projected and filtered names are the same.
func Attribute(name string) Field {
	return Field{Name: name, InternalName: name}
}

func (f Field) filterName() string {
	if f.InternalName != "" {
		return f.InternalName
	}
	return f.Name
}

// Filter is one lineage predicate on a Field.
type Filter struct {
	Field    Field
	Operator Operator
	Value    string
}

func (f Filter) toEntityFilter() EntityFilter {
	return EntityFilter{
		AttributeName:  f.Field.filterName(),
		Operator:       f.Operator,
		AttributeValue: f.Value,
	}
}

func (f Field) Eq(value string) Filter          { return f.filter(OperatorEq, value) }
func (f Field) Neq(value string) Filter         { return f.filter(OperatorNeq, value) }
func (f Field) StartsWith(value string) Filter  { return f.filter(OperatorStartsWith, value) }
func (f Field) EndsWith(value string) Filter    { return f.filter(OperatorEndsWith, value) }
func (f Field) Contains(value string) Filter    { return f.filter(OperatorContains, value) }
func (f Field) NotContains(value string) Filter { return f.filter(OperatorNotContains, value) }
func (f Field) HasAnyValue() Filter             { return f.filter(OperatorNotNull, "") }
func (f Field) HasNoValue() Filter              { return f.filter(OperatorIsNull, "") }

func (f Field) EqBool(value bool) Filter { return f.filter(OperatorEq, strconv.FormatBool(value)) }

func (f Field) Lt(value float64) Filter  { return f.filter(OperatorLt, formatNumber(value)) }
func (f Field) Lte(value float64) Filter { return f.filter(OperatorLte, formatNumber(value)) }
func (f Field) Gt(value float64) Filter  { return f.filter(OperatorGt, formatNumber(value)) }
func (f Field) Gte(value float64) Filter { return f.filter(OperatorGte, formatNumber(value)) }

func (f Field) filter(op Operator, value string) Filter {
	return Filter{Field: f, Operator: op, Value: value}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newFilterList(cond Condition, filters []Filter) *FilterList {
	if len(filters) == 0 {
		return nil
	}
	if cond == "" {
		cond = ConditionAnd
	}
	criteria := make([]EntityFilter, 0, len(filters))
	for _, f := range filters {
		criteria = append(criteria, f.toEntityFilter())
	}
	return &FilterList{Condition: cond, Criteria: criteria}
}
