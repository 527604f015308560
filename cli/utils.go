package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goto/lineage/core/lineage"
)

func prettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}

// parseFilter reads "attribute:operator[:value]". The value keeps any
// further colons, e.g. "qualifiedName:startsWith:default/db:schema".
func parseFilter(s string) (lineage.Filter, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) < 2 || strings.TrimSpace(parts[0]) == "" {
		return lineage.Filter{}, fmt.Errorf("invalid filter %q, expected attribute:operator[:value]", s)
	}

	op := lineage.Operator(strings.TrimSpace(parts[1]))
	if !op.IsValid() {
		return lineage.Filter{}, fmt.Errorf("invalid filter %q: unknown operator %q", s, op)
	}

	var value string
	if len(parts) == 3 {
		value = parts[2]
	}
	if value == "" && op != lineage.OperatorIsNull && op != lineage.OperatorNotNull {
		return lineage.Filter{}, fmt.Errorf("invalid filter %q: operator %q needs a value", s, op)
	}

	return lineage.Filter{
		Field:    lineage.Attribute(strings.TrimSpace(parts[0])),
		Operator: op,
		Value:    value,
	}, nil
}

func parseFilters(ss []string) ([]lineage.Filter, error) {
	filters := make([]lineage.Filter, 0, len(ss))
	for _, s := range ss {
		f, err := parseFilter(s)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func parseCondition(s string) (lineage.Condition, error) {
	switch c := lineage.Condition(strings.ToUpper(strings.TrimSpace(s))); c {
	case lineage.ConditionAnd, lineage.ConditionOr:
		return c, nil
	}
	return "", fmt.Errorf("invalid condition %q, only support \"AND OR\"", s)
}

func attributeFields(names []string) []lineage.Field {
	fields := make([]lineage.Field, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			fields = append(fields, lineage.Attribute(n))
		}
	}
	return fields
}
