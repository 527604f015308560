package asset

const (
	TypeTable         Type = "Table"
	TypeView          Type = "View"
	TypeColumn        Type = "Column"
	TypeProcess       Type = "Process"
	TypeColumnProcess Type = "ColumnProcess"
	TypeDashboard     Type = "Dashboard"
)

// Type is the catalog type name of an asset
type Type string

// String cast Type to string
func (t Type) String() string {
	return string(t)
}

// IsProcess reports whether the type connects two assets in lineage
func (t Type) IsProcess() bool {
	switch t {
	case TypeProcess, TypeColumnProcess:
		return true
	}
	return false
}
