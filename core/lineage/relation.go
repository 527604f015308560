package lineage

// Relation is one asset -> process -> asset link as returned by the catalog.
// An empty string means the id was not present in the payload.
type Relation struct {
	FromEntityID   string `json:"fromEntityId,omitempty"`
	ToEntityID     string `json:"toEntityId,omitempty"`
	ProcessID      string `json:"processId,omitempty"`
	RelationshipID string `json:"relationshipId,omitempty"`
}

// IsFullLink reports whether the relation is mediated by a process.
func (r Relation) IsFullLink() bool {
	return r.ProcessID != ""
}

// DirectedPair is an adjacency entry: reach TargetGUID via ProcessGUID.
type DirectedPair struct {
	ProcessGUID string `json:"processGuid"`
	TargetGUID  string `json:"targetGuid"`
}
