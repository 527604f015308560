package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goto/lineage/core/asset"
	"github.com/goto/lineage/core/lineage"
)

type SnapshotModel struct {
	ID                string    `db:"id"`
	BaseEntityGUID    string    `db:"base_entity_guid"`
	Direction         string    `db:"direction"`
	Depth             int       `db:"depth"`
	Limit             int       `db:"page_limit"`
	Offset            int       `db:"page_offset"`
	HasMoreUpstream   bool      `db:"has_more_upstream"`
	HasMoreDownstream bool      `db:"has_more_downstream"`
	CreatedAt         time.Time `db:"created_at"`
}

type RelationModel struct {
	Position       int    `db:"position"`
	FromEntityID   string `db:"from_entity_id"`
	ToEntityID     string `db:"to_entity_id"`
	ProcessID      string `db:"process_id"`
	RelationshipID string `db:"relationship_id"`
}

func (m RelationModel) toRelation() lineage.Relation {
	return lineage.Relation{
		FromEntityID:   m.FromEntityID,
		ToEntityID:     m.ToEntityID,
		ProcessID:      m.ProcessID,
		RelationshipID: m.RelationshipID,
	}
}

type AssetModel struct {
	GUID  string    `db:"guid"`
	Asset AssetJSON `db:"asset"`
}

// AssetJSON stores an asset in a jsonb column.
type AssetJSON asset.Asset

func (a AssetJSON) Value() (driver.Value, error) {
	ba, err := json.Marshal(asset.Asset(a))
	return string(ba), err
}

func (a *AssetJSON) Scan(value interface{}) error {
	var ba []byte
	switch v := value.(type) {
	case []byte:
		ba = v
	case string:
		ba = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal JSONB value: %v", value)
	}
	var ast asset.Asset
	if err := json.Unmarshal(ba, &ast); err != nil {
		return err
	}
	*a = AssetJSON(ast)
	return nil
}

func (m SnapshotModel) toResponse(relations []RelationModel, assets []AssetModel) *lineage.Response {
	resp := &lineage.Response{
		BaseEntityGUID:            m.BaseEntityGUID,
		Direction:                 lineage.Direction(m.Direction),
		Depth:                     m.Depth,
		Limit:                     m.Limit,
		Offset:                    m.Offset,
		HasMoreUpstreamVertices:   m.HasMoreUpstream,
		HasMoreDownstreamVertices: m.HasMoreDownstream,
		GUIDEntityMap:             make(map[string]asset.Asset, len(assets)),
		Relations:                 make([]lineage.Relation, 0, len(relations)),
	}
	for _, rm := range relations {
		resp.Relations = append(resp.Relations, rm.toRelation())
	}
	for _, am := range assets {
		resp.GUIDEntityMap[am.GUID] = asset.Asset(am.Asset)
	}
	return resp
}
