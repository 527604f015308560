package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/goto/lineage/core/lineage"
	"github.com/jmoiron/sqlx"
)

// maxQueryParams is the most bind parameters postgres accepts in one statement.
const maxQueryParams = 65535

// SnapshotRepository stores lineage payloads so they can be compared later.
type SnapshotRepository struct {
	client *Client
}

// NewSnapshotRepository initializes snapshot repository
func NewSnapshotRepository(client *Client) (*SnapshotRepository, error) {
	if client == nil {
		return nil, errNilPostgresClient
	}
	return &SnapshotRepository{client: client}, nil
}

// Save writes the payload in a single transaction and returns the new snapshot id.
func (r *SnapshotRepository) Save(ctx context.Context, resp *lineage.Response) (string, error) {
	if resp == nil {
		return "", lineage.ErrNilResponse
	}

	id := uuid.NewString()
	err := r.client.RunWithinTx(ctx, func(tx *sqlx.Tx) error {
		if err := r.insertSnapshot(ctx, tx, id, resp); err != nil {
			return fmt.Errorf("error inserting snapshot: %w", err)
		}
		if err := r.insertRelations(ctx, tx, id, resp.Relations); err != nil {
			return fmt.Errorf("error inserting relations: %w", err)
		}
		if err := r.insertAssets(ctx, tx, id, resp); err != nil {
			return fmt.Errorf("error inserting assets: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get rebuilds the payload saved under id, keeping the saved relation order.
func (r *SnapshotRepository) Get(ctx context.Context, id string) (*lineage.Response, error) {
	if !isValidUUID(id) {
		return nil, lineage.SnapshotNotFoundError{ID: id}
	}

	query, args, err := sq.Select("id", "base_entity_guid", "direction", "depth", "page_limit", "page_offset",
		"has_more_upstream", "has_more_downstream", "created_at").
		From("lineage_snapshots").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	var sm SnapshotModel
	if err := r.client.GetContext(ctx, &sm, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, lineage.SnapshotNotFoundError{ID: id}
		}
		return nil, fmt.Errorf("error getting snapshot %q: %w", id, err)
	}

	query, args, err = sq.Select("position", "from_entity_id", "to_entity_id", "process_id", "relationship_id").
		From("lineage_snapshot_relations").
		Where(sq.Eq{"snapshot_id": id}).
		OrderBy("position ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	var relations []RelationModel
	if err := r.client.SelectContext(ctx, &relations, query, args...); err != nil {
		return nil, fmt.Errorf("error getting relations of snapshot %q: %w", id, err)
	}

	query, args, err = sq.Select("guid", "asset").
		From("lineage_snapshot_assets").
		Where(sq.Eq{"snapshot_id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	var assets []AssetModel
	if err := r.client.SelectContext(ctx, &assets, query, args...); err != nil {
		return nil, fmt.Errorf("error getting assets of snapshot %q: %w", id, err)
	}

	return sm.toResponse(relations, assets), nil
}

func (r *SnapshotRepository) insertSnapshot(ctx context.Context, execer sqlx.ExecerContext, id string, resp *lineage.Response) error {
	query, args, err := sq.Insert("lineage_snapshots").
		Columns("id", "base_entity_guid", "direction", "depth", "page_limit", "page_offset",
			"has_more_upstream", "has_more_downstream").
		Values(id, resp.BaseEntityGUID, string(resp.Direction), resp.Depth, resp.Limit, resp.Offset,
			resp.HasMoreUpstreamVertices, resp.HasMoreDownstreamVertices).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := execer.ExecContext(ctx, query, args...); err != nil {
		return checkPostgresError(err)
	}
	return nil
}

func (r *SnapshotRepository) insertRelations(ctx context.Context, execer sqlx.ExecerContext, id string, relations []lineage.Relation) error {
	rows := make([][]interface{}, 0, len(relations))
	for i, rel := range relations {
		rows = append(rows, []interface{}{id, i, rel.FromEntityID, rel.ToEntityID, rel.ProcessID, rel.RelationshipID})
	}

	return insertBatched(ctx, execer, "lineage_snapshot_relations",
		[]string{"snapshot_id", "position", "from_entity_id", "to_entity_id", "process_id", "relationship_id"}, rows)
}

func (r *SnapshotRepository) insertAssets(ctx context.Context, execer sqlx.ExecerContext, id string, resp *lineage.Response) error {
	guids := make([]string, 0, len(resp.GUIDEntityMap))
	for guid := range resp.GUIDEntityMap {
		guids = append(guids, guid)
	}
	sort.Strings(guids)

	rows := make([][]interface{}, 0, len(guids))
	for _, guid := range guids {
		rows = append(rows, []interface{}{id, guid, AssetJSON(resp.GUIDEntityMap[guid])})
	}

	return insertBatched(ctx, execer, "lineage_snapshot_assets", []string{"snapshot_id", "guid", "asset"}, rows)
}

// insertBatched splits rows into multi-row inserts that stay within the
// bind parameter limit of a single postgres statement.
func insertBatched(ctx context.Context, execer sqlx.ExecerContext, table string, columns []string, rows [][]interface{}) error {
	batchSize := maxQueryParams / len(columns)
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		builder := sq.Insert(table).Columns(columns...).PlaceholderFormat(sq.Dollar)
		for _, row := range rows[start:end] {
			builder = builder.Values(row...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("error building query: %w", err)
		}

		if _, err := execer.ExecContext(ctx, query, args...); err != nil {
			return checkPostgresError(err)
		}
	}
	return nil
}
