package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/goto/lineage/core/asset"
	"github.com/goto/lineage/core/lineage"
	"github.com/goto/lineage/internal/store/postgres"
	"github.com/goto/lineage/internal/testutils"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/suite"
)

type SnapshotRepositoryTestSuite struct {
	suite.Suite
	ctx    context.Context
	client *postgres.Client
	repo   *postgres.SnapshotRepository
}

func (r *SnapshotRepositoryTestSuite) SetupSuite() {
	if testing.Short() {
		r.T().Skip("skipping postgres integration test in short mode")
	}

	logger := log.NewLogrus(log.LogrusWithLevel("info"))
	client, err := testutils.NewSnapshotStore(r.T(), logger)
	if err != nil {
		r.T().Skipf("postgres container unavailable: %v", err)
	}
	r.client = client

	r.ctx = context.Background()
	r.repo, err = postgres.NewSnapshotRepository(r.client)
	r.Require().NoError(err)
}

func (r *SnapshotRepositoryTestSuite) SetupTest() {
	r.Require().NoError(testutils.TruncateSnapshots(r.ctx, r.client))
}

func (r *SnapshotRepositoryTestSuite) TearDownSuite() {
	if r.client != nil {
		r.Require().NoError(r.client.Close())
	}
}

func (r *SnapshotRepositoryTestSuite) TestSaveAndGet() {
	resp := &lineage.Response{
		BaseEntityGUID:          "t1",
		Direction:               lineage.DirectionBoth,
		Depth:                   5,
		Limit:                   20,
		Offset:                  40,
		HasMoreUpstreamVertices: true,
		GUIDEntityMap: map[string]asset.Asset{
			"t1": {TypeName: asset.TypeTable, GUID: "t1", Attributes: map[string]interface{}{"qualifiedName": "db.orders"}},
			"p1": {TypeName: asset.TypeProcess, GUID: "p1"},
			"t2": {TypeName: asset.TypeView, GUID: "t2", ClassificationNames: []string{"PII"}},
		},
		Relations: []lineage.Relation{
			{FromEntityID: "t1", ToEntityID: "t2", ProcessID: "p1", RelationshipID: "r1"},
			{FromEntityID: "t0", ToEntityID: "t1", ProcessID: "p0"},
		},
	}

	id, err := r.repo.Save(r.ctx, resp)
	r.Require().NoError(err)

	got, err := r.repo.Get(r.ctx, id)
	r.Require().NoError(err)

	r.Equal(resp.BaseEntityGUID, got.BaseEntityGUID)
	r.Equal(resp.Direction, got.Direction)
	r.Equal(resp.Depth, got.Depth)
	r.Equal(resp.Limit, got.Limit)
	r.Equal(resp.Offset, got.Offset)
	r.True(got.HasMoreUpstreamVertices)
	r.Equal(resp.Relations, got.Relations)
	r.Equal(resp.GUIDEntityMap, got.GUIDEntityMap)

	cmp, err := lineage.Compare(resp, got)
	r.Require().NoError(err)
	r.True(cmp.IsEmpty())
}

func (r *SnapshotRepositoryTestSuite) TestSaveLargeGraph() {
	resp := &lineage.Response{BaseEntityGUID: "t0", GUIDEntityMap: map[string]asset.Asset{}}
	for i := 0; i < 11000; i++ {
		resp.Relations = append(resp.Relations, lineage.Relation{
			FromEntityID: fmt.Sprintf("t%d", i),
			ToEntityID:   fmt.Sprintf("t%d", i+1),
			ProcessID:    fmt.Sprintf("p%d", i),
		})
		resp.GUIDEntityMap[fmt.Sprintf("t%d", i)] = asset.Asset{TypeName: asset.TypeTable, GUID: fmt.Sprintf("t%d", i)}
	}

	id, err := r.repo.Save(r.ctx, resp)
	r.Require().NoError(err)

	got, err := r.repo.Get(r.ctx, id)
	r.Require().NoError(err)
	r.Len(got.Relations, 11000)
	r.Equal(resp.Relations[10999], got.Relations[10999])
	r.Len(got.GUIDEntityMap, 11000)
}

func (r *SnapshotRepositoryTestSuite) TestGetUnknown() {
	_, err := r.repo.Get(r.ctx, "6f0a3a64-51e3-4c55-9d36-0a4f0f7b8c2e")
	r.ErrorAs(err, new(lineage.SnapshotNotFoundError))
}

func TestSnapshotRepository(t *testing.T) {
	suite.Run(t, &SnapshotRepositoryTestSuite{})
}
