package lineage

import (
	"context"
	"fmt"

	"github.com/goto/lineage/core/asset"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

//go:generate mockery --name=Transport -r --case underscore --with-expecter --structname Transport --filename transport.go --output=./mocks

// Transport executes lineage requests against the catalog.
type Transport interface {
	GetLineageList(ctx context.Context, req ListRequest) (ListResponse, error)
	GetLineage(ctx context.Context, req GraphRequest) (*Response, error)
}

//go:generate mockery --name=SnapshotRepository -r --case underscore --with-expecter --structname SnapshotRepository --filename snapshot_repository.go --output=./mocks

// SnapshotRepository persists fetched lineage payloads.
type SnapshotRepository interface {
	Save(ctx context.Context, resp *Response) (string, error)
	Get(ctx context.Context, id string) (*Response, error)
}

type Service struct {
	transport    Transport
	snapshotRepo SnapshotRepository

	pageCounter metric.Int64Counter
}

type ServiceDeps struct {
	Transport    Transport
	SnapshotRepo SnapshotRepository
}

func NewService(deps ServiceDeps) *Service {
	pageCounter, err := otel.Meter("github.com/goto/lineage/core/lineage").
		Int64Counter("lineage.list.pages")
	if err != nil {
		otel.Handle(err)
	}

	return &Service{
		transport:    deps.Transport,
		snapshotRepo: deps.SnapshotRepo,
		pageCounter:  pageCounter,
	}
}

// List fetches every page of the lineage list described by f and returns the
// assets in the order the catalog returned them.
func (s *Service) List(ctx context.Context, f Fluent) ([]asset.Asset, error) {
	req, err := f.Request()
	if err != nil {
		return nil, err
	}

	var assets []asset.Asset
	for {
		page, err := s.transport.GetLineageList(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("fetch lineage page at offset %d: %w", req.Offset, err)
		}
		s.countPage(ctx, req.Direction)

		assets = append(assets, page.Entities...)
		if !page.HasMore || len(page.Entities) == 0 {
			break
		}
		req.Offset += req.Size
	}

	return assets, nil
}

// GetResponse fetches the relation graph around req.GUID.
func (s *Service) GetResponse(ctx context.Context, req GraphRequest) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lineage graph request: %w", err)
	}

	resp, err := s.transport.GetLineage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetch lineage graph: %w", err)
	}
	if resp == nil {
		return nil, ErrNilResponse
	}
	if resp.BaseEntityGUID == "" {
		resp.BaseEntityGUID = req.GUID
	}

	return resp, nil
}

// Snapshot fetches the relation graph around req.GUID and stores it.
func (s *Service) Snapshot(ctx context.Context, req GraphRequest) (string, *Response, error) {
	resp, err := s.GetResponse(ctx, req)
	if err != nil {
		return "", nil, err
	}

	id, err := s.snapshotRepo.Save(ctx, resp)
	if err != nil {
		return "", nil, fmt.Errorf("save lineage snapshot: %w", err)
	}

	return id, resp, nil
}

func (s *Service) LoadSnapshot(ctx context.Context, id string) (*Response, error) {
	return s.snapshotRepo.Get(ctx, id)
}

// CompareSnapshots reports how the lineage changed from one snapshot to another.
func (s *Service) CompareSnapshots(ctx context.Context, fromID, toID string) (Comparison, error) {
	from, err := s.snapshotRepo.Get(ctx, fromID)
	if err != nil {
		return Comparison{}, err
	}
	to, err := s.snapshotRepo.Get(ctx, toID)
	if err != nil {
		return Comparison{}, err
	}

	return Compare(from, to)
}

func (s *Service) countPage(ctx context.Context, dir Direction) {
	if s.pageCounter == nil {
		return
	}
	s.pageCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("lineage.direction", dir.String()),
	))
}
