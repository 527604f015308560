package lineage

import (
	"errors"
	"fmt"
)

var (
	ErrNoGraphWithoutProcess = errors.New("lineage graph cannot be built from a relation without a process id")
	ErrMissingStartingGUID   = errors.New("starting guid is required to build a lineage request")
	ErrNilResponse           = errors.New("nil lineage response")
)

// NoGraphWithoutProcessError describes the relation that stopped graph construction.
type NoGraphWithoutProcessError struct {
	Index    int
	Relation Relation
}

func (err NoGraphWithoutProcessError) Error() string {
	return fmt.Sprintf("%s: relation #%d from %q to %q",
		ErrNoGraphWithoutProcess, err.Index, err.Relation.FromEntityID, err.Relation.ToEntityID)
}

func (err NoGraphWithoutProcessError) Unwrap() error {
	return ErrNoGraphWithoutProcess
}

// NotFoundError is returned when a guid found in the graph has no asset in the
// fetched entity map.
type NotFoundError struct {
	GUID string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("no asset in lineage response for guid %q", err.GUID)
}

type SnapshotNotFoundError struct {
	ID string
}

func (err SnapshotNotFoundError) Error() string {
	return fmt.Sprintf("could not find lineage snapshot with id = %s", err.ID)
}
