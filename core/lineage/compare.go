package lineage

import (
	"fmt"
	"sort"

	"github.com/goto/lineage/lib/set"
	"github.com/r3labs/diff/v2"
)

// Comparison is the difference between two lineage payloads.
type Comparison struct {
	AddedRelations   []Relation
	RemovedRelations []Relation
	AddedAssets      []string
	RemovedAssets    []string
	// AssetChanges holds the changelog of every asset present in both
	// payloads whose content differs, keyed by guid.
	AssetChanges map[string]diff.Changelog
}

func (c Comparison) IsEmpty() bool {
	return len(c.AddedRelations) == 0 && len(c.RemovedRelations) == 0 &&
		len(c.AddedAssets) == 0 && len(c.RemovedAssets) == 0 && len(c.AssetChanges) == 0
}

// Compare reports what changed going from one payload to the other.
// Relations are matched on their (from, process, to) triple.
func Compare(from, to *Response) (Comparison, error) {
	if from == nil || to == nil {
		return Comparison{}, ErrNilResponse
	}

	var cmp Comparison
	cmp.AddedRelations, cmp.RemovedRelations = compareRelations(from.Relations, to.Relations)

	for guid := range to.GUIDEntityMap {
		if _, ok := from.GUIDEntityMap[guid]; !ok {
			cmp.AddedAssets = append(cmp.AddedAssets, guid)
		}
	}
	for guid, before := range from.GUIDEntityMap {
		after, ok := to.GUIDEntityMap[guid]
		if !ok {
			cmp.RemovedAssets = append(cmp.RemovedAssets, guid)
			continue
		}
		cl, err := before.Diff(&after)
		if err != nil {
			return Comparison{}, fmt.Errorf("diff asset %q: %w", guid, err)
		}
		if len(cl) > 0 {
			if cmp.AssetChanges == nil {
				cmp.AssetChanges = make(map[string]diff.Changelog)
			}
			cmp.AssetChanges[guid] = cl
		}
	}
	sort.Strings(cmp.AddedAssets)
	sort.Strings(cmp.RemovedAssets)

	return cmp, nil
}

type relationKey struct {
	from, process, to string
}

func keyOf(r Relation) relationKey {
	return relationKey{from: r.FromEntityID, process: r.ProcessID, to: r.ToEntityID}
}

func compareRelations(current, next []Relation) (toInserts, toRemoves []Relation) {
	currKeys := set.NewOrdered[relationKey]()
	for _, r := range current {
		currKeys.Add(keyOf(r))
	}
	nextKeys := set.NewOrdered[relationKey]()
	for _, r := range next {
		nextKeys.Add(keyOf(r))
	}

	seen := set.NewOrdered[relationKey]()
	for _, r := range next {
		k := keyOf(r)
		if !currKeys.Contains(k) && seen.Add(k) {
			toInserts = append(toInserts, r)
		}
	}
	for _, r := range current {
		k := keyOf(r)
		if !nextKeys.Contains(k) && seen.Add(k) {
			toRemoves = append(toRemoves, r)
		}
	}

	return
}
