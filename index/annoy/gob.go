package annoy

import (
	"encoding/gob"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/palettesearch/index"
)

// snapshot is the gob form of a built index.
type snapshot struct {
	Options Options
	Count   int
	Vectors []float32
	Trees   []*snapshotNode
}

type snapshotNode struct {
	Normal      []float32
	Offset      float32
	Items       []uint32
	Left, Right *snapshotNode
}

// SaveToWriter writes a zstd-compressed gob snapshot of a built index.
// Saving an unbuilt index fails with ErrNotBuilt.
func (idx *Index) SaveToWriter(w io.Writer) error {
	if !idx.built {
		return index.ErrNotBuilt
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("create compressor: %w", err)
	}

	snap := snapshot{
		Options: idx.opts,
		Count:   idx.count,
		Vectors: idx.vectors,
		Trees:   make([]*snapshotNode, len(idx.trees)),
	}
	for i, tree := range idx.trees {
		snap.Trees[i] = toSnapshotNode(tree)
	}

	if err := gob.NewEncoder(zw).Encode(snap); err != nil {
		zw.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return zw.Close()
}

// LoadFromReader reconstructs a built, queryable index from a snapshot
// written by SaveToWriter.
func LoadFromReader(r io.Reader) (*Index, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("create decompressor: %w", err)
	}
	defer zr.Close()

	var snap snapshot
	if err := gob.NewDecoder(zr).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	if err := index.ValidateOptions(snap.Options.Dimension, snap.Options.NumTrees, snap.Options.LeafCapacity); err != nil {
		return nil, fmt.Errorf("snapshot options: %w", err)
	}
	if len(snap.Vectors) != snap.Count*snap.Options.Dimension {
		return nil, fmt.Errorf("snapshot vectors: got %d floats for %d items of dimension %d",
			len(snap.Vectors), snap.Count, snap.Options.Dimension)
	}

	idx := &Index{
		opts:    snap.Options,
		vectors: snap.Vectors,
		count:   snap.Count,
		trees:   make([]*node, len(snap.Trees)),
		built:   true,
	}
	for i, tree := range snap.Trees {
		idx.trees[i] = fromSnapshotNode(tree)
	}

	return idx, nil
}

func toSnapshotNode(n *node) *snapshotNode {
	if n == nil {
		return nil
	}
	return &snapshotNode{
		Normal: n.normal,
		Offset: n.offset,
		Items:  n.items,
		Left:   toSnapshotNode(n.left),
		Right:  toSnapshotNode(n.right),
	}
}

func fromSnapshotNode(s *snapshotNode) *node {
	if s == nil {
		return nil
	}
	return &node{
		normal: s.Normal,
		offset: s.Offset,
		items:  s.Items,
		left:   fromSnapshotNode(s.Left),
		right:  fromSnapshotNode(s.Right),
	}
}
