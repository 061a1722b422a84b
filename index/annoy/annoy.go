// Package annoy implements a forest of randomized hyperplane-partition
// trees for approximate nearest neighbor search by Euclidean distance,
// after the Annoy family of indexes.
//
// The index follows a build-then-freeze lifecycle: vectors are inserted,
// Build constructs the forest once, and the frozen index serves any number
// of concurrent read-only searches without locking. Each tree partitions
// the same item set differently; the diversity across trees is what gives
// the forest its recall despite every individual split being greedy.
package annoy

import (
	"container/heap"
	"context"
	"math"
	"math/rand"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/palettesearch/distance"
	"github.com/hupe1980/palettesearch/index"
	"github.com/hupe1980/palettesearch/queue"
)

const (
	// DefaultNumTrees is the default forest size.
	DefaultNumTrees = 10

	// DefaultLeafCapacity is the default maximum number of items per leaf.
	DefaultLeafCapacity = 16

	// maxSplitAttempts bounds the random pivot retries before a degenerate
	// split falls back to a balanced median split.
	maxSplitAttempts = 3

	// treeSeedStride separates the deterministic RNG streams of the trees.
	treeSeedStride = 7919
)

// Options contains configuration options for the forest index.
type Options struct {
	// Dimension is the fixed vector dimensionality for this index.
	// It must be > 0 and is enforced for all inserts and searches.
	Dimension int

	// NumTrees is the number of independently randomized trees. More trees
	// improve recall at the cost of build time and memory.
	NumTrees int

	// LeafCapacity is the maximum number of items a tree leaf may hold
	// before the build must split further.
	LeafCapacity int

	// SearchK is the minimum number of candidates a search inspects before
	// the exact re-rank. Zero selects NumTrees*k at query time. Larger
	// values improve recall at the cost of latency.
	SearchK int

	// Seed seeds the build-time randomness. Two builds over the same
	// insertions with equal seeds produce identical forests.
	Seed int64
}

// DefaultOptions contains the default configuration options for the forest index.
var DefaultOptions = Options{
	Dimension:    0,
	NumTrees:     DefaultNumTrees,
	LeafCapacity: DefaultLeafCapacity,
	SearchK:      0,
	Seed:         1,
}

// node is a tree node: internal nodes carry a splitting hyperplane and two
// children, leaves carry item ids. left == nil identifies a leaf.
type node struct {
	normal      []float32
	offset      float32
	left, right *node
	items       []uint32
}

// Index is a forest of randomized hyperplane trees over a fixed item set.
//
// Insert and Build must complete before any Search and are not safe for
// concurrent use; once Build returns, the index is immutable and safe for
// unlimited concurrent searches.
type Index struct {
	opts    Options
	vectors []float32 // row-major item vectors, len = count*Dimension
	count   int
	trees   []*node
	built   bool
}

// New creates a new, empty forest index. Dimension is required.
func New(optFns ...func(o *Options)) (*Index, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if err := index.ValidateOptions(opts.Dimension, opts.NumTrees, opts.LeafCapacity); err != nil {
		return nil, err
	}
	if opts.SearchK < 0 {
		return nil, &index.ErrInvalidOption{Name: "search breadth", Value: opts.SearchK}
	}

	return &Index{opts: opts}, nil
}

// Insert adds a vector before Build and returns its item id. Ids are dense
// and assigned in insertion order starting at 0. The vector is copied; the
// index never aliases caller-owned memory.
func (idx *Index) Insert(v []float32) (uint32, error) {
	if idx.built {
		return 0, index.ErrAlreadyBuilt
	}
	if len(v) == 0 {
		return 0, index.ErrEmptyVector
	}
	if len(v) != idx.opts.Dimension {
		return 0, &index.ErrDimensionMismatch{Expected: idx.opts.Dimension, Actual: len(v)}
	}

	id := uint32(idx.count)
	idx.vectors = append(idx.vectors, v...)
	idx.count++

	return id, nil
}

// Build constructs the forest and freezes the index. Trees are built in
// parallel, each from its own deterministic RNG stream derived from Seed,
// so the result is reproducible regardless of scheduling. A canceled
// context aborts the build; no partially built forest becomes observable.
func (idx *Index) Build(ctx context.Context) error {
	if idx.built {
		return index.ErrAlreadyBuilt
	}
	if idx.count == 0 {
		return index.ErrEmptyIndex
	}

	trees := make([]*node, idx.opts.NumTrees)

	g, ctx := errgroup.WithContext(ctx)
	for i := range trees {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(idx.opts.Seed + int64(i)*treeSeedStride))
			items := make([]uint32, idx.count)
			for j := range items {
				items[j] = uint32(j)
			}
			trees[i] = idx.buildNode(items, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	idx.trees = trees
	idx.built = true

	return nil
}

func (idx *Index) buildNode(items []uint32, rng *rand.Rand) *node {
	if len(items) <= idx.opts.LeafCapacity {
		leaf := make([]uint32, len(items))
		copy(leaf, items)
		return &node{items: leaf}
	}

	for attempt := 0; attempt < maxSplitAttempts; attempt++ {
		normal, offset, ok := idx.pickHyperplane(items, rng)
		if !ok {
			continue
		}

		left := make([]uint32, 0, len(items)/2)
		right := make([]uint32, 0, len(items)/2)
		for _, item := range items {
			if distance.Dot(normal, idx.vectorAt(item))-offset <= 0 {
				left = append(left, item)
			} else {
				right = append(right, item)
			}
		}
		if len(left) == 0 || len(right) == 0 {
			continue
		}

		return &node{
			normal: normal,
			offset: offset,
			left:   idx.buildNode(left, rng),
			right:  idx.buildNode(right, rng),
		}
	}

	// Every attempt produced a one-sided split: the item set is degenerate
	// (duplicate or collinear points). Force a balanced split on the median
	// of a random axis.
	return idx.medianSplit(items, rng)
}

// pickHyperplane samples two distinct pivot items and returns the
// hyperplane equidistant from them: unit normal along b-a, offset through
// the midpoint. The unit length makes |dot(normal,q)-offset| the geometric
// distance of q from the plane, so margins from different hyperplanes are
// comparable during search. Identical pivots (by id or by value) are
// reported as not ok.
func (idx *Index) pickHyperplane(items []uint32, rng *rand.Rand) ([]float32, float32, bool) {
	a := items[rng.Intn(len(items))]
	b := items[rng.Intn(len(items))]
	if a == b {
		return nil, 0, false
	}

	va, vb := idx.vectorAt(a), idx.vectorAt(b)
	normal := make([]float32, idx.opts.Dimension)
	var norm float32
	for i := range normal {
		normal[i] = vb[i] - va[i]
		norm += normal[i] * normal[i]
	}
	if norm == 0 {
		return nil, 0, false
	}

	norm = float32(math.Sqrt(float64(norm)))
	var offset float32
	for i := range normal {
		normal[i] /= norm
		offset += normal[i] * (va[i] + vb[i]) * 0.5
	}

	return normal, offset, true
}

func (idx *Index) medianSplit(items []uint32, rng *rand.Rand) *node {
	axis := rng.Intn(idx.opts.Dimension)

	sorted := make([]uint32, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		vi := idx.vectorAt(sorted[i])[axis]
		vj := idx.vectorAt(sorted[j])[axis]
		if vi == vj {
			return sorted[i] < sorted[j]
		}
		return vi < vj
	})

	mid := len(sorted) / 2
	normal := make([]float32, idx.opts.Dimension)
	normal[axis] = 1

	return &node{
		normal: normal,
		offset: idx.vectorAt(sorted[mid])[axis],
		left:   idx.buildNode(sorted[:mid], rng),
		right:  idx.buildNode(sorted[mid:], rng),
	}
}

// Search returns up to k approximate nearest neighbors of q, ordered by
// ascending Euclidean distance, ties broken by ascending item id.
//
// The forest is explored with a margin-ordered priority queue seeded with
// every tree root. Popping an internal node pushes its closer child at
// margin 0 and its farther child at the query's absolute hyperplane
// distance, so the search backtracks into subtrees on the wrong side of a
// split when they are cheap enough. Leaves feed a candidate set; once at
// least SearchK unique candidates are gathered (or the queue drains) the
// candidates are re-ranked by exact distance.
//
// Results are approximate: the true k nearest neighbors are not guaranteed,
// but recall improves monotonically with NumTrees and SearchK.
func (idx *Index) Search(ctx context.Context, q []float32, k int) ([]index.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !idx.built {
		return nil, index.ErrNotBuilt
	}
	if k <= 0 {
		return nil, index.ErrInvalidK
	}
	if len(q) != idx.opts.Dimension {
		return nil, &index.ErrDimensionMismatch{Expected: idx.opts.Dimension, Actual: len(q)}
	}

	searchK := idx.opts.SearchK
	if searchK <= 0 {
		searchK = idx.opts.NumTrees * k
	}

	// The same item reaches the candidate set through multiple trees;
	// the bitmap deduplicates and iterates in ascending id order.
	candidates := roaring.New()

	// Pending nodes live in a scratch slice; the heap prioritizes their
	// positions by margin, the distance of the query from the nearest
	// splitting hyperplane crossed to reach the node.
	scratch := make([]*node, 0, 2*len(idx.trees))
	pending := queue.NewMin(2 * len(idx.trees))
	push := func(n *node, margin float32) {
		scratch = append(scratch, n)
		heap.Push(pending, queue.Item{Node: uint32(len(scratch) - 1), Distance: margin})
	}
	for _, tree := range idx.trees {
		push(tree, 0)
	}

	for pending.Len() > 0 && candidates.GetCardinality() < uint64(searchK) {
		entry := heap.Pop(pending).(queue.Item)
		n := scratch[entry.Node]

		if n.left == nil {
			candidates.AddMany(n.items)
			continue
		}

		signed := distance.Dot(n.normal, q) - n.offset
		near, far := n.left, n.right
		if signed > 0 {
			near, far = n.right, n.left
		}
		push(near, 0)
		push(far, float32(math.Abs(float64(signed))))
	}

	results := make([]index.SearchResult, 0, candidates.GetCardinality())
	it := candidates.Iterator()
	for it.HasNext() {
		id := it.Next()
		results = append(results, index.SearchResult{
			ID:       id,
			Distance: distance.SquaredL2(q, idx.vectorAt(id)),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance == results[j].Distance {
			return results[i].ID < results[j].ID
		}
		return results[i].Distance < results[j].Distance
	})
	if len(results) > k {
		results = results[:k]
	}
	for i := range results {
		results[i].Distance = float32(math.Sqrt(float64(results[i].Distance)))
	}

	return results, nil
}

// BruteSearch performs an exact linear scan over all items. It shares
// Search's validation and result contract and serves as the reference the
// approximate search trades recall against.
func (idx *Index) BruteSearch(ctx context.Context, q []float32, k int) ([]index.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !idx.built {
		return nil, index.ErrNotBuilt
	}
	if k <= 0 {
		return nil, index.ErrInvalidK
	}
	if len(q) != idx.opts.Dimension {
		return nil, &index.ErrDimensionMismatch{Expected: idx.opts.Dimension, Actual: len(q)}
	}

	actualK := k
	if actualK > idx.count {
		actualK = idx.count
	}

	top := queue.NewMax(actualK)
	heap.Init(top)

	for id := 0; id < idx.count; id++ {
		d := distance.SquaredL2(q, idx.vectorAt(uint32(id)))

		if top.Len() < actualK {
			heap.Push(top, queue.Item{Node: uint32(id), Distance: d})
			continue
		}
		if largest := top.Top().(queue.Item); d < largest.Distance {
			heap.Pop(top)
			heap.Push(top, queue.Item{Node: uint32(id), Distance: d})
		}
	}

	results := make([]index.SearchResult, top.Len())
	for i := top.Len() - 1; i >= 0; i-- {
		item := heap.Pop(top).(queue.Item)
		results[i] = index.SearchResult{
			ID:       item.Node,
			Distance: float32(math.Sqrt(float64(item.Distance))),
		}
	}

	return results, nil
}

// Len returns the number of items in the index.
func (idx *Index) Len() int { return idx.count }

// Dimension returns the configured vector dimensionality.
func (idx *Index) Dimension() int { return idx.opts.Dimension }

// Built reports whether Build has completed.
func (idx *Index) Built() bool { return idx.built }

// VectorByID copies the stored vector for the given item id.
func (idx *Index) VectorByID(id uint32) ([]float32, bool) {
	if int(id) >= idx.count {
		return nil, false
	}
	v := idx.vectorAt(id)
	out := make([]float32, len(v))
	copy(out, v)
	return out, true
}

func (idx *Index) vectorAt(id uint32) []float32 {
	d := idx.opts.Dimension
	return idx.vectors[int(id)*d : int(id)*d+d]
}
