package clustergram

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// ControllerOptions tunes the cross-filter controller.
type ControllerOptions struct {
	// FadeDelay is how long a hovered arc stays highlighted after the
	// pointer leaves it. Zero restores immediately. Default: 1s.
	FadeDelay time.Duration

	// View is stamped into every Selection.
	View uuid.UUID
}

// DefaultControllerOptions returns a one second fade delay.
func DefaultControllerOptions() ControllerOptions {
	return ControllerOptions{FadeDelay: time.Second}
}

// Listener receives the new Selection after every distinct change.
type Listener func(Selection)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Controller keeps the dendrogram and the scatterplot matrix consistent by
// owning the single shared Selection. It is the only writer of that
// selection; renderers subscribe and repaint themselves.
//
// Listeners are invoked outside the controller's lock, so they may call back
// into the controller. Notifications are delivered one at a time in the order
// the selections were committed, whichever goroutine committed them.
type Controller struct {
	mu      sync.RWMutex
	ds      *Dataset
	trellis *Trellis
	dims    Cell
	opts    ControllerOptions

	sel Selection

	// brushCell is the cell the current brush gesture started in.
	brushCell  *Cell
	brushEmpty bool

	// gen invalidates pending fade timers; it bumps on every selection call.
	gen  uint64
	fade *time.Timer

	listeners []listenerEntry
	nextID    uint64

	// queue holds committed selections not yet delivered; delivering is set
	// while some goroutine drains it.
	queue      []delivery
	delivering bool
}

type delivery struct {
	listeners []Listener
	snap      Selection
}

// controllerData is everything the controller derives from a dataset.
type controllerData struct {
	ds      *Dataset
	trellis *Trellis
	dims    Cell
}

// NewController returns an idle controller over ds. x and y name the two
// features the clustering was computed on; dendrogram leaves are matched to
// rows by equality on them.
func NewController(ds *Dataset, x, y string, opts ControllerOptions) (*Controller, error) {
	d, err := loadControllerData(ds, x, y)
	if err != nil {
		return nil, err
	}
	c := &Controller{opts: opts}
	c.load(d)
	c.sel = Selection{View: opts.View}
	return c, nil
}

func loadControllerData(ds *Dataset, x, y string) (*controllerData, error) {
	trellis, err := NewTrellis(ds)
	if err != nil {
		return nil, err
	}
	dims, err := trellis.Cell(x, y)
	if err != nil {
		return nil, fmt.Errorf("clustergram: clustered dimensions: %w", err)
	}
	if dup := duplicateCoordinates(ds, dims); dup > 0 {
		log.Printf("clustergram: %d rows repeat the %s/%s coordinates of an earlier row; node selections highlight them together",
			dup, dims.X, dims.Y)
	}
	return &controllerData{ds: ds, trellis: trellis, dims: dims}, nil
}

func (c *Controller) load(d *controllerData) {
	c.ds = d.ds
	c.trellis = d.trellis
	c.dims = d.dims
	c.brushCell = nil
	c.brushEmpty = false
}

// Trellis returns the scatterplot matrix the controller brushes against.
func (c *Controller) Trellis() *Trellis {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.trellis
}

// Selection returns a snapshot of the current selection.
func (c *Controller) Selection() Selection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sel.clone()
}

// OnSelectionChanged registers fn and returns a function that removes it.
func (c *Controller) OnSelectionChanged(fn Listener) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, l := range c.listeners {
				if l.id == id {
					c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// SelectFromNode highlights the rows under a dendrogram arc, replacing any
// brush. A nil node clears the selection.
func (c *Controller) SelectFromNode(n *PartitionedNode) {
	if n == nil {
		c.ClearSelection()
		return
	}
	c.mu.Lock()
	c.cancelFadeLocked()
	next := Selection{
		State: NodeActive,
		Rows:  c.matchLeavesLocked(nodeLeaves(n)),
		Node:  n,
	}
	c.commitLocked(next)
	c.mu.Unlock()
	c.flush()
}

// LeaveNode handles the pointer leaving the dendrogram. A node selection is
// restored to Idle after FadeDelay unless another selection happens first.
func (c *Controller) LeaveNode() {
	c.mu.Lock()
	if c.sel.State != NodeActive {
		c.mu.Unlock()
		return
	}
	c.cancelFadeLocked()
	if c.opts.FadeDelay <= 0 {
		c.commitLocked(Selection{State: Idle})
		c.mu.Unlock()
		c.flush()
		return
	}
	gen := c.gen
	c.fade = time.AfterFunc(c.opts.FadeDelay, func() { c.restore(gen) })
	c.mu.Unlock()
}

// restore is the fade timer's callback.
func (c *Controller) restore(gen uint64) {
	c.mu.Lock()
	if c.gen != gen || c.sel.State != NodeActive {
		c.mu.Unlock()
		return
	}
	c.fade = nil
	c.commitLocked(Selection{State: Idle})
	c.mu.Unlock()
	c.flush()
}

// BrushStart begins a brush gesture in cell. Starting in a different cell
// than the previous gesture clears the previous brush first.
func (c *Controller) BrushStart(cell Cell) {
	c.mu.Lock()
	c.startBrushLocked(cell)
	c.mu.Unlock()
	c.flush()
}

// SelectFromBrush highlights the rows whose coordinates in cell fall inside
// rect, bounds included, replacing any node selection. An empty rect clears
// an active brush and leaves a node selection, and its pending fade, alone.
func (c *Controller) SelectFromBrush(rect r2.Box, cell Cell) {
	rect = rect.Canon()

	c.mu.Lock()
	// Brushing without an explicit start behaves as if it started here.
	c.startBrushLocked(cell)
	c.brushEmpty = rect.Empty()

	switch {
	case rect.Empty():
		if c.sel.State == BrushActive {
			c.commitLocked(Selection{State: Idle})
		}
	default:
		c.cancelFadeLocked()
		cellCopy := cell
		c.commitLocked(Selection{
			State: BrushActive,
			Rows:  c.trellis.Brushed(rect, cell),
			Cell:  &cellCopy,
			Brush: rect,
		})
	}
	c.mu.Unlock()
	c.flush()
}

// BrushEnd finishes a brush gesture. A gesture that ends with an empty brush
// leaves nothing brushed, so the next gesture starts fresh in any cell.
func (c *Controller) BrushEnd() {
	c.mu.Lock()
	if !c.brushEmpty {
		c.mu.Unlock()
		return
	}
	c.brushCell = nil
	if c.sel.State == BrushActive {
		c.commitLocked(Selection{State: Idle})
	}
	c.mu.Unlock()
	c.flush()
}

// ClearSelection returns to Idle from any state.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.cancelFadeLocked()
	c.brushCell = nil
	c.commitLocked(Selection{State: Idle})
	c.mu.Unlock()
	c.flush()
}

// Reset points the controller at a new dataset, or at the same dataset after
// reclustering, and returns to Idle.
func (c *Controller) Reset(ds *Dataset) error {
	d, err := c.prepare(ds)
	if err != nil {
		return err
	}
	c.resetTo(d)
	return nil
}

// prepare derives the controller data for ds over the current clustered
// dimensions without touching the controller's state.
func (c *Controller) prepare(ds *Dataset) (*controllerData, error) {
	c.mu.RLock()
	x, y := c.dims.X, c.dims.Y
	c.mu.RUnlock()
	return loadControllerData(ds, x, y)
}

func (c *Controller) resetTo(d *controllerData) {
	c.mu.Lock()
	c.cancelFadeLocked()
	c.load(d)
	c.commitLocked(Selection{State: Idle})
	c.mu.Unlock()
	c.flush()
}

// startBrushLocked records cell as the brushed cell, clearing a brush that
// is active in another cell.
func (c *Controller) startBrushLocked(cell Cell) {
	if c.brushCell != nil && *c.brushCell == cell {
		return
	}
	prev := c.brushCell
	cellCopy := cell
	c.brushCell = &cellCopy
	if prev == nil || c.sel.State != BrushActive {
		return
	}
	c.commitLocked(Selection{State: Idle})
}

// cancelFadeLocked stops a pending fade and invalidates one that already fired.
func (c *Controller) cancelFadeLocked() {
	c.gen++
	if c.fade != nil {
		c.fade.Stop()
		c.fade = nil
	}
}

// commitLocked installs next and, if anything visible changed, queues it for
// the listeners registered now. Callers flush after unlocking.
func (c *Controller) commitLocked(next Selection) {
	next.View = c.opts.View
	next.Rows = normalizeRows(next.Rows)
	changed := !c.sel.same(next)
	c.sel = next
	if !changed || len(c.listeners) == 0 {
		return
	}
	ls := make([]Listener, len(c.listeners))
	for i, l := range c.listeners {
		ls[i] = l.fn
	}
	c.queue = append(c.queue, delivery{listeners: ls, snap: next.clone()})
}

// flush delivers queued selections in commit order. Only one goroutine
// delivers at a time; a flush that finds delivery in progress leaves its
// entries to that goroutine, which also covers listeners that call back into
// the controller.
func (c *Controller) flush() {
	c.mu.Lock()
	if c.delivering {
		c.mu.Unlock()
		return
	}
	c.delivering = true
	for len(c.queue) > 0 {
		d := c.queue[0]
		c.queue[0] = delivery{}
		c.queue = c.queue[1:]
		c.mu.Unlock()
		for _, fn := range d.listeners {
			c.call(fn, d.snap)
		}
		c.mu.Lock()
	}
	c.queue = nil
	c.delivering = false
	c.mu.Unlock()
}

func (c *Controller) call(fn Listener, snap Selection) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("clustergram: selection listener panicked: %v", r)
		}
	}()
	fn(snap.clone())
}

// nodeLeaves returns the merge-tree leaves under an arc.
func nodeLeaves(n *PartitionedNode) []*ClusterNode {
	if n.Node == nil || n.Node.Cluster == nil {
		return nil
	}
	return n.Node.Cluster.Leaves()
}

// matchLeavesLocked returns the rows whose clustered coordinates equal a
// leaf's vector.
func (c *Controller) matchLeavesLocked(leaves []*ClusterNode) []int {
	want := make(map[r2.Vec]struct{}, len(leaves))
	for _, leaf := range leaves {
		if len(leaf.Centroid) < 2 {
			continue
		}
		want[r2.Vec{X: leaf.Centroid[0], Y: leaf.Centroid[1]}] = struct{}{}
	}
	var ids []int
	for _, r := range c.ds.Rows {
		if _, ok := want[c.trellis.Point(r, c.dims)]; ok {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// duplicateCoordinates counts rows whose coordinates in cell repeat an
// earlier row's.
func duplicateCoordinates(ds *Dataset, cell Cell) int {
	seen := make(map[r2.Vec]struct{}, len(ds.Rows))
	dup := 0
	for _, r := range ds.Rows {
		p := r2.Vec{X: r.Fields[cell.X], Y: r.Fields[cell.Y]}
		if _, ok := seen[p]; ok {
			dup++
			continue
		}
		seen[p] = struct{}{}
	}
	return dup
}
