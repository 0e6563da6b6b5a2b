package clustergram

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// View ties one dataset to its clustering, sunburst partition, scatterplot
// matrix and cross-filter controller. Renderers read the built data and
// subscribe to the controller; they never mutate either.
type View struct {
	// ID identifies the view in every Selection it emits.
	ID uuid.UUID

	provider Provider
	opts     Options
	engine   *Engine

	mu         sync.RWMutex
	dataset    *Dataset
	clustering *Result
	hierarchy  *HierarchyNode
	partition  *Partition
	controller *Controller
}

// built holds one complete build, swapped into the View only on success.
type built struct {
	dataset    *Dataset
	clustering *Result
	hierarchy  *HierarchyNode
	partition  *Partition
}

// NewView fetches the dataset once and builds every derived structure.
func NewView(ctx context.Context, provider Provider, opts Options) (*View, error) {
	opts.applyDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	engine, err := NewEngine(opts.Metric, opts.Linkage)
	if err != nil {
		return nil, err
	}
	fade, err := opts.fadeDelay()
	if err != nil {
		return nil, err
	}

	v := &View{
		ID:       uuid.New(),
		provider: provider,
		opts:     opts,
		engine:   engine,
	}
	b, err := v.build(ctx)
	if err != nil {
		return nil, err
	}
	ctrl, err := NewController(b.dataset, opts.Features.X, opts.Features.Y, ControllerOptions{
		FadeDelay: fade,
		View:      v.ID,
	})
	if err != nil {
		return nil, err
	}
	v.install(b)
	v.controller = ctrl
	return v, nil
}

// Rebuild refetches the dataset, reclusters and relays everything out, then
// resets the selection. On error the previous build stays in place.
func (v *View) Rebuild(ctx context.Context) error {
	b, err := v.build(ctx)
	if err != nil {
		return err
	}
	d, err := v.controller.prepare(b.dataset)
	if err != nil {
		return err
	}
	// Install before resetting so listeners notified of the reset read the
	// new build.
	v.install(b)
	v.controller.resetTo(d)
	return nil
}

func (v *View) build(ctx context.Context) (*built, error) {
	ds, err := v.provider.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("clustergram: fetch dataset: %w", err)
	}
	vectors, err := ds.Vectors(v.opts.Features.X, v.opts.Features.Y)
	if err != nil {
		return nil, err
	}
	res, err := v.engine.Cluster(vectors)
	if err != nil {
		return nil, err
	}
	h := ToHierarchy(res.Root)
	p, err := LayoutWith(h, v.opts.LayoutOptions())
	if err != nil {
		return nil, err
	}
	return &built{dataset: ds, clustering: res, hierarchy: h, partition: p}, nil
}

func (v *View) install(b *built) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.dataset = b.dataset
	v.clustering = b.clustering
	v.hierarchy = b.hierarchy
	v.partition = b.partition
}

// Options returns the resolved options.
func (v *View) Options() Options { return v.opts }

func (v *View) Dataset() *Dataset {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.dataset
}

func (v *View) Clustering() *Result {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.clustering
}

func (v *View) Hierarchy() *HierarchyNode {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.hierarchy
}

func (v *View) Partition() *Partition {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.partition
}

// Controller returns the cross-filter controller. It lives as long as the
// view; Rebuild resets it rather than replacing it, so subscriptions survive.
func (v *View) Controller() *Controller { return v.controller }

// Trellis returns the scatterplot matrix for the current dataset.
func (v *View) Trellis() *Trellis { return v.controller.Trellis() }
