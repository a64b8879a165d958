// Package landgrid provides read-only access to prebuilt per-state land-grid
// datasets: one indexed document per U.S. state mapping Township/Range/Section
// keys to section geometry. Datasets are loaded on first access, exactly once
// per state, and are immutable afterwards.
package landgrid

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/whosonfirst/go-reader/v2"
	"golang.org/x/sync/singleflight"

	"github.com/legaldesc/go-plss-georeference/plss"
)

// NotFoundError signals that a state's land-grid dataset is not present
// locally. Downloading it is the provisioning collaborator's concern (see
// `Fetch`); requests fail fast rather than downloading inline.
type NotFoundError struct {
	State string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Land-grid dataset for state '%s' is not present locally", e.State)
}

// stateIndex is one state's loaded dataset. Immutable once built.
type stateIndex struct {
	state    string
	sections map[string]*plss.SectionGeometry
}

// Catalog is the long-lived handle over the land-grid datasets. It is safe for
// concurrent use: the only synchronized path is the first load of a given
// state, which is single-flighted so concurrent requests for an unloaded state
// trigger exactly one load. Loads for different states never block each other.
type Catalog struct {
	reader reader.Reader
	mu     sync.RWMutex
	states map[string]*stateIndex
	group  singleflight.Group
}

// NewCatalog returns a `Catalog` reading state documents from 'r'. Documents
// are keyed by upper-cased state code, for example "WY.geojson".
func NewCatalog(ctx context.Context, r reader.Reader) (*Catalog, error) {

	c := &Catalog{
		reader: r,
		states: make(map[string]*stateIndex),
	}

	return c, nil
}

// documentKey derives the document name for a state code.
func documentKey(state string) string {
	return fmt.Sprintf("%s.geojson", strings.ToUpper(state))
}

// Has reports whether the dataset for 'state' is loaded or present locally.
func (c *Catalog) Has(ctx context.Context, state string) bool {

	state = strings.ToUpper(state)

	c.mu.RLock()
	_, loaded := c.states[state]
	c.mu.RUnlock()

	if loaded {
		return true
	}

	exists, err := c.reader.Exists(ctx, documentKey(state))

	if err != nil {
		return false
	}

	return exists
}

// Section implements the `plss.SectionIndex` contract: an exact-match lookup by
// composite (meridian, township, range, section) key into the state's index.
func (c *Catalog) Section(ctx context.Context, ref *plss.Reference) (*plss.SectionGeometry, error) {

	idx, err := c.state(ctx, ref.State)

	if err != nil {
		return nil, err
	}

	geom, ok := idx.sections[ref.Key()]

	if !ok {
		return nil, &plss.InvalidReferenceError{Field: "section", Value: ref.Key()}
	}

	return geom, nil
}

// state returns the loaded index for 'state', loading it on first access. The
// load is single-flighted per state; waiting callers honor context
// cancellation without cancelling the load other callers are sharing.
func (c *Catalog) state(ctx context.Context, state string) (*stateIndex, error) {

	state = strings.ToUpper(state)

	c.mu.RLock()
	idx, ok := c.states[state]
	c.mu.RUnlock()

	if ok {
		return idx, nil
	}

	ch := c.group.DoChan(state, func() (interface{}, error) {
		return c.load(context.WithoutCancel(ctx), state)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:

		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.(*stateIndex), nil
	}
}

func (c *Catalog) load(ctx context.Context, state string) (*stateIndex, error) {

	// A caller can join a fresh flight after a completed one stored the index;
	// recheck before reading.

	c.mu.RLock()
	loaded, ok := c.states[state]
	c.mu.RUnlock()

	if ok {
		return loaded, nil
	}

	logger := slog.Default()
	logger = logger.With("state", state)

	key := documentKey(state)

	exists, err := c.reader.Exists(ctx, key)

	if err != nil {
		return nil, fmt.Errorf("Failed to determine whether %s exists, %w", key, err)
	}

	if !exists {
		return nil, &NotFoundError{State: state}
	}

	logger.Debug("Load land-grid dataset", "key", key)

	rsc, err := c.reader.Read(ctx, key)

	if err != nil {
		return nil, fmt.Errorf("Failed to read %s, %w", key, err)
	}

	defer rsc.Close()

	idx, err := parseDataset(state, rsc)

	if err != nil {
		return nil, fmt.Errorf("Failed to parse land-grid dataset for %s, %w", state, err)
	}

	c.mu.Lock()
	c.states[state] = idx
	c.mu.Unlock()

	logger.Debug("Loaded land-grid dataset", "sections", len(idx.sections))

	return idx, nil
}
