package experiments

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

// storageNamespace prefixes every persisted assignment key.
const storageNamespace = "menuengine:exp"

type Experiment struct {
	ID       string
	Variants []string
}

const (
	PriceFormat     = "price_format"
	PhotoVisibility = "photo_visibility"
	UpsellStrategy  = "upsell_strategy"
)

// Registry is the closed set of running experiments.
var Registry = []Experiment{
	{ID: PriceFormat, Variants: []string{"whole", "decimal_9", "decimal_5"}},
	{ID: PhotoVisibility, Variants: []string{"show", "hide"}},
	{ID: UpsellStrategy, Variants: []string{"sequential", "bundled"}},
}

// Assigner buckets one guest into experiment variants. The first lookup for
// an experiment picks uniformly at random and persists the choice through the
// injected store; later lookups always return the stored value, so the guest
// sees a stable experience for the lifetime of the stored assignment.
type Assigner struct {
	store Store
	scope string // typically the guest id

	mu  sync.Mutex
	rng *rand.Rand

	experiments map[string]Experiment
}

func NewAssigner(store Store, scope string, seed int64) *Assigner {
	byID := make(map[string]Experiment, len(Registry))
	for _, exp := range Registry {
		byID[exp.ID] = exp
	}
	return &Assigner{
		store:       store,
		scope:       scope,
		rng:         rand.New(rand.NewSource(seed)),
		experiments: byID,
	}
}

func (a *Assigner) key(experimentID string) string {
	return fmt.Sprintf("%s:%s:%s", storageNamespace, a.scope, experimentID)
}

// Variant returns the guest's assignment, idempotent after the first call.
// A stored value outside the experiment's variant set is treated as corrupt
// storage: the experiment is silently re-bucketed, never surfaced as an
// error.
func (a *Assigner) Variant(ctx context.Context, experimentID string) (string, error) {
	exp, ok := a.experiments[experimentID]
	if !ok {
		return "", fmt.Errorf("unknown experiment %q", experimentID)
	}

	stored, found, err := a.store.Get(ctx, a.key(experimentID))
	if err != nil {
		return "", fmt.Errorf("reading assignment for %s: %w", experimentID, err)
	}
	if found && contains(exp.Variants, stored) {
		return stored, nil
	}

	a.mu.Lock()
	variant := exp.Variants[a.rng.Intn(len(exp.Variants))]
	a.mu.Unlock()

	if err := a.store.Set(ctx, a.key(experimentID), variant); err != nil {
		return "", fmt.Errorf("persisting assignment for %s: %w", experimentID, err)
	}
	return variant, nil
}

// AllVariants resolves every registered experiment, assigning any that are
// still unassigned, and returns the full map for event-logging correlation.
func (a *Assigner) AllVariants(ctx context.Context) (map[string]string, error) {
	out := make(map[string]string, len(Registry))
	for _, exp := range Registry {
		variant, err := a.Variant(ctx, exp.ID)
		if err != nil {
			return nil, err
		}
		out[exp.ID] = variant
	}
	return out, nil
}

// Reset clears one assignment so the next lookup re-buckets.
func (a *Assigner) Reset(ctx context.Context, experimentID string) error {
	if _, ok := a.experiments[experimentID]; !ok {
		return fmt.Errorf("unknown experiment %q", experimentID)
	}
	return a.store.Delete(ctx, a.key(experimentID))
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
