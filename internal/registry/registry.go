// Package registry provides a global registry for drill factories.
// Drill packages register themselves in init() functions, allowing the
// platform to discover and instantiate drills without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/cortexprime/cortex/internal/core"
)

// Drill is the interface every mini-game kind implements. Drills
// contain pure round-generation and scoring logic with no external
// dependencies (especially no Bubble Tea). The platform handles input
// mapping, timing, and rendering; the session engine handles lifecycle
// and score accumulation.
type Drill interface {
	// Kind returns the unique round-generation kind identifier
	// (e.g., "mentalmath", "stroop"). Game definitions in the catalog
	// reference drills by this kind.
	Kind() string

	// Title returns a human-readable name for display.
	Title() string

	// NextRound generates a fresh round, fully replacing any prior
	// one. All randomness comes from the supplied source so rounds
	// are reproducible by seed.
	NextRound(rng *rand.Rand) core.Round

	// Score evaluates an input against the current round. Inputs of
	// an unexpected type yield a zero Result with Done=false.
	Score(round core.Round, in core.Input) core.Result
}

// Evaluator is implemented by free-text drills whose rounds are not
// scored per answer but evaluated as a whole once the response is
// submitted.
type Evaluator interface {
	Drill

	// Response extracts the submitted text from a drill input.
	// Returns false for inputs of an unexpected type.
	Response(in core.Input) (string, bool)

	// Evaluate produces the text evaluation for a submitted response.
	// Pure: identical text yields an identical evaluation.
	Evaluate(text string) core.TextEvaluation
}

// DrillInfo contains metadata about a registered drill.
type DrillInfo struct {
	Kind  string
	Title string
}

// Factory is a function that creates a new instance of a drill.
type Factory func() Drill

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a drill factory to the registry.
// Typically called from a drill package's init() function.
// Panics if a drill with the same kind is already registered.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("registry: drill %q already registered", kind))
	}

	factories[kind] = f

	// Get title by creating a temporary instance
	d := f()
	titles[kind] = d.Title()
}

// List returns information about all registered drills, sorted by kind.
func List() []DrillInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DrillInfo, 0, len(factories))
	for kind := range factories {
		result = append(result, DrillInfo{
			Kind:  kind,
			Title: titles[kind],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Kind < result[j].Kind
	})

	return result
}

// Create instantiates a new drill by its kind.
// Returns an error if the kind is not registered.
func Create(kind string) (Drill, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("registry: unknown drill %q", kind)
	}

	return f(), nil
}

// Exists checks if a drill with the given kind is registered.
func Exists(kind string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[kind]
	return ok
}
