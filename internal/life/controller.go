package life

import "github.com/pkg/errors"

// Phase is the controller's lifecycle state.
type Phase int

const (
	// PhaseSetup is the initial state: the board may still be edited.
	PhaseSetup Phase = iota
	// PhaseRunning is entered once by Start and never left.
	PhaseRunning
)

var (
	// ErrNotRunning is returned by Tick before Start has been called.
	ErrNotRunning = errors.New("life: controller has not been started")
	// ErrAlreadyRunning is returned by a second call to Start.
	ErrAlreadyRunning = errors.New("life: controller already running")
)

// Renderer is the presentation collaborator. It observes the pre-commit
// current generation once per tick and must not mutate anything.
type Renderer interface {
	RenderSync(view View)
}

// Controller owns the tick sequence. Every tick runs exactly three phases
// in a fixed order: the engine stages the next generation, the renderer
// observes the still-current one, and the state commits. The controller is
// the sole mutator of the state store.
type Controller struct {
	world      *World
	renderer   Renderer
	phase      Phase
	generation int
	stats      Stats
}

// NewController wires a world to an optional renderer. A nil renderer
// skips the render-sync phase's callback but not the phase order.
func NewController(w *World, r Renderer) *Controller {
	return &Controller{world: w, renderer: r}
}

// Start transitions Setup -> Running. It happens at most once.
func (c *Controller) Start() error {
	if c.phase != PhaseSetup {
		return ErrAlreadyRunning
	}
	c.phase = PhaseRunning
	c.stats.Record(c.world.State.Cells())
	return nil
}

// Tick advances the simulation by one generation: compute-next,
// render-sync, commit. A tick, once started, always completes all three
// phases; there is no rollback.
func (c *Controller) Tick() error {
	if c.phase != PhaseRunning {
		return ErrNotRunning
	}
	Step(c.world.Adjacency, c.world.State)
	if c.renderer != nil {
		c.renderer.RenderSync(c.world.View())
	}
	c.world.State.Commit()
	c.generation++
	c.stats.Record(c.world.State.Cells())
	return nil
}

// Phase returns the controller's lifecycle state.
func (c *Controller) Phase() Phase { return c.phase }

// Generation returns the number of completed ticks.
func (c *Controller) Generation() int { return c.generation }

// Stats returns the running population and stagnation counters.
func (c *Controller) Stats() *Stats { return &c.stats }

// World returns the simulation state owned by the controller.
func (c *Controller) World() *World { return c.world }
