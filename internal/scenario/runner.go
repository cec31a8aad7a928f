package scenario

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	forms "github.com/grindlemire/go-forms"
	"github.com/grindlemire/go-forms/theme"
)

// Runner builds the trees of a scenario and applies its steps.
type Runner struct {
	cat      *theme.Catalogue
	log      *zap.Logger
	controls map[string]*forms.Control
	roots    []*forms.Control
	rec      Recorder
}

// NewRunner creates a Runner resolving variant names through cat, or the
// built-in catalogue when cat is nil. A nil logger discards everything.
func NewRunner(cat *theme.Catalogue, log *zap.Logger) *Runner {
	if cat == nil {
		cat = theme.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		cat:      cat,
		log:      log,
		controls: make(map[string]*forms.Control),
	}
}

// Control returns the control declared under name.
func (r *Runner) Control(name string) (*forms.Control, bool) {
	c, ok := r.controls[name]
	return c, ok
}

// Run builds the scenario's controls, watches them and applies every step.
// It returns the recorded trace. Steps rejected by a control are recorded in
// the trace as lines starting with "!" and do not stop the run; errors in
// the scenario itself do.
func (r *Runner) Run(s *Scenario) ([]string, error) {
	for _, spec := range s.Controls {
		root, err := r.build(spec)
		if err != nil {
			return nil, err
		}
		r.roots = append(r.roots, root)
	}

	if err := r.watch(s.Watch); err != nil {
		return nil, err
	}

	for i, step := range s.Steps {
		r.rec.Note("-- %s", step)
		r.log.Debug("Applying step", zap.Int("index", i), zap.Stringer("step", step))
		err := r.apply(step)
		switch {
		case err == nil:
		case errors.Is(err, ErrInvalidScenario):
			return r.rec.Lines(), fmt.Errorf("step %d (%s): %w", i+1, step, err)
		default:
			r.log.Debug("Step rejected", zap.Int("index", i), zap.Error(err))
			r.rec.Note("! %v", err)
		}
	}
	return r.rec.Lines(), nil
}

// Close disposes every root that is not disposed yet and returns the
// combined errors.
func (r *Runner) Close() (err error) {
	for _, root := range r.roots {
		if root.IsDisposed() || root.Parent() != nil {
			continue
		}
		err = multierr.Append(err, root.Dispose())
	}
	return err
}

func (r *Runner) build(spec ControlSpec) (*forms.Control, error) {
	if spec.Name == "" {
		return nil, invalid("control without a name")
	}
	if _, dup := r.controls[spec.Name]; dup {
		return nil, invalid("duplicate control name %q", spec.Name)
	}
	variant := spec.Variant
	if variant == "" {
		variant = "Control"
	}
	c, err := r.cat.New(variant, forms.WithName(spec.Name), forms.WithLogger(r.log))
	if err != nil {
		return nil, fmt.Errorf("%w: control %q: %w", ErrInvalidScenario, spec.Name, err)
	}
	r.controls[spec.Name] = c

	for _, a := range spec.Properties {
		if err := setProperty(c, a.Property, a.Value); err != nil {
			return nil, fmt.Errorf("control %q: %w", spec.Name, err)
		}
	}
	for _, childSpec := range spec.Children {
		child, err := r.build(childSpec)
		if err != nil {
			return nil, err
		}
		if err := c.Controls().Add(child); err != nil {
			return nil, fmt.Errorf("control %q: %w", spec.Name, err)
		}
	}
	return c, nil
}

func (r *Runner) watch(names []string) error {
	if len(names) == 0 {
		var walk func(c *forms.Control)
		walk = func(c *forms.Control) {
			r.rec.Watch(c)
			for _, ch := range c.Children() {
				walk(ch)
			}
		}
		for _, root := range r.roots {
			walk(root)
		}
		return nil
	}
	for _, name := range names {
		c, err := r.target(name)
		if err != nil {
			return err
		}
		r.rec.Watch(c)
	}
	return nil
}

func (r *Runner) target(name string) (*forms.Control, error) {
	c, ok := r.controls[name]
	if !ok {
		return nil, invalid("unknown control %q", name)
	}
	return c, nil
}

func (r *Runner) apply(step Step) error {
	c, err := r.target(step.Target)
	if err != nil {
		return err
	}

	switch step.Op {
	case OpSet:
		return setProperty(c, step.Property, step.Value)
	case OpReset:
		p, ok := forms.ParseProperty(step.Property)
		if !ok {
			return invalid("%q is not an ambient property", step.Property)
		}
		forms.ResetValue(c, p)
	case OpStyle:
		flag, ok := forms.ParseControlStyle(step.Property)
		if !ok {
			return invalid("unknown style %q", step.Property)
		}
		on := true
		if step.Value != "" {
			if on, err = strconv.ParseBool(step.Value); err != nil {
				return invalid("style %s: %v", step.Property, err)
			}
		}
		c.SetStyle(flag, on)
	case OpAdd:
		parent, err := r.target(step.Parent)
		if err != nil {
			return err
		}
		return parent.Controls().Add(c)
	case OpRemove:
		if err := c.SetParent(nil); err != nil {
			return err
		}
		r.addRoot(c)
	case OpIndex:
		i, err := strconv.Atoi(step.Value)
		if err != nil {
			return invalid("index %q: %v", step.Value, err)
		}
		if c.Parent() == nil || !c.Parent().Controls().SetChildIndex(c, i) {
			return invalid("%q has no parent", step.Target)
		}
	case OpCreate:
		c.CreateControl()
	case OpDispose:
		return c.Dispose()
	case OpSuspend:
		c.SuspendLayout()
	case OpResume:
		perform := true
		if step.Value != "" {
			if perform, err = strconv.ParseBool(step.Value); err != nil {
				return invalid("resume %s: %v", step.Target, err)
			}
		}
		c.ResumeLayout(perform)
	case OpLayout:
		c.PerformLayout()
	default:
		return invalid("unknown op %q", step.Op)
	}
	return nil
}

// addRoot remembers a detached control so Close disposes it.
func (r *Runner) addRoot(c *forms.Control) {
	for _, root := range r.roots {
		if root == c {
			return
		}
	}
	r.roots = append(r.roots, c)
}
