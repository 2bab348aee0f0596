// Package exercise sequences one full metadata-retention pass: the type
// universe walk, the generic instantiation table, and each subsystem
// anchor in turn. The sequence is linear and unconditional; no step's
// failure may skip a later step, and control always reaches the end.
package exercise

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ballast-dev/ballast/internal/anchor"
	"github.com/ballast-dev/ballast/internal/cli/config"
	"github.com/ballast-dev/ballast/internal/instantiate"
	"github.com/ballast-dev/ballast/internal/universe"
)

// StepReport records the outcome of one orchestrated step. A recovered
// panic is a design defect being contained, not a runtime error to act
// on; it is recorded and the sequence continues.
type StepReport struct {
	Name      string
	Skipped   bool
	Recovered error // non-nil when the step panicked
}

// Report is the outcome of one full pass.
type Report struct {
	Steps    []StepReport
	Universe universe.Report
	Specs    []instantiate.Spec
	Anchors  []anchor.Result
}

// Run executes one pass in the fixed order: walker, instantiator, then
// each anchor. Anchors absent from the config's enabled list are skipped
// but never reorder or abort the rest. Run itself never panics and has
// no error return; the pass is its own result.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) Report {
	var rep Report

	rep.Steps = append(rep.Steps, runStep("universe", func() {
		rep.Universe = universe.Walk()
		log.Debug("type universe walked",
			zap.Int("types", rep.Universe.Types),
			zap.Int("failed", rep.Universe.Failed),
			zap.Int("modules", len(rep.Universe.Modules)),
		)
	}))

	rep.Steps = append(rep.Steps, runStep("instantiate", func() {
		rep.Specs = instantiate.Materialize()
		log.Debug("generic table materialized", zap.Int("specs", len(rep.Specs)))
	}))

	for _, a := range anchors(cfg) {
		a := a
		name := "anchor/" + a.Name()
		if !cfg.AnchorEnabled(a.Name()) {
			rep.Steps = append(rep.Steps, StepReport{Name: name, Skipped: true})
			continue
		}
		rep.Steps = append(rep.Steps, runStep(name, func() {
			result := a.Exercise(ctx)
			rep.Anchors = append(rep.Anchors, result)
			log.Debug("anchor exercised",
				zap.String("anchor", result.Name),
				zap.Int("calls", result.Calls),
				zap.Int("absorbed", result.Absorbed),
			)
		}))
	}

	return rep
}

// anchors returns the curated anchor sequence with config overrides
// applied.
func anchors(cfg *config.Config) []anchor.Anchor {
	all := anchor.All()
	if cfg.Anchors.RedisAddr != "" {
		for _, a := range all {
			if s, ok := a.(*anchor.Storage); ok {
				s.RedisAddr = cfg.Anchors.RedisAddr
			}
		}
	}
	return all
}

// runStep executes one step under a recover guard. Nothing a step does
// may propagate past this boundary.
func runStep(name string, fn func()) (step StepReport) {
	step = StepReport{Name: name}
	defer func() {
		if r := recover(); r != nil {
			step.Recovered = fmt.Errorf("step %s panicked: %v", name, r)
		}
	}()
	fn()
	return step
}
