package provisioning

import (
	"fmt"
	"time"
)

// RunPhases executes all provisioning phases sequentially.
// The first failing phase stops the run.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting provisioning with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		ctx.Observer.Progress(phase.Name(), i+1, len(phases))
		LogPhaseStart(ctx.Observer, phase.Name())

		err := phase.Provision(ctx)
		elapsed := time.Since(phaseStart)
		if ctx.Metrics != nil {
			ctx.Metrics.ObservePhase(phase.Name(), elapsed, err)
		}
		if err != nil {
			LogPhaseFailed(ctx.Observer, phase.Name(), err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, phase.Name(), elapsed)
	}

	ctx.Observer.Printf("Provisioning completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}
