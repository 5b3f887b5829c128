package app

import (
	"context"

	"github.com/ObserveRTC/report-connector/internal/ctxlog"
	"github.com/ObserveRTC/report-connector/internal/job"
)

// Run executes the one-shot schema provisioning pass. The pass itself never
// fails; the recorded outcomes are summarized in the logs.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.model.HealthcheckPort > 0 {
		a.startHealthcheckServer(a.model.HealthcheckPort)
	}

	a.checker.Perform(ctx)

	var succeeded, skipped, failed int
	for _, outcome := range a.checker.Results() {
		switch outcome.Status {
		case job.Success:
			succeeded++
		case job.Skipped:
			skipped++
		case job.Failed:
			failed++
		}
	}
	a.logger.Info("Schema provisioning finished.", "succeeded", succeeded, "skipped", skipped, "failed", failed)

	a.logger.Debug("App.Run method finished.")
	return nil
}
