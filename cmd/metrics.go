package cmd

import (
	"github.com/bnema/poolctl/internal/adapters/render/report"
	"github.com/bnema/poolctl/internal/application"
	"github.com/spf13/cobra"
)

type sampleOutput struct {
	Name   string  `json:"name"`
	Labels string  `json:"labels,omitempty"`
	Value  float64 `json:"value"`
}

func newMetricsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Replay the session journal and print settlement metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd.Context(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			replayed, err := application.ReplayJournal(cmd.Context(), app.journal, app.metrics)
			if err != nil {
				return err
			}
			app.logger.Debug("journal replayed", "sessions", replayed)

			samples, err := app.metrics.Snapshot()
			if err != nil {
				return err
			}

			if app.opts.asJSON {
				out := make([]sampleOutput, 0, len(samples))
				for _, sample := range samples {
					out = append(out, sampleOutput(sample))
				}
				return writeJSON(cmd, out)
			}

			rendered, err := report.RenderMetrics(samples)
			return writeRendered(cmd, rendered, err)
		},
	}
}
