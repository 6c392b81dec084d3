// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/svg2ai/internal/host"
)

// Run performs a complete conversion: host prompts are suppressed for the
// walk, restored afterwards, and then exactly one outcome alert is raised
// through rep: the summary on success, the fatal error otherwise.
func Run(ctx context.Context, h host.Host, roots Roots, opts Options, rep Reporter, w io.Writer) (Result, error) {
	opts = opts.withDefaults()
	log := opts.Logger.With("host", h.Name(), "input", roots.Input, "output", roots.Output)
	log.Info("run.started")

	prev := h.InteractionLevel()
	if err := h.SetInteractionLevel(host.DontDisplayAlerts); err != nil {
		fe := fatal(CodeHost, "Could not suppress host alerts", err)
		rep.Fatal(fe)
		return Result{}, fe
	}

	result, err := Walk(ctx, h, roots, opts, rep, w)
	if err != nil {
		closeDangling(h)
	}

	if rerr := h.SetInteractionLevel(prev); rerr != nil {
		log.Warn("interaction_level.restore_failed", "error", rerr.Error())
	}

	if err != nil {
		log.Error("run.aborted", "error", err.Error(), "converted", result.Converted)
		rep.Fatal(err)
		return result, err
	}

	fmt.Fprintf(w, "\nSummary: %d converted, %d skipped, %d failed, %d folders\n",
		result.Converted, result.Skipped, result.Failed, result.Folders)
	log.Info("run.finished", "converted", result.Converted, "skipped", result.Skipped,
		"failed", result.Failed, "folders", result.Folders)
	rep.Summary(result.Converted, opts.Extension)
	return result, nil
}
