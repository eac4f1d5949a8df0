package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guardian-sec/guardian-console/internal/console"
	"github.com/guardian-sec/guardian-console/internal/console/viewmodel"
)

// clearScreen moves the cursor home and wipes the terminal before a redraw.
const clearScreen = "\033[2J\033[H"

// renderLoop redraws immediately and then on every tick until the context is
// cancelled.
func renderLoop(ctx context.Context, interval time.Duration, draw func()) error {
	draw()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			draw()
		}
	}
}

func renderTable(w io.Writer, session *console.Session) {
	snap := session.List.Snapshot()
	now := session.Now()

	fmt.Fprint(w, clearScreen)
	if snap.Loading {
		fmt.Fprintln(w, "refreshing…")
	}
	if snap.Err != nil {
		fmt.Fprintf(w, "refresh failed: %v\n", snap.Err)
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tREPO\tSTATUS\tDURATION\tTOKENS")
	for _, scan := range snap.Scans {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			scan.ID,
			scan.Repo,
			scan.Status,
			viewmodel.Duration(scan, now),
			viewmodel.TokenSummary(scan),
		)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\n%d scans · ctrl-c to quit\n", len(snap.Scans))
}

func renderLogs(w io.Writer, session *console.Session, scanID int) {
	snap := session.Logs.Snapshot()
	now := session.Now()

	fmt.Fprint(w, clearScreen)
	if scan, ok := session.List.Scan(scanID); ok {
		fmt.Fprintf(w, "scan %d · %s · %s · %s\n\n",
			scan.ID, scan.Repo, scan.Status, viewmodel.Duration(scan, now))
	} else {
		fmt.Fprintf(w, "scan %d\n\n", scanID)
	}

	steps := viewmodel.LatestSteps(snap.Logs)
	if len(steps) == 0 {
		fmt.Fprintln(w, "no logs yet")
		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tTOKENS\tMODEL\tMESSAGE")
	for _, entry := range steps {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			entry.Step,
			viewmodel.FormatTokenCount(viewmodel.EffectiveTotal(entry)),
			entry.Model,
			entry.Message,
		)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\ntotal %s tokens\n", viewmodel.FormatTokenCount(viewmodel.TotalTokens(snap.Logs)))

	// The verification phase dumps raw test-runner output in its message;
	// surface the structured pass/fail entries underneath the table.
	for _, entry := range steps {
		if entry.Step != "Verification" {
			continue
		}
		for _, result := range viewmodel.ParseVerificationLog(entry.Message) {
			marker := "✔"
			if !result.Passed {
				marker = "✗"
			}
			fmt.Fprintf(w, "  %s %s\n", marker, result.Name)
		}
	}
}

// printReport fetches one report and writes it once; no polling.
func printReport(ctx context.Context, session *console.Session, scanID int, filter string) error {
	report, err := session.Reports.Load(ctx, scanID)
	if err != nil {
		return err
	}

	view := viewmodel.BuildReportView(report)
	if !view.Generated {
		fmt.Println("report not generated yet")
		return nil
	}

	findings := view.Vulnerabilities
	if filter != "" {
		findings, err = session.Filter.Apply(filter, findings)
		if err != nil {
			return err
		}
	}

	w := os.Stdout
	if view.Error != "" {
		fmt.Fprintf(w, "pipeline error: %s\n\n", view.Error)
	}

	fmt.Fprint(w, "pipeline: ")
	for i, stage := range view.Stages {
		if i > 0 {
			fmt.Fprint(w, " → ")
		}
		marker := "✔"
		if stage.State == viewmodel.StageAttention {
			marker = "!"
		}
		fmt.Fprintf(w, "%s %s", marker, stage.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "\nfindings (%d):\n", len(findings))
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, v := range findings {
		location := v.Path
		if v.Line > 0 {
			location = fmt.Sprintf("%s:%d", v.Path, v.Line)
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%s\n",
			viewmodel.SeverityMarker(v.Severity), v.Severity, location, v.Type, viewmodel.LanguageLabel(v.Path))
	}
	_ = tw.Flush()

	if len(view.Libraries) > 0 {
		fmt.Fprintln(w, "\ndetected libraries:")
		for _, lib := range view.Libraries {
			fmt.Fprintf(w, "  %s: %s\n", lib.Language, lib.Package)
		}
	}

	if len(view.Environments) > 0 {
		fmt.Fprintln(w, "\nenvironments:")
		for _, env := range view.Environments {
			fmt.Fprintf(w, "  .%s → %s (%s)\n", env.Extension, env.Language, env.DockerImage)
		}
	}

	if view.RemediationCount > 0 {
		fmt.Fprintf(w, "\nfixes (%d, %d/%d verified):\n",
			view.RemediationCount, view.VerificationPassed, view.VerificationTotal)
		for _, fix := range view.Remediation {
			status := "unverified"
			if result, ok := view.VerificationFor(fix.Path); ok {
				status = "failed"
				if result.Verified {
					status = "verified"
				} else if result.Error != nil {
					status = fmt.Sprintf("failed: %s", *result.Error)
				}
			}
			fmt.Fprintf(w, "  %s (%s) — %s\n", fix.Path, fix.Type, status)
		}
	}
	return nil
}

func printSettings(ctx context.Context, session *console.Session) error {
	entries, err := session.Settings(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", entry.Key, entry.DisplayValue())
	}
	return tw.Flush()
}
