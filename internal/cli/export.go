package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) export(ctx context.Context, args []string) {
	path := a.config.ExportPath
	if len(args) > 0 {
		path = args[0]
	}

	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.report.Export(ctx, file); err != nil {
		_ = file.Close()
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if err := file.Close(); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fmt.Fprintln(a.out, "Report written to", path)
}

func (a *App) save(ctx context.Context) {
	if err := a.store.Save(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Saved.")
}

// reset wipes the whole database. The store performs no confirmation of its
// own, so the dialog happens here.
func (a *App) reset(ctx context.Context) {
	answer, err := GetSimpleText(a.reader, "This deletes ALL users and ledgers and cannot be undone. Type 'yes' to continue", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if answer != "yes" {
		fmt.Fprintln(a.out, "Reset cancelled.")
		return
	}

	if err := a.store.ResetAll(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Database reset.")
}
