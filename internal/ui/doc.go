// Package ui provides terminal output components for the btautolaunch CLI.
//
// Unlike the interactive preview, these components follow a "run once and
// exit" pattern. They render compelling output but need no user input.
//
// # Components
//
//   - Header: Command banner showing operation name and parameters
//   - Result: Success, warning and failure boxes with ordered details
//   - RenderVendor: Background-restriction advisory for one manufacturer
//   - Printer: Writes the above to any io.Writer
//
// Example:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintHeader("Preview Server", "btautolaunch serve",
//	    ui.Detail{Key: "Listen", Value: addr},
//	)
//	p.PrintSuccess("Server stopped")
//
// RenderOnceTo pushes a pre-rendered string through Bubble Tea's renderer and
// exits; the snapshot command uses it.
//
// # Logging Integration
//
// This package expects logging to be controlled via the BTAUTOLAUNCH_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
