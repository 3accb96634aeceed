package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/catalog"
	"github.com/muurk/btautolaunch/internal/config"
	"github.com/muurk/btautolaunch/internal/discovery"
	"github.com/muurk/btautolaunch/internal/logging"
	"github.com/muurk/btautolaunch/internal/preview"
	"github.com/muurk/btautolaunch/internal/server"
	"github.com/muurk/btautolaunch/internal/theme"
	"github.com/muurk/btautolaunch/internal/ui"
)

// Frame flags shared by preview and snapshot
var (
	startTab    string
	frameWidth  int
	frameHeight int
	status      string
)

// Command flags
var (
	snapshotTheme string
	snapshotPlain bool

	serveHost      string
	servePort      int
	serveAdvertise bool
	serveInstance  string

	discoverTimeout  int
	discoverForget   bool
	discoverInstance string

	forceInit bool
)

func addFrameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&startTab, "tab", "", "Screen to open (dashboard, setup, audit)")
	cmd.Flags().IntVar(&frameWidth, "width", 0, "Phone frame width in cells")
	cmd.Flags().IntVar(&frameHeight, "height", 0, "Phone frame height in cells")
	cmd.Flags().StringVar(&status, "status", string(automation.StatusReady), "Connection status shown by the ring (Ready, Searching, Connected, Error)")
}

func init() {
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(vendorsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(configCmd)
}

// previewCmd launches the interactive preview
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Launch the interactive preview",
	Long: `Launch the interactive dual-theme preview.

Keys:
  1 2 3        switch screen (also tab / shift+tab)
  up / down    move focus
  enter/space  activate the focused control
  left / right adjust the launch delay slider
  ?            toggle full help
  q            quit

The terminal is owned by the preview, so logs only go to --log-file.`,
	Example: `  # Launch on the dashboard (default)
  btautolaunch
  btautolaunch preview

  # Open the rule editor with larger frames
  btautolaunch preview --tab setup --width 52 --height 48

  # Show the ring in its error state and log actions to a file
  btautolaunch preview --status Error --log-level debug --log-file preview.log`,
	RunE: runPreview,
}

func init() {
	addFrameFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	// Log only to a file: stdout belongs to the TUI
	path := logFile
	if path == "" {
		path = registry.Preferences.LogFile
	}
	if path != "" {
		if err := logging.InitializeTo(resolveLogLevel(), path); err != nil {
			return err
		}
	}

	opts, err := previewOptions(registry.Preferences)
	if err != nil {
		return err
	}

	p := tea.NewProgram(preview.New(opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	return nil
}

// snapshotCmd renders the frames once
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the preview once and exit",
	Long: `Render the phone frames for the initial state once and exit.

Without --theme both frames are drawn side by side. Use --plain to strip
colors, for example when writing the result to a file.`,
	Example: `  # Both themes, dashboard
  btautolaunch snapshot

  # Dark audit screen as plain text
  btautolaunch snapshot --tab audit --theme dark --plain > audit.txt`,
	RunE: runSnapshot,
}

func init() {
	addFrameFlags(snapshotCmd)
	snapshotCmd.Flags().StringVar(&snapshotTheme, "theme", "", "Draw only this theme (light, dark)")
	snapshotCmd.Flags().BoolVar(&snapshotPlain, "plain", false, "Strip ANSI colors from the output")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(resolveLogLevel()); err != nil {
		return err
	}

	opts, err := previewOptions(registry.Preferences)
	if err != nil {
		return err
	}
	if snapshotTheme != "" {
		name, err := theme.Parse(snapshotTheme)
		if err != nil {
			return err
		}
		opts = append(opts, preview.WithThemes(name))
	}

	m := preview.New(append(opts, preview.WithStatic())...)

	w := cmd.OutOrStdout()
	switch {
	case snapshotPlain:
		_, err = fmt.Fprintln(w, ansi.Strip(m.View()))
		return err
	case !stdoutIsTerminal():
		_, err = fmt.Fprintln(w, m.View())
		return err
	}

	// Center the frames in the terminal
	m.Width, m.Height = ui.GetTerminalSize()
	return ui.RenderOnceTo(w, m.View())
}

// vendorsCmd prints the background-restriction advice
var vendorsCmd = &cobra.Command{
	Use:   "vendors [manufacturer]",
	Short: "Show vendor background-restriction advice",
	Long: `Show how aggressively each Android vendor kills background apps, and
what to change so the automation keeps running.

The manufacturer name is matched exactly (Samsung, Xiaomi, Google, Huawei).`,
	Example: `  # All vendors
  btautolaunch vendors

  # A single vendor
  btautolaunch vendors Xiaomi`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVendors,
}

func runVendors(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(resolveLogLevel()); err != nil {
		return err
	}

	vendors := catalog.StaticVendors()
	printer := ui.NewPrinter(cmd.OutOrStdout())

	if len(args) == 0 {
		printer.PrintHeader("Vendor Restrictions", "btautolaunch vendors")
		printer.PrintVendors(vendors.Vendors())
		return nil
	}

	manufacturer := args[0]
	info, ok := vendors.Vendor(manufacturer)
	if !ok {
		known := make([]string, 0, len(vendors))
		for _, v := range vendors.Vendors() {
			known = append(known, v.Manufacturer)
		}
		printer.PrintError("Unknown Vendor", fmt.Errorf("no advice for %q", manufacturer), []string{
			"Known vendors: " + strings.Join(known, ", "),
			"Names are case sensitive",
		})
		return fmt.Errorf("unknown vendor %q", manufacturer)
	}

	printer.PrintHeader("Vendor Restrictions", "btautolaunch vendors", ui.Detail{Key: "Manufacturer", Value: manufacturer})
	printer.PrintVendors([]catalog.VendorInfo{info})
	return nil
}

// serveCmd runs the preview server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the preview state over HTTP and websocket",
	Long: `Run the preview server.

The server keeps one automation state. Actions posted to /api/actions are
reduced exactly as key presses are in the interactive preview, and every
new state is pushed to /ws subscribers. GET /preview returns the rendered
frames as plain text.

With --advertise the server registers itself over mDNS so that
'btautolaunch discover' can find it.`,
	Example: `  # Serve on the configured address (127.0.0.1:8765 by default)
  btautolaunch serve

  # Serve on all interfaces and advertise over mDNS
  btautolaunch serve --host 0.0.0.0 --advertise --log-level info

  # Drive it
  curl -X POST localhost:8765/api/actions -d '{"type":"select_tab","tab":"audit"}'
  curl localhost:8765/preview?theme=dark`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (default from config, 127.0.0.1)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default from config, 8765)")
	serveCmd.Flags().BoolVar(&serveAdvertise, "advertise", false, "Register the server over mDNS")
	serveCmd.Flags().StringVar(&serveInstance, "instance", "", "mDNS instance name (default: hostname)")
	serveCmd.Flags().StringVar(&status, "status", string(automation.StatusReady), "Connection status shown by the ring")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeTo(resolveLogLevel(), logFile); err != nil {
		return err
	}

	cfg := serverConfig(registry.Preferences, cmd)

	probe, err := statusProbe()
	if err != nil {
		return err
	}
	providers := catalog.StaticProviders()
	providers.Status = probe

	initial := automation.DefaultState()
	if tab, err := registry.Preferences.Tab(); err == nil {
		initial.Tab = tab
	}

	srv, err := server.New(cfg, initial, providers)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	addr, err := srv.Listen()
	if err != nil {
		return err
	}

	var advertErr error
	if cfg.Advertise {
		advertErr = srv.Advertise(cmd.Context())
	}

	params := []ui.Detail{
		{Key: "URL", Value: "http://" + addr.String()},
		{Key: "Status", Value: string(probe.Status())},
	}
	if cfg.Advertise && advertErr == nil {
		instance := cfg.Instance
		if instance == "" {
			instance = discovery.DefaultInstance()
		}
		params = append(params, ui.Detail{Key: "mDNS", Value: instance + " (" + discovery.ServiceType + ")"})
	}
	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader("Preview Server", "btautolaunch serve", params...)
	if advertErr != nil {
		warnNotAdvertised(printer, advertErr)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop")

	return srv.Start(cmd.Context())
}

// warnNotAdvertised reports a failed mDNS registration. Serving continues.
func warnNotAdvertised(printer *ui.Printer, err error) {
	printer.PrintWarning("mDNS Unavailable",
		ui.Detail{Key: "Error", Value: err.Error()},
		ui.Detail{Key: "Impact", Value: "'btautolaunch discover' will not find this server"},
	)
}

// discoverCmd browses for preview servers
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Find preview servers on the network",
	Long: `Find preview servers advertised over mDNS/DNS-SD.

Every server found is remembered in the config file with its address,
version and the time it was last seen.`,
	Example: `  # Browse for 5 seconds (default)
  btautolaunch discover

  # Longer browse on busy networks
  btautolaunch discover --timeout 15

  # Wait for one server by instance name
  btautolaunch discover --instance btautolaunch@studio`,
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().IntVar(&discoverTimeout, "timeout", 0, "Browse timeout in seconds (default from config, 5)")
	discoverCmd.Flags().BoolVar(&discoverForget, "no-save", false, "Do not remember found servers")
	discoverCmd.Flags().StringVar(&discoverInstance, "instance", "", "Stop at the first server with this instance name")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	if err := logging.Initialize(resolveLogLevel()); err != nil {
		return err
	}

	timeout := discoverTimeout
	if timeout <= 0 {
		timeout = registry.Preferences.DiscoverTimeout
	}

	out := cmd.OutOrStdout()
	printer := ui.NewPrinter(out)
	params := []ui.Detail{
		{Key: "Service", Value: discovery.ServiceType + " in " + discovery.ServiceDomain},
		{Key: "Timeout", Value: fmt.Sprintf("%ds", timeout)},
	}
	if discoverInstance != "" {
		params = append(params, ui.Detail{Key: "Instance", Value: discoverInstance})
	}
	printer.PrintHeader("Preview Discovery", "btautolaunch discover", params...)
	fmt.Fprintln(out, "Browsing for preview servers...")
	fmt.Fprintln(out)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(timeout) * time.Second

	var peers []*discovery.Peer
	if discoverInstance != "" {
		peer, err := scanner.WaitForPreview(cmd.Context(), discoverInstance)
		if err != nil {
			printer.PrintError("Server Not Found", err, discoverTroubleshooting)
			return fmt.Errorf("discovery failed: %w", err)
		}
		peers = []*discovery.Peer{peer}
	} else {
		found, err := scanner.ScanForPreviews(cmd.Context())
		if err != nil {
			return fmt.Errorf("discovery failed: %w", err)
		}
		peers = found
	}

	if len(peers) == 0 {
		fmt.Fprintln(out, "No preview servers found.")
		fmt.Fprintln(out, "\nTroubleshooting:")
		for _, tip := range discoverTroubleshooting {
			fmt.Fprintf(out, "  - %s\n", tip)
		}
		return nil
	}

	printPeers(out, peers)

	if discoverForget {
		return nil
	}
	for _, p := range peers {
		registry.RememberPeer(p.Instance, p.Address(), p.Version())
	}
	if err := registry.Save(); err != nil {
		return fmt.Errorf("failed to remember servers: %w", err)
	}
	return nil
}

var discoverTroubleshooting = []string{
	"Start a server with 'btautolaunch serve --host 0.0.0.0 --advertise'",
	"Make sure both machines are on the same network segment",
	"Check that the firewall allows mDNS (UDP port 5353)",
	"Try increasing --timeout for slower networks",
}

func printPeers(out io.Writer, peers []*discovery.Peer) {
	fmt.Fprintf(out, "Found %d server(s):\n\n", len(peers))
	for i, p := range peers {
		fmt.Fprintf(out, "%d. %s\n", i+1, p.Instance)
		fmt.Fprintf(out, "   Host:    %s\n", p.Host)
		fmt.Fprintf(out, "   URL:     %s\n", p.BaseURL())
		if v := p.Version(); v != "" {
			fmt.Fprintf(out, "   Version: %s\n", v)
		}
		if tabs := p.Tabs(); len(tabs) > 0 {
			fmt.Fprintf(out, "   Tabs:    %s\n", strings.Join(tabs, ", "))
		}
		fmt.Fprintln(out)
	}
}

// configCmd groups the config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	// A broken config file must not prevent rewriting it
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(forceInit)
		if errors.Is(err, config.ErrConfigExists) {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration Written", ui.Detail{Key: "Path", Value: path})
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := registry.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:               "path",
	Short:             "Print the configuration file path",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

// resolveLogLevel picks the flag, then the config file. An empty result
// lets logging fall back to the environment.
func resolveLogLevel() string {
	if logLevel != "" {
		return logLevel
	}
	if registry != nil && registry.Preferences != nil {
		return registry.Preferences.LogLevel
	}
	return ""
}

func statusProbe() (catalog.StatusProbe, error) {
	s, err := automation.ParseStatus(status)
	if err != nil {
		return nil, fmt.Errorf("--status: %w", err)
	}
	return catalog.FixedStatus(s), nil
}

// previewOptions turns flags and preferences into preview options. Flags
// win over the config file.
func previewOptions(prefs *config.Preferences) ([]preview.Option, error) {
	state := automation.DefaultState()

	tab, err := prefs.Tab()
	if err != nil {
		return nil, err
	}
	if startTab != "" {
		if tab, err = automation.ParseTab(startTab); err != nil {
			return nil, fmt.Errorf("--tab: %w", err)
		}
	}
	state.Tab = tab

	themes, err := prefs.ThemeNames()
	if err != nil {
		return nil, err
	}

	width, height := prefs.FrameWidth, prefs.FrameHeight
	if frameWidth > 0 {
		width = frameWidth
	}
	if frameHeight > 0 {
		height = frameHeight
	}

	probe, err := statusProbe()
	if err != nil {
		return nil, err
	}
	providers := catalog.StaticProviders()
	providers.Status = probe

	return []preview.Option{
		preview.WithState(state),
		preview.WithProviders(providers),
		preview.WithThemes(themes...),
		preview.WithFrameSize(width, height),
	}, nil
}

// serverConfig merges serve flags over the server preferences
func serverConfig(prefs *config.Preferences, cmd *cobra.Command) *server.Config {
	cfg := &server.Config{
		Host:        config.DefaultServerHost,
		Port:        config.DefaultServerPort,
		FrameWidth:  prefs.FrameWidth,
		FrameHeight: prefs.FrameHeight,
	}
	if s := prefs.Server; s != nil {
		cfg.Host = s.Host
		cfg.Port = s.Port
		cfg.Advertise = s.Advertise
		cfg.Instance = s.Instance
	}

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Port = servePort
	}
	if flags.Changed("advertise") {
		cfg.Advertise = serveAdvertise
	}
	if flags.Changed("instance") {
		cfg.Instance = serveInstance
	}
	return cfg
}

// stdoutIsTerminal reports whether styled output will reach a terminal
func stdoutIsTerminal() bool {
	return ui.IsTerminal() && os.Getenv("TERM") != "dumb"
}
