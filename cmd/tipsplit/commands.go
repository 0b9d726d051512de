package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/tipsplit/internal/client"
	"github.com/muurk/tipsplit/internal/config"
	"github.com/muurk/tipsplit/internal/discovery"
	"github.com/muurk/tipsplit/internal/form"
	"github.com/muurk/tipsplit/internal/logging"
	"github.com/muurk/tipsplit/internal/server"
	"github.com/muurk/tipsplit/internal/tui"
	"github.com/muurk/tipsplit/internal/ui"
	"github.com/muurk/tipsplit/internal/urls"
)

// errZeroPeople is returned by calc so the exit status reflects the error box
var errZeroPeople = errors.New("number of people " + form.ZeroPeopleMessage)

// Command flags
var (
	billFlag     string
	tipFlag      string
	peopleFlag   string
	outputFormat string

	serveHost      string
	servePort      int
	serveAdvertise bool
	serveName      string
	logLevel       string

	scanTimeout int
	scanNoCheck bool

	forceInit bool
)

func init() {
	rootCmd.AddCommand(formCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(configCmd)
}

// formCmd launches the terminal form
var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Launch the interactive terminal form",
	Long: `Launch the interactive tip calculator in the terminal.

Keys:
  tab / shift+tab, ↓ / ↑   move between fields
  ← / →                    move along the tip buttons
  enter / space            select a tip button or press Reset
  ctrl+r                   reset every field
  ?                        toggle full help
  esc / ctrl+c             quit

Characters that would make a field invalid are ignored.`,
	Example: `  tipsplit form
  # Or simply (form is default):
  tipsplit`,
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logs would draw over the form, so they only go to a file
	if cfg.Logging.File != "" {
		if err := logging.InitializeWithOutput(cfg.Logging.Level, cfg.Logging.File); err != nil {
			return err
		}
		defer logging.Sync()
	}

	return tui.Run()
}

// calcCmd computes a split without the interactive form
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute a split from flags",
	Long: `Compute the tip and total per person without the interactive form.

Inputs go through the same validation as the form: the bill and tip accept
digits with at most one decimal point, the number of people accepts a whole
number without leading zeros. An integer tip matching a preset button is
reported as that preset.`,
	Example: `  # Detailed output
  tipsplit calc --bill 142.55 --tip 15 --people 5

  # One line for shell prompts
  tipsplit calc --bill 60 --tip 22.5 --people 3 --format compact

  # JSON output for scripting
  tipsplit calc --bill 60 --tip 10 --people 2 --format json`,
	RunE: runCalc,
}

func init() {
	calcCmd.Flags().StringVar(&billFlag, "bill", "", "Bill amount")
	calcCmd.Flags().StringVar(&tipFlag, "tip", "", "Tip percentage (empty = no tip)")
	calcCmd.Flags().StringVar(&peopleFlag, "people", "1", "Number of people")
	calcCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
	_ = calcCmd.MarkFlagRequired("bill")
}

func runCalc(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	printer := ui.NewPrinter(out)

	state, err := form.NewStateFromInputs(billFlag, tipFlag, peopleFlag)
	if err != nil {
		var inputErr *form.InputError
		if errors.As(err, &inputErr) && outputFormat != "json" {
			printer.PrintError("Invalid input", err,
				"--"+flagFor(inputErr.Field)+" "+formatHint(inputErr.Field),
				"Run 'tipsplit calc --help' for examples")
		}
		return err
	}

	view := form.NewView(state)
	if err := writeCalc(out, printer, outputFormat, view); err != nil {
		return err
	}
	if view.ZeroPeople {
		return errZeroPeople
	}
	return nil
}

// writeCalc renders a calculated view in the requested format
func writeCalc(out io.Writer, printer *ui.Printer, format string, view form.View) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err

	case "compact":
		if view.ZeroPeople {
			_, err := fmt.Fprintf(out, "people: %s\n", view.PeopleError)
			return err
		}
		_, err := fmt.Fprintln(out, formatCompact(view))
		return err

	case "detailed":
		printer.PrintHeader("Tip Split", calcParams(view)...)
		if view.ZeroPeople {
			printer.PrintError("Number of People", errors.New(view.PeopleError),
				"Split the bill between at least one person")
			return nil
		}
		printer.PrintResult(ui.NewSuccessResult("Per person",
			ui.Param{Key: "Tip Amount", Value: view.TipPerPerson},
			ui.Param{Key: "Total", Value: view.TotalPerPerson},
		))
		return nil

	default:
		return fmt.Errorf("unknown format %q (expected detailed, compact or json)", format)
	}
}

func calcParams(view form.View) []ui.Param {
	bill := view.Bill
	if bill == "" {
		bill = "0"
	}
	return []ui.Param{
		{Key: "Bill", Value: form.CurrencySymbol + bill},
		{Key: "Tip", Value: view.TipLabel},
		{Key: "People", Value: view.People},
	}
}

func formatCompact(view form.View) string {
	return fmt.Sprintf("tip %s  total %s  per person", view.TipPerPerson, view.TotalPerPerson)
}

func formatHint(kind form.FieldKind) string {
	if kind == form.KindCount {
		return "takes a whole number without leading zeros, e.g. 4"
	}
	return "takes digits with at most one decimal point, e.g. 12.50"
}

func flagFor(kind form.FieldKind) string {
	switch kind {
	case form.KindPercent:
		return "tip"
	case form.KindCount:
		return "people"
	default:
		return "bill"
	}
}

// serveCmd starts the browser form server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the form to web browsers",
	Long: `Start an HTTP server with the tip calculator form.

Every browser tab gets its own form. Unset flags fall back to the
preferences file, then to built-in defaults.

Routes:
  /          the form
  /ws        WebSocket used by the form
  /healthz   liveness check
  /version   build version (JSON)
  /metrics   Prometheus metrics`,
	Example: `  # Serve on the default port
  tipsplit serve

  # Announce the server on the LAN so 'tipsplit scan' finds it
  tipsplit serve --advertise --name kitchen

  # Local only, verbose logs
  tipsplit serve --host 127.0.0.1 --port 9000 --log-level debug`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen address (empty = all interfaces)")
	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultPort, "Listen port")
	serveCmd.Flags().BoolVar(&serveAdvertise, "advertise", false, "Advertise the server via mDNS")
	serveCmd.Flags().StringVar(&serveName, "name", "", "mDNS instance name (default: derived from hostname)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

// serveFlags is the subset of serve flags the user set explicitly
type serveFlags struct {
	host      *string
	port      *int
	advertise *bool
	name      *string
	logLevel  *string
}

// serveFlagsFrom collects the flags that were changed on cmd
func serveFlagsFrom(cmd *cobra.Command) serveFlags {
	var f serveFlags
	flags := cmd.Flags()
	if flags.Changed("host") {
		f.host = &serveHost
	}
	if flags.Changed("port") {
		f.port = &servePort
	}
	if flags.Changed("advertise") {
		f.advertise = &serveAdvertise
	}
	if flags.Changed("name") {
		f.name = &serveName
	}
	if flags.Changed("log-level") {
		f.logLevel = &logLevel
	}
	return f
}

// serverConfig merges explicit flags over the preferences file
func serverConfig(cfg *config.Config, f serveFlags) *server.Config {
	sc := &server.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		Advertise:    cfg.Server.Advertise,
		InstanceName: cfg.Server.InstanceName,
		LogLevel:     cfg.Logging.Level,
	}
	if f.host != nil {
		sc.Host = *f.host
	}
	if f.port != nil {
		sc.Port = *f.port
	}
	if f.advertise != nil {
		sc.Advertise = *f.advertise
	}
	if f.name != nil {
		sc.InstanceName = *f.name
	}
	if f.logLevel != nil {
		sc.LogLevel = *f.logLevel
	}
	return sc
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	sc := serverConfig(cfg, serveFlagsFrom(cmd))
	if err := logging.Initialize(sc.LogLevel); err != nil {
		return err
	}
	// Logging is set up; don't let the server re-initialize it
	sc.LogLevel = ""

	srv, err := server.New(sc)
	if err != nil {
		return err
	}
	if err := srv.Listen(); err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	params := []ui.Param{
		{Key: "URL", Value: "http://" + srv.Addr().String() + "/"},
		{Key: "mDNS", Value: formatBool(sc.Advertise)},
	}
	if sc.Advertise && sc.InstanceName != "" {
		params = append(params, ui.Param{Key: "Name", Value: sc.InstanceName})
	}
	printer.PrintHeader("Tipsplit Server", params...)
	printer.Println("Press Ctrl+C to stop.")

	return srv.Run(cmd.Context())
}

// scanCmd lists tipsplit servers on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find tipsplit servers on the network",
	Long: `Scan for tipsplit servers using mDNS/DNS-SD discovery.

Only servers started with --advertise (or advertise: true in the
preferences file) can be found. Each server found is contacted to confirm it
is reachable and to read its version; use --no-check to skip this.`,
	Example: `  # Scan with the configured timeout (5 seconds by default)
  tipsplit scan

  # Longer scan for busy networks
  tipsplit scan --timeout 15`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", config.DefaultScanTimeout, "Scan timeout in seconds")
	scanCmd.Flags().BoolVar(&scanNoCheck, "no-check", false, "Skip contacting each server found")
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return err
	}

	timeout := time.Duration(scanTimeout) * time.Second
	if !cmd.Flags().Changed("timeout") {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		timeout = cfg.ScanTimeout()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scanning for tipsplit servers (timeout: %s)...\n\n", timeout)

	instances, err := discovery.Scan(cmd.Context(), timeout)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(instances) == 0 {
		fmt.Fprintln(out, "No servers found.")
		fmt.Fprintln(out, "\nTroubleshooting:")
		fmt.Fprintln(out, "  - Start a server with 'tipsplit serve --advertise'")
		fmt.Fprintln(out, "  - Check both machines are on the same network")
		fmt.Fprintln(out, "  - Allow UDP port 5353 (mDNS) through the firewall")
		fmt.Fprintln(out, "  - Try increasing --timeout for slower networks")
		return nil
	}

	fmt.Fprintf(out, "Found %d server(s):\n\n", len(instances))
	for i, inst := range instances {
		ver, status := inst.Version(), "not checked"
		if !scanNoCheck {
			ver, status = probeInstance(cmd.Context(), inst)
		}
		fmt.Fprintf(out, "%d. %s\n", i+1, inst.Name)
		fmt.Fprintf(out, "   URL:     %s\n", inst.URL())
		fmt.Fprintf(out, "   Version: %s\n", ver)
		fmt.Fprintf(out, "   Status:  %s\n", status)
		fmt.Fprintln(out)
	}
	return nil
}

// probeInstance checks a discovered server's health, then asks for its
// version. The advertised version is kept when either request fails.
func probeInstance(ctx context.Context, inst *discovery.Instance) (string, string) {
	c := client.New(inst.URL())
	if err := c.Ping(ctx); err != nil {
		logging.Debug("Health check failed", zap.String("url", inst.URL()), zap.Error(err))
		return inst.Version(), client.ShortMessage(err)
	}

	info, err := c.Version(ctx)
	if err != nil {
		logging.Debug("Probe failed", zap.String("url", inst.URL()), zap.Error(err))
		return inst.Version(), client.ShortMessage(err)
	}
	return info.Version, client.ShortMessage(nil)
}

// configCmd manages the preferences file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the preferences file",
	Long: `Manage the tipsplit preferences file.

The file sets defaults for the serve and scan commands and for logging.
Reference: ` + urls.ConfigReference,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	Long: `Print the preferences in effect, with defaults filled in for anything
the file leaves out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a preferences file with default values",
	Example: `  tipsplit config init

  # Replace an existing file (asks for confirmation)
  tipsplit config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())

	path, err := config.CreateDefaultConfig()
	if err == nil {
		printer.PrintResult(ui.NewSuccessResult("Preferences file created", ui.Param{Key: "Path", Value: path}))
		return nil
	}
	if path == "" || !forceInit {
		return err
	}
	if _, statErr := os.Stat(path); statErr != nil {
		// Not an "already exists" failure
		return err
	}

	if !printer.Confirm(cmd.InOrStdin(), "Overwrite preferences file", []string{
		path + " already exists",
		"Every setting in it will be replaced with the defaults",
	}, "yes") {
		return nil
	}

	if err := config.NewConfig().SaveTo(path); err != nil {
		return err
	}
	printer.PrintResult(ui.NewSuccessResult("Preferences file reset", ui.Param{Key: "Path", Value: path}))
	return nil
}

func formatBool(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
