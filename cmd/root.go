// Package cmd wires the corsair command line interface.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/corsair-sc/corsair/internal/app"
	"github.com/corsair-sc/corsair/internal/config"
	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/domain/ships"
	"github.com/corsair-sc/corsair/internal/fleetyards"
	"github.com/corsair-sc/corsair/internal/infrastructure/sqlite"
	"github.com/corsair-sc/corsair/internal/intel"
	"github.com/corsair-sc/corsair/internal/log"
	"github.com/corsair-sc/corsair/internal/mode"
	"github.com/corsair-sc/corsair/internal/mode/dashboard"
	"github.com/corsair-sc/corsair/internal/uex"
)

func init() {
	// Force lipgloss/termenv to query the terminal background color BEFORE
	// any Bubble Tea program starts, so the OSC 11 response cannot race
	// with the input loop.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "corsair",
	Short:   "Interdiction intel for Star Citizen piracy",
	Long:    `A terminal dashboard and toolkit that combines a static item registry with live UEX trade data to predict worthwhile interdiction targets.`,
	Version: version,
	RunE:    runDashboard,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/corsair/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"enable debug logging to the log file")
	rootCmd.Flags().Bool("no-watch", false,
		"disable automatic registry reload when the items file changes")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("uex.base_url", defaults.UEX.BaseURL)
	viper.SetDefault("uex.cache_ttl", defaults.UEX.CacheTTL)
	viper.SetDefault("uex.timeout", defaults.UEX.Timeout)
	viper.SetDefault("fleet.live", defaults.Fleet.Live)
	viper.SetDefault("fleet.base_url", defaults.Fleet.BaseURL)
	viper.SetDefault("fleet.cache_ttl", defaults.Fleet.CacheTTL)
	viper.SetDefault("server.addr", defaults.Server.Addr)
	viper.SetDefault("data.items_file", defaults.Data.ItemsFile)
	viper.SetDefault("data.snapshot_db", defaults.Data.SnapshotDB)
	viper.SetDefault("data.watch_items", defaults.Data.WatchItems)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)
	viper.SetDefault("log_file", defaults.LogFile)

	viper.SetEnvPrefix("CORSAIR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Project-local config wins over the user-level one.
		viper.AddConfigPath(".corsair")
		viper.AddConfigPath(config.UserConfigDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// First run: write a commented default config and continue.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			defaultPath := filepath.Join(config.UserConfigDir(), "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
		}
	}

	_ = viper.Unmarshal(&cfg)

	if cfg.Debug {
		if cleanup, err := log.Init(cfg.LogFile); err == nil {
			cobra.OnFinalize(cleanup)
			log.Debug(log.CatConfig, "config loaded", "file", viper.ConfigFileUsed())
		}
	}
}

// dataSource and snapshotDB are populated by buildServices. The source is
// the live UEX client wrapped with the local snapshot store; snapshotDB is
// nil when the store could not be opened.
var (
	dataSource sqlite.TradeData
	snapshotDB *sqlite.DB
)

// buildServices assembles the shared dependency set used by the TUI and the
// query commands.
func buildServices() (mode.Services, error) {
	if err := cfg.Validate(); err != nil {
		return mode.Services{}, fmt.Errorf("invalid configuration: %w", err)
	}

	registry, err := items.LoadRegistry(cfg.Data.ItemsFile)
	if err != nil {
		return mode.Services{}, fmt.Errorf("loading item registry: %w", err)
	}
	log.Debug(log.CatItems, "registry loaded", "items", registry.Len())

	fleet := loadFleet()
	client := uex.NewClient(
		uex.WithBaseURL(cfg.UEX.BaseURL),
		uex.WithCacheTTL(cfg.UEX.CacheTTL),
	)

	// Route trade data through the snapshot store so predictions keep
	// working from the last snapshot when the UEX API is unreachable.
	dataSource = client
	if db, err := sqlite.NewDB(cfg.Data.SnapshotDB); err != nil {
		log.ErrorErr(log.CatDB, "snapshot store unavailable, live data only", err)
	} else {
		snapshotDB = db
		dataSource = sqlite.NewFallbackSource(client, db.Snapshots)
		cobra.OnFinalize(func() { _ = db.Close() })
	}

	return mode.Services{
		Items:     registry,
		Fleet:     fleet,
		Analyzer:  intel.New(dataSource, registry, fleet),
		Config:    &cfg,
		ItemsPath: cfg.Data.ItemsFile,
	}, nil
}

// loadFleet returns the cargo fleet, from the FleetYards catalogue when
// fleet.live is set and the built-in list otherwise. Catalogue failures fall
// back to the built-ins so the fleet is never empty.
func loadFleet() *ships.Registry {
	if !cfg.Fleet.Live {
		return ships.Default()
	}

	client := fleetyards.NewClient(
		fleetyards.WithBaseURL(cfg.Fleet.BaseURL),
		fleetyards.WithCacheTTL(cfg.Fleet.CacheTTL),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	models, err := client.Models(ctx)
	if err != nil {
		log.ErrorErr(log.CatUEX, "fleetyards catalogue unavailable, using built-in fleet", err)
		return ships.Default()
	}
	fleet := fleetyards.ToFleet(models)
	if len(fleet) == 0 {
		log.Warn(log.CatUEX, "fleetyards catalogue empty, using built-in fleet")
		return ships.Default()
	}
	log.Info(log.CatUEX, "fleet loaded from fleetyards", "ships", len(fleet))
	return ships.NewRegistry(fleet)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	services, err := buildServices()
	if err != nil {
		return err
	}

	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		services.Config.Data.WatchItems = false
	}

	p := tea.NewProgram(
		app.New(dashboard.New(services)),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
