package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/corsair-sc/corsair/internal/infrastructure/sqlite"
	"github.com/corsair-sc/corsair/internal/intel"
	"github.com/corsair-sc/corsair/internal/log"
	"github.com/corsair-sc/corsair/internal/routegraph"
	"github.com/corsair-sc/corsair/internal/server"
	"github.com/corsair-sc/corsair/internal/tracing"
	"github.com/corsair-sc/corsair/internal/uex"
)

var serveOffline bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	Long: `Serve the item registry and interdiction intel over HTTP.

Trade data flows through the local snapshot store: every successful fetch
is persisted, and the last snapshot serves as a fallback when the UEX API
is unreachable. With --offline no network calls are made at all and every
endpoint answers from the snapshot.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveOffline, "offline", false,
		"serve trade data from the local snapshot instead of the UEX API")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	services, err := buildServices()
	if err != nil {
		return err
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = provider.Shutdown(shutdownCtx)
	}()

	source := dataSource
	analyzer := services.Analyzer
	if serveOffline {
		if snapshotDB == nil {
			return fmt.Errorf("offline mode requires the snapshot store (check data.snapshot_db)")
		}
		source = sqlite.NewSnapshotSource(snapshotDB.Snapshots)
		analyzer = intel.New(source, services.Items, services.Fleet)
	}

	state := &server.State{
		Items:    services.Items,
		Fleet:    services.Fleet,
		Analyzer: analyzer,
		Data:     source,
	}

	srv := server.New(cfg.Server.Addr, state, server.WithTracer(provider.Tracer()))

	// Warm the graph in the background so the server is reachable
	// immediately. Item endpoints work on the cold graph.
	go warmGraph(context.Background(), state, source, serveOffline)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// warmGraph builds the route graph from terminal data and swaps it into the
// server state. Online the source persists snapshots as a side effect, so
// routes and commodities are prefetched to refresh those too.
func warmGraph(ctx context.Context, state *server.State, source sqlite.TradeData, offline bool) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	terminals, err := source.Terminals(ctx)
	if err != nil {
		log.ErrorErr(log.CatServer, "graph warm-up failed", err)
		return
	}
	state.SetGraph(buildGraph(terminals))
	log.Info(log.CatGraph, "route graph ready", "terminals", len(terminals))

	if offline {
		return
	}
	if _, err := source.TradeRoutes(ctx); err != nil {
		log.ErrorErr(log.CatServer, "route snapshot warm-up failed", err)
	}
	if _, err := source.Commodities(ctx); err != nil {
		log.ErrorErr(log.CatServer, "commodity snapshot warm-up failed", err)
	}
}

// buildGraph meshes all terminals within each star system.
func buildGraph(terminals []uex.Terminal) *routegraph.Graph {
	g := routegraph.New()
	systems := make(map[string]struct{})
	for i := range terminals {
		g.AddTerminal(&terminals[i])
		systems[terminals[i].StarSystemName] = struct{}{}
	}
	for system := range systems {
		g.ConnectSystem(system)
	}
	return g
}
