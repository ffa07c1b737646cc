package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	backend "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/27piyush27/folio/internal/chat"
	"github.com/27piyush27/folio/internal/clock"
	"github.com/27piyush27/folio/internal/config"
	"github.com/27piyush27/folio/internal/contact"
	"github.com/27piyush27/folio/internal/content"
	"github.com/27piyush27/folio/internal/db"
	"github.com/27piyush27/folio/internal/metrics"
	"github.com/27piyush27/folio/internal/scene"
	"github.com/27piyush27/folio/internal/server"
	"github.com/27piyush27/folio/internal/site"
	"github.com/27piyush27/folio/internal/typewriter"
	"github.com/27piyush27/folio/internal/vitals"
)

const shutdownTimeout = 10 * time.Second

// redisMaxElapsed bounds how long startup waits for the limiter backend.
var redisMaxElapsed = 30 * time.Second

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Starts the HTTP server: the portfolio page, the content and scene APIs,
the typewriter stream, the contact form, web vitals collection and the
chat assistant proxy.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the site in a browser once listening")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	profile, err := loadProfile(cfg)
	if err != nil {
		return err
	}
	assets, err := loadAssets(cfg)
	if err != nil {
		return err
	}
	for _, name := range site.MissingCertificates(profile, assets) {
		logger.Warn("certificate file not found", zap.String("file", name), zap.String("assets_dir", cfg.AssetsDir))
	}

	database, err := db.Open(filepath.Join(cfg.DataDir, db.FileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter, closeLimiter, err := newLimiter(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	gen, err := site.NewGenerator(profile)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedHeaders: strings.Split(chat.AllowedHeaders, ", "),
		RequestTimeout: cfg.Server.RequestTimeout(),
		Metrics:        cfg.Server.Metrics,
	}, reg, logger)

	site.RegisterRoutes(srv.Router(), site.NewHandler(gen, assets, m, logger))
	contact.RegisterRoutes(srv.Router(), m, logger)
	scene.RegisterRoutes(srv.Router())
	vitals.RegisterRoutes(srv.Router(), vitals.NewStore(database), m, logger)

	proxyOpts := []chat.Option{
		chat.WithHTTPClient(&http.Client{Timeout: cfg.Gateway.Timeout()}),
	}
	if limiter != nil {
		proxyOpts = append(proxyOpts, chat.WithLimiter(limiter))
	}
	proxy := chat.NewProxy(chat.Options{
		BaseURL:   cfg.Gateway.BaseURL,
		Model:     cfg.Gateway.Model,
		APIKeyEnv: cfg.Gateway.APIKeyEnv,
		System:    content.SystemPrompt(profile),
	}, m, logger, proxyOpts...)
	chat.RegisterRoutes(srv.Streaming(), proxy)
	typewriter.RegisterRoutes(srv.Streaming(), &typewriter.Stream{
		Phrases: profile.Phrases,
		Timing:  cfg.TypewriterTiming(),
		Clock:   clock.Real(),
		Logger:  logger,
	})

	if os.Getenv(cfg.Gateway.APIKeyEnv) == "" {
		logger.Warn("gateway credential missing; chat requests will fail", zap.String("env", cfg.Gateway.APIKeyEnv))
	}

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	logger.Info("portfolio server listening",
		zap.String("url", url),
		zap.Int("assets", len(assets)),
		zap.String("database", database.Path()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if serveOpen {
		site.OpenBrowser(url)
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newLimiter picks the chat rate limiter. A zero rate disables limiting;
// with a Redis address the limit is shared across replicas.
func newLimiter(ctx context.Context, cfg *config.Config, logger *zap.Logger) (chat.Limiter, func(), error) {
	noop := func() {}
	rl := cfg.RateLimit
	if rl.RequestsPerMinute <= 0 {
		return nil, noop, nil
	}
	if rl.RedisAddr == "" {
		return chat.NewMemoryLimiter(clock.Real(), rl.RequestsPerMinute), noop, nil
	}

	client := backend.NewClient(&backend.Options{Addr: rl.RedisAddr})

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = redisMaxElapsed
	operation := func() error {
		return client.Ping(ctx).Err()
	}
	notify := func(err error, next time.Duration) {
		logger.Warn("redis not reachable, retrying",
			zap.String("addr", rl.RedisAddr),
			zap.Duration("next", next),
			zap.Error(err),
		)
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify); err != nil {
		client.Close()
		return nil, noop, fmt.Errorf("connecting to redis at %s: %w", rl.RedisAddr, err)
	}

	logger.Info("chat rate limit shared via redis", zap.String("addr", rl.RedisAddr), zap.Int("rpm", rl.RequestsPerMinute))
	return chat.NewRedisLimiter(client, rl.RedisPrefix, rl.RequestsPerMinute, clock.Real()), func() { client.Close() }, nil
}
