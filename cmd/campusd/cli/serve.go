package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sssbpuc/campusd/internal/server"
	"github.com/sssbpuc/campusd/internal/service"
)

func newServeCmd() *cobra.Command {
	var (
		port     int
		host     string
		dev      bool
		dbDriver string
		dsn      string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the campusd API server",
		Long:  "Start the HTTP server that exposes the public website API and the admin API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port, dev, dbDriver, dsn)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "HTTP listen port")
	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "HTTP listen host")
	cmd.Flags().BoolVar(&dev, "dev", false, "Enable development mode (verbose logging)")
	cmd.Flags().StringVar(&dbDriver, "db-driver", "sqlite", "Database driver: sqlite or postgres")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Database DSN (postgres only)")

	viper.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	viper.BindPFlag("server.host", cmd.Flags().Lookup("host"))
	viper.BindPFlag("db.driver", cmd.Flags().Lookup("db-driver"))
	viper.BindPFlag("db.dsn", cmd.Flags().Lookup("dsn"))

	return cmd
}

func runServe(host string, port int, dev bool, dbDriver, dsn string) error {
	logLevel := slog.LevelInfo
	if dev {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	st, err := openStore()
	if err != nil {
		return fmt.Errorf("open datastore: %w", err)
	}
	defer st.Close()
	logger.Info("datastore ready", "driver", viper.GetString("db.driver"))

	jwtSecret := viper.GetString("auth.jwt_secret")
	if jwtSecret == "" {
		if !dev {
			return fmt.Errorf("auth.jwt_secret is required (set CAMPUSD_AUTH_JWT_SECRET or campusd.yaml)")
		}
		jwtSecret = "campusd-dev-secret-change-me"
		logger.Warn("using development JWT secret; do not run this in production")
	}

	intake := service.NewIntakeService(st, logger)
	portal := service.NewPortalService(st)
	authSvc := service.NewAuthService(jwtSecret)

	hasAdmin, err := st.HasAnyAdmin(context.Background())
	if err != nil {
		logger.Warn("failed to check for admin accounts", "error", err)
	}
	if !hasAdmin {
		logger.Warn("no admin account found - run: campusd admin create")
	}

	srvCfg := server.DefaultConfig()
	srvCfg.Host = viper.GetString("server.host")
	srvCfg.Port = viper.GetInt("server.port")
	srvCfg.ShutdownTimeout = 30 * time.Second
	if origins := viper.GetStringSlice("server.cors_origins"); len(origins) > 0 {
		srvCfg.CORSOrigins = origins
	}
	if rpm := viper.GetInt("server.public_rpm"); rpm > 0 {
		srvCfg.PublicRequestsPerMinute = rpm
	}

	srv := server.New(srvCfg, st, intake, portal, authSvc, logger)

	fmt.Printf("→ campusd %s\n", versionString())
	fmt.Printf("→ Listening on http://%s:%d\n", srvCfg.Host, srvCfg.Port)
	fmt.Printf("→ Health:  http://%s:%d/healthz\n", srvCfg.Host, srvCfg.Port)
	fmt.Println()

	return srv.ListenAndServe()
}
