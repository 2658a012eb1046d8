package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/hpgo/internal/config"
	"github.com/rgehrsitz/hpgo/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve estimates over HTTP",
		Long: `Serve estimates over HTTP. Settings come from the environment
(HPGO_ADDR, HPGO_FUNDING_FILE, HPGO_DEBUG, HPGO_RATE_LIMIT, HPGO_REDIS_ADDR,
HPGO_CACHE_TTL), optionally loaded from a .env file; flags override them.
With a Redis address set, estimates are cached by normalized input.

Routes:
  GET  /healthz
  GET  /v1/estimate?pump_type=...        deep-link parameters
  POST /v1/estimate                      {"params": {...}, "saved": {...}}
  GET  /v1/lead-params?...               outbound lead parameter set
  POST /v1/lead-params/verify            form-encoded lead parameters`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			cfg, err := config.LoadServerConfig(envFile)
			if err != nil {
				return err
			}
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				cfg.Addr = addr
			}
			if funding, _ := cmd.Flags().GetString("funding"); funding != "" {
				cfg.FundingFile = funding
			}
			if redisAddr, _ := cmd.Flags().GetString("redis"); redisAddr != "" {
				cfg.RedisAddr = redisAddr
			}
			if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
				cfg.Debug = true
			}

			engine, err := newEngine(cfg.FundingFile, nil, cfg.Debug)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(cfg, engine).ListenAndServe(ctx)
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default "+config.DefaultAddr+")")
	cmd.Flags().String("env-file", ".env", "Environment file to load if present")
	cmd.Flags().String("funding", "", "Funding overrides file (YAML)")
	cmd.Flags().String("redis", "", "Redis address for the estimate cache")
	cmd.Flags().Bool("debug", false, "Log requests and calculation steps")
	return cmd
}
