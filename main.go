// Package main main
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/OVantsevich/AurumTrust-Trading/internal/calculator"
	"github.com/OVantsevich/AurumTrust-Trading/internal/config"
	"github.com/OVantsevich/AurumTrust-Trading/internal/handler"
	"github.com/OVantsevich/AurumTrust-Trading/internal/metrics"
	"github.com/OVantsevich/AurumTrust-Trading/internal/repository"
	"github.com/OVantsevich/AurumTrust-Trading/internal/service"
	pr "github.com/OVantsevich/AurumTrust-Trading/proto"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

type storage struct {
	positions  service.PositionsRepository
	ledger     service.Ledger
	transactor service.Transactor
	close      func()
}

func main() {
	cfg, err := config.NewMainConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var chain *ethclient.Client
	if cfg.RPCURL != "" {
		chain, err = ethclient.DialContext(ctx, cfg.RPCURL)
		if err != nil {
			logrus.Fatalf("error while dialing rpc: %v", err)
		}
		defer chain.Close()
	}

	st, err := newStorage(ctx, cfg, chain)
	if err != nil {
		logrus.Fatal(err)
	}
	defer st.close()

	m := metrics.NewMetrics(prometheus.NewRegistry())

	prices, closePrices, err := newPriceChain(cfg, chain, m)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closePrices()

	calc, err := calculator.NewCalculator(cfg.MaintenanceMargin, cfg.MaxLeverage)
	if err != nil {
		logrus.Fatal(err)
	}
	tradingService := service.NewTrading(calc, st.positions, st.ledger, prices, st.transactor,
		repository.NewListenersRepository(), m, service.Options{
			PollInterval:    cfg.PollInterval,
			FundingRate:     cfg.FundingRate,
			FundingInterval: cfg.FundingInterval,
		})

	listen, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.Host, cfg.Port))
	if err != nil {
		logrus.Fatalf("error while listening port: %v", err)
	}
	ns := grpc.NewServer()
	pr.RegisterTradingServiceServer(ns, handler.NewTrading(tradingService))

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithField("Addr", listen.Addr().String()).Info("grpc server started")
		if err := ns.Serve(listen); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("main - Serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		ns.GracefulStop()
		return nil
	})
	g.Go(func() error {
		return metrics.NewServer(fmt.Sprintf("%s:%s", cfg.Host, cfg.MetricsPort), m).Run(gCtx)
	})
	g.Go(func() error {
		return tradingService.Run(gCtx)
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logrus.Errorf("main - Wait: %v", err)
	}
	logrus.Info("trading service stopped")
}

func setupLogger(cfg *config.MainConfig) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func newStorage(ctx context.Context, cfg *config.MainConfig, chain *ethclient.Client) (*storage, error) {
	if cfg.Storage == config.StorageMemory {
		var source repository.BalanceSource
		if chain != nil && cfg.TokenAddress != "" {
			token, err := repository.NewTokenBalance(chain, cfg.TokenAddress)
			if err != nil {
				return nil, fmt.Errorf("main - newStorage - NewTokenBalance: %w", err)
			}
			source = token
		}
		return &storage{
			positions:  repository.NewMemoryPositionRepository(),
			ledger:     repository.NewPaperLedger(cfg.StartBalance, source),
			transactor: repository.NoopTransactor{},
			close:      func() {},
		}, nil
	}

	pool, err := dbConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}
	runner := repository.NewPgxWithinTransactionRunner(pool)
	transactor := repository.NewPgxTransactor(pool)
	return &storage{
		positions:  repository.NewPositionRepository(runner),
		ledger:     repository.NewPgLedger(transactor, runner, cfg.StartBalance),
		transactor: transactor,
		close:      pool.Close,
	}, nil
}

// newPriceChain oracle, coingecko, redis cache, mock in that order
func newPriceChain(cfg *config.MainConfig, chain *ethclient.Client, m *metrics.Metrics) (*repository.PriceChain, func(), error) {
	var sources []repository.PriceSource
	if chain != nil && cfg.OracleAddress != "" {
		oracle, err := repository.NewOracle(chain, cfg.OracleAddress, cfg.OracleDelay)
		if err != nil {
			return nil, nil, fmt.Errorf("main - newPriceChain - NewOracle: %w", err)
		}
		sources = append(sources, oracle)
	}
	sources = append(sources, repository.NewCoinGecko(cfg.CoinGeckoURL, cfg.CoinGeckoID, cfg.CoinGeckoRPS))

	var recorder repository.PriceRecorder
	closeFn := func() {}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		cache := repository.NewPriceCache(rdb, cfg.AssetID, cfg.PriceCacheTTL)
		sources = append(sources, cache)
		recorder = cache
		closeFn = func() {
			if err := rdb.Close(); err != nil {
				logrus.Errorf("main - newPriceChain - Close: %v", err)
			}
		}
	}
	sources = append(sources, repository.NewMockPrice(cfg.MockSeed, cfg.MockBasePrice))

	return repository.NewPriceChain(recorder, m, sources...), closeFn, nil
}

func dbConnection(ctx context.Context, cfg *config.MainConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration data: %v", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database not responding: %v", err)
	}
	return pool, nil
}
