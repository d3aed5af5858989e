package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"matchbook/api/pb"
	"matchbook/internal/book"
	"matchbook/internal/config"
	"matchbook/internal/grpcserver"
	"matchbook/internal/jobs/broadcaster"
	"matchbook/internal/jobs/depth"
	"matchbook/internal/kafka"
	"matchbook/internal/obs"
	"matchbook/internal/outbox"
	"matchbook/internal/sequence"
	"matchbook/internal/service"
	"matchbook/internal/snapshot"
	"matchbook/internal/wal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// ---------------- Durability ----------------

	entryWAL, err := wal.Open(wal.Config{Dir: cfg.WALDir})
	if err != nil {
		log.Fatal("open wal", zap.Error(err))
	}
	defer entryWAL.Close()

	box, err := outbox.Open(cfg.OutboxDir)
	if err != nil {
		log.Fatal("open outbox", zap.Error(err))
	}
	defer box.Close()

	// ---------------- Recovery ----------------

	eng := book.NewEngine()
	ids := sequence.New(0)
	seqs := sequence.New(0)

	snap, err := snapshot.Load(cfg.SnapshotDir, eng)
	if err != nil {
		log.Fatal("load snapshot", zap.Error(err))
	}
	ids.Reset(snap.LastID)
	seqs.Reset(snap.Seq)
	if snap.Seq > 0 {
		log.Info("snapshot loaded",
			zap.Uint64("seq", snap.Seq),
			zap.Int("orders", len(snap.Orders)),
		)
	}

	if err := service.ReplayFromWAL(cfg.WALDir, snap.Seq, eng, ids, seqs, log); err != nil {
		log.Fatal("wal replay", zap.Error(err))
	}

	// ---------------- Service ----------------

	metrics := obs.New(prometheus.DefaultRegisterer)
	svc := service.NewOrderService(eng, ids, seqs, entryWAL, box, metrics, log)

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotInterval)

	bc, err := broadcaster.New(box, cfg.KafkaBrokers, cfg.TradeTopic, cfg.BroadcastInterval, log)
	if err != nil {
		log.Fatal("connect kafka", zap.Error(err))
	}
	defer bc.Close()
	bc.Start(ctx)

	depthProducer := kafka.NewProducer(cfg.KafkaBrokers, cfg.DepthTopic)
	defer depthProducer.Close()
	depth.New(svc, depthProducer, cfg.DepthInterval, log).Start(ctx)

	// ---------------- Metrics ----------------

	go func() {
		if err := http.ListenAndServe(cfg.MetricsAddr, obs.Handler()); err != nil {
			log.Error("metrics server", zap.Error(err))
		}
	}()

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterEngineServer(grpcSrv, grpcserver.NewServer(svc, log))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Info("shutting down")
		cancel()
		grpcSrv.GracefulStop()
	}()

	log.Info("engine listening", zap.String("addr", cfg.GRPCAddr))
	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatal("grpc server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg.Level = lvl
	return cfg.Build()
}
