package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/readmio/bookshelf-service/config"
	"github.com/readmio/bookshelf-service/internal/events"
	"github.com/readmio/bookshelf-service/internal/gateway/googlebooks"
	"github.com/readmio/bookshelf-service/internal/gateway/openlibrary"
	"github.com/readmio/bookshelf-service/internal/handler"
	"github.com/readmio/bookshelf-service/internal/library"
	"github.com/readmio/bookshelf-service/internal/search"
	"github.com/readmio/bookshelf-service/internal/server"
	"github.com/readmio/bookshelf-service/internal/settings"
	"github.com/readmio/bookshelf-service/migrations"
	"github.com/readmio/bookshelf-service/pkg/kafka"
	"github.com/readmio/bookshelf-service/pkg/logger"
	"github.com/readmio/bookshelf-service/pkg/netcheck"
	"github.com/readmio/bookshelf-service/pkg/sqlitedb"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "bookshelf")
	db, err := sqlitedb.NewSqliteDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := library.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	var producer library.Producer
	if cfg.Kafka.Enabled() {
		p, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer p.Close() //nolint:errcheck
		producer = events.NewKafkaProducer(p, cfg.Kafka.Topic)
	}
	librarySvc := library.NewService(repo, producer, log)

	settingsStore := settings.NewStore(db, log)
	catalog := googlebooks.NewClient(log, cfg.Catalog.BaseURL, cfg.Catalog.APIKey)
	metadata := openlibrary.NewClient(log, cfg.Metadata.BaseURL)

	session := search.NewSession(
		catalog,
		netcheck.NewDialChecker(cfg.Search.ProbeAddr, 0),
		settingsStore,
		log,
		search.WithDebounce(cfg.Search.Debounce),
	)
	defer session.Clear()

	h := handler.New(librarySvc, settingsStore, catalog, metadata, session, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
