package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/ivstraffic/batch-operations-api/infrastructure/database/postgres"
	"github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads"
	"github.com/ivstraffic/batch-operations-api/infrastructure/integrator/ads/adsclient"
	"github.com/ivstraffic/batch-operations-api/infrastructure/repository"
	"github.com/ivstraffic/batch-operations-api/internal/api"
	"github.com/ivstraffic/batch-operations-api/internal/config"
	"github.com/ivstraffic/batch-operations-api/internal/usecases/authenticating"
	"github.com/ivstraffic/batch-operations-api/internal/usecases/batching"
	"github.com/ivstraffic/batch-operations-api/internal/usecases/executing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	batchRepo := repository.NewBatchOperationRepository(pgConn)
	itemRepo := repository.NewBatchOperationItemRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	adsClient := adsclient.NewClient(cfg)
	adsIntegrator := ads.New(cfg, adsClient)

	engine := executing.NewEngine(batchRepo, itemRepo, adsIntegrator, cfg)

	batchService := batching.NewService(pgConn, batchRepo, itemRepo, engine, cfg)

	server, err := api.New(cfg, batchService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
