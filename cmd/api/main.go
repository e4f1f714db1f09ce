package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/database/postgres"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/migration"
	"github.com/vfg2006/meta-backoffice-api/infrastructure/repository"
	"github.com/vfg2006/meta-backoffice-api/internal/api"
	"github.com/vfg2006/meta-backoffice-api/internal/config"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/account"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/adsetediting"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/authenticating"
	"github.com/vfg2006/meta-backoffice-api/internal/usecases/marketing"
	"github.com/vfg2006/meta-backoffice-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	if err := cfg.LoadAdminEmailsFromSecrets(config.NewRenderClient(cfg)); err != nil {
		logrus.WithError(err).Warn("Não foi possível carregar a allowlist do Render, usando ADMIN_EMAILS")
	}

	if len(cfg.Auth.AdminEmails) == 0 {
		logrus.Warn("Allowlist de administradores vazia: nenhum login será aceito")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.RunMigrations {
		if err := migration.Run(cfg.Database.DSN); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	userRepo := repository.NewUserRepository(pgConn)
	metaAccountRepo := repository.NewMetaAccountRepository(pgConn)
	editLogRepo := repository.NewAdSetEditLogRepository(pgConn)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(metaClient)

	tokenResolver := account.NewService(metaAccountRepo)
	marketingService := marketing.NewService(tokenResolver, metaIntegrator)
	editor := adsetediting.NewService(tokenResolver, metaIntegrator, editLogRepo)

	allowlist := authenticating.NewAdminAllowlist(cfg.Auth.AdminEmails)
	authenticator := authenticating.NewService(userRepo, allowlist, cfg)

	logrus.WithField("admins", allowlist.Len()).Info("Serviços inicializados")

	server, err := api.New(cfg, authenticator, marketingService, editor)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
