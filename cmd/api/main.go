package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "investhub-backend/internal/adapter/http"
	idemp "investhub-backend/internal/adapter/middleware"
	"investhub-backend/internal/adapter/repository/mysql"
	"investhub-backend/internal/config"
	"investhub-backend/internal/infrastructure/cache"
	"investhub-backend/internal/infrastructure/db"
	ledgeruc "investhub-backend/internal/usecase/ledger"
	participantuc "investhub-backend/internal/usecase/participant"
	projectuc "investhub-backend/internal/usecase/project"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	projects := mysql.NewProjectRepository(gdb)
	participants := mysql.NewParticipantRepository(gdb)
	ledgerRepo := mysql.NewLedgerRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	projectUC := projectuc.NewUsecase(projects, uow)
	participantUC := participantuc.NewUsecase(participants, projects, uow)
	ledgerUC := ledgeruc.NewUsecase(ledgerRepo, projects, uow)

	h := httpadp.NewHandler()
	projectH := httpadp.NewProjectHandler(projectUC)
	participantH := httpadp.NewParticipantHandler(participantUC)
	ledgerH := httpadp.NewLedgerHandler(ledgerUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/investments", projectH.CreateProject)
	e.GET("/investments", projectH.ListProjects)
	e.GET("/investments/:project_id", projectH.GetProject)
	e.PATCH("/investments/:project_id", projectH.PatchProject)

	e.POST("/investment-participants", participantH.AddParticipant)
	e.GET("/investment-participants", participantH.ListParticipants)
	e.PATCH("/investment-participants/:participant_id", participantH.PatchParticipant)

	e.GET("/transactions", ledgerH.ListTransactions)
	e.PATCH("/transactions/:transaction_id", ledgerH.RecordPayment)
	e.POST("/investments/:project_id/installment", ledgerH.RecordInstallment)
	e.GET("/investments/:project_id/history", ledgerH.History)
	e.GET("/investments/:project_id/distribution", ledgerH.LatestDistribution)
	e.GET("/statements", ledgerH.MonthlyStatement)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
