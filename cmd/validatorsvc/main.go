package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/avvvet/bingo-validator/configs"
	natscli "github.com/avvvet/bingo-validator/internal/nats"
	"github.com/avvvet/bingo-validator/internal/validatorsvc/broker"
	svcconfig "github.com/avvvet/bingo-validator/internal/validatorsvc/config"
	handlers "github.com/avvvet/bingo-validator/internal/validatorsvc/handlers"
	"github.com/avvvet/bingo-validator/internal/validatorsvc/service"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "validator"

func init() {
	config.LoadEnv(SERVICE_NAME)
	config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service_" + config.GetInstanceId())
}

func main() {
	cfg := svcconfig.Load()
	instanceId := config.GetInstanceId()

	validationService := service.NewValidationService()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// nats is optional, the http api works without it
	var sub *nats.Subscription
	if cfg.NatsEnabled {
		n, err := natscli.Connect(cfg.NatsUrl, cfg.NatsToken, SERVICE_NAME+"-"+instanceId)
		if err != nil {
			log.Errorf("Error: unable to connect to NATS server %v", err)
			os.Exit(1)
		}
		defer n.Conn.Close()
		log.Printf("NATS connection established successfully %s", n.Url)

		b := broker.NewBroker(n.Conn, validationService, cfg.ResultSubject)
		sub, err = b.QueueSubscribValidate(cfg.ValidateSubject, cfg.QueueGroup)
		if err != nil {
			log.Errorf("Error: unable to subscribe to queue %v", err)
			os.Exit(1)
		}
		go b.StartHeartbeat(ctx, instanceId, 30*time.Second)
	}

	h := handlers.NewHandler(validationService, cfg.MaxUploadBytes, cfg.Port)
	r := handlers.NewRouter(h, cfg.RateLimit)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	cancel()
	if sub != nil {
		sub.Unsubscribe()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
