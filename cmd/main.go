package main

import (
	"log"
	"net/http"

	"github.com/MONUkushawaha987/tictocBackend/internal/config"
	"github.com/MONUkushawaha987/tictocBackend/internal/handler"
	"github.com/MONUkushawaha987/tictocBackend/internal/repository"
	"github.com/MONUkushawaha987/tictocBackend/internal/server"
	"github.com/MONUkushawaha987/tictocBackend/internal/usecase"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	repo, err := repository.NewFileRepo(cfg.UsersFile)
	if err != nil {
		log.Fatalf("failed to init repository: %v", err)
	}

	svc := usecase.NewService(repo)
	h := handler.NewHandler(svc)
	r := server.NewRouter(h)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	server.StartHTTPServer(srv)
}
