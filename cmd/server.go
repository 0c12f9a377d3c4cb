package cmd

import (
	"certichain/internal/config"
	"certichain/internal/core"
	"certichain/internal/db"
	"certichain/internal/email"
	"certichain/internal/ethereum"
	"certichain/internal/http/handler"
	"certichain/internal/http/handler/middleware"
	"certichain/internal/http/payload"
	"certichain/internal/http/server"
	"certichain/internal/ipfs"
	"certichain/internal/repository"
	"certichain/pkg/jwt"
	"certichain/pkg/log"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("certichain", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewCertiRepo(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("ethereum node connection failed", "error", err)
		return err
	}

	chainClient, err := ethereum.NewChainClient(client, config.ContractAddress, config.IssuerKeyHex)
	if err != nil {
		logger.Errorw("failed to create chain client", "error", err)
		return err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	pinataClient := ipfs.NewPinataClient(httpClient, ipfs.DefaultBaseURL, config.PinataAPIKey, config.PinataSecret)
	resendClient := email.NewResendClient(httpClient, email.DefaultBaseURL, config.ResendAPIKey, config.AppURL)

	// certichain
	certichain := core.NewCertiChain(
		logger,
		repo,
		chainClient,
		pinataClient,
		resendClient,
		jwtService,
		config.ChainNetwork)

	// handler
	certiHlr := handler.NewCertiHandler(
		logger,
		payload.DecodeValidator{},
		certichain)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.RegisterInstitution, certiHlr.HandleRegisterInstitution)
	mux.HandleFunc(handler.RegisterRecipient, certiHlr.HandleRegisterRecipient)
	mux.HandleFunc(handler.Web3Auth, certiHlr.HandleWeb3Auth)
	mux.HandleFunc(handler.GetUser, certiHlr.HandleGetUser)
	mux.HandleFunc(handler.IssueCertificate, certiHlr.HandleIssueCertificate)
	mux.HandleFunc(handler.TokenIDByTransaction, certiHlr.HandleTokenIDByTransaction)
	mux.HandleFunc(handler.VerifyCertificate, certiHlr.HandleVerifyCertificate)
	mux.HandleFunc(handler.MyCertificates, certiHlr.HandleMyCertificates)
	mux.HandleFunc(handler.InstitutionCertificates, certiHlr.HandleInstitutionCertificates)
	mux.HandleFunc(handler.PendingCertificates, certiHlr.HandlePendingCertificates)
	mux.HandleFunc(handler.ClaimCertificate, certiHlr.HandleClaimCertificate)
	mux.HandleFunc(handler.UploadToIPFS, certiHlr.HandleUploadToIPFS)
	mux.HandleFunc(handler.SendEmail, certiHlr.HandleSendEmail)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
