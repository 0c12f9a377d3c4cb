package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	ethNodeEnvKey       = "ETH_NODE_URL"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	contractAddrEnvKey  = "CONTRACT_ADDRESS"
	issuerKeyEnvKey     = "ISSUER_PRIVATE_KEY"
	chainNetworkEnvKey  = "CHAIN_NETWORK"
	pinataAPIKeyEnvKey  = "PINATA_API_KEY"
	pinataSecretEnvKey  = "PINATA_SECRET_KEY"
	resendAPIKeyEnvKey  = "RESEND_API_KEY"
	appURLEnvKey        = "APP_URL"
	jwtSecretEnvKey     = "JWT_SECRET"
	defaultChainNetwork = "sepolia"
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	ContractAddress string
	IssuerKeyHex    string
	ChainNetwork    string
	PinataAPIKey    string
	PinataSecret    string
	ResendAPIKey    string
	AppURL          string
	JWTSecret       string
}

func NewApp() (App, error) {
	cfg := App{}

	required := []struct {
		key    string
		target *string
	}{
		{apiPortEnvKey, &cfg.Port},
		{ethNodeEnvKey, &cfg.NodeURL},
		{dbConnEnvKey, &cfg.DBConnectionURL},
		{contractAddrEnvKey, &cfg.ContractAddress},
		{pinataAPIKeyEnvKey, &cfg.PinataAPIKey},
		{pinataSecretEnvKey, &cfg.PinataSecret},
		{resendAPIKeyEnvKey, &cfg.ResendAPIKey},
		{appURLEnvKey, &cfg.AppURL},
		{jwtSecretEnvKey, &cfg.JWTSecret},
	}

	for _, env := range required {
		value, ok := os.LookupEnv(env.key)
		if !ok {
			return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, env.key)
		}
		*env.target = value
	}

	// the server can run without an operator key; wallet-signed issuance
	// still works, server-side minting does not
	cfg.IssuerKeyHex = os.Getenv(issuerKeyEnvKey)

	cfg.ChainNetwork = os.Getenv(chainNetworkEnvKey)
	if cfg.ChainNetwork == "" {
		cfg.ChainNetwork = defaultChainNetwork
	}

	return cfg, nil
}
