package core

import (
	"certichain/internal/repository"
	"context"
	tokenIssuer "certichain/pkg/jwt"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByWallet(ctx context.Context, wallet string) (repository.User, error)
	GetUserByEmail(ctx context.Context, email string) (repository.User, error)
	CreateUser(ctx context.Context, user repository.User) error
	CreateInstitutionUser(ctx context.Context, user repository.User, institution repository.Institution) error
	UpdateUserWallet(ctx context.Context, email string, wallet string) error
	GetInstitutionByWallet(ctx context.Context, wallet string) (repository.Institution, error)
	CreateCertificate(ctx context.Context, certificate repository.Certificate) error
	GetCertificateByTokenID(ctx context.Context, tokenID uint64) (repository.Certificate, error)
	GetCertificateByID(ctx context.Context, id string) (repository.Certificate, error)
	CertificatesByRecipientWallet(ctx context.Context, wallet string) ([]repository.Certificate, error)
	CertificatesByInstitution(ctx context.Context, institutionID string) ([]repository.Certificate, error)
	PendingCertificatesByEmail(ctx context.Context, email string) ([]repository.Certificate, error)
	BindRecipientWallet(ctx context.Context, tokenID uint64, wallet string) error
	IncrementViewCount(ctx context.Context, certificateID string) error
	AppendVerificationLog(ctx context.Context, logEntry repository.VerificationLog) error
	RecordEmailNotification(ctx context.Context, notification repository.EmailNotification) error
}

//counterfeiter:generate -o fake -fake-name ChainService . ChainService
type ChainService interface {
	SubmitIssue(ctx context.Context, recipient string, certificateType string, tokenURI string) (string, error)
	WaitMined(ctx context.Context, txHash string) error
	TokenIDFromTransaction(ctx context.Context, txHash string) (uint64, error)
	VerifyCertificate(ctx context.Context, tokenID uint64) (bool, error)
}

//counterfeiter:generate -o fake -fake-name ContentStore . ContentStore
type ContentStore interface {
	PinFile(ctx context.Context, name string, content []byte) (string, error)
	PinJSON(ctx context.Context, payload any) (string, error)
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	SendCertificateIssued(ctx context.Context, to string, certificateID string, recipientName string, certificateType string) error
}

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}
