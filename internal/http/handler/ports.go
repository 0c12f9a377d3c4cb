package handler

import (
	"certichain/internal/core"
	"context"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CertificateService . CertificateService
type CertificateService interface {
	RegisterInstitution(ctx context.Context, msg core.RegisterInstitutionMessage) (core.UserRecord, string, error)
	RegisterRecipient(ctx context.Context, msg core.RegisterRecipientMessage) (core.UserRecord, string, error)
	Web3Auth(ctx context.Context, msg core.Web3AuthMessage) (core.UserRecord, string, error)
	UserByWallet(ctx context.Context, wallet string) (core.UserRecord, error)
	Issue(ctx context.Context, msg core.IssueMessage) (core.CertificateRecord, error)
	TokenIDForTransaction(ctx context.Context, txHash string) (uint64, error)
	VerifyByToken(ctx context.Context, tokenID uint64, origin core.VerifierOrigin) (core.VerificationResult, error)
	MyCertificates(ctx context.Context, wallet string) ([]core.CertificateRecord, error)
	InstitutionCertificates(ctx context.Context, wallet string) ([]core.CertificateRecord, core.InstitutionStats, error)
	PendingCertificates(ctx context.Context, email string) ([]core.CertificateRecord, error)
	ClaimCertificate(ctx context.Context, tokenID uint64, wallet string) error
	SendCertificateEmail(ctx context.Context, certificateID string) error
	PinFile(ctx context.Context, name string, content []byte) (string, error)
	PinJSON(ctx context.Context, payload any) (string, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
