package core

import (
	"certichain/internal/repository"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrInstitutionNotFound error = errors.New("institution not found")
var ErrCertificateNotFound error = errors.New("certificate not found")

var ErrInstitutionRegistered error = errors.New("institution already registered with this wallet")
var ErrRecipientRegistered error = errors.New("recipient already registered with this wallet")
var ErrWalletIsRecipient error = errors.New("this wallet is already registered as a recipient, use a different wallet for institution registration")
var ErrWalletIsInstitution error = errors.New("this wallet is already registered as an institution, use a different wallet for recipient registration")
var ErrEmailRegistered error = errors.New("email already registered")

// ErrAlreadyRegistered is the storage-constraint fallback: the pre-checks
// raced with a concurrent registration and the unique index rejected the
// insert. The constraint, not the pre-check, is authoritative.
var ErrAlreadyRegistered error = errors.New("wallet or email already registered")

var ErrTokenIDNotFound error = errors.New("token id not found")
var ErrIssuanceInFlight error = errors.New("issuance already in progress for this transaction")
var ErrRecipientWalletRequired error = errors.New("recipient wallet is required when no transaction hash is provided")

// CertiChain is the domain service behind every API operation:
// identity binding, issuance reconciliation and verification reads.
type CertiChain struct {
	logs       *zap.SugaredLogger
	repo       Repository
	chain      ChainService
	content    ContentStore
	notifier   Notifier
	jwtIssuer  TokenIssuer
	network    string

	// Bounded reconciliation retry. The values mirror the observed
	// chain-log indexing lag and are tunables, not guarantees.
	RetryAttempts int
	RetryDelay    time.Duration

	mu       sync.Mutex
	inflight map[string]struct{}
}

func NewCertiChain(
	logger *zap.SugaredLogger,
	repo Repository,
	chain ChainService,
	content ContentStore,
	notifier Notifier,
	jwtIssuer TokenIssuer,
	network string,
) *CertiChain {
	return &CertiChain{
		logs:          logger,
		repo:          repo,
		chain:         chain,
		content:       content,
		notifier:      notifier,
		jwtIssuer:     jwtIssuer,
		network:       network,
		RetryAttempts: 5,
		RetryDelay:    2 * time.Second,
		inflight:      make(map[string]struct{}),
	}
}

func userToRecord(user repository.User) UserRecord {
	record := UserRecord{
		ID:            user.ID,
		Email:         user.Email,
		WalletAddress: user.WalletAddress,
		Role:          Role(user.Role),
	}
	if user.Institution != nil {
		institution := institutionToRecord(*user.Institution)
		record.Institution = &institution
	}
	return record
}

func institutionToRecord(institution repository.Institution) InstitutionRecord {
	return InstitutionRecord{
		ID:              institution.ID,
		WalletAddress:   institution.WalletAddress,
		InstitutionName: institution.InstitutionName,
		InstitutionType: institution.InstitutionType,
		Website:         institution.Website,
		Description:     institution.Description,
		Logo:            institution.Logo,
		IsVerified:      institution.IsVerified,
	}
}

func certificateToRecord(certificate repository.Certificate) CertificateRecord {
	record := CertificateRecord{
		ID:                certificate.ID,
		TokenID:           certificate.TokenID,
		InstitutionID:     certificate.InstitutionID,
		RecipientName:     certificate.RecipientName,
		RecipientEmail:    certificate.RecipientEmail,
		RecipientWallet:   certificate.RecipientWallet,
		CertificateType:   certificate.CertificateType,
		Description:       certificate.Description,
		IssueDate:         certificate.IssueDate,
		IpfsHash:          certificate.IpfsHash,
		IpfsImageHash:     certificate.IpfsImageHash,
		TransactionHash:   certificate.TransactionHash,
		BlockchainNetwork: certificate.BlockchainNetwork,
		IsRevoked:         certificate.IsRevoked,
		ViewCount:         certificate.ViewCount,
	}
	if certificate.Institution.ID != "" {
		institution := institutionToRecord(certificate.Institution)
		record.Institution = &institution
	}
	return record
}

func certificatesToRecords(certificates []repository.Certificate) []CertificateRecord {
	records := make([]CertificateRecord, len(certificates))
	for i, certificate := range certificates {
		records[i] = certificateToRecord(certificate)
	}
	return records
}
