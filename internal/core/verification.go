package core

import (
	"certichain/internal/repository"
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// VerifyByToken returns the stored certificate for a token id. Every
// successful lookup appends a VerificationLog row and bumps the view
// counter; repeated lookups are deliberately not deduplicated. A miss
// has no side effects.
func (c *CertiChain) VerifyByToken(ctx context.Context, tokenID uint64, origin VerifierOrigin) (VerificationResult, error) {
	certificate, err := c.repo.GetCertificateByTokenID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, repository.ErrCertificateNotFound) {
			return VerificationResult{}, ErrCertificateNotFound
		}
		return VerificationResult{}, fmt.Errorf("get certificate by token id: %w", err)
	}

	logEntry := repository.VerificationLog{
		ID:            uuid.NewString(),
		CertificateID: certificate.ID,
		VerifiedAt:    time.Now(),
	}
	if origin.IP != "" {
		logEntry.VerifierIP = &origin.IP
	}
	if origin.UserAgent != "" {
		logEntry.UserAgent = &origin.UserAgent
	}

	if err := c.repo.AppendVerificationLog(ctx, logEntry); err != nil {
		return VerificationResult{}, fmt.Errorf("append verification log: %w", err)
	}
	if err := c.repo.IncrementViewCount(ctx, certificate.ID); err != nil {
		return VerificationResult{}, fmt.Errorf("increment view count: %w", err)
	}
	certificate.ViewCount++

	// Validity favors "invalid": the local revocation flag and the
	// on-chain check each veto. The chain read is best-effort; its
	// absence never blocks showing the locally known certificate.
	result := VerificationResult{
		Certificate: certificateToRecord(certificate),
		Valid:       !certificate.IsRevoked,
	}

	chainValid, err := c.chain.VerifyCertificate(ctx, tokenID)
	if err != nil {
		c.logs.Errorw("on-chain validity check failed",
			"token_id", tokenID,
			"error", err)
	} else {
		result.ChainChecked = true
		if !chainValid {
			result.Valid = false
		}
	}

	return result, nil
}

// MyCertificates lists a recipient's non-revoked certificates, newest first.
func (c *CertiChain) MyCertificates(ctx context.Context, wallet string) ([]CertificateRecord, error) {
	certificates, err := c.repo.CertificatesByRecipientWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("certificates by recipient wallet: %w", err)
	}
	return certificatesToRecords(certificates), nil
}

// InstitutionCertificates lists everything an institution issued plus
// dashboard stats. An unregistered wallet is an empty dashboard, not an
// error.
func (c *CertiChain) InstitutionCertificates(ctx context.Context, wallet string) ([]CertificateRecord, InstitutionStats, error) {
	emptyStats := InstitutionStats{ActiveRate: 100}

	institution, err := c.repo.GetInstitutionByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, repository.ErrInstitutionNotFound) {
			return []CertificateRecord{}, emptyStats, nil
		}
		return nil, InstitutionStats{}, fmt.Errorf("get institution by wallet: %w", err)
	}

	certificates, err := c.repo.CertificatesByInstitution(ctx, institution.ID)
	if err != nil {
		return nil, InstitutionStats{}, fmt.Errorf("certificates by institution: %w", err)
	}

	stats := InstitutionStats{TotalIssued: len(certificates)}
	now := time.Now()
	for _, certificate := range certificates {
		if certificate.IssueDate.Month() == now.Month() && certificate.IssueDate.Year() == now.Year() {
			stats.ThisMonth++
		}
		if certificate.IsRevoked {
			stats.Revoked++
		}
	}
	if stats.TotalIssued > 0 {
		stats.ActiveRate = int(math.Round(float64(stats.TotalIssued-stats.Revoked) / float64(stats.TotalIssued) * 100))
	} else {
		stats.ActiveRate = 100
	}

	return certificatesToRecords(certificates), stats, nil
}

// PendingCertificates lists email-only certificates awaiting wallet
// binding. The recipient must have authenticated (bound a wallet via
// web3auth) before pending certificates are exposed.
func (c *CertiChain) PendingCertificates(ctx context.Context, email string) ([]CertificateRecord, error) {
	user, err := c.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return []CertificateRecord{}, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if user.WalletAddress == "" {
		return []CertificateRecord{}, nil
	}

	certificates, err := c.repo.PendingCertificatesByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("pending certificates by email: %w", err)
	}
	return certificatesToRecords(certificates), nil
}

// ClaimCertificate is the institution follow-up that binds a recipient
// wallet onto a certificate issued by email only.
func (c *CertiChain) ClaimCertificate(ctx context.Context, tokenID uint64, wallet string) error {
	err := c.repo.BindRecipientWallet(ctx, tokenID, wallet)
	if err != nil {
		if errors.Is(err, repository.ErrCertificateNotFound) {
			return ErrCertificateNotFound
		}
		return fmt.Errorf("bind recipient wallet: %w", err)
	}

	c.logs.Infow("certificate claimed", "token_id", tokenID, "wallet", wallet)
	return nil
}

// PinFile exposes the content store for pre-mint uploads.
func (c *CertiChain) PinFile(ctx context.Context, name string, content []byte) (string, error) {
	hash, err := c.content.PinFile(ctx, name, content)
	if err != nil {
		return "", fmt.Errorf("pin file: %w", err)
	}
	return hash, nil
}

// PinJSON exposes the content store for pre-mint metadata uploads.
func (c *CertiChain) PinJSON(ctx context.Context, payload any) (string, error) {
	hash, err := c.content.PinJSON(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("pin metadata: %w", err)
	}
	return hash, nil
}
