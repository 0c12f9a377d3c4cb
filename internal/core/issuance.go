package core

import (
	"certichain/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const emailTypeIssued = "certificate_issued"

const (
	notificationStatusSent   = "sent"
	notificationStatusFailed = "failed"
)

// Issue reconciles a chain-confirmed issuance into the record store.
//
// With a transaction hash the mint was signed by the institution's own
// wallet: resolve the token id from the mined logs (bounded retry), pin
// the metadata, persist, notify. Without one the service mints itself:
// pin metadata first (the mint needs the token URI), submit, wait for
// mining, then reconcile the same way.
func (c *CertiChain) Issue(ctx context.Context, msg IssueMessage) (CertificateRecord, error) {
	institution, err := c.repo.GetInstitutionByWallet(ctx, msg.InstitutionWallet)
	if err != nil {
		if errors.Is(err, repository.ErrInstitutionNotFound) {
			return CertificateRecord{}, ErrInstitutionNotFound
		}
		return CertificateRecord{}, fmt.Errorf("get institution by wallet: %w", err)
	}

	txHash := msg.TransactionHash
	if txHash == "" && msg.RecipientWallet == nil {
		return CertificateRecord{}, ErrRecipientWalletRequired
	}

	var imageHash *string
	if len(msg.Image) > 0 {
		hash, err := c.content.PinFile(ctx, msg.ImageName, msg.Image)
		if err != nil {
			return CertificateRecord{}, fmt.Errorf("pin certificate image: %w", err)
		}
		imageHash = &hash
	}

	var tokenID uint64
	var metadataHash string

	if txHash == "" {
		metadataHash, err = c.pinMetadata(ctx, msg, institution, imageHash)
		if err != nil {
			return CertificateRecord{}, err
		}

		txHash, err = c.chain.SubmitIssue(ctx, *msg.RecipientWallet, msg.CertificateType, "ipfs://"+metadataHash)
		if err != nil {
			return CertificateRecord{}, fmt.Errorf("submit issuance transaction: %w", err)
		}

		if err := c.reserveTransaction(txHash); err != nil {
			return CertificateRecord{}, err
		}
		defer c.releaseTransaction(txHash)

		c.logs.Infow("issuance transaction submitted", "tx_hash", txHash)

		if err := c.chain.WaitMined(ctx, txHash); err != nil {
			return CertificateRecord{}, fmt.Errorf("wait for transaction: %w", err)
		}

		tokenID, err = c.resolveTokenID(ctx, txHash)
		if err != nil {
			return CertificateRecord{}, err
		}
	} else {
		if err := c.reserveTransaction(txHash); err != nil {
			return CertificateRecord{}, err
		}
		defer c.releaseTransaction(txHash)

		tokenID, err = c.resolveTokenID(ctx, txHash)
		if err != nil {
			return CertificateRecord{}, err
		}

		metadataHash, err = c.pinMetadata(ctx, msg, institution, imageHash)
		if err != nil {
			return CertificateRecord{}, err
		}
	}

	network := msg.Network
	if network == "" {
		network = c.network
	}

	certificate := repository.Certificate{
		ID:                uuid.NewString(),
		TokenID:           tokenID,
		InstitutionID:     institution.ID,
		RecipientName:     msg.RecipientName,
		RecipientEmail:    msg.RecipientEmail,
		RecipientWallet:   msg.RecipientWallet,
		CertificateType:   msg.CertificateType,
		Description:       msg.Description,
		IssueDate:         msg.IssueDate,
		IpfsHash:          metadataHash,
		IpfsImageHash:     imageHash,
		TransactionHash:   txHash,
		BlockchainNetwork: network,
	}

	if err := c.repo.CreateCertificate(ctx, certificate); err != nil {
		return CertificateRecord{}, fmt.Errorf("persist certificate: %w", err)
	}

	c.logs.Infow("certificate persisted",
		"token_id", tokenID,
		"tx_hash", txHash,
		"institution", institution.InstitutionName)

	// persist-then-notify: a failed email never undoes the record
	c.notifyIssued(ctx, certificate)

	certificate.Institution = institution
	return certificateToRecord(certificate), nil
}

// TokenIDForTransaction is the single-shot read behind the
// transaction-to-token-id lookup. No retry here; the issuance flow owns
// the bounded retry.
func (c *CertiChain) TokenIDForTransaction(ctx context.Context, txHash string) (uint64, error) {
	tokenID, err := c.chain.TokenIDFromTransaction(ctx, txHash)
	if err != nil {
		return 0, fmt.Errorf("token id from transaction: %w", err)
	}
	return tokenID, nil
}

// SendCertificateEmail re-sends the issuance email for an existing
// certificate and records the attempt.
func (c *CertiChain) SendCertificateEmail(ctx context.Context, certificateID string) error {
	certificate, err := c.repo.GetCertificateByID(ctx, certificateID)
	if err != nil {
		if errors.Is(err, repository.ErrCertificateNotFound) {
			return ErrCertificateNotFound
		}
		return fmt.Errorf("get certificate: %w", err)
	}

	sendErr := c.notifier.SendCertificateIssued(ctx,
		certificate.RecipientEmail, certificate.ID, certificate.RecipientName, certificate.CertificateType)

	c.recordNotification(ctx, certificate, sendErr)

	if sendErr != nil {
		return fmt.Errorf("send certificate email: %w", sendErr)
	}
	return nil
}

// resolveTokenID retries the receipt fetch + event decode with a fixed
// delay and a fixed attempt bound. Chain-log indexing can lag behind the
// receipt becoming available; the bound keeps the wait terminating, and
// exhaustion is surfaced so the operator can see the divergence between
// the mined transaction and the missing local record.
func (c *CertiChain) resolveTokenID(ctx context.Context, txHash string) (uint64, error) {
	var lastErr error
	for attempt := 1; attempt <= c.RetryAttempts; attempt++ {
		tokenID, err := c.chain.TokenIDFromTransaction(ctx, txHash)
		if err == nil {
			return tokenID, nil
		}
		lastErr = err

		c.logs.Infow("token id not yet available",
			"tx_hash", txHash,
			"attempt", attempt,
			"error", err)

		if attempt == c.RetryAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(c.RetryDelay):
		}
	}

	return 0, fmt.Errorf("%w after %d attempts: %w", ErrTokenIDNotFound, c.RetryAttempts, lastErr)
}

func (c *CertiChain) pinMetadata(ctx context.Context, msg IssueMessage, institution repository.Institution, imageHash *string) (string, error) {
	description := ""
	if msg.Description != nil {
		description = *msg.Description
	}

	metadata := certificateMetadata{
		Name:        fmt.Sprintf("%s - %s", msg.CertificateType, msg.RecipientName),
		Description: description,
		Attributes: []metadataAttribute{
			{TraitType: "Certificate Type", Value: msg.CertificateType},
			{TraitType: "Issuer", Value: institution.InstitutionName},
			{TraitType: "Issue Date", Value: msg.IssueDate.Format(time.RFC3339)},
		},
	}
	if imageHash != nil {
		metadata.Image = "ipfs://" + *imageHash
	}

	hash, err := c.content.PinJSON(ctx, metadata)
	if err != nil {
		return "", fmt.Errorf("pin certificate metadata: %w", err)
	}
	return hash, nil
}

func (c *CertiChain) notifyIssued(ctx context.Context, certificate repository.Certificate) {
	sendErr := c.notifier.SendCertificateIssued(ctx,
		certificate.RecipientEmail, certificate.ID, certificate.RecipientName, certificate.CertificateType)
	if sendErr != nil {
		c.logs.Errorw("certificate email failed",
			"certificate_id", certificate.ID,
			"error", sendErr)
	}

	c.recordNotification(ctx, certificate, sendErr)
}

func (c *CertiChain) recordNotification(ctx context.Context, certificate repository.Certificate, sendErr error) {
	status := notificationStatusSent
	if sendErr != nil {
		status = notificationStatusFailed
	}

	err := c.repo.RecordEmailNotification(ctx, repository.EmailNotification{
		ID:             uuid.NewString(),
		CertificateID:  certificate.ID,
		RecipientEmail: certificate.RecipientEmail,
		EmailType:      emailTypeIssued,
		Status:         status,
		SentAt:         time.Now(),
	})
	if err != nil {
		c.logs.Errorw("failed to record email notification",
			"certificate_id", certificate.ID,
			"error", err)
	}
}

// reserveTransaction enforces a single in-flight reconciliation per
// transaction hash.
func (c *CertiChain) reserveTransaction(txHash string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.inflight[txHash]; ok {
		return ErrIssuanceInFlight
	}
	c.inflight[txHash] = struct{}{}
	return nil
}

func (c *CertiChain) releaseTransaction(txHash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, txHash)
}
