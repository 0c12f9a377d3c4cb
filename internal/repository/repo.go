package repository

import (
	"certichain/internal/db"
	"context"
	"errors"
	"fmt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrInstitutionNotFound error = errors.New("institution not found")
var ErrCertificateNotFound error = errors.New("certificate not found")
var ErrDuplicateRecord error = errors.New("duplicate record")

type CertiRepo struct {
	db db.Store
}

func NewCertiRepo(store db.Store) *CertiRepo {
	return &CertiRepo{
		db: store,
	}
}

func (r *CertiRepo) MigrateTables() error {
	err := r.db.MigrateTable(
		&User{},
		&Institution{},
		&Certificate{},
		&VerificationLog{},
		&EmailNotification{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *CertiRepo) GetUserByWallet(ctx context.Context, wallet string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "wallet_address", wallet, &user, "Institution")
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by wallet: %w", err)
	}
	return user, nil
}

func (r *CertiRepo) GetUserByEmail(ctx context.Context, email string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "email", email, &user, "Institution")
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func (r *CertiRepo) CreateUser(ctx context.Context, user User) error {
	if err := r.db.Create(ctx, &user); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// CreateInstitutionUser inserts the user and its institution profile in
// one transaction so a failed institution insert never leaves an
// orphaned INSTITUTION user behind.
func (r *CertiRepo) CreateInstitutionUser(ctx context.Context, user User, institution Institution) error {
	err := r.db.Atomic(func(tx db.Store) error {
		if err := tx.Create(ctx, &user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if err := tx.Create(ctx, &institution); err != nil {
			return fmt.Errorf("create institution: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("create institution user: %w", err)
	}
	return nil
}

// UpdateUserWallet touches the wallet_address column and nothing else;
// in particular the role column is never part of this update.
func (r *CertiRepo) UpdateUserWallet(ctx context.Context, email string, wallet string) error {
	updates := map[string]any{"wallet_address": wallet}
	affected, err := r.db.UpdateColumns(ctx, &User{}, updates, "email = ?", email)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("update user wallet: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *CertiRepo) GetInstitutionByWallet(ctx context.Context, wallet string) (Institution, error) {
	var institution Institution
	err := r.db.GetOneBy(ctx, "wallet_address", wallet, &institution)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Institution{}, ErrInstitutionNotFound
		}
		return Institution{}, fmt.Errorf("get institution by wallet: %w", err)
	}
	return institution, nil
}

func (r *CertiRepo) CreateCertificate(ctx context.Context, certificate Certificate) error {
	if err := r.db.Create(ctx, &certificate); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("create certificate: %w", err)
	}
	return nil
}

func (r *CertiRepo) GetCertificateByTokenID(ctx context.Context, tokenID uint64) (Certificate, error) {
	var certificate Certificate
	err := r.db.GetOneBy(ctx, "token_id", tokenID, &certificate, "Institution")
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Certificate{}, ErrCertificateNotFound
		}
		return Certificate{}, fmt.Errorf("get certificate by token id: %w", err)
	}
	return certificate, nil
}

func (r *CertiRepo) GetCertificateByID(ctx context.Context, id string) (Certificate, error) {
	var certificate Certificate
	err := r.db.GetOneBy(ctx, "id", id, &certificate, "Institution")
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Certificate{}, ErrCertificateNotFound
		}
		return Certificate{}, fmt.Errorf("get certificate by id: %w", err)
	}
	return certificate, nil
}

func (r *CertiRepo) CertificatesByRecipientWallet(ctx context.Context, wallet string) ([]Certificate, error) {
	var certificates []Certificate
	err := r.db.FindWhere(ctx, &certificates, "issue_date DESC",
		"recipient_wallet = ? AND is_revoked = ?", []any{wallet, false}, "Institution")
	if err != nil {
		return nil, fmt.Errorf("certificates by recipient wallet: %w", err)
	}
	return certificates, nil
}

func (r *CertiRepo) CertificatesByInstitution(ctx context.Context, institutionID string) ([]Certificate, error) {
	var certificates []Certificate
	err := r.db.FindWhere(ctx, &certificates, "issue_date DESC",
		"institution_id = ?", []any{institutionID}, "Institution")
	if err != nil {
		return nil, fmt.Errorf("certificates by institution: %w", err)
	}
	return certificates, nil
}

func (r *CertiRepo) PendingCertificatesByEmail(ctx context.Context, email string) ([]Certificate, error) {
	var certificates []Certificate
	err := r.db.FindWhere(ctx, &certificates, "issue_date DESC",
		"recipient_email = ? AND recipient_wallet IS NULL AND is_revoked = ?", []any{email, false}, "Institution")
	if err != nil {
		return nil, fmt.Errorf("pending certificates by email: %w", err)
	}
	return certificates, nil
}

func (r *CertiRepo) BindRecipientWallet(ctx context.Context, tokenID uint64, wallet string) error {
	updates := map[string]any{"recipient_wallet": wallet}
	affected, err := r.db.UpdateColumns(ctx, &Certificate{}, updates, "token_id = ?", tokenID)
	if err != nil {
		return fmt.Errorf("bind recipient wallet: %w", err)
	}
	if affected == 0 {
		return ErrCertificateNotFound
	}
	return nil
}

func (r *CertiRepo) IncrementViewCount(ctx context.Context, certificateID string) error {
	err := r.db.IncrementColumn(ctx, &Certificate{}, "view_count", "id = ?", certificateID)
	if err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

func (r *CertiRepo) AppendVerificationLog(ctx context.Context, logEntry VerificationLog) error {
	if err := r.db.Create(ctx, &logEntry); err != nil {
		return fmt.Errorf("append verification log: %w", err)
	}
	return nil
}

func (r *CertiRepo) RecordEmailNotification(ctx context.Context, notification EmailNotification) error {
	if err := r.db.Create(ctx, &notification); err != nil {
		return fmt.Errorf("record email notification: %w", err)
	}
	return nil
}
