package core

import (
	"certichain/internal/repository"
	tokenIssuer "certichain/pkg/jwt"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// RegisterInstitution binds a wallet to the INSTITUTION role and creates
// the owning institution profile atomically. A wallet maps to at most
// one role for its lifetime.
func (c *CertiChain) RegisterInstitution(ctx context.Context, msg RegisterInstitutionMessage) (UserRecord, string, error) {
	if err := c.checkWalletFree(ctx, msg.WalletAddress, RoleInstitution); err != nil {
		return UserRecord{}, "", err
	}
	if err := c.checkEmailFree(ctx, msg.Email); err != nil {
		return UserRecord{}, "", err
	}

	user := repository.User{
		ID:            uuid.NewString(),
		Email:         msg.Email,
		WalletAddress: msg.WalletAddress,
		Role:          repository.RoleInstitution,
	}
	institution := repository.Institution{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		WalletAddress:   msg.WalletAddress,
		InstitutionName: msg.InstitutionName,
		InstitutionType: msg.InstitutionType,
		Website:         msg.Website,
		Description:     msg.Description,
		Logo:            msg.Logo,
		IsVerified:      false,
	}

	err := c.repo.CreateInstitutionUser(ctx, user, institution)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			return UserRecord{}, "", ErrAlreadyRegistered
		}
		return UserRecord{}, "", fmt.Errorf("create institution user: %w", err)
	}

	c.logs.Infow("institution registered",
		"wallet", msg.WalletAddress,
		"institution", msg.InstitutionName)

	user.Institution = &institution
	record := userToRecord(user)

	token, err := c.sessionToken(record)
	if err != nil {
		return UserRecord{}, "", err
	}
	return record, token, nil
}

// RegisterRecipient binds a wallet to the RECIPIENT role.
func (c *CertiChain) RegisterRecipient(ctx context.Context, msg RegisterRecipientMessage) (UserRecord, string, error) {
	if err := c.checkWalletFree(ctx, msg.WalletAddress, RoleRecipient); err != nil {
		return UserRecord{}, "", err
	}
	if err := c.checkEmailFree(ctx, msg.Email); err != nil {
		return UserRecord{}, "", err
	}

	user := repository.User{
		ID:            uuid.NewString(),
		Email:         msg.Email,
		WalletAddress: msg.WalletAddress,
		Role:          repository.RoleRecipient,
	}

	err := c.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRecord) {
			return UserRecord{}, "", ErrAlreadyRegistered
		}
		return UserRecord{}, "", fmt.Errorf("create user: %w", err)
	}

	c.logs.Infow("recipient registered", "wallet", msg.WalletAddress)

	record := userToRecord(user)
	token, err := c.sessionToken(record)
	if err != nil {
		return UserRecord{}, "", err
	}
	return record, token, nil
}

// Web3Auth is the email-first authentication path: an upsert keyed by
// email. An existing user only gets its wallet column updated, the role
// is never touched, so this path can never create or promote an
// INSTITUTION.
func (c *CertiChain) Web3Auth(ctx context.Context, msg Web3AuthMessage) (UserRecord, string, error) {
	existing, err := c.repo.GetUserByEmail(ctx, msg.Email)
	switch {
	case err == nil:
		if err := c.repo.UpdateUserWallet(ctx, msg.Email, msg.WalletAddress); err != nil {
			if errors.Is(err, repository.ErrDuplicateRecord) {
				return UserRecord{}, "", ErrAlreadyRegistered
			}
			return UserRecord{}, "", fmt.Errorf("update user wallet: %w", err)
		}
		existing.WalletAddress = msg.WalletAddress
	case errors.Is(err, repository.ErrUserNotFound):
		existing = repository.User{
			ID:            uuid.NewString(),
			Email:         msg.Email,
			WalletAddress: msg.WalletAddress,
			Role:          repository.RoleRecipient,
		}
		if err := c.repo.CreateUser(ctx, existing); err != nil {
			if errors.Is(err, repository.ErrDuplicateRecord) {
				return UserRecord{}, "", ErrAlreadyRegistered
			}
			return UserRecord{}, "", fmt.Errorf("create user: %w", err)
		}
	default:
		return UserRecord{}, "", fmt.Errorf("get user by email: %w", err)
	}

	c.logs.Infow("web3auth upsert", "email", msg.Email, "wallet", msg.WalletAddress)

	record := userToRecord(existing)
	token, err := c.sessionToken(record)
	if err != nil {
		return UserRecord{}, "", err
	}
	return record, token, nil
}

// UserByWallet returns the user bound to a wallet with institution
// display data when present.
func (c *CertiChain) UserByWallet(ctx context.Context, wallet string) (UserRecord, error) {
	user, err := c.repo.GetUserByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserRecord{}, ErrUserNotFound
		}
		return UserRecord{}, fmt.Errorf("get user by wallet: %w", err)
	}
	return userToRecord(user), nil
}

func (c *CertiChain) checkWalletFree(ctx context.Context, wallet string, requested Role) error {
	existing, err := c.repo.GetUserByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("get user by wallet: %w", err)
	}

	if Role(existing.Role) == requested {
		if requested == RoleInstitution {
			return ErrInstitutionRegistered
		}
		return ErrRecipientRegistered
	}
	if requested == RoleInstitution {
		return ErrWalletIsRecipient
	}
	return ErrWalletIsInstitution
}

func (c *CertiChain) checkEmailFree(ctx context.Context, email string) error {
	_, err := c.repo.GetUserByEmail(ctx, email)
	if err == nil {
		return ErrEmailRegistered
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil
	}
	return fmt.Errorf("get user by email: %w", err)
}

func (c *CertiChain) sessionToken(user UserRecord) (string, error) {
	token := c.jwtIssuer.Generate(tokenIssuer.TokenInfo{
		Email:      user.Email,
		Wallet:     user.WalletAddress,
		Role:       string(user.Role),
		Subject:    user.ID,
		Expiration: 24,
	})
	signed, err := c.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}
