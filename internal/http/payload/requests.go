package payload

import (
	"certichain/internal/core"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jellydator/validation"
)

var addressRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
var txHashRegex = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type RegisterInstitutionRequest struct {
	Email           string  `json:"email"`
	InstitutionName string  `json:"institutionName"`
	InstitutionType string  `json:"institutionType"`
	WalletAddress   string  `json:"walletAddress"`
	Website         *string `json:"website,omitempty"`
	Description     *string `json:"description,omitempty"`
	Logo            *string `json:"logo,omitempty"`
}

func (r RegisterInstitutionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Match(emailRegex)),
		validation.Field(&r.InstitutionName, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.InstitutionType, validation.Required),
		validation.Field(&r.WalletAddress, validation.Required, validation.Match(addressRegex)),
	)
}

func (r RegisterInstitutionRequest) ToMessage() core.RegisterInstitutionMessage {
	return core.RegisterInstitutionMessage{
		Email:           r.Email,
		InstitutionName: r.InstitutionName,
		InstitutionType: r.InstitutionType,
		WalletAddress:   r.WalletAddress,
		Website:         r.Website,
		Description:     r.Description,
		Logo:            r.Logo,
	}
}

type RegisterRecipientRequest struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	WalletAddress string `json:"walletAddress"`
}

func (r RegisterRecipientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Match(emailRegex)),
		validation.Field(&r.Name, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.WalletAddress, validation.Required, validation.Match(addressRegex)),
	)
}

func (r RegisterRecipientRequest) ToMessage() core.RegisterRecipientMessage {
	return core.RegisterRecipientMessage{
		Email:         r.Email,
		Name:          r.Name,
		WalletAddress: r.WalletAddress,
	}
}

type Web3AuthRequest struct {
	Email         string  `json:"email"`
	Name          *string `json:"name,omitempty"`
	WalletAddress string  `json:"walletAddress"`
}

func (r Web3AuthRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Match(emailRegex)),
		validation.Field(&r.WalletAddress, validation.Required, validation.Match(addressRegex)),
	)
}

func (r Web3AuthRequest) ToMessage() core.Web3AuthMessage {
	return core.Web3AuthMessage{
		Email:         r.Email,
		Name:          r.Name,
		WalletAddress: r.WalletAddress,
	}
}

type IssueCertificateRequest struct {
	InstitutionWallet string    `json:"institutionWallet"`
	RecipientName     string    `json:"recipientName"`
	RecipientEmail    string    `json:"recipientEmail"`
	RecipientWallet   *string   `json:"recipientWallet,omitempty"`
	CertificateType   string    `json:"certificateType"`
	Description       *string   `json:"description,omitempty"`
	IssueDate         time.Time `json:"issueDate"`
	TransactionHash   string    `json:"transactionHash,omitempty"`
	BlockchainNetwork string    `json:"blockchainNetwork,omitempty"`
	Image             *string   `json:"image,omitempty"` // base64
	ImageName         *string   `json:"imageName,omitempty"`
}

func (r IssueCertificateRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.InstitutionWallet, validation.Required, validation.Match(addressRegex)),
		validation.Field(&r.RecipientName, validation.Required, validation.Length(2, 255)),
		validation.Field(&r.RecipientEmail, validation.Required, validation.Match(emailRegex)),
		validation.Field(&r.RecipientWallet, validation.Match(addressRegex)),
		validation.Field(&r.CertificateType, validation.Required),
		validation.Field(&r.IssueDate, validation.Required),
		validation.Field(&r.TransactionHash, validation.Match(txHashRegex)),
	)
	if err != nil {
		return err
	}

	if r.TransactionHash == "" && r.RecipientWallet == nil {
		return errors.New("either transactionHash or recipientWallet is required")
	}
	return nil
}

func (r IssueCertificateRequest) ToMessage() (core.IssueMessage, error) {
	msg := core.IssueMessage{
		InstitutionWallet: r.InstitutionWallet,
		RecipientName:     r.RecipientName,
		RecipientEmail:    r.RecipientEmail,
		RecipientWallet:   r.RecipientWallet,
		CertificateType:   r.CertificateType,
		Description:       r.Description,
		IssueDate:         r.IssueDate,
		TransactionHash:   r.TransactionHash,
		Network:           r.BlockchainNetwork,
	}

	if r.Image != nil {
		content, err := base64.StdEncoding.DecodeString(*r.Image)
		if err != nil {
			return core.IssueMessage{}, fmt.Errorf("decode image content: %w", err)
		}
		msg.Image = content
		msg.ImageName = "certificate.png"
		if r.ImageName != nil {
			msg.ImageName = *r.ImageName
		}
	}

	return msg, nil
}

type ClaimCertificateRequest struct {
	TokenID       uint64 `json:"tokenId"`
	WalletAddress string `json:"walletAddress"`
}

func (r ClaimCertificateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TokenID, validation.Required),
		validation.Field(&r.WalletAddress, validation.Required, validation.Match(addressRegex)),
	)
}

type SendEmailRequest struct {
	CertificateID string `json:"certificateId"`
}

func (r SendEmailRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CertificateID, validation.Required),
	)
}

// WalletQuery validates the walletAddress query parameter shared by the
// listing endpoints.
type WalletQuery struct {
	WalletAddress string
}

func (q WalletQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.WalletAddress, validation.Required, validation.Match(addressRegex)),
	)
}

type EmailQuery struct {
	Email string
}

func (q EmailQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Email, validation.Required, validation.Match(emailRegex)),
	)
}
