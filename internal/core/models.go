package core

import "time"

type Role string

const (
	RoleInstitution Role = "INSTITUTION"
	RoleRecipient   Role = "RECIPIENT"
)

type UserRecord struct {
	ID            string             `json:"id"`
	Email         string             `json:"email"`
	WalletAddress string             `json:"walletAddress"`
	Role          Role               `json:"role"`
	Institution   *InstitutionRecord `json:"institution,omitempty"`
}

type InstitutionRecord struct {
	ID              string  `json:"id"`
	WalletAddress   string  `json:"walletAddress"`
	InstitutionName string  `json:"institutionName"`
	InstitutionType string  `json:"institutionType"`
	Website         *string `json:"website,omitempty"`
	Description     *string `json:"description,omitempty"`
	Logo            *string `json:"logo,omitempty"`
	IsVerified      bool    `json:"isVerified"`
}

type CertificateRecord struct {
	ID                string             `json:"id"`
	TokenID           uint64             `json:"tokenId"`
	InstitutionID     string             `json:"institutionId"`
	Institution       *InstitutionRecord `json:"institution,omitempty"`
	RecipientName     string             `json:"recipientName"`
	RecipientEmail    string             `json:"recipientEmail"`
	RecipientWallet   *string            `json:"recipientWallet,omitempty"`
	CertificateType   string             `json:"certificateType"`
	Description       *string            `json:"description,omitempty"`
	IssueDate         time.Time          `json:"issueDate"`
	IpfsHash          string             `json:"ipfsHash"`
	IpfsImageHash     *string            `json:"ipfsImageHash,omitempty"`
	TransactionHash   string             `json:"transactionHash"`
	BlockchainNetwork string             `json:"blockchainNetwork"`
	IsRevoked         bool               `json:"isRevoked"`
	ViewCount         int                `json:"viewCount"`
}

type RegisterInstitutionMessage struct {
	Email           string
	InstitutionName string
	InstitutionType string
	WalletAddress   string
	Website         *string
	Description     *string
	Logo            *string
}

type RegisterRecipientMessage struct {
	Email         string
	Name          string
	WalletAddress string
}

type Web3AuthMessage struct {
	Email         string
	Name          *string
	WalletAddress string
}

type IssueMessage struct {
	InstitutionWallet string
	RecipientName     string
	RecipientEmail    string
	RecipientWallet   *string
	CertificateType   string
	Description       *string
	IssueDate         time.Time
	TransactionHash   string // empty means the service submits the mint itself
	Network           string
	Image             []byte
	ImageName         string
}

// VerifierOrigin is the network origin recorded with every verification read.
type VerifierOrigin struct {
	IP        string
	UserAgent string
}

type VerificationResult struct {
	Certificate  CertificateRecord `json:"certificate"`
	Valid        bool              `json:"isValid"`
	ChainChecked bool              `json:"chainChecked"`
}

type InstitutionStats struct {
	TotalIssued int `json:"totalIssued"`
	ThisMonth   int `json:"thisMonth"`
	Revoked     int `json:"revoked"`
	ActiveRate  int `json:"activeRate"`
}

// certificateMetadata is the JSON document pinned to IPFS for a token.
type certificateMetadata struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Image       string              `json:"image,omitempty"`
	Attributes  []metadataAttribute `json:"attributes"`
}

type metadataAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}
