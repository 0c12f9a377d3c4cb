package repository

import "time"

const (
	RoleInstitution = "INSTITUTION"
	RoleRecipient   = "RECIPIENT"
)

type User struct {
	ID            string `gorm:"primaryKey;autoIncrement:false"`
	Email         string `gorm:"type:varchar(255);uniqueIndex;not null"`
	WalletAddress string `gorm:"size:42;uniqueIndex;not null"` // 0x + 40 hex chars
	Role          string `gorm:"size:20;not null"`             // INSTITUTION or RECIPIENT, fixed at creation
	CreatedAt     time.Time
	Institution   *Institution
}

type Institution struct {
	ID              string `gorm:"primaryKey;autoIncrement:false"`
	UserID          string `gorm:"uniqueIndex;not null"`
	WalletAddress   string `gorm:"size:42;uniqueIndex;not null"`
	InstitutionName string `gorm:"type:varchar(255);not null"`
	InstitutionType string `gorm:"type:varchar(100);not null"`
	Website         *string
	Description     *string `gorm:"type:text"`
	Logo            *string
	IsVerified      bool `gorm:"not null;default:false"` // flipped by an admin, never by this service
	CreatedAt       time.Time
}

type Certificate struct {
	ID                string  `gorm:"primaryKey;autoIncrement:false"`
	TokenID           uint64  `gorm:"uniqueIndex;not null"` // chain-assigned, never generated locally
	InstitutionID     string  `gorm:"index;not null"`
	Institution       Institution
	RecipientName     string  `gorm:"type:varchar(255);not null"`
	RecipientEmail    string  `gorm:"type:varchar(255);index;not null"`
	RecipientWallet   *string `gorm:"size:42;index"` // nil until claimed
	CertificateType   string  `gorm:"type:varchar(255);not null"`
	Description       *string `gorm:"type:text"`
	IssueDate         time.Time `gorm:"not null;index"`
	IpfsHash          string  `gorm:"type:varchar(100);not null"`
	IpfsImageHash     *string `gorm:"type:varchar(100)"`
	TransactionHash   string  `gorm:"size:66;not null"`
	BlockchainNetwork string  `gorm:"type:varchar(50);not null;default:'sepolia'"`
	IsRevoked         bool    `gorm:"not null;default:false"`
	ViewCount         int     `gorm:"not null;default:0"`
	CreatedAt         time.Time
}

// VerificationLog rows are append-only; one per verification read.
type VerificationLog struct {
	ID            string `gorm:"primaryKey;autoIncrement:false"`
	CertificateID string `gorm:"index;not null"`
	VerifierIP    *string
	UserAgent     *string
	VerifiedAt    time.Time `gorm:"not null"`
}

type EmailNotification struct {
	ID             string `gorm:"primaryKey;autoIncrement:false"`
	CertificateID  string `gorm:"index;not null"`
	RecipientEmail string `gorm:"type:varchar(255);not null"`
	EmailType      string `gorm:"type:varchar(50);not null"`
	Status         string `gorm:"type:varchar(20);not null"` // sent or failed
	SentAt         time.Time
}
