package core_test

import (
	"context"
	"errors"
	"time"

	"certichain/internal/core"
	"certichain/internal/core/fake"
	"certichain/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Verification", func() {
	var (
		fakeRepo     *fake.Repository
		fakeChain    *fake.ChainService
		fakeContent  *fake.ContentStore
		fakeNotifier *fake.Notifier
		fakeJWT      *fake.TokenIssuer
		ctx          context.Context

		certichain *core.CertiChain

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeChain = new(fake.ChainService)
		fakeContent = new(fake.ContentStore)
		fakeNotifier = new(fake.Notifier)
		fakeJWT = new(fake.TokenIssuer)
		ctx = context.Background()

		certichain = core.NewCertiChain(
			zap.NewNop().Sugar(),
			fakeRepo,
			fakeChain,
			fakeContent,
			fakeNotifier,
			fakeJWT,
			"sepolia")

		fakeErr = errors.New("fake error")
	})

	Describe("VerifyByToken", func() {
		var (
			certificate repository.Certificate
			origin      core.VerifierOrigin
			result      core.VerificationResult
			err         error
		)

		BeforeEach(func() {
			certificate = repository.Certificate{
				ID:        "cert-1",
				TokenID:   42,
				ViewCount: 3,
			}
			origin = core.VerifierOrigin{
				IP:        "203.0.113.7",
				UserAgent: "test-agent",
			}

			fakeRepo.GetCertificateByTokenIDReturns(certificate, nil)
			fakeChain.VerifyCertificateReturns(true, nil)
		})

		JustBeforeEach(func() {
			result, err = certichain.VerifyByToken(ctx, 42, origin)
		})

		When("the certificate exists and is valid on chain", func() {
			It("logs the read and reports valid", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Valid).To(BeTrue())
				Expect(result.ChainChecked).To(BeTrue())
				Expect(result.Certificate.ViewCount).To(Equal(4))

				Expect(fakeRepo.AppendVerificationLogCallCount()).To(Equal(1))
				_, argLog := fakeRepo.AppendVerificationLogArgsForCall(0)
				Expect(argLog.CertificateID).To(Equal("cert-1"))
				Expect(argLog.VerifierIP).NotTo(BeNil())
				Expect(*argLog.VerifierIP).To(Equal(origin.IP))
				Expect(argLog.UserAgent).NotTo(BeNil())
				Expect(*argLog.UserAgent).To(Equal(origin.UserAgent))

				Expect(fakeRepo.IncrementViewCountCallCount()).To(Equal(1))
				_, argID := fakeRepo.IncrementViewCountArgsForCall(0)
				Expect(argID).To(Equal("cert-1"))
			})
		})

		When("the certificate is verified repeatedly", func() {
			It("appends a log row per read", func() {
				_, secondErr := certichain.VerifyByToken(ctx, 42, origin)
				Expect(secondErr).NotTo(HaveOccurred())
				Expect(fakeRepo.AppendVerificationLogCallCount()).To(Equal(2))
				Expect(fakeRepo.IncrementViewCountCallCount()).To(Equal(2))
			})
		})

		When("the certificate does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetCertificateByTokenIDReturns(repository.Certificate{}, repository.ErrCertificateNotFound)
			})

			It("should return not found without side effects", func() {
				Expect(err).To(MatchError(core.ErrCertificateNotFound))
				Expect(fakeRepo.AppendVerificationLogCallCount()).To(Equal(0))
				Expect(fakeRepo.IncrementViewCountCallCount()).To(Equal(0))
			})
		})

		When("the certificate is revoked", func() {
			BeforeEach(func() {
				certificate.IsRevoked = true
				fakeRepo.GetCertificateByTokenIDReturns(certificate, nil)
			})

			It("should report invalid", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Valid).To(BeFalse())
			})
		})

		When("the chain reports the token invalid", func() {
			BeforeEach(func() {
				fakeChain.VerifyCertificateReturns(false, nil)
			})

			It("the chain vetoes local validity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Valid).To(BeFalse())
				Expect(result.ChainChecked).To(BeTrue())
			})
		})

		When("the chain read fails", func() {
			BeforeEach(func() {
				fakeChain.VerifyCertificateReturns(false, fakeErr)
			})

			It("falls back to the local record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Valid).To(BeTrue())
				Expect(result.ChainChecked).To(BeFalse())
			})
		})

		When("appending the log fails", func() {
			BeforeEach(func() {
				fakeRepo.AppendVerificationLogReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.IncrementViewCountCallCount()).To(Equal(0))
			})
		})
	})

	Describe("MyCertificates", func() {
		var (
			records []core.CertificateRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = certichain.MyCertificates(ctx, "0x2222222222222222222222222222222222222222")
		})

		When("the recipient has certificates", func() {
			BeforeEach(func() {
				fakeRepo.CertificatesByRecipientWalletReturns([]repository.Certificate{
					{ID: "cert-1", TokenID: 1},
					{ID: "cert-2", TokenID: 2},
				}, nil)
			})

			It("should return the records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))
				Expect(records[0].TokenID).To(Equal(uint64(1)))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.CertificatesByRecipientWalletReturns(nil, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("InstitutionCertificates", func() {
		var (
			records []core.CertificateRecord
			stats   core.InstitutionStats
			err     error
		)

		JustBeforeEach(func() {
			records, stats, err = certichain.InstitutionCertificates(ctx, "0x1111111111111111111111111111111111111111")
		})

		When("the wallet has no institution", func() {
			BeforeEach(func() {
				fakeRepo.GetInstitutionByWalletReturns(repository.Institution{}, repository.ErrInstitutionNotFound)
			})

			It("should return an empty dashboard, not an error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
				Expect(records).NotTo(BeNil())
				Expect(stats).To(Equal(core.InstitutionStats{ActiveRate: 100}))
				Expect(fakeRepo.CertificatesByInstitutionCallCount()).To(Equal(0))
			})
		})

		When("the institution has issued certificates", func() {
			BeforeEach(func() {
				fakeRepo.GetInstitutionByWalletReturns(repository.Institution{ID: "inst-1"}, nil)

				lastYear := time.Now().AddDate(-1, 0, 0)
				fakeRepo.CertificatesByInstitutionReturns([]repository.Certificate{
					{ID: "cert-1", IssueDate: time.Now()},
					{ID: "cert-2", IssueDate: lastYear},
					{ID: "cert-3", IssueDate: lastYear, IsRevoked: true},
				}, nil)
			})

			It("computes the dashboard stats", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(3))
				Expect(stats.TotalIssued).To(Equal(3))
				Expect(stats.ThisMonth).To(Equal(1))
				Expect(stats.Revoked).To(Equal(1))
				Expect(stats.ActiveRate).To(Equal(67))
			})
		})

		When("listing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetInstitutionByWalletReturns(repository.Institution{ID: "inst-1"}, nil)
				fakeRepo.CertificatesByInstitutionReturns(nil, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("PendingCertificates", func() {
		var (
			records []core.CertificateRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = certichain.PendingCertificates(ctx, "student@example.com")
		})

		When("the recipient has authenticated", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					Email:         "student@example.com",
					WalletAddress: "0x2222222222222222222222222222222222222222",
				}, nil)
				fakeRepo.PendingCertificatesByEmailReturns([]repository.Certificate{
					{ID: "cert-1"},
				}, nil)
			})

			It("should return the pending certificates", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))
			})
		})

		When("no user exists for the email", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
				Expect(fakeRepo.PendingCertificatesByEmailCallCount()).To(Equal(0))
			})
		})

		When("the user has not bound a wallet", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByEmailReturns(repository.User{
					Email: "student@example.com",
				}, nil)
			})

			It("should return an empty list", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
				Expect(fakeRepo.PendingCertificatesByEmailCallCount()).To(Equal(0))
			})
		})
	})

	Describe("ClaimCertificate", func() {
		var err error

		JustBeforeEach(func() {
			err = certichain.ClaimCertificate(ctx, 42, "0x2222222222222222222222222222222222222222")
		})

		When("the certificate exists", func() {
			BeforeEach(func() {
				fakeRepo.BindRecipientWalletReturns(nil)
			})

			It("binds the wallet", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.BindRecipientWalletCallCount()).To(Equal(1))
				_, argTokenID, argWallet := fakeRepo.BindRecipientWalletArgsForCall(0)
				Expect(argTokenID).To(Equal(uint64(42)))
				Expect(argWallet).To(Equal("0x2222222222222222222222222222222222222222"))
			})
		})

		When("the certificate does not exist", func() {
			BeforeEach(func() {
				fakeRepo.BindRecipientWalletReturns(repository.ErrCertificateNotFound)
			})

			It("should return certificate not found error", func() {
				Expect(err).To(MatchError(core.ErrCertificateNotFound))
			})
		})
	})
})
