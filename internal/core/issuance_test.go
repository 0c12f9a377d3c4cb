package core_test

import (
	"context"
	"errors"
	"time"

	"certichain/internal/core"
	"certichain/internal/core/fake"
	"certichain/internal/ethereum"
	"certichain/internal/repository"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Issuance", func() {
	var (
		fakeRepo     *fake.Repository
		fakeChain    *fake.ChainService
		fakeContent  *fake.ContentStore
		fakeNotifier *fake.Notifier
		fakeJWT      *fake.TokenIssuer
		ctx          context.Context

		certichain *core.CertiChain

		institution repository.Institution
		fakeErr     error
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
		certichain.RetryAttempts = 3
		certichain.RetryDelay = time.Millisecond

		fakeJWT.GenerateReturns(jwt.New(jwt.SigningMethodHS512))
		fakeJWT.SignReturns("signed.token", nil)

		institution = repository.Institution{
			ID:              "inst-1",
			WalletAddress:   "0x1111111111111111111111111111111111111111",
			InstitutionName: "Test University",
			InstitutionType: "University",
		}
		fakeRepo.GetInstitutionByWalletReturns(institution, nil)

		fakeErr = errors.New("fake error")
	})

	Describe("Issue", func() {
		var (
			msg    core.IssueMessage
			record core.CertificateRecord
			err    error
		)

		BeforeEach(func() {
			msg = core.IssueMessage{
				InstitutionWallet: institution.WalletAddress,
				RecipientName:     "Test Student",
				RecipientEmail:    "student@example.com",
				CertificateType:   "Bachelor of Science",
				IssueDate:         time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
				TransactionHash:   "0xab12cd34",
			}

			fakeChain.TokenIDFromTransactionReturns(42, nil)
			fakeContent.PinJSONReturns("QmMetadataHash", nil)
			fakeRepo.CreateCertificateReturns(nil)
			fakeNotifier.SendCertificateIssuedReturns(nil)
		})

		JustBeforeEach(func() {
			record, err = certichain.Issue(ctx, msg)
		})

		When("the mint was signed by the institution wallet", func() {
			It("resolves the token id, pins metadata and persists", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.TokenID).To(Equal(uint64(42)))
				Expect(record.IpfsHash).To(Equal("QmMetadataHash"))
				Expect(record.TransactionHash).To(Equal(msg.TransactionHash))
				Expect(record.BlockchainNetwork).To(Equal("sepolia"))
				Expect(record.Institution).NotTo(BeNil())

				Expect(fakeChain.TokenIDFromTransactionCallCount()).To(Equal(1))
				_, argHash := fakeChain.TokenIDFromTransactionArgsForCall(0)
				Expect(argHash).To(Equal(msg.TransactionHash))

				Expect(fakeChain.SubmitIssueCallCount()).To(Equal(0))

				Expect(fakeRepo.CreateCertificateCallCount()).To(Equal(1))
				_, argCertificate := fakeRepo.CreateCertificateArgsForCall(0)
				Expect(argCertificate.TokenID).To(Equal(uint64(42)))
				Expect(argCertificate.InstitutionID).To(Equal(institution.ID))
				Expect(argCertificate.IpfsHash).To(Equal("QmMetadataHash"))

				Expect(fakeNotifier.SendCertificateIssuedCallCount()).To(Equal(1))
				_, argTo, _, argName, argType := fakeNotifier.SendCertificateIssuedArgsForCall(0)
				Expect(argTo).To(Equal(msg.RecipientEmail))
				Expect(argName).To(Equal(msg.RecipientName))
				Expect(argType).To(Equal(msg.CertificateType))

				Expect(fakeRepo.RecordEmailNotificationCallCount()).To(Equal(1))
				_, argNotification := fakeRepo.RecordEmailNotificationArgsForCall(0)
				Expect(argNotification.Status).To(Equal("sent"))
			})
		})

		When("the event log lags behind the receipt", func() {
			BeforeEach(func() {
				fakeChain.TokenIDFromTransactionReturns(0, ethereum.ErrEventNotFound)
				fakeChain.TokenIDFromTransactionReturnsOnCall(1, 42, nil)
			})

			It("retries and succeeds on a later attempt", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.TokenID).To(Equal(uint64(42)))
				Expect(fakeChain.TokenIDFromTransactionCallCount()).To(Equal(2))
				Expect(fakeRepo.CreateCertificateCallCount()).To(Equal(1))
			})
		})

		When("the event never appears", func() {
			BeforeEach(func() {
				fakeChain.TokenIDFromTransactionReturns(0, ethereum.ErrEventNotFound)
			})

			It("gives up after the attempt bound without persisting", func() {
				Expect(err).To(MatchError(core.ErrTokenIDNotFound))
				Expect(err).To(MatchError(ethereum.ErrEventNotFound))
				Expect(fakeChain.TokenIDFromTransactionCallCount()).To(Equal(3))
				Expect(fakeRepo.CreateCertificateCallCount()).To(Equal(0))
				Expect(fakeContent.PinJSONCallCount()).To(Equal(0))
				Expect(fakeNotifier.SendCertificateIssuedCallCount()).To(Equal(0))
			})
		})

		When("the institution wallet is unknown", func() {
			BeforeEach(func() {
				fakeRepo.GetInstitutionByWalletReturns(repository.Institution{}, repository.ErrInstitutionNotFound)
			})

			It("should return institution not found error", func() {
				Expect(err).To(MatchError(core.ErrInstitutionNotFound))
				Expect(fakeChain.TokenIDFromTransactionCallCount()).To(Equal(0))
			})
		})

		When("an image is attached", func() {
			BeforeEach(func() {
				msg.Image = []byte("png-bytes")
				msg.ImageName = "certificate.png"
				fakeContent.PinFileReturns("QmImageHash", nil)
			})

			It("pins the image before the metadata", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.IpfsImageHash).NotTo(BeNil())
				Expect(*record.IpfsImageHash).To(Equal("QmImageHash"))

				Expect(fakeContent.PinFileCallCount()).To(Equal(1))
				_, argName, argContent := fakeContent.PinFileArgsForCall(0)
				Expect(argName).To(Equal("certificate.png"))
				Expect(argContent).To(Equal([]byte("png-bytes")))
			})
		})

		When("the email send fails", func() {
			BeforeEach(func() {
				fakeNotifier.SendCertificateIssuedReturns(fakeErr)
			})

			It("still returns the persisted certificate", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateCertificateCallCount()).To(Equal(1))

				Expect(fakeRepo.RecordEmailNotificationCallCount()).To(Equal(1))
				_, argNotification := fakeRepo.RecordEmailNotificationArgsForCall(0)
				Expect(argNotification.Status).To(Equal("failed"))
			})
		})

		When("persisting fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateCertificateReturns(fakeErr)
			})

			It("should return error without notifying", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeNotifier.SendCertificateIssuedCallCount()).To(Equal(0))
			})
		})

		When("no transaction hash is provided", func() {
			BeforeEach(func() {
				msg.TransactionHash = ""
			})

			When("no recipient wallet either", func() {
				It("should return recipient wallet required error", func() {
					Expect(err).To(MatchError(core.ErrRecipientWalletRequired))
					Expect(fakeChain.SubmitIssueCallCount()).To(Equal(0))
				})
			})

			When("a recipient wallet is given", func() {
				BeforeEach(func() {
					wallet := "0x2222222222222222222222222222222222222222"
					msg.RecipientWallet = &wallet

					fakeChain.SubmitIssueReturns("0xminted", nil)
					fakeChain.WaitMinedReturns(nil)
					fakeChain.TokenIDFromTransactionReturns(7, nil)
				})

				It("pins metadata, mints and waits for mining", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(record.TokenID).To(Equal(uint64(7)))
					Expect(record.TransactionHash).To(Equal("0xminted"))

					Expect(fakeChain.SubmitIssueCallCount()).To(Equal(1))
					_, argRecipient, argType, argURI := fakeChain.SubmitIssueArgsForCall(0)
					Expect(argRecipient).To(Equal(*msg.RecipientWallet))
					Expect(argType).To(Equal(msg.CertificateType))
					Expect(argURI).To(Equal("ipfs://QmMetadataHash"))

					Expect(fakeChain.WaitMinedCallCount()).To(Equal(1))
					_, argHash := fakeChain.WaitMinedArgsForCall(0)
					Expect(argHash).To(Equal("0xminted"))
				})

				When("mining fails", func() {
					BeforeEach(func() {
						fakeChain.WaitMinedReturns(ethereum.ErrTransactionReverted)
					})

					It("should return error without persisting", func() {
						Expect(err).To(MatchError(ethereum.ErrTransactionReverted))
						Expect(fakeRepo.CreateCertificateCallCount()).To(Equal(0))
					})
				})
			})
		})
	})

	Describe("TokenIDForTransaction", func() {
		var (
			tokenID uint64
			err     error
		)

		JustBeforeEach(func() {
			tokenID, err = certichain.TokenIDForTransaction(ctx, "0xhash")
		})

		When("the event is present", func() {
			BeforeEach(func() {
				fakeChain.TokenIDFromTransactionReturns(42, nil)
			})

			It("should return the token id without retrying", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(tokenID).To(Equal(uint64(42)))
				Expect(fakeChain.TokenIDFromTransactionCallCount()).To(Equal(1))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeChain.TokenIDFromTransactionReturns(0, ethereum.ErrEventNotFound)
			})

			It("should return the error after a single attempt", func() {
				Expect(err).To(MatchError(ethereum.ErrEventNotFound))
				Expect(fakeChain.TokenIDFromTransactionCallCount()).To(Equal(1))
			})
		})
	})

	Describe("SendCertificateEmail", func() {
		var (
			certificate repository.Certificate
			err         error
		)

		BeforeEach(func() {
			certificate = repository.Certificate{
				ID:              "cert-1",
				RecipientName:   "Test Student",
				RecipientEmail:  "student@example.com",
				CertificateType: "Bachelor of Science",
			}
			fakeRepo.GetCertificateByIDReturns(certificate, nil)
			fakeNotifier.SendCertificateIssuedReturns(nil)
		})

		JustBeforeEach(func() {
			err = certichain.SendCertificateEmail(ctx, "cert-1")
		})

		When("the certificate exists", func() {
			It("sends the email and records the attempt", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeNotifier.SendCertificateIssuedCallCount()).To(Equal(1))

				Expect(fakeRepo.RecordEmailNotificationCallCount()).To(Equal(1))
				_, argNotification := fakeRepo.RecordEmailNotificationArgsForCall(0)
				Expect(argNotification.CertificateID).To(Equal("cert-1"))
				Expect(argNotification.Status).To(Equal("sent"))
			})
		})

		When("the certificate does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetCertificateByIDReturns(repository.Certificate{}, repository.ErrCertificateNotFound)
			})

			It("should return certificate not found error", func() {
				Expect(err).To(MatchError(core.ErrCertificateNotFound))
				Expect(fakeNotifier.SendCertificateIssuedCallCount()).To(Equal(0))
			})
		})

		When("the send fails", func() {
			BeforeEach(func() {
				fakeNotifier.SendCertificateIssuedReturns(fakeErr)
			})

			It("records the failure and returns the error", func() {
				Expect(err).To(MatchError(fakeErr))

				Expect(fakeRepo.RecordEmailNotificationCallCount()).To(Equal(1))
				_, argNotification := fakeRepo.RecordEmailNotificationArgsForCall(0)
				Expect(argNotification.Status).To(Equal("failed"))
			})
		})
	})
})
