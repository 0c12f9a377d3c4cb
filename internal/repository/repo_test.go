package repository_test

import (
	"context"
	"errors"

	"certichain/internal/db"
	"certichain/internal/db/fake"
	"certichain/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CertiRepo", func() {
	var (
		repo      *repository.CertiRepo
		fakeStore *fake.Store
		ctx       context.Context
		fakeErr   error
	)

	BeforeEach(func() {
		fakeStore = new(fake.Store)
		repo = repository.NewCertiRepo(fakeStore)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStore.MigrateTableReturns(nil)
			})

			It("should migrate all tables", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStore.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStore.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(5))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Institution{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Certificate{}))
				Expect(tables[3]).To(BeAssignableToTypeOf(&repository.VerificationLog{}))
				Expect(tables[4]).To(BeAssignableToTypeOf(&repository.EmailNotification{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStore.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("GetUserByWallet", func() {
		var (
			wallet string
			user   repository.User
			err    error
		)

		BeforeEach(func() {
			wallet = "0x1111111111111111111111111111111111111111"
		})

		JustBeforeEach(func() {
			user, err = repo.GetUserByWallet(ctx, wallet)
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStore.GetOneByStub = func(ctx context.Context, column string, value any, entity any, preloads ...string) error {
					dest := entity.(*repository.User)
					*dest = repository.User{WalletAddress: wallet, Role: repository.RoleRecipient}
					return nil
				}
			})

			It("should return the user with institution preloaded", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.WalletAddress).To(Equal(wallet))

				Expect(fakeStore.GetOneByCallCount()).To(Equal(1))
				_, col, val, _, preloads := fakeStore.GetOneByArgsForCall(0)
				Expect(col).To(Equal("wallet_address"))
				Expect(val).To(Equal(wallet))
				Expect(preloads).To(Equal([]string{"Institution"}))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeStore.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStore.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{
				ID:            uuid.NewString(),
				Email:         "student@example.com",
				WalletAddress: "0x2222222222222222222222222222222222222222",
				Role:          repository.RoleRecipient,
			}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStore.CreateReturns(nil)
			})

			It("should create the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.CreateCallCount()).To(Equal(1))
				_, record := fakeStore.CreateArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the unique index rejects the insert", func() {
			BeforeEach(func() {
				fakeStore.CreateReturns(db.ErrDuplicateKey)
			})

			It("should return duplicate record error", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateRecord))
			})
		})
	})

	Describe("CreateInstitutionUser", func() {
		var (
			user        repository.User
			institution repository.Institution
			err         error
		)

		BeforeEach(func() {
			user = repository.User{ID: uuid.NewString(), Role: repository.RoleInstitution}
			institution = repository.Institution{ID: uuid.NewString(), UserID: user.ID}
		})

		JustBeforeEach(func() {
			err = repo.CreateInstitutionUser(ctx, user, institution)
		})

		When("both inserts succeed", func() {
			BeforeEach(func() {
				fakeStore.AtomicStub = func(fn func(tx db.Store) error) error {
					return fn(fakeStore)
				}
				fakeStore.CreateReturns(nil)
			})

			It("creates user and institution in one transaction", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.AtomicCallCount()).To(Equal(1))
				Expect(fakeStore.CreateCallCount()).To(Equal(2))

				_, first := fakeStore.CreateArgsForCall(0)
				Expect(first).To(BeAssignableToTypeOf(&repository.User{}))
				_, second := fakeStore.CreateArgsForCall(1)
				Expect(second).To(BeAssignableToTypeOf(&repository.Institution{}))
			})
		})

		When("the institution insert fails", func() {
			BeforeEach(func() {
				fakeStore.AtomicStub = func(fn func(tx db.Store) error) error {
					return fn(fakeStore)
				}
				fakeStore.CreateReturnsOnCall(0, nil)
				fakeStore.CreateReturnsOnCall(1, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("a unique index rejects the transaction", func() {
			BeforeEach(func() {
				fakeStore.AtomicReturns(db.ErrDuplicateKey)
			})

			It("should return duplicate record error", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateRecord))
			})
		})
	})

	Describe("UpdateUserWallet", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.UpdateUserWallet(ctx, "student@example.com", "0x3333333333333333333333333333333333333333")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStore.UpdateColumnsReturns(1, nil)
			})

			It("updates only the wallet column", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStore.UpdateColumnsCallCount()).To(Equal(1))
				_, model, updates, query, args := fakeStore.UpdateColumnsArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(updates).To(Equal(map[string]any{
					"wallet_address": "0x3333333333333333333333333333333333333333",
				}))
				Expect(query).To(Equal("email = ?"))
				Expect(args).To(Equal([]any{"student@example.com"}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStore.UpdateColumnsReturns(0, nil)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("the wallet is taken by another user", func() {
			BeforeEach(func() {
				fakeStore.UpdateColumnsReturns(0, db.ErrDuplicateKey)
			})

			It("should return duplicate record error", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateRecord))
			})
		})
	})

	Describe("GetCertificateByTokenID", func() {
		var (
			certificate repository.Certificate
			err         error
		)

		JustBeforeEach(func() {
			certificate, err = repo.GetCertificateByTokenID(ctx, 42)
		})

		When("the certificate exists", func() {
			BeforeEach(func() {
				fakeStore.GetOneByStub = func(ctx context.Context, column string, value any, entity any, preloads ...string) error {
					dest := entity.(*repository.Certificate)
					*dest = repository.Certificate{TokenID: 42}
					return nil
				}
			})

			It("should return the certificate", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(certificate.TokenID).To(Equal(uint64(42)))

				_, col, val, _, preloads := fakeStore.GetOneByArgsForCall(0)
				Expect(col).To(Equal("token_id"))
				Expect(val).To(Equal(uint64(42)))
				Expect(preloads).To(Equal([]string{"Institution"}))
			})
		})

		When("the certificate does not exist", func() {
			BeforeEach(func() {
				fakeStore.GetOneByReturns(db.ErrNotFound)
			})

			It("should return certificate not found error", func() {
				Expect(err).To(MatchError(repository.ErrCertificateNotFound))
			})
		})
	})

	Describe("CertificatesByRecipientWallet", func() {
		var (
			certificates []repository.Certificate
			err          error
		)

		JustBeforeEach(func() {
			certificates, err = repo.CertificatesByRecipientWallet(ctx, "0x2222222222222222222222222222222222222222")
		})

		When("certificates exist", func() {
			BeforeEach(func() {
				fakeStore.FindWhereStub = func(ctx context.Context, entity any, order string, query string, args []any, preloads ...string) error {
					dest := entity.(*[]repository.Certificate)
					*dest = []repository.Certificate{{TokenID: 1}, {TokenID: 2}}
					return nil
				}
			})

			It("queries non-revoked certificates newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(certificates).To(HaveLen(2))

				_, _, order, query, args, _ := fakeStore.FindWhereArgsForCall(0)
				Expect(order).To(Equal("issue_date DESC"))
				Expect(query).To(Equal("recipient_wallet = ? AND is_revoked = ?"))
				Expect(args).To(Equal([]any{"0x2222222222222222222222222222222222222222", false}))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStore.FindWhereReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("PendingCertificatesByEmail", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.PendingCertificatesByEmail(ctx, "student@example.com")
		})

		When("the query succeeds", func() {
			It("filters on unbound wallets", func() {
				Expect(err).NotTo(HaveOccurred())

				_, _, _, query, args, _ := fakeStore.FindWhereArgsForCall(0)
				Expect(query).To(Equal("recipient_email = ? AND recipient_wallet IS NULL AND is_revoked = ?"))
				Expect(args).To(Equal([]any{"student@example.com", false}))
			})
		})
	})

	Describe("BindRecipientWallet", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.BindRecipientWallet(ctx, 42, "0x2222222222222222222222222222222222222222")
		})

		When("the certificate exists", func() {
			BeforeEach(func() {
				fakeStore.UpdateColumnsReturns(1, nil)
			})

			It("binds the wallet by token id", func() {
				Expect(err).NotTo(HaveOccurred())

				_, model, updates, query, args := fakeStore.UpdateColumnsArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Certificate{}))
				Expect(updates).To(HaveKey("recipient_wallet"))
				Expect(query).To(Equal("token_id = ?"))
				Expect(args).To(Equal([]any{uint64(42)}))
			})
		})

		When("no certificate matches", func() {
			BeforeEach(func() {
				fakeStore.UpdateColumnsReturns(0, nil)
			})

			It("should return certificate not found error", func() {
				Expect(err).To(MatchError(repository.ErrCertificateNotFound))
			})
		})
	})

	Describe("IncrementViewCount", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.IncrementViewCount(ctx, "cert-1")
		})

		When("the update succeeds", func() {
			It("increments the view counter in place", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStore.IncrementColumnCallCount()).To(Equal(1))
				_, model, column, query, args := fakeStore.IncrementColumnArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.Certificate{}))
				Expect(column).To(Equal("view_count"))
				Expect(query).To(Equal("id = ?"))
				Expect(args).To(Equal([]any{"cert-1"}))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeStore.IncrementColumnReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AppendVerificationLog", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.AppendVerificationLog(ctx, repository.VerificationLog{ID: "log-1", CertificateID: "cert-1"})
		})

		When("the insert succeeds", func() {
			It("appends the row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeStore.CreateCallCount()).To(Equal(1))
				_, record := fakeStore.CreateArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.VerificationLog{}))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStore.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
