package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"

	"certichain/internal/core"
	"certichain/internal/ethereum"
	"certichain/internal/http/handler"
	"certichain/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("CertiHandler", func() {
	var (
		ch            *handler.CertiHandler
		fakeService   *fake.CertificateService
		fakeValidator *fake.RequestValidator
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeService = new(fake.CertificateService)
		fakeValidator = new(fake.RequestValidator)

		fakeValidator.DecodeAndValidateJSONPayloadStub = func(rec *http.Request, jsonPayload any) error {
			return json.NewDecoder(rec.Body).Decode(jsonPayload)
		}

		w = httptest.NewRecorder()
		ch = handler.NewCertiHandler(zap.NewNop().Sugar(), fakeValidator, fakeService)
	})

	Describe("HandleRegisterInstitution", func() {
		var response map[string]any

		BeforeEach(func() {
			body := strings.NewReader(`{"email":"registrar@university.edu","institutionName":"Test University","institutionType":"University","walletAddress":"0x1111111111111111111111111111111111111111"}`)
			req = httptest.NewRequest("POST", "/api/auth/register/institution", body)
			req.Header.Set("Content-Type", "application/json")

			fakeService.RegisterInstitutionReturns(core.UserRecord{
				ID:   "user-1",
				Role: core.RoleInstitution,
			}, "signed.token", nil)
		})

		JustBeforeEach(func() {
			ch.HandleRegisterInstitution(w, req)
		})

		When("registration succeeds", func() {
			It("should return 201 with the user and token", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["success"]).To(BeTrue())
				Expect(response["token"]).To(Equal("signed.token"))

				Expect(fakeService.RegisterInstitutionCallCount()).To(Equal(1))
				_, argMsg := fakeService.RegisterInstitutionArgsForCall(0)
				Expect(argMsg.InstitutionName).To(Equal("Test University"))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeAndValidateJSONPayloadReturns(fakeErr)
			})

			It("should return 400 with validation details", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("Validation failed"))
				Expect(fakeService.RegisterInstitutionCallCount()).To(Equal(0))
			})
		})

		When("the wallet is already registered", func() {
			BeforeEach(func() {
				fakeService.RegisterInstitutionReturns(core.UserRecord{}, "", core.ErrInstitutionRegistered)
			})

			It("should return 400 with the conflict message", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrInstitutionRegistered.Error()))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.RegisterInstitutionReturns(core.UserRecord{}, "", fakeErr)
			})

			It("should return 500 with a generic message", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(ContainSubstring("Internal server error"))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetUser", func() {
		var response map[string]any

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/auth/user?walletAddress=0x1111111111111111111111111111111111111111", nil)
		})

		JustBeforeEach(func() {
			ch.HandleGetUser(w, req)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeService.UserByWalletReturns(core.UserRecord{ID: "user-1"}, nil)
			})

			It("should return the user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["success"]).To(BeTrue())
				Expect(response["user"]).NotTo(BeNil())
			})
		})

		When("no user is bound to the wallet", func() {
			BeforeEach(func() {
				fakeService.UserByWalletReturns(core.UserRecord{}, core.ErrUserNotFound)
			})

			It("should return 200 with a null user", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["success"]).To(BeTrue())
				Expect(response["user"]).To(BeNil())
			})
		})

		When("the wallet parameter is malformed", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/auth/user?walletAddress=nope", nil)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.UserByWalletCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleIssueCertificate", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"institutionWallet":"0x1111111111111111111111111111111111111111","recipientName":"Test Student","recipientEmail":"student@example.com","certificateType":"Bachelor of Science","issueDate":"2026-06-15T00:00:00Z","transactionHash":"0x1234567890123456789012345678901234567890123456789012345678901234"}`)
			req = httptest.NewRequest("POST", "/api/certificates/issue", body)

			fakeService.IssueReturns(core.CertificateRecord{ID: "cert-1", TokenID: 42}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleIssueCertificate(w, req)
		})

		When("issuance succeeds", func() {
			It("should return 201 with the certificate", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))
				Expect(w.Body.String()).To(ContainSubstring(`"tokenId":42`))

				Expect(fakeService.IssueCallCount()).To(Equal(1))
				_, argMsg := fakeService.IssueArgsForCall(0)
				Expect(argMsg.RecipientEmail).To(Equal("student@example.com"))
			})
		})

		When("the institution is unknown", func() {
			BeforeEach(func() {
				fakeService.IssueReturns(core.CertificateRecord{}, core.ErrInstitutionNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the transaction is already being reconciled", func() {
			BeforeEach(func() {
				fakeService.IssueReturns(core.CertificateRecord{}, core.ErrIssuanceInFlight)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(core.ErrIssuanceInFlight.Error()))
			})
		})

		When("the issuance event is missing", func() {
			BeforeEach(func() {
				fakeService.IssueReturns(core.CertificateRecord{}, ethereum.ErrEventNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleTokenIDByTransaction", func() {
		var response map[string]any

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/certificates/transaction/0xab12", nil)
			req.SetPathValue("txHash", "0xab12")
		})

		JustBeforeEach(func() {
			ch.HandleTokenIDByTransaction(w, req)
		})

		When("the event is found", func() {
			BeforeEach(func() {
				fakeService.TokenIDForTransactionReturns(42, nil)
			})

			It("should return the token id as a string", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["tokenId"]).To(Equal("42"))
			})
		})

		When("the event is not in the transaction", func() {
			BeforeEach(func() {
				fakeService.TokenIDForTransactionReturns(0, ethereum.ErrEventNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleVerifyCertificate", func() {
		var response map[string]any

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/certificates/verify/42", nil)
			req.SetPathValue("tokenId", "42")
			req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
			req.Header.Set("User-Agent", "test-agent")

			fakeService.VerifyByTokenReturns(core.VerificationResult{
				Certificate:  core.CertificateRecord{ID: "cert-1", TokenID: 42},
				Valid:        true,
				ChainChecked: true,
			}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleVerifyCertificate(w, req)
		})

		When("the certificate exists", func() {
			It("should return the verification result", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["success"]).To(BeTrue())
				Expect(response["isValid"]).To(BeTrue())
				Expect(response["chainChecked"]).To(BeTrue())

				Expect(fakeService.VerifyByTokenCallCount()).To(Equal(1))
				_, argTokenID, argOrigin := fakeService.VerifyByTokenArgsForCall(0)
				Expect(argTokenID).To(Equal(uint64(42)))
				Expect(argOrigin.IP).To(Equal("203.0.113.7"))
				Expect(argOrigin.UserAgent).To(Equal("test-agent"))
			})
		})

		When("the token id is not a number", func() {
			BeforeEach(func() {
				req.SetPathValue("tokenId", "abc")
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.VerifyByTokenCallCount()).To(Equal(0))
			})
		})

		When("the certificate does not exist", func() {
			BeforeEach(func() {
				fakeService.VerifyByTokenReturns(core.VerificationResult{}, core.ErrCertificateNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(ContainSubstring("Certificate not found"))
			})
		})
	})

	Describe("HandleInstitutionCertificates", func() {
		var response map[string]any

		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/certificates/institution?walletAddress=0x1111111111111111111111111111111111111111", nil)
		})

		JustBeforeEach(func() {
			ch.HandleInstitutionCertificates(w, req)
		})

		When("the institution has certificates", func() {
			BeforeEach(func() {
				fakeService.InstitutionCertificatesReturns(
					[]core.CertificateRecord{{ID: "cert-1"}},
					core.InstitutionStats{TotalIssued: 1, ThisMonth: 1, ActiveRate: 100},
					nil)
			})

			It("should return certificates and stats", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["certificates"]).To(HaveLen(1))

				stats := response["stats"].(map[string]any)
				Expect(stats["totalIssued"]).To(BeEquivalentTo(1))
				Expect(stats["activeRate"]).To(BeEquivalentTo(100))
			})
		})

		When("the wallet has no institution", func() {
			BeforeEach(func() {
				fakeService.InstitutionCertificatesReturns(
					[]core.CertificateRecord{},
					core.InstitutionStats{ActiveRate: 100},
					nil)
			})

			It("should return an empty dashboard", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"certificates":[]`))
				Expect(w.Body.String()).To(ContainSubstring(`"totalIssued":0`))
				Expect(w.Body.String()).To(ContainSubstring(`"activeRate":100`))
			})
		})
	})

	Describe("HandleMyCertificates", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/certificates/my-certificates?walletAddress=0x2222222222222222222222222222222222222222", nil)
			fakeService.MyCertificatesReturns([]core.CertificateRecord{{ID: "cert-1"}}, nil)
		})

		JustBeforeEach(func() {
			ch.HandleMyCertificates(w, req)
		})

		When("the recipient has certificates", func() {
			It("should return them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("cert-1"))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.MyCertificatesReturns(nil, fakeErr)
			})

			It("should return 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandlePendingCertificates", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/certificates/pending?email=student%40example.com", nil)
			fakeService.PendingCertificatesReturns([]core.CertificateRecord{}, nil)
		})

		JustBeforeEach(func() {
			ch.HandlePendingCertificates(w, req)
		})

		When("the email is valid", func() {
			It("should return the pending list", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring(`"pendingCertificates":[]`))

				Expect(fakeService.PendingCertificatesCallCount()).To(Equal(1))
				_, argEmail := fakeService.PendingCertificatesArgsForCall(0)
				Expect(argEmail).To(Equal("student@example.com"))
			})
		})

		When("the email is missing", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/api/certificates/pending", nil)
			})

			It("should return 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.PendingCertificatesCallCount()).To(Equal(0))
			})
		})
	})

	Describe("HandleClaimCertificate", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"tokenId":42,"walletAddress":"0x2222222222222222222222222222222222222222"}`)
			req = httptest.NewRequest("POST", "/api/certificates/claim", body)

			fakeService.ClaimCertificateReturns(nil)
		})

		JustBeforeEach(func() {
			ch.HandleClaimCertificate(w, req)
		})

		When("the claim succeeds", func() {
			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				Expect(fakeService.ClaimCertificateCallCount()).To(Equal(1))
				_, argTokenID, argWallet := fakeService.ClaimCertificateArgsForCall(0)
				Expect(argTokenID).To(Equal(uint64(42)))
				Expect(argWallet).To(Equal("0x2222222222222222222222222222222222222222"))
			})
		})

		When("the certificate does not exist", func() {
			BeforeEach(func() {
				fakeService.ClaimCertificateReturns(core.ErrCertificateNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleUploadToIPFS", func() {
		var response map[string]any

		When("a file is uploaded", func() {
			BeforeEach(func() {
				var buf bytes.Buffer
				writer := multipart.NewWriter(&buf)
				part, err := writer.CreateFormFile("file", "diploma.png")
				Expect(err).NotTo(HaveOccurred())
				_, err = part.Write([]byte("png-bytes"))
				Expect(err).NotTo(HaveOccurred())
				Expect(writer.Close()).To(Succeed())

				req = httptest.NewRequest("POST", "/api/ipfs/upload", &buf)
				req.Header.Set("Content-Type", writer.FormDataContentType())

				fakeService.PinFileReturns("QmFileHash", nil)
			})

			It("pins the file and returns the hash", func() {
				ch.HandleUploadToIPFS(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				decErr := json.NewDecoder(w.Body).Decode(&response)
				Expect(decErr).NotTo(HaveOccurred())
				Expect(response["hash"]).To(Equal("QmFileHash"))
				Expect(response["url"]).To(Equal("ipfs://QmFileHash"))

				Expect(fakeService.PinFileCallCount()).To(Equal(1))
				_, argName, argContent := fakeService.PinFileArgsForCall(0)
				Expect(argName).To(Equal("diploma.png"))
				Expect(argContent).To(Equal([]byte("png-bytes")))
			})
		})

		When("metadata is uploaded", func() {
			BeforeEach(func() {
				var buf bytes.Buffer
				writer := multipart.NewWriter(&buf)
				Expect(writer.WriteField("metadata", `{"name":"Certificate"}`)).To(Succeed())
				Expect(writer.Close()).To(Succeed())

				req = httptest.NewRequest("POST", "/api/ipfs/upload", &buf)
				req.Header.Set("Content-Type", writer.FormDataContentType())

				fakeService.PinJSONReturns("QmJSONHash", nil)
			})

			It("pins the JSON document", func() {
				ch.HandleUploadToIPFS(w, req)

				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("QmJSONHash"))
				Expect(fakeService.PinJSONCallCount()).To(Equal(1))
			})
		})

		When("neither file nor metadata is present", func() {
			BeforeEach(func() {
				var buf bytes.Buffer
				writer := multipart.NewWriter(&buf)
				Expect(writer.Close()).To(Succeed())

				req = httptest.NewRequest("POST", "/api/ipfs/upload", &buf)
				req.Header.Set("Content-Type", writer.FormDataContentType())
			})

			It("should return 400", func() {
				ch.HandleUploadToIPFS(w, req)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring("file or metadata is required"))
			})
		})
	})

	Describe("HandleSendEmail", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"certificateId":"cert-1"}`)
			req = httptest.NewRequest("POST", "/api/email/send", body)

			fakeService.SendCertificateEmailReturns(nil)
		})

		JustBeforeEach(func() {
			ch.HandleSendEmail(w, req)
		})

		When("the email is sent", func() {
			It("should return 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(ContainSubstring("Email sent successfully"))

				Expect(fakeService.SendCertificateEmailCallCount()).To(Equal(1))
				_, argID := fakeService.SendCertificateEmailArgsForCall(0)
				Expect(argID).To(Equal("cert-1"))
			})
		})

		When("the certificate does not exist", func() {
			BeforeEach(func() {
				fakeService.SendCertificateEmailReturns(core.ErrCertificateNotFound)
			})

			It("should return 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
