package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"certichain/internal/core"
	"certichain/internal/ethereum"
	"certichain/internal/http/handler/middleware"
	"certichain/internal/http/payload"

	"go.uber.org/zap"
)

var (
	RegisterInstitution     = "POST /api/auth/register/institution"
	RegisterRecipient       = "POST /api/auth/register/recipient"
	Web3Auth                = "POST /api/auth/web3auth"
	GetUser                 = "GET /api/auth/user"
	IssueCertificate        = "POST /api/certificates/issue"
	TokenIDByTransaction    = "GET /api/certificates/transaction/{txHash}"
	VerifyCertificate       = "GET /api/certificates/verify/{tokenId}"
	MyCertificates          = "GET /api/certificates/my-certificates"
	InstitutionCertificates = "GET /api/certificates/institution"
	PendingCertificates     = "GET /api/certificates/pending"
	ClaimCertificate        = "POST /api/certificates/claim"
	UploadToIPFS            = "POST /api/ipfs/upload"
	SendEmail               = "POST /api/email/send"
)

const maxUploadBytes = 10 << 20

type CertiHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          CertificateService
}

func NewCertiHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service CertificateService) *CertiHandler {
	return &CertiHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          service,
	}
}

func (h *CertiHandler) HandleRegisterInstitution(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterInstitutionRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondValidationError(w, err, RegisterInstitution, requestId)
		return
	}

	user, token, err := h.service.RegisterInstitution(r.Context(), req.ToMessage())
	if err != nil {
		h.respondServiceError(w, err, RegisterInstitution, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"data":    user,
		"token":   token,
	}, http.StatusCreated, requestId)
}

func (h *CertiHandler) HandleRegisterRecipient(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRecipientRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondValidationError(w, err, RegisterRecipient, requestId)
		return
	}

	user, token, err := h.service.RegisterRecipient(r.Context(), req.ToMessage())
	if err != nil {
		h.respondServiceError(w, err, RegisterRecipient, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"data":    user,
		"token":   token,
	}, http.StatusCreated, requestId)
}

func (h *CertiHandler) HandleWeb3Auth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.Web3AuthRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondValidationError(w, err, Web3Auth, requestId)
		return
	}

	user, token, err := h.service.Web3Auth(r.Context(), req.ToMessage())
	if err != nil {
		h.respondServiceError(w, err, Web3Auth, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"data":    user,
		"token":   token,
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.WalletQuery{WalletAddress: r.URL.Query().Get("walletAddress")}
	if err := query.Validate(); err != nil {
		h.respondValidationError(w, err, GetUser, requestId)
		return
	}

	user, err := h.service.UserByWallet(r.Context(), query.WalletAddress)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.respond(w, map[string]any{
				"success": true,
				"user":    nil,
			}, http.StatusOK, requestId)
			return
		}
		h.respondServiceError(w, err, GetUser, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"user":    user,
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) HandleIssueCertificate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.IssueCertificateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondValidationError(w, err, IssueCertificate, requestId)
		return
	}

	msg, err := req.ToMessage()
	if err != nil {
		h.respondValidationError(w, err, IssueCertificate, requestId)
		return
	}

	h.logs.Infow("issuance request received",
		"tx_hash", msg.TransactionHash,
		"institution_wallet", msg.InstitutionWallet,
		"handler", IssueCertificate,
		"request_id", requestId)

	certificate, err := h.service.Issue(r.Context(), msg)
	if err != nil {
		h.respondServiceError(w, err, IssueCertificate, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"data":    certificate,
	}, http.StatusCreated, requestId)
}

func (h *CertiHandler) HandleTokenIDByTransaction(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	txHash := r.PathValue("txHash")
	if txHash == "" {
		h.respondError(w, "transaction hash parameter is required", nil, http.StatusBadRequest, requestId)
		return
	}

	tokenID, err := h.service.TokenIDForTransaction(r.Context(), txHash)
	if err != nil {
		h.respondServiceError(w, err, TokenIDByTransaction, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"tokenId": strconv.FormatUint(tokenID, 10),
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) HandleVerifyCertificate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	tokenID, err := strconv.ParseUint(r.PathValue("tokenId"), 10, 64)
	if err != nil {
		h.respondError(w, "token id must be a positive integer", nil, http.StatusBadRequest, requestId)
		return
	}

	origin := core.VerifierOrigin{
		IP:        clientIP(r),
		UserAgent: r.UserAgent(),
	}

	result, err := h.service.VerifyByToken(r.Context(), tokenID, origin)
	if err != nil {
		h.respondServiceError(w, err, VerifyCertificate, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success":      true,
		"data":         result.Certificate,
		"isValid":      result.Valid,
		"chainChecked": result.ChainChecked,
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) HandleMyCertificates(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.WalletQuery{WalletAddress: r.URL.Query().Get("walletAddress")}
	if err := query.Validate(); err != nil {
		h.respondValidationError(w, err, MyCertificates, requestId)
		return
	}

	certificates, err := h.service.MyCertificates(r.Context(), query.WalletAddress)
	if err != nil {
		h.respondServiceError(w, err, MyCertificates, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success":      true,
		"certificates": certificates,
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) HandleInstitutionCertificates(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.WalletQuery{WalletAddress: r.URL.Query().Get("walletAddress")}
	if err := query.Validate(); err != nil {
		h.respondValidationError(w, err, InstitutionCertificates, requestId)
		return
	}

	certificates, stats, err := h.service.InstitutionCertificates(r.Context(), query.WalletAddress)
	if err != nil {
		h.respondServiceError(w, err, InstitutionCertificates, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success":      true,
		"certificates": certificates,
		"stats":        stats,
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) HandlePendingCertificates(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	query := payload.EmailQuery{Email: r.URL.Query().Get("email")}
	if err := query.Validate(); err != nil {
		h.respondValidationError(w, err, PendingCertificates, requestId)
		return
	}

	certificates, err := h.service.PendingCertificates(r.Context(), query.Email)
	if err != nil {
		h.respondServiceError(w, err, PendingCertificates, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success":             true,
		"pendingCertificates": certificates,
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) HandleClaimCertificate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.ClaimCertificateRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondValidationError(w, err, ClaimCertificate, requestId)
		return
	}

	if err := h.service.ClaimCertificate(r.Context(), req.TokenID, req.WalletAddress); err != nil {
		h.respondServiceError(w, err, ClaimCertificate, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) HandleUploadToIPFS(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.respondError(w, "could not parse multipart form", nil, http.StatusBadRequest, requestId)
		return
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			h.respondError(w, internalErrMsg, nil, http.StatusInternalServerError, requestId)
			h.logs.Errorw("failed to read uploaded file", "error", err, "handler", UploadToIPFS, "request_id", requestId)
			return
		}

		hash, err := h.service.PinFile(r.Context(), header.Filename, content)
		if err != nil {
			h.respondServiceError(w, err, UploadToIPFS, requestId)
			return
		}

		h.respondPinned(w, hash, requestId)
		return
	}

	if metadata := r.FormValue("metadata"); metadata != "" {
		var document map[string]any
		if err := json.Unmarshal([]byte(metadata), &document); err != nil {
			h.respondError(w, "metadata must be a JSON object", nil, http.StatusBadRequest, requestId)
			return
		}

		hash, err := h.service.PinJSON(r.Context(), document)
		if err != nil {
			h.respondServiceError(w, err, UploadToIPFS, requestId)
			return
		}

		h.respondPinned(w, hash, requestId)
		return
	}

	h.respondError(w, "file or metadata is required", nil, http.StatusBadRequest, requestId)
}

func (h *CertiHandler) HandleSendEmail(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.SendEmailRequest
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req); err != nil {
		h.respondValidationError(w, err, SendEmail, requestId)
		return
	}

	if err := h.service.SendCertificateEmail(r.Context(), req.CertificateID); err != nil {
		h.respondServiceError(w, err, SendEmail, requestId)
		return
	}

	h.respond(w, map[string]any{
		"success": true,
		"message": "Email sent successfully",
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) respondPinned(w http.ResponseWriter, hash string, requestId string) {
	h.respond(w, map[string]any{
		"success": true,
		"hash":    hash,
		"url":     "ipfs://" + hash,
	}, http.StatusOK, requestId)
}

func (h *CertiHandler) respondValidationError(w http.ResponseWriter, err error, handlerName string, requestId string) {
	h.respondError(w, "Validation failed", err.Error(), http.StatusBadRequest, requestId)
	h.logs.Errorw("failed to decode and validate request payload",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

// respondServiceError maps domain errors onto the HTTP taxonomy:
// conflicts are 400 with the specific message, misses are 404,
// everything else is a logged 500 with a generic body.
func (h *CertiHandler) respondServiceError(w http.ResponseWriter, err error, handlerName string, requestId string) {
	switch {
	case isConflict(err):
		h.respondError(w, err.Error(), nil, http.StatusBadRequest, requestId)
	case isNotFound(err):
		h.respondError(w, notFoundMessage(err), nil, http.StatusNotFound, requestId)
	default:
		h.respondError(w, internalErrMsg, nil, http.StatusInternalServerError, requestId)
	}

	h.logs.Errorw("request failed",
		"error", err,
		"handler", handlerName,
		"request_id", requestId)
}

func (h *CertiHandler) respondError(w http.ResponseWriter, message string, details any, code int, requestId string) {
	h.respond(w, ErrorResponse{
		Error:   message,
		Details: details,
	}, code, requestId)
}

func (h *CertiHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func isConflict(err error) bool {
	conflicts := []error{
		core.ErrInstitutionRegistered,
		core.ErrRecipientRegistered,
		core.ErrWalletIsRecipient,
		core.ErrWalletIsInstitution,
		core.ErrEmailRegistered,
		core.ErrAlreadyRegistered,
		core.ErrIssuanceInFlight,
		core.ErrRecipientWalletRequired,
	}
	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			return true
		}
	}
	return false
}

func isNotFound(err error) bool {
	return errors.Is(err, core.ErrCertificateNotFound) ||
		errors.Is(err, core.ErrInstitutionNotFound) ||
		errors.Is(err, core.ErrUserNotFound) ||
		errors.Is(err, ethereum.ErrEventNotFound)
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, ethereum.ErrEventNotFound):
		return "Certificate event not found in transaction"
	case errors.Is(err, core.ErrInstitutionNotFound):
		return "Institution not found"
	case errors.Is(err, core.ErrUserNotFound):
		return "User not found"
	default:
		return "Certificate not found"
	}
}

func requestID(r *http.Request) string {
	if id, ok := r.Context().Value(middleware.RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// first hop is the client
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-Ip"); realIP != "" {
		return realIP
	}
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}
