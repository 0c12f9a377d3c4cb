package ethereum

import "errors"

var ErrEventNotFound error = errors.New("certificate event not found in transaction")
var ErrReceiptNotFound error = errors.New("transaction receipt not available")
var ErrTransactionReverted error = errors.New("transaction reverted")
var ErrNoIssuerKey error = errors.New("issuer private key not configured")
var ErrInvalidAddress error = errors.New("malformed ethereum address")
