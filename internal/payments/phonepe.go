package payments

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Two merchant-transaction-id namespaces share the gateway callback: order
// payments and wallet recharges. Callback handling routes on the prefix.
const (
	OrderTxnPrefix    = "order_"
	RechargeTxnPrefix = "RECHARGE-"
)

// TxnKind tells a callback which flow a transaction id belongs to.
type TxnKind int

const (
	TxnUnknown TxnKind = iota
	TxnOrder
	TxnRecharge
)

// ErrUnknownTxnID - the id carries neither known prefix.
var ErrUnknownTxnID = errors.New("unrecognized payment transaction id")

// NewOrderTxnID mints a transaction id for an order payment.
func NewOrderTxnID(orderID uint) string {
	return fmt.Sprintf("%s%d_%d", OrderTxnPrefix, orderID, time.Now().UnixMilli())
}

// NewRechargeTxnID mints a transaction id for a wallet recharge payment.
func NewRechargeTxnID(restaurantID uint) string {
	return fmt.Sprintf("%s%d-%d", RechargeTxnPrefix, restaurantID, time.Now().UnixMilli())
}

// RouteTxnID classifies a callback's merchant transaction id by prefix.
func RouteTxnID(txnID string) (TxnKind, error) {
	switch {
	case strings.HasPrefix(txnID, OrderTxnPrefix):
		return TxnOrder, nil
	case strings.HasPrefix(txnID, RechargeTxnPrefix):
		return TxnRecharge, nil
	default:
		return TxnUnknown, ErrUnknownTxnID
	}
}

// ParseRechargeTxnID recovers the restaurant id embedded in a recharge
// transaction id (RECHARGE-<restaurantID>-<millis>).
func ParseRechargeTxnID(txnID string) (uint, error) {
	if !strings.HasPrefix(txnID, RechargeTxnPrefix) {
		return 0, ErrUnknownTxnID
	}
	parts := strings.Split(txnID, "-")
	if len(parts) < 3 {
		return 0, fmt.Errorf("malformed recharge transaction id %q", txnID)
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed recharge transaction id %q", txnID)
	}
	return uint(id), nil
}

// Initiator produces gateway redirect URLs. This mirrors the mock gateway
// wiring: the real signing/checksum flow lives outside this service, which
// only hands the customer a URL and waits for the callback.
type Initiator struct {
	BaseURL string
}

// Initiate returns the URL the payer is redirected to for completing payment.
func (i Initiator) Initiate(txnID string, amount float64, payerPhone string) string {
	kind := "ORDER"
	if strings.HasPrefix(txnID, RechargeTxnPrefix) {
		kind = "RECHARGE"
	}
	return fmt.Sprintf("%s/phonepe/payment-status?type=%s&txnId=%s&amount=%v&phone=%s",
		i.BaseURL, kind, txnID, amount, payerPhone)
}
