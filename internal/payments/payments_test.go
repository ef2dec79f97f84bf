package payments

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUPIDeepLink(t *testing.T) {
	link := GenerateUPIDeepLink("shop@upi", "Biryani House", 490, "ANT-123")

	require.True(t, strings.HasPrefix(link, "upi://pay?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	params := parsed.Query()

	assert.Equal(t, "shop@upi", params.Get("pa"))
	assert.Equal(t, "Biryani House", params.Get("pn"))
	assert.Equal(t, "490", params.Get("am"))
	assert.Equal(t, "Order-ANT-123", params.Get("tn"))
	assert.Equal(t, "INR", params.Get("cu"))
}

func TestGenerateUPIQR(t *testing.T) {
	png, err := GenerateUPIQR("shop@upi", "Biryani House", 490, "ANT-123")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRouteTxnID(t *testing.T) {
	tests := []struct {
		name    string
		txnID   string
		want    TxnKind
		wantErr bool
	}{
		{"order payment", "order_12_1700000000000", TxnOrder, false},
		{"wallet recharge", "RECHARGE-7-1700000000000", TxnRecharge, false},
		{"unknown namespace", "refund_12", TxnUnknown, true},
		{"empty", "", TxnUnknown, true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			kind, err := RouteTxnID(testCase.txnID)
			assert.Equal(t, testCase.want, kind)
			if testCase.wantErr {
				assert.ErrorIs(t, err, ErrUnknownTxnID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTxnIDRoundTrip(t *testing.T) {
	orderTxn := NewOrderTxnID(12)
	kind, err := RouteTxnID(orderTxn)
	require.NoError(t, err)
	assert.Equal(t, TxnOrder, kind)

	rechargeTxn := NewRechargeTxnID(7)
	kind, err = RouteTxnID(rechargeTxn)
	require.NoError(t, err)
	assert.Equal(t, TxnRecharge, kind)

	restaurantID, err := ParseRechargeTxnID(rechargeTxn)
	require.NoError(t, err)
	assert.Equal(t, uint(7), restaurantID)
}

func TestParseRechargeTxnID_Malformed(t *testing.T) {
	_, err := ParseRechargeTxnID("order_12_1")
	assert.ErrorIs(t, err, ErrUnknownTxnID)

	_, err = ParseRechargeTxnID("RECHARGE-notanumber-1")
	assert.Error(t, err)

	_, err = ParseRechargeTxnID("RECHARGE-7")
	assert.Error(t, err)
}

func TestInitiator(t *testing.T) {
	initiator := Initiator{BaseURL: "https://food.example.com"}

	orderURL := initiator.Initiate("order_12_1", 490, "+919876543210")
	assert.Contains(t, orderURL, "https://food.example.com/phonepe/payment-status")
	assert.Contains(t, orderURL, "type=ORDER")
	assert.Contains(t, orderURL, "txnId=order_12_1")

	rechargeURL := initiator.Initiate("RECHARGE-7-1", 500, "+919876543210")
	assert.Contains(t, rechargeURL, "type=RECHARGE")
}
