package payments

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// GenerateUPIDeepLink builds a upi://pay URI the customer's UPI app can open
// directly. The link is constructed, not validated - the payee app owns
// validation.
func GenerateUPIDeepLink(upiID, payeeName string, amount float64, orderShortID string) string {
	params := url.Values{}
	params.Set("pa", upiID)
	params.Set("pn", payeeName)
	params.Set("am", fmt.Sprintf("%v", amount))
	params.Set("tn", "Order-"+orderShortID)
	params.Set("cu", "INR")
	return "upi://pay?" + params.Encode()
}

// GenerateUPIQR renders the deep link as a PNG for COD_UPI_SCAN orders, where
// the rider shows the code at the door.
func GenerateUPIQR(upiID, payeeName string, amount float64, orderShortID string) ([]byte, error) {
	link := GenerateUPIDeepLink(upiID, payeeName, amount, orderShortID)
	return qrcode.Encode(link, qrcode.Medium, 256)
}
