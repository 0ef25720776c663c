package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fkhayef/tabsplit/internal/split"
)

// ErrMissingPaymentHandle is returned when a shareable message is requested
// without a payment handle configured.
var ErrMissingPaymentHandle = errors.New("payment handle is required to build a shareable message")

const paymentLinkFormat = "https://venmo.com/%s?txn=charge&amount=%.2f"

// ToShareableMessage builds the multi-line message the user forwards to the
// group. The participant whose id equals selfID is skipped; everyone else gets
// a numbered line with their total, the items behind it, and a payment
// deep-link charging their share against paymentHandle.
//
// Item names are inserted verbatim; a name containing a newline will break the
// line structure. Callers own sanitization.
func ToShareableMessage(selfID string, results []*split.PersonResult, paymentHandle string) (string, error) {
	if paymentHandle == "" {
		return "", ErrMissingPaymentHandle
	}

	var b strings.Builder
	b.WriteString("Here's what everyone owes:\n")

	index := 0
	for _, r := range results {
		if r.ParticipantID == selfID {
			continue
		}
		index++

		itemNames := make([]string, 0, len(r.Items))
		for _, item := range r.Items {
			itemNames = append(itemNames, item.Name)
		}

		fmt.Fprintf(&b, "\n%d. %s owes $%.2f\n", index, r.Name, r.FinalTotal)
		fmt.Fprintf(&b, "   Items: %s\n", strings.Join(itemNames, ", "))
		fmt.Fprintf(&b, "   Pay here: "+paymentLinkFormat+"\n", paymentHandle, r.FinalTotal)
	}

	b.WriteString("\nTap your link to settle up!")
	return b.String(), nil
}
