package usecase

import (
	"fmt"
	"strconv"

	"polipay/internal/domain/entities"
	"polipay/internal/usecase/interfaces"
)

func buildCustomerReceiptEmail(txn entities.QRTransaction, amount float64) interfaces.EmailMessage {
	name := txn.CustomerName
	if name == "" {
		name = "Customer"
	}
	body := fmt.Sprintf(`
		<html>
        <body>
            <h2>Payment received</h2>
            <p>Dear %s,</p>
            <p>We have received your payment of %s for policy %s. Thank you.</p>
            <br>
            <p>Best regards,<br>Collections Team</p>
        </body>
        </html>
		`, name, formatAmount(amount), txn.PolicyNumber)

	return interfaces.EmailMessage{
		Recipient: txn.CustomerEmail,
		Subject:   fmt.Sprintf("Payment received for policy %s", txn.PolicyNumber),
		HTMLBody:  body,
	}
}

func buildAgentSettlementEmail(txn entities.QRTransaction, amount float64) interfaces.EmailMessage {
	name := txn.AgentName
	if name == "" {
		name = "Agent"
	}
	body := fmt.Sprintf(`
		<html>
        <body>
            <h2>QR payment settled</h2>
            <p>Dear %s,</p>
            <p>The QR payment request for policy %s (%s) has been settled with a payment of %s.</p>
            <p>Customer: %s</p>
            <br>
            <p>Best regards,<br>Collections Team</p>
        </body>
        </html>
		`, name, txn.PolicyNumber, txn.LineOfBusiness, formatAmount(amount), txn.CustomerName)

	return interfaces.EmailMessage{
		Recipient: txn.AgentEmail,
		Subject:   fmt.Sprintf("QR payment settled for policy %s", txn.PolicyNumber),
		HTMLBody:  body,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
