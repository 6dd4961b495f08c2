package extractor

import (
	"time"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/iso20022"
)

// BankB delivers camt.053 historic statements and camt.054 debit/credit
// notifications, which this core treats as payment-order confirmations.
type BankB struct {
	location *time.Location
}

func NewBankB(location *time.Location) *BankB {
	return &BankB{location: location}
}

func (e *BankB) Bank() domain.BankID { return domain.BankB }

func (e *BankB) Supports(namespace string) bool {
	return namespace == iso20022.NamespaceCamt053 || namespace == iso20022.NamespaceCamt054
}

func (e *BankB) Extract(rawBody string) (domain.BankStatement, error) {
	namespace, err := iso20022.RootNamespace(rawBody)
	if err != nil {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankB, Reason: "cannot determine message namespace", Err: err}
	}

	switch namespace {
	case iso20022.NamespaceCamt053:
		return e.extractHistoric(rawBody)
	case iso20022.NamespaceCamt054:
		return e.extractConfirmation(rawBody)
	default:
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankB, Reason: "unsupported namespace " + namespace}
	}
}

func (e *BankB) extractHistoric(rawBody string) (domain.BankStatement, error) {
	var doc iso20022.DocumentCamt053
	if err := iso20022.Unmarshal(rawBody, &doc); err != nil {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankB, Reason: "malformed historic statement", Err: err}
	}
	if doc.Statement == nil || len(doc.Statement.Statements) != 1 {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankB, Reason: "historic statement must carry exactly one Stmt"}
	}
	return mapReport(domain.BankB, domain.StatementTypeHistoric, doc.Statement.Statements[0], e.location)
}

func (e *BankB) extractConfirmation(rawBody string) (domain.BankStatement, error) {
	var doc iso20022.DocumentCamt054
	if err := iso20022.Unmarshal(rawBody, &doc); err != nil {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankB, Reason: "malformed payment confirmation", Err: err}
	}
	if doc.Notification == nil || len(doc.Notification.Notifications) != 1 {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankB, Reason: "payment confirmation must carry exactly one Ntfctn"}
	}
	return mapReport(domain.BankB, domain.StatementTypeConfirmation, doc.Notification.Notifications[0], e.location)
}
