package extractor

import (
	"time"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/iso20022"
)

// BankA delivers camt.052 intraday reports and camt.053 historic statements.
type BankA struct {
	location *time.Location
}

func NewBankA(location *time.Location) *BankA {
	return &BankA{location: location}
}

func (e *BankA) Bank() domain.BankID { return domain.BankA }

func (e *BankA) Supports(namespace string) bool {
	return namespace == iso20022.NamespaceCamt052 || namespace == iso20022.NamespaceCamt053
}

func (e *BankA) Extract(rawBody string) (domain.BankStatement, error) {
	namespace, err := iso20022.RootNamespace(rawBody)
	if err != nil {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankA, Reason: "cannot determine message namespace", Err: err}
	}

	switch namespace {
	case iso20022.NamespaceCamt052:
		return e.extractIntraday(rawBody)
	case iso20022.NamespaceCamt053:
		return e.extractHistoric(rawBody)
	default:
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankA, Reason: "unsupported namespace " + namespace}
	}
}

func (e *BankA) extractIntraday(rawBody string) (domain.BankStatement, error) {
	var doc iso20022.DocumentCamt052
	if err := iso20022.Unmarshal(rawBody, &doc); err != nil {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankA, Reason: "malformed intraday report", Err: err}
	}
	if doc.Report == nil || len(doc.Report.Reports) != 1 {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankA, Reason: "intraday report must carry exactly one Rpt"}
	}
	return mapReport(domain.BankA, domain.StatementTypeIntraday, doc.Report.Reports[0], e.location)
}

func (e *BankA) extractHistoric(rawBody string) (domain.BankStatement, error) {
	var doc iso20022.DocumentCamt053
	if err := iso20022.Unmarshal(rawBody, &doc); err != nil {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankA, Reason: "malformed historic statement", Err: err}
	}
	if doc.Statement == nil || len(doc.Statement.Statements) != 1 {
		return domain.BankStatement{}, &domain.ParseError{Bank: domain.BankA, Reason: "historic statement must carry exactly one Stmt"}
	}
	return mapReport(domain.BankA, domain.StatementTypeHistoric, doc.Statement.Statements[0], e.location)
}
