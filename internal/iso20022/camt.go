package iso20022

import "encoding/xml"

// Bank-to-customer cash management messages. The element vocabulary is
// shared between the account report (camt.052), the statement (camt.053)
// and the debit/credit notification (camt.054); only the wrapper differs.

const (
	NamespaceCamt052 = "urn:iso:std:iso:20022:tech:xsd:camt.052.001.02"
	NamespaceCamt053 = "urn:iso:std:iso:20022:tech:xsd:camt.053.001.02"
	NamespaceCamt054 = "urn:iso:std:iso:20022:tech:xsd:camt.054.001.02"
)

// Balance type codes (CdOrPrtry/Cd).
const (
	BalanceCodeOpening = "OPBD"
	BalanceCodeClosing = "CLBD"
)

// Credit/debit indicator values.
const (
	CreditIndicator = "CRDT"
	DebitIndicator  = "DBIT"
)

type DocumentCamt052 struct {
	XMLName xml.Name                     `xml:"Document"`
	Xmlns   string                       `xml:"xmlns,attr"`
	Report  *BankToCustomerAccountReport `xml:"BkToCstmrAcctRpt"`
}

type DocumentCamt053 struct {
	XMLName   xml.Name                 `xml:"Document"`
	Xmlns     string                   `xml:"xmlns,attr"`
	Statement *BankToCustomerStatement `xml:"BkToCstmrStmt"`
}

type DocumentCamt054 struct {
	XMLName      xml.Name                    `xml:"Document"`
	Xmlns        string                      `xml:"xmlns,attr"`
	Notification *BankToCustomerNotification `xml:"BkToCstmrDbtCdtNtfctn"`
}

type BankToCustomerAccountReport struct {
	GroupHeader GroupHeader     `xml:"GrpHdr"`
	Reports     []AccountReport `xml:"Rpt"`
}

type BankToCustomerStatement struct {
	GroupHeader GroupHeader     `xml:"GrpHdr"`
	Statements  []AccountReport `xml:"Stmt"`
}

type BankToCustomerNotification struct {
	GroupHeader   GroupHeader     `xml:"GrpHdr"`
	Notifications []AccountReport `xml:"Ntfctn"`
}

type GroupHeader struct {
	MessageID        string `xml:"MsgId"`
	CreationDateTime string `xml:"CreDtTm"`
}

// AccountReport is the body shared by Rpt, Stmt and Ntfctn elements.
type AccountReport struct {
	ID               string          `xml:"Id"`
	ElectronicSeqNum string          `xml:"ElctrncSeqNb,omitempty"`
	CreationDateTime string          `xml:"CreDtTm,omitempty"`
	FromToDate       *DateTimePeriod `xml:"FrToDt,omitempty"`
	Account          Account         `xml:"Acct"`
	Balances         []Balance       `xml:"Bal,omitempty"`
	Entries          []Entry         `xml:"Ntry,omitempty"`
}

type DateTimePeriod struct {
	FromDateTime string `xml:"FrDtTm,omitempty"`
	ToDateTime   string `xml:"ToDtTm,omitempty"`
}

type Account struct {
	ID       AccountID `xml:"Id"`
	Currency string    `xml:"Ccy,omitempty"`
	Owner    *Party    `xml:"Ownr,omitempty"`
}

type AccountID struct {
	IBAN string `xml:"IBAN,omitempty"`
}

type Party struct {
	Name string         `xml:"Nm,omitempty"`
	ID   *PartyIDChoice `xml:"Id,omitempty"`
}

type PartyIDChoice struct {
	OrgID     *PartyIdentifiers `xml:"OrgId,omitempty"`
	PrivateID *PartyIdentifiers `xml:"PrvtId,omitempty"`
}

type PartyIdentifiers struct {
	Other []GenericID `xml:"Othr,omitempty"`
}

type GenericID struct {
	ID string `xml:"Id"`
}

type Balance struct {
	Type           BalanceTypeChoice `xml:"Tp"`
	Amount         CurrencyAmount    `xml:"Amt"`
	CreditDebitInd string            `xml:"CdtDbtInd"`
	Date           DateChoice        `xml:"Dt"`
}

type BalanceTypeChoice struct {
	CodeOrProprietary CodeChoice `xml:"CdOrPrtry"`
}

type CodeChoice struct {
	Code string `xml:"Cd"`
}

type CurrencyAmount struct {
	Value    string `xml:",chardata"`
	Currency string `xml:"Ccy,attr"`
}

type DateChoice struct {
	Date string `xml:"Dt"`
}

type Entry struct {
	Reference          string         `xml:"NtryRef,omitempty"`
	Amount             CurrencyAmount `xml:"Amt"`
	CreditDebitInd     string         `xml:"CdtDbtInd"`
	Status             string         `xml:"Sts,omitempty"`
	BookingDate        *DateChoice    `xml:"BookgDt,omitempty"`
	ValueDate          *DateChoice    `xml:"ValDt,omitempty"`
	AccountServicerRef string         `xml:"AcctSvcrRef,omitempty"`
	Details            []EntryDetails `xml:"NtryDtls,omitempty"`
}

type EntryDetails struct {
	Transactions []TransactionDetails `xml:"TxDtls,omitempty"`
}

type TransactionDetails struct {
	References     *TransactionReferences `xml:"Refs,omitempty"`
	RelatedParties *RelatedParties        `xml:"RltdPties,omitempty"`
	RemittanceInfo *RemittanceInfo        `xml:"RmtInf,omitempty"`
}

type TransactionReferences struct {
	AccountServicerRef string `xml:"AcctSvcrRef,omitempty"`
	InstructionID      string `xml:"InstrId,omitempty"`
	EndToEndID         string `xml:"EndToEndId,omitempty"`
}

type RelatedParties struct {
	Debtor          *Party   `xml:"Dbtr,omitempty"`
	DebtorAccount   *Account `xml:"DbtrAcct,omitempty"`
	Creditor        *Party   `xml:"Cdtr,omitempty"`
	CreditorAccount *Account `xml:"CdtrAcct,omitempty"`
}

type RemittanceInfo struct {
	Unstructured []string `xml:"Ustrd,omitempty"`
}
