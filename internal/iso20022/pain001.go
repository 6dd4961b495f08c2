package iso20022

import "encoding/xml"

// pain.001 customer credit transfer initiation. Element order mirrors the
// published schema; receiving banks hard-reject structural deviations at
// send time.

const NamespacePain001 = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.09"

type DocumentPain001 struct {
	XMLName    xml.Name                  `xml:"Document"`
	Xmlns      string                    `xml:"xmlns,attr"`
	Initiation CustomerCreditTransferInit `xml:"CstmrCdtTrfInitn"`
}

type CustomerCreditTransferInit struct {
	GroupHeader PaymentGroupHeader `xml:"GrpHdr"`
	PaymentInfo PaymentInfo        `xml:"PmtInf"`
}

type PaymentGroupHeader struct {
	MessageID        string `xml:"MsgId"`
	CreationDateTime string `xml:"CreDtTm"`
	NumberOfTxs      string `xml:"NbOfTxs"`
	ControlSum       string `xml:"CtrlSum"`
	InitiatingParty  Party  `xml:"InitgPty"`
}

type PaymentInfo struct {
	ID                string              `xml:"PmtInfId"`
	Method            string              `xml:"PmtMtd"`
	NumberOfTxs       string              `xml:"NbOfTxs"`
	ControlSum        string              `xml:"CtrlSum"`
	TypeInfo          PaymentTypeInfo     `xml:"PmtTpInf"`
	RequestedExecDate ExecutionDate       `xml:"ReqdExctnDt"`
	Debtor            Party               `xml:"Dbtr"`
	DebtorAccount     Account             `xml:"DbtrAcct"`
	DebtorAgent       Agent                `xml:"DbtrAgt"`
	CreditTransfer    CreditTransferTxInfo `xml:"CdtTrfTxInf"`
}

type PaymentTypeInfo struct {
	ServiceLevel CodeChoice `xml:"SvcLvl"`
}

type ExecutionDate struct {
	Date string `xml:"Dt"`
}

type Agent struct {
	FinInstnID FinancialInstitutionID `xml:"FinInstnId"`
}

type FinancialInstitutionID struct {
	BICFI string `xml:"BICFI"`
}

type CreditTransferTxInfo struct {
	PaymentID       PaymentID        `xml:"PmtId"`
	Amount          InstructedAmount `xml:"Amt"`
	Creditor        Party            `xml:"Cdtr"`
	CreditorAccount Account          `xml:"CdtrAcct"`
	RemittanceInfo  RemittanceInfo   `xml:"RmtInf"`
}

type PaymentID struct {
	InstructionID string `xml:"InstrId"`
	EndToEndID    string `xml:"EndToEndId"`
}

type InstructedAmount struct {
	Instructed CurrencyAmount `xml:"InstdAmt"`
}
