package iso20022

import "encoding/xml"

// camt.060 account reporting request, used to ask a gateway for historic
// statements over a date range (backfill).

const NamespaceCamt060 = "urn:iso:std:iso:20022:tech:xsd:camt.060.001.03"

// ALLL requests every entry in the period.
const QueryTypeAll = "ALLL"

type DocumentCamt060 struct {
	XMLName xml.Name                `xml:"Document"`
	Xmlns   string                  `xml:"xmlns,attr"`
	Request AccountReportingRequest `xml:"AcctRptgReq"`
}

type AccountReportingRequest struct {
	GroupHeader GroupHeader        `xml:"GrpHdr"`
	Requests    []ReportingRequest `xml:"RptgReq"`
}

type ReportingRequest struct {
	ID              string          `xml:"Id"`
	RequestedMsgID  string          `xml:"ReqdMsgNmId"`
	Account         Account         `xml:"Acct"`
	AccountOwner    AccountOwner    `xml:"AcctOwnr"`
	ReportingPeriod ReportingPeriod `xml:"RptgPrd"`
}

type AccountOwner struct {
	Party struct{} `xml:"Pty"`
}

type ReportingPeriod struct {
	FromToDate DatePeriod `xml:"FrToDt"`
	FromToTime TimePeriod `xml:"FrToTm"`
	Type       string     `xml:"Tp"`
}

type DatePeriod struct {
	FromDate string `xml:"FrDt"`
	ToDate   string `xml:"ToDt"`
}

type TimePeriod struct {
	FromTime string `xml:"FrTm"`
	ToTime   string `xml:"ToTm"`
}
