package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/iso20022"
	"github.com/pensionbase/bankcore/pkg/clock"
)

func testRequest() domain.PaymentRequest {
	return domain.PaymentRequest{
		RemitterName:    "Pension Fund AS",
		RemitterID:      "14118923",
		RemitterIBAN:    "EE157700771000000001",
		BeneficiaryName: "John Smith",
		BeneficiaryIBAN: "EE807700771001234567",
		Amount:          decimal.RequireFromString("111.03"),
		Description:     "fund withdrawal",
		OurID:           "d7d5f616-9b26-45f0-9fe5-8b6b4edbabb1",
		EndToEndID:      "d7d5f6169b2645f09fe58b6b4edbabb1",
	}
}

func TestBuild_MessageIDIsEpochSecond(t *testing.T) {
	clk := clock.Fixed(time.Date(2020, 1, 1, 14, 13, 15, 0, time.UTC))
	builder := NewBuilder(clk)

	out, err := builder.Build(testRequest(), "HABAEE2X")
	require.NoError(t, err)

	assert.Contains(t, out, "<MsgId>1577887995</MsgId>")
	assert.Contains(t, out, "<PmtInfId>1577887995</PmtInfId>")
}

func TestBuild_Document(t *testing.T) {
	clk := clock.Fixed(time.Date(2020, 1, 1, 14, 13, 15, 0, time.UTC))
	builder := NewBuilder(clk)

	out, err := builder.Build(testRequest(), "HABAEE2X")
	require.NoError(t, err)

	var doc iso20022.DocumentPain001
	require.NoError(t, iso20022.Unmarshal(out, &doc))

	init := doc.Initiation
	assert.Equal(t, "1577887995", init.GroupHeader.MessageID)
	assert.Equal(t, "1577887995", init.PaymentInfo.ID)
	assert.Equal(t, "1", init.GroupHeader.NumberOfTxs)
	assert.Equal(t, "111.03", init.GroupHeader.ControlSum)
	assert.Equal(t, "TRF", init.PaymentInfo.Method)
	assert.Equal(t, "SEPA", init.PaymentInfo.TypeInfo.ServiceLevel.Code)
	assert.Equal(t, "2020-01-01", init.PaymentInfo.RequestedExecDate.Date)
	assert.Equal(t, "HABAEE2X", init.PaymentInfo.DebtorAgent.FinInstnID.BICFI)
	assert.Equal(t, "EE157700771000000001", init.PaymentInfo.DebtorAccount.ID.IBAN)

	tx := init.PaymentInfo.CreditTransfer
	assert.Equal(t, "d7d5f6169b2645f09fe58b6b4edbabb1", tx.PaymentID.EndToEndID)
	assert.Equal(t, "111.03", tx.Amount.Instructed.Value)
	assert.Equal(t, "EUR", tx.Amount.Instructed.Currency)
	assert.Equal(t, "EE807700771001234567", tx.CreditorAccount.ID.IBAN)
	assert.Equal(t, []string{"fund withdrawal"}, tx.RemittanceInfo.Unstructured)
}

func TestBuild_BlockOrder(t *testing.T) {
	clk := clock.Fixed(time.Date(2020, 1, 1, 14, 13, 15, 0, time.UTC))
	builder := NewBuilder(clk)

	out, err := builder.Build(testRequest(), "HABAEE2X")
	require.NoError(t, err)

	grpHdr := strings.Index(out, "<GrpHdr>")
	pmtInf := strings.Index(out, "<PmtInf>")
	dbtr := strings.Index(out, "<Dbtr>")
	cdtTrf := strings.Index(out, "<CdtTrfTxInf>")

	require.True(t, grpHdr >= 0 && pmtInf >= 0 && dbtr >= 0 && cdtTrf >= 0)
	assert.Less(t, grpHdr, pmtInf)
	assert.Less(t, pmtInf, dbtr)
	assert.Less(t, dbtr, cdtTrf)
}

func TestBuild_TruncatesOverlongFields(t *testing.T) {
	clk := clock.Fixed(time.Date(2020, 1, 1, 14, 13, 15, 0, time.UTC))
	builder := NewBuilder(clk)

	req := testRequest()
	req.BeneficiaryName = strings.Repeat("n", 75)
	req.Description = strings.Repeat("d", 150)

	out, err := builder.Build(req, "HABAEE2X")
	require.NoError(t, err)

	var doc iso20022.DocumentPain001
	require.NoError(t, iso20022.Unmarshal(out, &doc))

	tx := doc.Initiation.PaymentInfo.CreditTransfer
	assert.Equal(t, strings.Repeat("n", 70), tx.Creditor.Name)
	assert.Equal(t, []string{strings.Repeat("d", 140)}, tx.RemittanceInfo.Unstructured)
}
