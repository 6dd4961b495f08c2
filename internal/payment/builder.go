// Package payment builds outbound pain.001 credit transfer initiations.
package payment

import (
	"strconv"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/iso20022"
	"github.com/pensionbase/bankcore/pkg/clock"
)

const (
	paymentMethodTransfer = "TRF"
	serviceLevelSEPA      = "SEPA"
	currencyEUR           = "EUR"
)

type Builder struct {
	clock clock.Clock
}

func NewBuilder(clk clock.Clock) *Builder {
	return &Builder{clock: clk}
}

// Build renders one payment instruction as pain.001 XML. The message id is
// the clock's current epoch second: it needs gateway-scoped uniqueness only,
// and reuse across distinct seconds is tolerated by the gateway. Everything
// else is deterministic given the same request.
func (b *Builder) Build(req domain.PaymentRequest, remitterBIC string) (string, error) {
	now := b.clock.Now()
	messageID := strconv.FormatInt(now.Unix(), 10)
	amount := iso20022.AmountString(req.Amount)

	doc := iso20022.DocumentPain001{
		Xmlns: iso20022.NamespacePain001,
		Initiation: iso20022.CustomerCreditTransferInit{
			GroupHeader: iso20022.PaymentGroupHeader{
				MessageID:        messageID,
				CreationDateTime: iso20022.FormatDateTime(now),
				NumberOfTxs:      "1",
				ControlSum:       amount,
				InitiatingParty: iso20022.Party{
					Name: iso20022.Truncate(req.RemitterName, iso20022.MaxNameLength),
				},
			},
			PaymentInfo: iso20022.PaymentInfo{
				ID:          messageID,
				Method:      paymentMethodTransfer,
				NumberOfTxs: "1",
				ControlSum:  amount,
				TypeInfo: iso20022.PaymentTypeInfo{
					ServiceLevel: iso20022.CodeChoice{Code: serviceLevelSEPA},
				},
				RequestedExecDate: iso20022.ExecutionDate{Date: iso20022.FormatDate(now)},
				Debtor: iso20022.Party{
					Name: iso20022.Truncate(req.RemitterName, iso20022.MaxNameLength),
					ID: &iso20022.PartyIDChoice{
						OrgID: &iso20022.PartyIdentifiers{
							Other: []iso20022.GenericID{{ID: req.RemitterID}},
						},
					},
				},
				DebtorAccount: iso20022.Account{
					ID: iso20022.AccountID{IBAN: req.RemitterIBAN},
				},
				DebtorAgent: iso20022.Agent{
					FinInstnID: iso20022.FinancialInstitutionID{BICFI: remitterBIC},
				},
				CreditTransfer: iso20022.CreditTransferTxInfo{
					PaymentID: iso20022.PaymentID{
						InstructionID: iso20022.Truncate(req.OurID, iso20022.MaxIDLength),
						EndToEndID:    iso20022.Truncate(req.EndToEndID, iso20022.MaxIDLength),
					},
					Amount: iso20022.InstructedAmount{
						Instructed: iso20022.CurrencyAmount{Value: amount, Currency: currencyEUR},
					},
					Creditor: iso20022.Party{
						Name: iso20022.Truncate(req.BeneficiaryName, iso20022.MaxNameLength),
					},
					CreditorAccount: iso20022.Account{
						ID: iso20022.AccountID{IBAN: req.BeneficiaryIBAN},
					},
					RemittanceInfo: iso20022.RemittanceInfo{
						Unstructured: []string{iso20022.Truncate(req.Description, iso20022.MaxRemittanceLength)},
					},
				},
			},
		},
	}

	return iso20022.Marshal(doc)
}
