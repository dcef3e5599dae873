package models

import "github.com/shopspring/decimal"

// Undetected is the sentinel used for document-level fields that could not
// be recovered from the report text.
const Undetected = "undetected"

// CreditRecord is the normalized form of one Kredit/Pembiayaan facility
// block from a SLIK OJK report. Fields that the block does not mention keep
// their zero value; amounts are decimal.Zero, counters 0, text fields "".
type CreditRecord struct {
	ReporterCode           string          `json:"reporterCode"`
	Bank                   string          `json:"bank"`
	Branch                 string          `json:"branch,omitempty"`
	AccountNumber          string          `json:"accountNumber"`
	QualityCode            string          `json:"qualityCode"`
	QualityLabel           string          `json:"qualityLabel"`
	OutstandingBalance     decimal.Decimal `json:"outstandingBalance"`
	UsageType              string          `json:"usageType"`
	FacilityType           string          `json:"facilityType"`
	OriginalContractNumber string          `json:"originalContractNumber"`
	InterestRate           decimal.Decimal `json:"interestRate"`
	InterestRateType       string          `json:"interestRateType"`
	PastDueDays            int             `json:"pastDueDays"`
	OriginalContractDate   string          `json:"originalContractDate"`
	MaturityDate           string          `json:"maturityDate"`
	LastUpdateDate         string          `json:"lastUpdateDate"`
	EconomicSector         string          `json:"economicSector"`
	FacilityCondition      string          `json:"facilityCondition"`
	OriginalCeiling        decimal.Decimal `json:"originalCeiling"`
	CurrentCeiling         decimal.Decimal `json:"currentCeiling"`
	PastDuePrincipal       decimal.Decimal `json:"pastDuePrincipal"`
	RestructuringCount     int             `json:"restructuringCount"`
	PenaltyAmount          decimal.Decimal `json:"penaltyAmount"`
}

// Report holds everything recovered from one SLIK document.
type Report struct {
	DebtorName   string         `json:"debtorName"`
	ReportNumber string         `json:"reportNumber"`
	Records      []CreditRecord `json:"records"`
}
