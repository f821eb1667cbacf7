package appraisals

import "time"

type CreateAppraisalRequest struct {
	ArtworkID       uint      `json:"artworkId" binding:"required"`
	ValuationAmount float64   `json:"valuationAmount" binding:"required"`
	CurrencyCode    string    `json:"currencyCode" binding:"required,len=3"`
	ValuationDate   time.Time `json:"valuationDate" binding:"required"`
	AppraiserName   string    `json:"appraiserName" binding:"max=120"`
	InsuranceValue  *float64  `json:"insuranceValue"`
	Notes           string    `json:"notes"`
}

type AppraisalDTO struct {
	AppraisalID     uint      `json:"appraisalId"`
	ArtworkID       uint      `json:"artworkId"`
	ArtworkTitle    string    `json:"artworkTitle"`
	ValuationAmount float64   `json:"valuationAmount"`
	CurrencyCode    string    `json:"currencyCode"`
	ValuationDate   time.Time `json:"valuationDate"`
	AppraiserName   string    `json:"appraiserName,omitempty"`
	InsuranceValue  *float64  `json:"insuranceValue,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}
