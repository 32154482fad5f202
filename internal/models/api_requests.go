package models

type TradeAnalysisRequest struct {
	FromTeamID   string   `json:"fromTeamId" validate:"required"`
	ToTeamID     string   `json:"toTeamId" validate:"required,nefield=FromTeamID"`
	OfferFromIDs []string `json:"offerFromIds"`
	OfferToIDs   []string `json:"offerToIds"`
}
