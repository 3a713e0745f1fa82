package response

import "fieldbilling/internal/domain/tax"

type JurisdictionResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Rate string `json:"rate"`
}

func FromJurisdiction(j tax.Jurisdiction) JurisdictionResponse {
	return JurisdictionResponse{Code: j.Code, Name: j.Name, Rate: rate(j.Rate)}
}

func FromJurisdictions(js []tax.Jurisdiction) []JurisdictionResponse {
	out := make([]JurisdictionResponse, 0, len(js))
	for _, j := range js {
		out = append(out, FromJurisdiction(j))
	}
	return out
}
