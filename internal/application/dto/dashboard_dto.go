package dto

// DashboardSummaryResponse conteos agregados para el panel de administración.
// Quotes cuenta solo cotizaciones en estado pending.
type DashboardSummaryResponse struct {
	Users   int64 `json:"users"`
	Quotes  int64 `json:"quotes"`
	Designs int64 `json:"designs"`
	Catalog int64 `json:"catalog"`
}
