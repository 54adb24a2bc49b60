package response_models

// RevenueStats matches the shape the revenue dashboard renders: revenue
// windows plus per-method amount and count breakdowns. Only paid payments
// count.
type RevenueStats struct {
	Revenue               RevenueWindows  `json:"revenue"`
	RevenueByMethod       RevenueByMethod `json:"revenue_by_method"`
	PaymentCountsByMethod MethodCounts    `json:"payment_counts_by_method"`
}

type RevenueWindows struct {
	Today   int64 `json:"today"`
	Week    int64 `json:"week"`
	Month   int64 `json:"month"`
	AllTime int64 `json:"all_time"`
}

type RevenueByMethod struct {
	Cash   int64 `json:"cash"`
	Stripe int64 `json:"stripe"`
	Mpesa  int64 `json:"mpesa"`
}

type MethodCounts struct {
	Cash   int64 `json:"cash"`
	Stripe int64 `json:"stripe"`
	Mpesa  int64 `json:"mpesa"`
}
