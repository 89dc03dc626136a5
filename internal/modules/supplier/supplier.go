package supplier

// Supplier is an external vendor that parts can be sourced from.
type Supplier struct {
	SupplierID        int64   `json:"supplier_id"`
	Name              string  `json:"name"`
	ContactEmail      string  `json:"contact_email,omitempty"`
	ContactPhone      string  `json:"contact_phone,omitempty"`
	PerformanceRating float64 `json:"performance_rating"`
	LeadTimeDays      int     `json:"lead_time_days"`
}

// UpsertSupplierRequest is the payload for creating or updating a supplier.
type UpsertSupplierRequest struct {
	Name              string  `json:"name"`
	ContactEmail      string  `json:"contact_email"`
	ContactPhone      string  `json:"contact_phone"`
	PerformanceRating float64 `json:"performance_rating"`
	LeadTimeDays      int     `json:"lead_time_days"`
}
