package inventory

// PartStatus is the derived stock tier of a part.
type PartStatus string

const (
	StatusAvailable PartStatus = "Available"
	StatusLow       PartStatus = "Low"
	StatusCritical  PartStatus = "Critical"
)

// Part is a tracked electromechanical part with its on-hand stock.
type Part struct {
	PartID       int64      `json:"part_id"`
	Name         string     `json:"name"`
	Type         string     `json:"type,omitempty"`
	Location     string     `json:"location,omitempty"`
	StockLevel   int        `json:"stock_level"`
	MinThreshold int        `json:"min_threshold"`
	MaxThreshold int        `json:"max_threshold"`
	SupplierID   *int64     `json:"supplier_id,omitempty"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Status       PartStatus `json:"status"`
}

// CreatePartRequest is the payload for registering a new part.
type CreatePartRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Location     string  `json:"location"`
	StockLevel   int     `json:"stock_level"`
	MinThreshold int     `json:"min_threshold"`
	MaxThreshold int     `json:"max_threshold"`
	SupplierID   *int64  `json:"supplier_id"`
	ImageURL     *string `json:"image_url"`
}

// AdjustStockRequest is the payload for a manual stock adjustment.
type AdjustStockRequest struct {
	PartID int64 `json:"partId"`
	Change int   `json:"change"`
}

// AdjustStockResult is the outcome of a manual stock adjustment. Notification
// is nil when the change did not cross a stock boundary.
type AdjustStockResult struct {
	UpdatedPart  *Part   `json:"updatedPart"`
	Notification *string `json:"notification"`
}
