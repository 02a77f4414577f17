package http

import (
	"time"

	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/quote"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ServiceSuspendedResponse extends the error body with the resumption
// estimate when a zone is suspended by weather.
type ServiceSuspendedResponse struct {
	Code           int        `json:"code"`
	Message        string     `json:"message"`
	ResumeEstimate *time.Time `json:"resume_estimate,omitempty"`
}

// LocationRequest is a coordinate pair in request bodies.
type LocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// RouteOrderRequest is the body of POST /api/v1/quotes.
type RouteOrderRequest struct {
	OrderID  string             `json:"order_id"`
	Location LocationRequest    `json:"location"`
	Items    []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single requested product line.
type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AssignVendorRequest is the body of POST /api/v1/assignments.
type AssignVendorRequest struct {
	ZoneID     string `json:"zone_id"`
	CategoryID string `json:"category_id"`
	VendorID   string `json:"vendor_id"`
	Replace    bool   `json:"replace"`
}

// UpsertAllocationRuleRequest is the body of PUT /api/v1/allocation-rules.
type UpsertAllocationRuleRequest struct {
	ZoneID        string `json:"zone_id"`
	SubcategoryID string `json:"subcategory_id"`
	Strategy      string `json:"strategy"`
	Fallback      bool   `json:"fallback"`
}

// WeatherEventRequest is the body of POST /api/v1/weather-events, matching
// the feed delivered by the weather ingestion provider.
type WeatherEventRequest struct {
	ZoneID              string     `json:"zone_id"`
	Condition           string     `json:"condition"`
	DeliveryFeeOverride *float64   `json:"delivery_fee_override,omitempty"`
	ETAMultiplier       float64    `json:"eta_multiplier"`
	ServiceSuspended    bool       `json:"service_suspended"`
	ResumeEstimate      *time.Time `json:"resume_estimate,omitempty"`
	OccurredAt          time.Time  `json:"occurred_at"`
}

// RestockRequest is the body of POST /api/v1/inventory/restock.
type RestockRequest struct {
	SourceID  string `json:"source_id"`
	ProductID string `json:"product_id"`
	ZoneID    string `json:"zone_id"`
	Quantity  int    `json:"quantity"`
}

// ResolvedLocationResponse is the body of GET /api/v1/locations/resolve.
type ResolvedLocationResponse struct {
	RegionID        string  `json:"region_id"`
	RegionName      string  `json:"region_name"`
	ZoneID          string  `json:"zone_id"`
	ZoneName        string  `json:"zone_name"`
	BaseDeliveryFee float64 `json:"base_delivery_fee"`
	HasDarkStore    bool    `json:"has_dark_store"`
	AreaID          string  `json:"area_id"`
	AreaName        string  `json:"area_name"`
	SnapshotVersion uint64  `json:"snapshot_version"`
}

// QuoteResponse is the quote document returned by quote endpoints.
type QuoteResponse struct {
	ID                   string             `json:"id"`
	OrderID              string             `json:"order_id"`
	ZoneID               string             `json:"zone_id"`
	Status               string             `json:"status"`
	Partial              bool               `json:"partial"`
	GrandTotal           float64            `json:"grand_total"`
	ETAMinutes           int                `json:"eta_minutes"`
	CreatedAt            time.Time          `json:"created_at"`
	SubOrders            []SubOrderResponse `json:"sub_orders"`
	UnresolvedProductIDs []string           `json:"unresolved_product_ids"`
}

// SubOrderResponse is one source's portion of a quote.
type SubOrderResponse struct {
	SourceID    string      `json:"source_id"`
	SourceKind  string      `json:"source_kind"`
	Subtotal    float64     `json:"subtotal"`
	DeliveryFee float64     `json:"delivery_fee"`
	ETAMinutes  int         `json:"eta_minutes"`
	Lines       []QuoteLine `json:"lines"`
}

// QuoteLine is a priced product line within a sub-order.
type QuoteLine struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// WeatherRuleResponse is one entry of a zone's weather history, newest first.
type WeatherRuleResponse struct {
	Condition           string     `json:"condition"`
	DeliveryFeeOverride *float64   `json:"delivery_fee_override,omitempty"`
	ETAMultiplier       float64    `json:"eta_multiplier"`
	ServiceSuspended    bool       `json:"service_suspended"`
	ResumeEstimate      *time.Time `json:"resume_estimate,omitempty"`
	AppliedAt           time.Time  `json:"applied_at"`
}

func renderQuoteAggregate(q *quote.OrderQuote) QuoteResponse {
	subOrders := make([]SubOrderResponse, 0, len(q.SubOrders()))
	for _, subOrder := range q.SubOrders() {
		lines := make([]QuoteLine, 0, len(subOrder.Lines()))
		for _, line := range subOrder.Lines() {
			lines = append(lines, QuoteLine{
				ProductID: line.ProductID.String(),
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}
		subOrders = append(subOrders, SubOrderResponse{
			SourceID:    subOrder.SourceID().String(),
			SourceKind:  subOrder.SourceKind().String(),
			Subtotal:    subOrder.Subtotal(),
			DeliveryFee: subOrder.DeliveryFee(),
			ETAMinutes:  subOrder.ETAMinutes(),
			Lines:       lines,
		})
	}

	unresolved := make([]string, 0, len(q.UnresolvedProductIDs()))
	for _, productID := range q.UnresolvedProductIDs() {
		unresolved = append(unresolved, productID.String())
	}

	return QuoteResponse{
		ID:                   q.ID().String(),
		OrderID:              q.OrderID().String(),
		ZoneID:               q.ZoneID().String(),
		Status:               q.Status().String(),
		Partial:              q.IsPartial(),
		GrandTotal:           q.GrandTotal(),
		ETAMinutes:           q.ETAMinutes(),
		CreatedAt:            q.CreatedAt(),
		SubOrders:            subOrders,
		UnresolvedProductIDs: unresolved,
	}
}

func renderQuoteDocument(doc queries.GetQuoteQueryResponse) QuoteResponse {
	subOrders := make([]SubOrderResponse, 0, len(doc.SubOrders))
	for _, subOrder := range doc.SubOrders {
		lines := make([]QuoteLine, 0, len(subOrder.Lines))
		for _, line := range subOrder.Lines {
			lines = append(lines, QuoteLine{
				ProductID: line.ProductID.String(),
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}
		subOrders = append(subOrders, SubOrderResponse{
			SourceID:    subOrder.SourceID.String(),
			SourceKind:  subOrder.SourceKind,
			Subtotal:    subOrder.Subtotal,
			DeliveryFee: subOrder.DeliveryFee,
			ETAMinutes:  subOrder.ETAMinutes,
			Lines:       lines,
		})
	}

	unresolved := make([]string, 0, len(doc.UnresolvedProductIDs))
	for _, productID := range doc.UnresolvedProductIDs {
		unresolved = append(unresolved, productID.String())
	}

	return QuoteResponse{
		ID:                   doc.ID.String(),
		OrderID:              doc.OrderID.String(),
		ZoneID:               doc.ZoneID.String(),
		Status:               doc.Status,
		Partial:              doc.IsPartial(),
		GrandTotal:           doc.GrandTotal,
		ETAMinutes:           doc.ETAMinutes,
		CreatedAt:            doc.CreatedAt,
		SubOrders:            subOrders,
		UnresolvedProductIDs: unresolved,
	}
}
