package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// SetCompanyRequest represents the set company name request body.
type SetCompanyRequest struct {
	CompanyName string `json:"company_name" example:"千寻智能(杭州)科技有限公司"`
}

// SetAddressRequest represents the set address request body.
type SetAddressRequest struct {
	Address string `json:"address" example:"浙江省杭州市萧山区宁围街道利一路188号"`
}

// --- Response Types ---

// Response wraps a successful response.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
