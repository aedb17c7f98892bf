package api

// ErrorResponse 全域錯誤響應模型
// swagger:model ErrorResponse
type ErrorResponse struct {
	// message 錯誤描述
	Message string `json:"message"`
}
