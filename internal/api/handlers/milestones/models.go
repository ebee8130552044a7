package milestones

// CheckResponse HTTP response model for the celebration check
type CheckResponse struct {
	ServiceType string `json:"serviceType"`
	Count       int64  `json:"count"`
	Celebrate   bool   `json:"celebrate"`
	Threshold   int64  `json:"threshold,omitempty"`
}

// MarkCelebratedRequest HTTP request model
type MarkCelebratedRequest struct {
	Threshold int64 `json:"threshold" validate:"required,gt=0"`
}

// CelebratedResponse HTTP response model for the celebrated list
type CelebratedResponse struct {
	ServiceType string  `json:"serviceType"`
	Thresholds  []int64 `json:"thresholds"`
}
