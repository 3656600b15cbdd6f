package entity

// CalculatorInput is the sizing request.
type CalculatorInput struct {
	MonthlyBill    float64 `json:"monthly_bill" validate:"gt=0"`
	PropertyType   string  `json:"property_type" validate:"oneof=home commercial"`
	City           string  `json:"city" validate:"required"`
	BackupRequired bool    `json:"backup_required"`
}

// CalculatorResult is the sizing and savings estimate.
type CalculatorResult struct {
	RecommendedSizeKW float64 `json:"recommended_size_kw"`
	EstimatedCost     float64 `json:"estimated_cost"`
	AnnualSavings     float64 `json:"annual_savings"`
	PaybackYears      float64 `json:"payback_years"`
	CO2ReductionKg    float64 `json:"co2_reduction_kg"`
}

// ChatMessage is sent to the assistant.
type ChatMessage struct {
	Message   string `json:"message" validate:"required"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatReply is the assistant's answer.
type ChatReply struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

// ContactForm is the public contact form.
type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Message is the generic {"message": "..."} body most mutation endpoints return.
type Message struct {
	Message string `json:"message"`
}
