package dto

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required" example:"admin"`
	Password string `json:"password" validate:"required" example:"password"`
}

type LoginResponseDTO struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Authenticated"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type AdminDonationDTO struct {
	ID                 string  `json:"id" example:"5b7c1f0e-8a3d-4f2b-9c1e-2d4a6b8c0e11"`
	Name               string  `json:"name" example:"Asha Rao"`
	Email              string  `json:"email" example:"asha@example.com"`
	Phone              string  `json:"phone" example:"+919800000000"`
	Amount             float64 `json:"amount" example:"500"`
	Currency           string  `json:"currency" example:"INR"`
	OrderID            string  `json:"orderId" example:"order_Abc123"`
	PaymentID          string  `json:"paymentId,omitempty" example:"pay_Xyz789"`
	PaymentStatus      string  `json:"paymentStatus" example:"completed"`
	PaymentDate        string  `json:"paymentDate,omitempty" example:"2026-01-15T10:05:00Z"`
	Receipt            string  `json:"receipt" example:"17684712000001234"`
	DonorDonationCount int     `json:"donorDonationCount" example:"2"`
	DonorTotalDonated  float64 `json:"donorTotalDonated" example:"1000"`
	CreatedAt          string  `json:"createdAt" example:"2026-01-15T10:00:00Z"`
}

type DonationListResponseDTO struct {
	Success bool               `json:"success" example:"true"`
	Items   []AdminDonationDTO `json:"items"`
	Total   int64              `json:"total" example:"42"`
	Page    int                `json:"page" example:"1"`
	Limit   int                `json:"limit" example:"20"`
}

type LedgerResponseDTO struct {
	Success      bool    `json:"success" example:"true"`
	TotalRaised  float64 `json:"totalRaised" example:"1500"`
	EntriesTotal float64 `json:"entriesTotal" example:"1500"`
	Entries      int64   `json:"entries" example:"3"`
	Consistent   bool    `json:"consistent" example:"true"`
}
