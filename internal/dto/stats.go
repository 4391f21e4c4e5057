package dto

type RecentDonationDTO struct {
	Name   string  `json:"name" example:"Asha Rao"`
	Amount float64 `json:"amount" example:"500"`
	Date   string  `json:"date" example:"2026-01-15T10:05:00Z"`
}

type FundStatsResponseDTO struct {
	Success         bool                `json:"success" example:"true"`
	TotalRaised     float64             `json:"totalRaised" example:"1500"`
	TotalDonations  int64               `json:"totalDonations" example:"3"`
	AverageDonation float64             `json:"averageDonation" example:"500"`
	RecentDonations []RecentDonationDTO `json:"recentDonations"`
}
