package ads

import "time"

const (
	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryAutomotive  = "Automotive"
	CategoryRealEstate  = "RealEstate"
	CategoryJobs        = "Jobs"
	CategoryServices    = "Services"
	CategoryOther       = "Other"
)

var Categories = []string{
	CategoryElectronics,
	CategoryFashion,
	CategoryAutomotive,
	CategoryRealEstate,
	CategoryJobs,
	CategoryServices,
	CategoryOther,
}

type Ad struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewAdRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type UpdateAdRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
}
