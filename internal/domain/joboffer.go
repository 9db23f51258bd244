package domain

import "time"

// JobOffer вакансия, опубликованная компанией-экспонентом
type JobOffer struct {
	ID           int64
	CompanyID    int64
	Title        string
	Description  string
	Location     string
	ContractType string
	Published    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Company компания-экспонент
type Company struct {
	ID          int64
	Name        string
	Description string
	Website     string
	LogoURL     string
}
