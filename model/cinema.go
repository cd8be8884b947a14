package model

type Cinema struct {
	DTO
	Name        string `gorm:"size:255;not null" json:"name"`
	CityId      uint   `gorm:"not null" json:"cityId"`
	Address     string `gorm:"size:500" json:"address"`
	Phone       string `gorm:"size:20" json:"phone"`
	Description string `gorm:"type:text" json:"description"`
	Facilities  string `gorm:"type:text" json:"facilities"`
	ImageURL    string `json:"imageUrl"`
	IsActive    bool   `gorm:"default:true" json:"isActive"`

	City  City   `gorm:"foreignKey:CityId;constraint:OnDelete:CASCADE" json:"city"`
	Halls []Hall `gorm:"foreignKey:CinemaId" json:"halls,omitempty"`
}

type CreateCinemaInput struct {
	Name        string `validate:"required" json:"name"`
	CityId      uint   `validate:"required,gt=0" json:"cityId"`
	Address     string `validate:"required" json:"address"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
	Facilities  string `json:"facilities"`
	ImageURL    string `validate:"omitempty,url" json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
}

type UpdateCinemaInput struct {
	Name        *string `json:"name"`
	CityId      *uint   `validate:"omitempty,gt=0" json:"cityId"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	Facilities  *string `json:"facilities"`
	ImageURL    *string `validate:"omitempty,url" json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}
