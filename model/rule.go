package model

type Rule struct {
	DTO
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

type CreateRuleInput struct {
	Title    string `validate:"required" json:"title"`
	Content  string `validate:"required" json:"content"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive"`
}

type UpdateRuleInput struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Order    *int    `json:"order"`
	IsActive *bool   `json:"isActive"`
}
