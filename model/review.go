package model

type Review struct {
	DTO
	MovieId    uint   `gorm:"not null;uniqueIndex:idx_reviews_movie_user" json:"movieId"`
	UserId     uint   `gorm:"not null;uniqueIndex:idx_reviews_movie_user" json:"userId"`
	Rating     int    `gorm:"not null" json:"rating"`
	Text       string `gorm:"type:text" json:"text"`
	IsApproved bool   `gorm:"default:true" json:"isApproved"`

	Movie Movie `gorm:"foreignKey:MovieId;constraint:OnDelete:CASCADE" json:"movie"`
	User  User  `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"user"`
}

type CreateReviewInput struct {
	Rating int    `validate:"required,gte=1,lte=10" json:"rating"`
	Text   string `validate:"required" json:"text"`
}

type FilterReviewInput struct {
	Pagination
	Status string `query:"status" validate:"omitempty,oneof=all pending approved" json:"status"`
}
