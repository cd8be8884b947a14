package model

import "time"

type Genre struct {
	DTO
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}

type Movie struct {
	DTO
	Title          string    `gorm:"size:255;not null" json:"title"`
	Slug           string    `gorm:"size:255;uniqueIndex" json:"slug"`
	Description    string    `gorm:"type:text" json:"description"`
	Duration       int       `gorm:"not null" json:"duration"` // minutes
	ReleaseDate    time.Time `json:"releaseDate"`
	Director       string    `gorm:"size:255" json:"director"`
	Cast           string    `gorm:"type:text" json:"cast"`
	Rating         float64   `gorm:"default:0" json:"rating"`
	AgeRestriction string    `gorm:"size:5;default:'0+'" json:"ageRestriction"`
	PosterURL      string    `json:"posterUrl"`
	TrailerURL     string    `json:"trailerUrl"`
	IsActive       bool      `gorm:"default:true" json:"isActive"`

	Genres []Genre `gorm:"many2many:movie_genres" json:"genres"`
}

type CreateMovieInput struct {
	Title          string    `validate:"required" json:"title"`
	Description    string    `json:"description"`
	Duration       int       `validate:"required,gt=0" json:"duration"`
	ReleaseDate    time.Time `validate:"required" json:"releaseDate"`
	Director       string    `json:"director"`
	Cast           string    `json:"cast"`
	Rating         float64   `validate:"gte=0,lte=10" json:"rating"`
	AgeRestriction string    `json:"ageRestriction"`
	PosterURL      string    `validate:"omitempty,url" json:"posterUrl"`
	TrailerURL     string    `validate:"omitempty,url" json:"trailerUrl"`
	GenreIDs       []uint    `json:"genreIds"`
	IsActive       *bool     `json:"isActive"`
}

type UpdateMovieInput struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Duration       *int       `validate:"omitempty,gt=0" json:"duration"`
	ReleaseDate    *time.Time `json:"releaseDate"`
	Director       *string    `json:"director"`
	Cast           *string    `json:"cast"`
	Rating         *float64   `validate:"omitempty,gte=0,lte=10" json:"rating"`
	AgeRestriction *string    `json:"ageRestriction"`
	PosterURL      *string    `validate:"omitempty,url" json:"posterUrl"`
	TrailerURL     *string    `validate:"omitempty,url" json:"trailerUrl"`
	GenreIDs       []uint     `json:"genreIds"`
	IsActive       *bool      `json:"isActive"`
}

type FilterMovieInput struct {
	Pagination
	GenreId uint   `query:"genre" json:"genre"`
	Search  string `query:"search" json:"search"`
	Sort    string `query:"sort" json:"sort"` // created_at, title, rating
}
