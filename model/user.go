package model

import "time"

type User struct {
	DTO
	Username  string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email     string     `gorm:"size:255" json:"email"`
	Password  string     `gorm:"not null" json:"-"`
	Role      string     `gorm:"size:10;default:'user'" json:"role"`
	FirstName string     `gorm:"size:150" json:"firstName"`
	LastName  string     `gorm:"size:150" json:"lastName"`
	Phone     string     `gorm:"size:20" json:"phone"`
	BirthDate *time.Time `json:"birthDate"`
	CityId    *uint      `json:"cityId"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	City *City `gorm:"foreignKey:CityId;constraint:OnDelete:SET NULL" json:"city,omitempty"`
}

type RegisterInput struct {
	Username  string     `validate:"required,min=3" json:"username"`
	Email     string     `validate:"required,email" json:"email"`
	Password  string     `validate:"required,min=8" json:"password"`
	Phone     string     `json:"phone"`
	BirthDate *time.Time `json:"birthDate"`
}

type UpdateProfileInput struct {
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Email     *string    `validate:"omitempty,email" json:"email"`
	Phone     *string    `json:"phone"`
	BirthDate *time.Time `json:"birthDate"`
	CityId    *uint      `json:"cityId"`
}

type ChangePasswordInput struct {
	CurrentPassword string `validate:"required" json:"currentPassword"`
	NewPassword     string `validate:"required,min=8" json:"newPassword"`
	RepeatPassword  string `validate:"required,eqfield=NewPassword" json:"repeatPassword"`
}

type AdminCreateUserInput struct {
	Username string `validate:"required,min=3" json:"username"`
	Email    string `validate:"omitempty,email" json:"email"`
	Password string `validate:"required,min=8" json:"password"`
	Role     string `validate:"omitempty,oneof=user staff admin" json:"role"`
	Phone    string `json:"phone"`
}

type AdminUpdateUserInput struct {
	Email    *string `validate:"omitempty,email" json:"email"`
	Role     *string `validate:"omitempty,oneof=user staff admin" json:"role"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"isActive"`
}

type AdminResetPasswordInput struct {
	NewPassword string `validate:"required,min=8" json:"newPassword"`
}

type ForgotPasswordInput struct {
	Email string `validate:"required,email" json:"email"`
}

type ResetPasswordInput struct {
	Token       string `validate:"required" json:"token"`
	NewPassword string `validate:"required,min=8" json:"newPassword"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"size:64;uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`

	User User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

// IsValid reports whether the token can still be redeemed.
func (t *PasswordResetToken) IsValid(now time.Time) bool {
	return !t.Used && t.ExpiresAt.After(now)
}
