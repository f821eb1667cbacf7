package users

type ProfileDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Username  string `json:"username"`
	UserRole  string `json:"userRole"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" binding:"max=80"`
	LastName  string `json:"lastName" binding:"max=80"`
	Email     string `json:"email"`
	Phone     string `json:"phone" binding:"max=40"`
}
