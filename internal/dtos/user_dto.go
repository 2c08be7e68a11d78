package dtos

type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required,min=3,max=30"`
	Email    string `json:"email" form:"email" binding:"required,max=191,email"`
	Phone    Text   `json:"phone" form:"phone" binding:"required,max=32"`
	Address  string `json:"address" form:"address"`
	Password string `json:"password" form:"password" binding:"required,min=8,max=32"`
	Role     string `json:"role" form:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,max=191,email"`
	Password string `json:"password" form:"password" binding:"required"`
	Role     string `json:"role" form:"role" binding:"required"`
}
