package user

type CreateUserRequest struct {
	Name       string
	Email      string
	Password   string
	Department string
	Role       string
}

type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role"`
	CreatedAt  string `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Department: u.Department,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
