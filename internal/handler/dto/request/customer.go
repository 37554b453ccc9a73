package request

type UpdateProfileRequest struct {
	FirstName string  `json:"first_name"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
}
