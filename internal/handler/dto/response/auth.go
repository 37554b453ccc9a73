package response

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	Customer    *CustomerResponse `json:"customer"`
}
