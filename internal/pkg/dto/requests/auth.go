package requests

type Login struct {
	Username string `json:"username" validate:"required"`
}
