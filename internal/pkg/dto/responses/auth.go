package responses

type Login struct {
	Token string `json:"token"`
	User  string `json:"user"`
}
