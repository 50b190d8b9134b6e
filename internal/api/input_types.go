package api

type userPayload struct {
	Username string `json:"username" form:"username"`
}
