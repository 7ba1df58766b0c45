package command

type RegisterUserCommand struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type RegisterUserCommandResult struct {
	UserID uint `json:"user_id"`
}
