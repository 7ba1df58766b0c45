package command

type LoginUserCommand struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginUserCommandResult struct {
	UserID uint   `json:"user_id"`
	Cookie string `json:"-"`
}
