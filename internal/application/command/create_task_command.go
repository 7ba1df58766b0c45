package command

type CreateTaskCommand struct {
	OwnerID uint   `json:"-"`
	Title   string `json:"title" form:"title"`
}

type CreateTaskCommandResult struct {
	TaskID uint `json:"task_id"`
}
