package command

// CallerID always comes from the resolved session, never from submitted
// form data.
type UpdateTaskCommand struct {
	TaskID   uint   `json:"-"`
	CallerID uint   `json:"-"`
	Title    string `json:"title" form:"title"`
}
