package apierrors

const (
	MsgInvalidID         = "invalidID"
	MsgInvalidPagination = "invalidPagination"

	MsgItemNotFound       = "itemNotFound"
	MsgInvalidItemPayload = "invalidItemPayload"
	MsgItemDeleted        = "itemDeleted"
	MsgFailListItems      = "failListItems"
	MsgFailCreateItem     = "failCreateItem"
	MsgFailUpdateItem     = "failUpdateItem"
	MsgFailDeleteItem     = "failDeleteItem"
	MsgFailCountItems     = "failCountItems"

	MsgTaskNotFound       = "taskNotFound"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskFilter  = "invalidTaskFilter"
	MsgInvalidPriority    = "invalidPriority"
	MsgInvalidDateRange   = "invalidDateRange"
	MsgTaskUserNotFound   = "taskUserNotFound"
	MsgTaskDeleted        = "taskDeleted"
	MsgFailListTasks      = "failListTasks"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"
	MsgFailCompleteTask   = "failCompleteTask"
	MsgFailCountTasks     = "failCountTasks"
	MsgFailTaskSummary    = "failTaskSummary"

	MsgUserNotFound       = "userNotFound"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgEmailTaken         = "emailTaken"
	MsgUsernameTaken      = "usernameTaken"
	MsgUserDeleted        = "userDeleted"
	MsgFailListUsers      = "failListUsers"
	MsgFailCreateUser     = "failCreateUser"
	MsgFailUpdateUser     = "failUpdateUser"
	MsgFailDeleteUser     = "failDeleteUser"
)
