package gate

// Action describes the kind of operation a role wants to perform.
type Action string

const (
	ActionView       Action = "view"
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionList       Action = "list"
	ActionManage     Action = "manage"
	ActionShare      Action = "share"
	ActionDeactivate Action = "deactivate"
	ActionExport     Action = "export"
)
