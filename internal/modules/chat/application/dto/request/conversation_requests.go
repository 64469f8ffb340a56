package request

// Nullable targets use pointers: absent and explicit null both detach/unassign.

type MoveInboxRequest struct {
	InboxId *string `json:"inbox_id"`
}

type AssignRequest struct {
	AssigneeId *string `json:"assignee_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}
