package domain

// Action is an operation a principal may attempt on a quiz.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Authorize decides whether the principal may perform action on quiz.
// Authentication is checked before ownership, so anonymous callers never
// learn anything from the ownership result. Every per-quiz action is
// restricted to the creator; only listing is open to all authenticated
// principals, and listing never reaches this check.
func Authorize(principalID string, quiz *Quiz, action Action) error {
	if principalID == "" {
		return NewUnauthenticatedError()
	}
	switch action {
	case ActionRead, ActionUpdate, ActionDelete:
		if quiz.CreatorID != principalID {
			return NewForbiddenError(quiz.ID)
		}
		return nil
	default:
		return NewInternalError("unknown action: "+string(action), nil)
	}
}
