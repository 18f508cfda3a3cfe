package friendship

import (
	"github.com/mittr/linkup/internal/domain/uuid"
)

// SendRequestCommand asks to create a pending request from one user to another.
type SendRequestCommand struct {
	FromID uuid.UUID
	ToID   uuid.UUID
}

// AcceptRequestCommand asks to turn a pending request into a friendship.
// AccepterID is the user acting on a request they received from RequesterID.
type AcceptRequestCommand struct {
	AccepterID  uuid.UUID
	RequesterID uuid.UUID
}

// DeclineRequestCommand asks to drop a pending request without creating a
// friendship.
type DeclineRequestCommand struct {
	DeclinerID  uuid.UUID
	RequesterID uuid.UUID
}

// RemoveFriendCommand asks to dissolve an existing friendship. Either side
// may initiate.
type RemoveFriendCommand struct {
	SelfID  uuid.UUID
	OtherID uuid.UUID
}
