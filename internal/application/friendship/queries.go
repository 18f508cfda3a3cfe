package friendship

import (
	"time"

	"github.com/mittr/linkup/internal/domain/uuid"
)

// ListFriendsQuery asks for the user's current friends.
type ListFriendsQuery struct {
	UserID uuid.UUID
}

// ListReceivedRequestsQuery asks for requests addressed to the user.
type ListReceivedRequestsQuery struct {
	UserID uuid.UUID
}

// ListSentRequestsQuery asks for requests the user has issued.
type ListSentRequestsQuery struct {
	UserID uuid.UUID
}

// UserView is the minimal user projection exposed by relationship queries.
type UserView struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// ReceivedRequestView is a pending request as seen by its receiver.
type ReceivedRequestView struct {
	From   UserView
	SentAt time.Time
}

// SentRequestView is a pending request as seen by its sender.
type SentRequestView struct {
	To     UserView
	SentAt time.Time
}
