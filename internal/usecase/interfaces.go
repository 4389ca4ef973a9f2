package usecase

import "context"

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	GenerateToken(ctx context.Context, uid string) (string, error)
	GenerateLongLivedToken(ctx context.Context, uid string) (string, error)
	TestConnection(ctx context.Context) error
}

// FeedPublisher pushes report lifecycle events to connected map clients.
// Implementations must not block the caller.
type FeedPublisher interface {
	Publish(event string, payload interface{})
}
