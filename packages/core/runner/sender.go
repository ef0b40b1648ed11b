package runner

//go:generate $MOCKGEN -source=sender.go -destination=mocks/sender_mock.go

import (
	"context"

	"github.com/abdul-hamid-achik/hitcall/packages/http"
)

// Sender performs one HTTP exchange. *http.Client satisfies it.
type Sender interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}
