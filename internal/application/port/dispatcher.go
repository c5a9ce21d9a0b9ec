package port

//go:generate mockgen -source=dispatcher.go -destination=gomocks/mock_dispatcher.go -package=gomocks

// UIDispatcher hands work over to the UI-affinity thread.
// Post must be safe to call from any goroutine and must not block.
type UIDispatcher interface {
	Post(fn func())
}
