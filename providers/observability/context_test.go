package observability

import (
	"context"
	"testing"
)

type nopObserver struct{}

func (nopObserver) Trace(context.Context, string, ...Attribute) {}
func (nopObserver) Debug(context.Context, string, ...Attribute) {}
func (nopObserver) Info(context.Context, string, ...Attribute)  {}
func (nopObserver) Warn(context.Context, string, ...Attribute)  {}
func (nopObserver) Error(context.Context, string, ...Attribute) {}

func TestObserverContextRoundtrip(t *testing.T) {
	observer := nopObserver{}

	ctx := ContextWithObserver(context.Background(), observer)
	if got := ObserverFromContext(ctx); got != observer {
		t.Errorf("ObserverFromContext() = %v, want the attached observer", got)
	}
}

func TestObserverFromContext_Absent(t *testing.T) {
	if got := ObserverFromContext(context.Background()); got != nil {
		t.Errorf("ObserverFromContext() = %v, want nil", got)
	}
}

func TestObserverFromContext_NilContext(t *testing.T) {
	if got := ObserverFromContext(nil); got != nil {
		t.Errorf("ObserverFromContext(nil) = %v, want nil", got)
	}
}

func TestContextWithObserver_NilContext(t *testing.T) {
	ctx := ContextWithObserver(nil, nopObserver{})
	if ObserverFromContext(ctx) == nil {
		t.Error("observer lost when attaching to a nil context")
	}
}
