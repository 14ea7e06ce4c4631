package core

import (
	"context"

	"github.com/ib-77/rail/pkg/rop"
)

type OptionKey string

const (
	ObserverOptionKey OptionKey = "observer_options"
	ProcessOptionKey  OptionKey = "process_options"
)

// Observer is told about failures produced by combinators. It must not
// block for long and cannot change the outcome of the pipeline.
type Observer interface {
	OnFailure(ctx context.Context, op string, err rop.Error)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, op string, err rop.Error)

func (f ObserverFunc) OnFailure(ctx context.Context, op string, err rop.Error) {
	f(ctx, op, err)
}

type ObserverOptions struct {
	Observer Observer
}

type ProcessOptions struct {
	NotifyForwarded bool
}

// WithObserver attaches obs to every combinator called with the returned context.
func WithObserver(ctx context.Context, obs Observer) context.Context {
	return context.WithValue(ctx, ObserverOptionKey, ObserverOptions{Observer: obs})
}

// WithProcessOptions makes Tee/TeeError report failures they only forward.
func WithProcessOptions(ctx context.Context, notifyForwarded bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{NotifyForwarded: notifyForwarded})
}

func GetObserver(ctx context.Context) Observer {
	if ctx == nil {
		return nil
	}
	options, ok := ctx.Value(ObserverOptionKey).(ObserverOptions)
	if ok {
		return options.Observer
	}
	return nil
}

func IsNotifyForwardedEnabled(ctx context.Context, defaultNotifyForwarded bool) bool {
	if ctx == nil {
		return defaultNotifyForwarded
	}
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.NotifyForwarded
	}
	return defaultNotifyForwarded
}

// NotifyFailure calls the context observer once, if there is one.
func NotifyFailure(ctx context.Context, op string, err rop.Error) {
	if rop.IsNil(err) {
		return
	}
	if obs := GetObserver(ctx); !rop.IsNil(obs) {
		obs.OnFailure(ctx, op, err)
	}
}

// NotifyForwarded reports a failure that an operator only passed along,
// when WithProcessOptions enabled it.
func NotifyForwarded(ctx context.Context, op string, err rop.Error) {
	if IsNotifyForwardedEnabled(ctx, false) {
		NotifyFailure(ctx, op, err)
	}
}
