package chain

import (
	"github.com/ib-77/monet/pkg/monet"
	"github.com/ib-77/monet/pkg/monet/result"
)

type Chain[T, E any] struct {
	res result.Result[T, E]
}

func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T, E any](v T) Chain[T, E] {
	return Start(result.Ok[T, E](v))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes functions that already return a Result.
func (c Chain[T, E]) Then(onOk func(T) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: result.Bind(c.res, onOk)}
}

// Map transforms the Ok value.
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	return Chain[T, E]{res: result.Map(c.res, onOk)}
}

// RepeatUntil runs onOk at least once and again while until holds.
func (c Chain[T, E]) RepeatUntil(onOk func(T) result.Result[T, E], until func(T) bool) Chain[T, E] {
	monet.RequireNonNil("chain.RepeatUntil", "until", until)

	if c.res.IsError() {
		return c
	}

	for {
		c = c.Then(onOk)

		v, ok := c.res.Get()
		if !ok || !until(v) {
			return c
		}
	}
}

// While runs onOk as long as the chain is Ok and while holds.
func (c Chain[T, E]) While(onOk func(T) result.Result[T, E], while func(T) bool) Chain[T, E] {
	monet.RequireNonNil("chain.While", "while", while)

	for {
		v, ok := c.res.Get()
		if !ok || !while(v) {
			return c
		}
		c = c.Then(onOk)
	}
}

// Or returns the first Ok among c and alternatives, or the first Error.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first Error among c and required, or the last chain.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsError() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects without changing the result. Nil handlers are skipped.
func (c Chain[T, E]) Ensure(onOk func(T), onError func(E)) Chain[T, E] {
	if v, ok := c.res.Get(); ok {
		if onOk != nil {
			onOk(v)
		}
		return c
	}

	if onError != nil {
		e, _ := c.res.GetError()
		onError(e)
	}
	return c
}

// Finally collapses the chain to a value.
func (c Chain[T, E]) Finally(onOk func(T) T, onError func(E) T) T {
	return result.Match(c.res, onOk, onError)
}
