package vdom

import "github.com/gomorph/gomorph/pkg/dom"

// On creates an EventListener for an arbitrary event name. The handler may
// be a dom.EventHandler, a func(dom.Event), or a Listener; anything else is
// ignored and yields a listener with a nil handler. At most one options
// value is honored.
func On(name string, handler any, opts ...dom.ListenerOptions) EventListener {
	l, _ := asListener(handler)
	if len(opts) > 0 {
		l.Options = opts[0]
	}
	return EventListener{Event: name, Listener: l}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("click", handler, opts...)
}

// OnDblClick handles dblclick events.
func OnDblClick(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("dblclick", handler, opts...)
}

// OnMouseDown handles mousedown events.
func OnMouseDown(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("mousedown", handler, opts...)
}

// OnMouseUp handles mouseup events.
func OnMouseUp(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("mouseup", handler, opts...)
}

// OnMouseEnter handles mouseenter events.
func OnMouseEnter(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("mouseenter", handler, opts...)
}

// OnMouseLeave handles mouseleave events.
func OnMouseLeave(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("mouseleave", handler, opts...)
}

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("keydown", handler, opts...)
}

// OnKeyUp handles keyup events.
func OnKeyUp(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("keyup", handler, opts...)
}

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("input", handler, opts...)
}

// OnChange handles change events (fired when value is committed).
func OnChange(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("change", handler, opts...)
}

// OnSubmit handles form submit events.
func OnSubmit(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("submit", handler, opts...)
}

// OnFocus handles focus events.
func OnFocus(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("focus", handler, opts...)
}

// OnBlur handles blur events.
func OnBlur(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("blur", handler, opts...)
}

// Scroll events

// OnScroll handles scroll events. Scroll listeners are commonly passive:
//
//	OnScroll(handler, dom.ListenerOptions{Passive: true})
func OnScroll(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("scroll", handler, opts...)
}

// Touch events

// OnTouchStart handles touchstart events.
func OnTouchStart(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("touchstart", handler, opts...)
}

// OnTouchMove handles touchmove events.
func OnTouchMove(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("touchmove", handler, opts...)
}

// OnTouchEnd handles touchend events.
func OnTouchEnd(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("touchend", handler, opts...)
}

// Media events

// OnPlay handles play events.
func OnPlay(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("play", handler, opts...)
}

// OnPause handles pause events.
func OnPause(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("pause", handler, opts...)
}

// OnEnded handles ended events.
func OnEnded(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("ended", handler, opts...)
}

// Transition events

// OnTransitionEnd handles transitionend events.
func OnTransitionEnd(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("transitionend", handler, opts...)
}

// Details events

// OnToggle handles toggle events (for details elements).
func OnToggle(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("toggle", handler, opts...)
}

// Load and error events

// OnLoad handles load events.
func OnLoad(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("load", handler, opts...)
}

// OnError handles error events.
func OnError(handler any, opts ...dom.ListenerOptions) EventListener {
	return On("error", handler, opts...)
}
