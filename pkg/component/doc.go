// Package component provides a flat registry for custom-element style
// components.
//
// A component is anything that can render a virtual subtree; optionally it
// also observes attribute changes on its host element. There is no
// inheritance and no lifecycle beyond those two capabilities: a struct plus
// a registration call suffices.
//
//	type Carousel struct{ index int }
//
//	func (c *Carousel) Render() *vdom.VNode { ... }
//	func (c *Carousel) AttributeChanged(name, old, new string) { ... }
//
//	reg := component.NewRegistry()
//	reg.Define("x-carousel", func() component.Component { return &Carousel{} })
//
// A reconciler configured with the registry instantiates a component per
// mounted host element, renders the host's subtree from the instance, and
// forwards attribute deltas on update.
package component
