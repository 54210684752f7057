package reconcile

// OpKind is the type of a primitive DOM mutation.
type OpKind uint8

const (
	OpCreateElement  OpKind = iota // New element materialized
	OpCreateText                   // New text node materialized
	OpSetAttr                      // Attribute set or updated
	OpRemoveAttr                   // Attribute removed
	OpAttachListener               // Event listener attached
	OpDetachListener               // Event listener detached
	OpInsertNode                   // Node inserted under a parent
	OpMoveNode                     // Existing child repositioned
	OpRemoveNode                   // Node removed from its parent

	opKindCount
)

// String returns the string representation of the OpKind.
func (k OpKind) String() string {
	switch k {
	case OpCreateElement:
		return "CreateElement"
	case OpCreateText:
		return "CreateText"
	case OpSetAttr:
		return "SetAttr"
	case OpRemoveAttr:
		return "RemoveAttr"
	case OpAttachListener:
		return "AttachListener"
	case OpDetachListener:
		return "DetachListener"
	case OpInsertNode:
		return "InsertNode"
	case OpMoveNode:
		return "MoveNode"
	case OpRemoveNode:
		return "RemoveNode"
	default:
		return "Unknown"
	}
}

// Op describes one primitive mutation performed against the live tree.
type Op struct {
	Kind  OpKind
	Tag   string // Element tag, or "#text" for text nodes
	Name  string // Attribute or event name, when applicable
	Value string // Attribute value or text content, when applicable
}

// Observer receives every primitive mutation as it happens. Observers must
// not mutate the tree being reconciled.
type Observer interface {
	ObserveOp(op Op)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(op Op)

// ObserveOp implements Observer.
func (f ObserverFunc) ObserveOp(op Op) { f(op) }

// Ops tallies mutations by kind for one Mount or Update call.
type Ops struct {
	counts [opKindCount]int
}

// Count returns the number of mutations of the given kind.
func (o Ops) Count(kind OpKind) int {
	if int(kind) >= len(o.counts) {
		return 0
	}
	return o.counts[kind]
}

// Total returns the total number of mutations.
func (o Ops) Total() int {
	total := 0
	for _, c := range o.counts {
		total += c
	}
	return total
}

func (o *Ops) add(kind OpKind) {
	o.counts[kind]++
}

// Recorder is an Observer that keeps every op. Used by tests and the bench
// command to assert exact mutation sequences.
type Recorder struct {
	ops []Op
}

// ObserveOp implements Observer.
func (r *Recorder) ObserveOp(op Op) {
	r.ops = append(r.ops, op)
}

// Ops returns the recorded ops in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Len returns the number of recorded ops.
func (r *Recorder) Len() int {
	return len(r.ops)
}

// CountOf returns how many recorded ops have the given kind.
func (r *Recorder) CountOf(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards all recorded ops.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
