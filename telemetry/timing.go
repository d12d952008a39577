package telemetry

import (
	"io"
	"sync"
	"time"

	"github.com/robinvdvleuten/jsfmt/output"
)

// TimingCollector builds a tree of timed operations. The first Start call
// becomes the root; later Start and Child calls nest under whichever timer
// is currently open.
type TimingCollector struct {
	mu      sync.Mutex
	root    *timerNode
	current *timerNode
}

type timerNode struct {
	name     string
	start    time.Time
	end      time.Time
	parent   *timerNode
	children []*timerNode
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins timing an operation under the currently open timer.
func (c *TimingCollector) Start(name string) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return &timingTimer{collector: c, node: c.open(name, c.current)}
}

// open creates a node under parent and makes it the current timer.
// A nil parent makes the node the root. Callers must hold mu.
func (c *TimingCollector) open(name string, parent *timerNode) *timerNode {
	node := &timerNode{name: name, start: time.Now(), parent: parent}
	if parent == nil {
		c.root = node
	} else {
		parent.children = append(parent.children, node)
	}
	c.current = node
	return node
}

// Report renders the timing tree.
func (c *TimingCollector) Report(w io.Writer, styles *output.Styles) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.root == nil {
		return
	}
	formatTimingTree(w, c.root, styles)
}

type timingTimer struct {
	collector *TimingCollector
	node      *timerNode
}

func (t *timingTimer) End() {
	c := t.collector
	c.mu.Lock()
	defer c.mu.Unlock()

	t.node.end = time.Now()
	if t.node.parent != nil {
		c.current = t.node.parent
	}
}

func (t *timingTimer) Child(name string) Timer {
	c := t.collector
	c.mu.Lock()
	defer c.mu.Unlock()
	return &timingTimer{collector: c, node: c.open(name, t.node)}
}
