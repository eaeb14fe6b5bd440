package cli

// Navigator adapts the admin gate's redirect-on-denial behavior to a
// terminal shell: a redirect records the target route, and the loop decides
// what to do with it.
type Navigator struct {
	route string
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

func (n *Navigator) Redirect(route string) {
	n.route = route
}

// Take returns the last recorded route and clears it.
func (n *Navigator) Take() string {
	route := n.route
	n.route = ""
	return route
}
