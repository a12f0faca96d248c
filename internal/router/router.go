// ABOUTME: View router: named views, param bags, and the navigate state machine
// ABOUTME: Unknown or malformed targets always degrade to the feed

package router

// View names a renderable screen.
type View string

const (
	ViewFeed          View = "feed"
	ViewPostEditor    View = "post-editor"
	ViewProfileEditor View = "profile-editor"
	ViewCharacterList View = "character-list"
	ViewDMList        View = "dm-list"
	ViewDMChat        View = "dm-chat"
	ViewReplies       View = "replies"
	ViewReplyEditor   View = "reply-editor"
	ViewUniverse      View = "universe"
)

var knownViews = map[View]bool{
	ViewFeed:          true,
	ViewPostEditor:    true,
	ViewProfileEditor: true,
	ViewCharacterList: true,
	ViewDMList:        true,
	ViewDMChat:        true,
	ViewReplies:       true,
	ViewReplyEditor:   true,
	ViewUniverse:      true,
}

// Known reports whether v names one of the routable views.
func Known(v View) bool {
	return knownViews[v]
}

// Params is the untyped parameter bag carried by a route, e.g. {"username":
// "aria"} or {"conversationKey": "dm_aria", "otherUsername": "aria"}.
type Params map[string]any

// String returns the named parameter as a string, or "" when absent or not a
// string.
func (p Params) String(key string) string {
	if p == nil {
		return ""
	}
	s, _ := p[key].(string)
	return s
}

// Route is a view plus its parameters.
type Route struct {
	View   View
	Params Params
}

// RenderFunc repopulates a view's display from the current state and the
// route parameters. Render functions read state; they never persist.
type RenderFunc func(params Params) string

// Router holds the current route and the per-view render registry. Navigating
// sets the route and invokes that view's render function.
type Router struct {
	current Route
	renders map[View]RenderFunc
}

// New returns a router positioned on the feed.
func New() *Router {
	return &Router{
		current: Route{View: ViewFeed},
		renders: map[View]RenderFunc{},
	}
}

// Handle registers the render function for a view.
func (r *Router) Handle(v View, fn RenderFunc) {
	r.renders[v] = fn
}

// Navigate moves to the given view and returns its rendered content. No
// transition is ever rejected: an unknown view falls back to the feed.
func (r *Router) Navigate(v View, params Params) string {
	if !Known(v) {
		v, params = ViewFeed, nil
	}
	r.current = Route{View: v, Params: params}
	fn, ok := r.renders[v]
	if !ok {
		return ""
	}
	return fn(params)
}

// NavigateRoute is Navigate for an already-parsed route.
func (r *Router) NavigateRoute(route Route) string {
	return r.Navigate(route.View, route.Params)
}

// Current returns the active route.
func (r *Router) Current() Route {
	return r.current
}
