// ABOUTME: Fragment codec for shareable navigation state
// ABOUTME: "#/view/<urlencoded json>" round-trips a route; malformed -> feed

package router

import (
	"encoding/json"
	"net/url"
	"strings"
)

// Parse decodes a navigation fragment like "#/dm-chat/%7B%22otherUsername%22
// %3A%22aria%22%7D" into a route. An empty, malformed, or unknown fragment
// degrades to the feed with no parameters.
func Parse(fragment string) Route {
	fragment = strings.TrimPrefix(fragment, "#")
	fragment = strings.TrimPrefix(fragment, "/")
	if fragment == "" {
		return Route{View: ViewFeed}
	}

	name, rest, _ := strings.Cut(fragment, "/")
	view := View(name)
	if !Known(view) {
		return Route{View: ViewFeed}
	}

	route := Route{View: view}
	if rest != "" {
		decoded, err := url.QueryUnescape(rest)
		if err != nil {
			return route
		}
		var params Params
		if err := json.Unmarshal([]byte(decoded), &params); err != nil {
			return route
		}
		route.Params = params
	}
	return route
}

// Fragment encodes the route back to its fragment form.
func (r Route) Fragment() string {
	view := r.View
	if !Known(view) {
		view = ViewFeed
	}
	fragment := "#/" + string(view)
	if len(r.Params) > 0 {
		raw, err := json.Marshal(r.Params)
		if err == nil {
			fragment += "/" + url.QueryEscape(string(raw))
		}
	}
	return fragment
}
