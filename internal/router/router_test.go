// ABOUTME: Tests for the view router and fragment codec
// ABOUTME: Verifies navigation dispatch and feed fallback on bad input

package router

import "testing"

func TestNavigateInvokesRenderFunc(t *testing.T) {
	r := New()
	var got Params
	r.Handle(ViewDMChat, func(params Params) string {
		got = params
		return "chat"
	})

	out := r.Navigate(ViewDMChat, Params{"otherUsername": "aria"})
	if out != "chat" {
		t.Errorf("expected rendered output, got %q", out)
	}
	if got.String("otherUsername") != "aria" {
		t.Errorf("render func did not receive params: %v", got)
	}
	if r.Current().View != ViewDMChat {
		t.Errorf("expected current view dm-chat, got %s", r.Current().View)
	}
}

func TestNavigateUnknownFallsBackToFeed(t *testing.T) {
	r := New()
	feedCalls := 0
	r.Handle(ViewFeed, func(Params) string {
		feedCalls++
		return "feed"
	})

	out := r.Navigate(View("settings"), Params{"x": 1})
	if out != "feed" {
		t.Errorf("expected feed render, got %q", out)
	}
	if feedCalls != 1 {
		t.Errorf("expected feed rendered once, got %d", feedCalls)
	}
	if r.Current().View != ViewFeed {
		t.Errorf("expected current view feed, got %s", r.Current().View)
	}
	if r.Current().Params != nil {
		t.Error("fallback must drop the unknown view's params")
	}
}

func TestNavigateUnregisteredView(t *testing.T) {
	r := New()
	// No render func registered: navigation still succeeds.
	if out := r.Navigate(ViewUniverse, nil); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
	if r.Current().View != ViewUniverse {
		t.Errorf("expected current view universe, got %s", r.Current().View)
	}
}

func TestParseEmptyFragment(t *testing.T) {
	for _, fragment := range []string{"", "#", "#/", "/"} {
		route := Parse(fragment)
		if route.View != ViewFeed {
			t.Errorf("Parse(%q) view = %s, want feed", fragment, route.View)
		}
	}
}

func TestParseViewOnly(t *testing.T) {
	route := Parse("#/character-list")
	if route.View != ViewCharacterList {
		t.Errorf("expected character-list, got %s", route.View)
	}
	if route.Params != nil {
		t.Errorf("expected no params, got %v", route.Params)
	}
}

func TestParseUnknownView(t *testing.T) {
	route := Parse("#/admin/%7B%7D")
	if route.View != ViewFeed {
		t.Errorf("expected feed fallback, got %s", route.View)
	}
}

func TestParseMalformedParams(t *testing.T) {
	route := Parse("#/replies/not-json")
	if route.View != ViewReplies {
		t.Errorf("expected replies view, got %s", route.View)
	}
	if route.Params != nil {
		t.Errorf("expected malformed params dropped, got %v", route.Params)
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	in := Route{View: ViewDMChat, Params: Params{"conversationKey": "dm_aria", "otherUsername": "aria"}}
	out := Parse(in.Fragment())
	if out.View != ViewDMChat {
		t.Errorf("expected dm-chat, got %s", out.View)
	}
	if out.Params.String("conversationKey") != "dm_aria" {
		t.Errorf("lost conversationKey: %v", out.Params)
	}
	if out.Params.String("otherUsername") != "aria" {
		t.Errorf("lost otherUsername: %v", out.Params)
	}
}

func TestFragmentWithoutParams(t *testing.T) {
	if got := (Route{View: ViewFeed}).Fragment(); got != "#/feed" {
		t.Errorf("expected '#/feed', got %q", got)
	}
}

func TestParamsStringMissing(t *testing.T) {
	var p Params
	if got := p.String("username"); got != "" {
		t.Errorf("expected empty string from nil params, got %q", got)
	}
	p = Params{"n": 3}
	if got := p.String("n"); got != "" {
		t.Errorf("expected empty string for non-string value, got %q", got)
	}
}
