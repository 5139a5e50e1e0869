// Package action resolves the free-text label of a page button into the
// behaviour the generated handler is wired to.
package action

import (
	"strings"

	"github.com/matthewbaird/pagegen/internal/ir"
	"github.com/matthewbaird/pagegen/internal/label"
)

// Effect identifies what a generated handler does.
type Effect string

const (
	EffectNavigateBack  Effect = "navigate_back"
	EffectInform        Effect = "inform"
	EffectReload        Effect = "reload"
	EffectPrint         Effect = "print"
	EffectSearch        Effect = "search"
	EffectConfirmUpdate Effect = "confirm_update"
	EffectCreate        Effect = "create"
	EffectUpdate        Effect = "update"
	EffectTransition    Effect = "transition"
	EffectFireAndForget Effect = "fire_and_forget"
	EffectNavigate      Effect = "navigate"
	EffectAnnounce      Effect = "announce"
)

// Decision is the wiring chosen for one action label.
type Decision struct {
	Label          string
	Effect         Effect
	NeedsNavigate  bool
	NeedsDomainAPI bool
	NeedsRecordID  bool

	// APIHandle names the domain API object when NeedsDomainAPI is set.
	APIHandle string
	// Route is the navigation target for EffectNavigate.
	Route string
	// Verb is the action value sent by EffectTransition and EffectFireAndForget.
	Verb string
	// StatusValue is the status written by EffectConfirmUpdate.
	StatusValue string
	// Hint is a one-line description of the effect for the emitted source.
	Hint string
}

// ── Vocabulary ───────────────────────────────────────────────────────────────

var navigateBack = map[string]bool{
	"cancel": true, "back": true, "close": true, "return": true,
	"previous page": true, "ok": true, "confirm": true, "yes": true,
	"accept": true,
}

var (
	localTransitions = []string{"next page", "continue", "edit", "modify"}
	clientReload     = []string{"reset", "clear", "refresh"}
	searchVerbs      = []string{"search", "find", "lookup"}
	// Longest keyword first so "save and close" wins over "save".
	saveVerbs       = []string{"save and close", "save", "submit", "create", "add"}
	fireAndForget   = []string{"subscribe", "validate", "verify"}
	transitionVerbs = []string{
		"approve", "deny", "reject", "reserve", "forward", "defer",
		"assign", "reassign", "reallocate", "transfer",
	}
)

// confirmStatus maps each confirmation verb to the status it writes.
var confirmStatus = []struct {
	verb   string
	status string
}{
	{"delete", "DELETED"},
	{"remove", "DELETED"},
	{"terminate", "TERMINATED"},
	{"inactivate", "INACTIVE"},
	{"deactivate", "INACTIVE"},
}

// matchWord reports which keyword the label equals or begins with as a whole
// word. It returns "" when none match.
func matchWord(l string, keywords []string) string {
	for _, k := range keywords {
		if l == k || strings.HasPrefix(l, k+" ") {
			return k
		}
	}
	return ""
}

// ── Resolution ───────────────────────────────────────────────────────────────

// Resolve maps an action label to a Decision. Rules are tried in a fixed
// order and the first match wins; every label resolves to something.
func Resolve(actionLabel, domain string, navLinks []ir.NavLink, pageType label.PageType) Decision {
	l := strings.ToLower(strings.TrimSpace(actionLabel))
	d := Decision{Label: strings.TrimSpace(actionLabel)}
	api := APIHandle(domain)

	if navigateBack[l] {
		d.Effect = EffectNavigateBack
		d.NeedsNavigate = true
		d.Hint = "return to the previous page"
		return d
	}
	if matchWord(l, localTransitions) != "" {
		d.Effect = EffectInform
		d.Hint = "handled by the follow-up page"
		return d
	}
	if matchWord(l, clientReload) != "" {
		d.Effect = EffectReload
		d.Hint = "reload the page"
		return d
	}
	if matchWord(l, []string{"print"}) != "" {
		d.Effect = EffectPrint
		d.Hint = "print the page"
		return d
	}
	if matchWord(l, searchVerbs) != "" {
		d.Effect = EffectSearch
		d.NeedsDomainAPI = true
		d.APIHandle = api
		d.Hint = "search " + api
		return d
	}
	for _, c := range confirmStatus {
		if matchWord(l, []string{c.verb}) != "" {
			d.Effect = EffectConfirmUpdate
			d.NeedsNavigate = true
			d.NeedsDomainAPI = true
			d.NeedsRecordID = true
			d.APIHandle = api
			d.Verb = c.verb
			d.StatusValue = c.status
			d.Hint = "confirm, then mark the record " + c.status
			return d
		}
	}
	if matchWord(l, saveVerbs) != "" {
		d.NeedsNavigate = true
		d.NeedsDomainAPI = true
		d.APIHandle = api
		if pageType == label.PageCreate {
			d.Effect = EffectCreate
			d.Hint = "create a new record"
		} else {
			d.Effect = EffectUpdate
			d.NeedsRecordID = true
			d.Hint = "save changes to the record"
		}
		return d
	}
	if v := matchWord(l, transitionVerbs); v != "" {
		d.Effect = EffectTransition
		d.NeedsNavigate = true
		d.NeedsDomainAPI = true
		d.NeedsRecordID = true
		d.APIHandle = api
		d.Verb = v
		d.Hint = v + " the record"
		return d
	}
	if v := matchWord(l, fireAndForget); v != "" {
		d.Effect = EffectFireAndForget
		d.NeedsDomainAPI = true
		d.NeedsRecordID = true
		d.APIHandle = api
		d.Verb = v
		d.Hint = v + " without leaving the page"
		return d
	}
	if l != "" {
		for _, nl := range navLinks {
			nll := strings.ToLower(strings.TrimSpace(nl.Label))
			if nll == "" {
				continue
			}
			if strings.Contains(nll, l) || strings.Contains(l, nll) {
				d.Effect = EffectNavigate
				d.NeedsNavigate = true
				d.Route = nl.Route
				d.Hint = "open " + nl.Route
				return d
			}
		}
	}
	d.Effect = EffectAnnounce
	d.Hint = "no wiring known for this action"
	return d
}

// ResolveAll resolves every distinct label of actions in first-seen order.
func ResolveAll(actions []string, domain string, navLinks []ir.NavLink, pageType label.PageType) []Decision {
	seen := map[string]bool{}
	var out []Decision
	for _, a := range actions {
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, Resolve(a, domain, navLinks, pageType))
	}
	return out
}
