package router

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gtv-cli/gtv/catalog"
	"github.com/gtv-cli/gtv/host"
	"github.com/gtv-cli/gtv/listing"
)

// ErrInvalidParams is matched by every RoutingError.
var ErrInvalidParams = errors.New("invalid navigation parameters")

// RoutingError reports a parameter string that maps to no command.
type RoutingError struct {
	Params string
	Reason string
	Err    error
}

func (e *RoutingError) Error() string {
	msg := fmt.Sprintf("invalid params %q: %s", e.Params, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RoutingError) Unwrap() error {
	return e.Err
}

func (e *RoutingError) Is(target error) bool {
	return target == ErrInvalidParams
}

// Action is what a command does.
type Action int

const (
	ActionRoot Action = iota
	ActionListing
	ActionPlay
	ActionJump
)

func (a Action) String() string {
	switch a {
	case ActionListing:
		return listing.ActionListing
	case ActionPlay:
		return listing.ActionPlay
	case ActionJump:
		return listing.ActionJump
	default:
		return "root"
	}
}

// Command is a parsed navigation request.
type Command struct {
	Action   Action
	Category catalog.Category
	Offset   int
	Query    string
	Episode  int
}

// Parse decodes a navigation URL, a query string or a query string with a
// leading '?'. The empty string is the root command.
func Parse(raw string) (*Command, error) {
	query := host.Query(raw)
	if query == "" {
		return &Command{Action: ActionRoot}, nil
	}

	params, err := url.ParseQuery(query)
	if err != nil {
		return nil, &RoutingError{Params: raw, Reason: "malformed query", Err: err}
	}

	p := parser{raw: raw, params: params}
	cmd := &Command{}

	switch action := params.Get(listing.ParamAction); action {
	case listing.ActionListing:
		cmd.Action = ActionListing
		cmd.Category = p.category()
		cmd.Offset = p.optionalInt(listing.ParamOffset)
		cmd.Query = params.Get(listing.ParamSearch)
	case listing.ActionPlay:
		cmd.Action = ActionPlay
		cmd.Episode = p.requiredInt(listing.ParamVideo)
	case listing.ActionJump:
		cmd.Action = ActionJump
		cmd.Episode = p.requiredInt(listing.ParamEpisode)
		cmd.Offset = p.requiredInt(listing.ParamOffset)
	case "":
		p.fail("missing action", nil)
	default:
		p.fail(fmt.Sprintf("unknown action %q", action), nil)
	}

	if p.err != nil {
		return nil, p.err
	}
	return cmd, nil
}

// parser keeps the first failure so Parse reads top to bottom.
type parser struct {
	raw    string
	params url.Values
	err    *RoutingError
}

func (p *parser) fail(reason string, err error) {
	if p.err == nil {
		p.err = &RoutingError{Params: p.raw, Reason: reason, Err: err}
	}
}

func (p *parser) category() catalog.Category {
	token := p.params.Get(listing.ParamCategory)
	if token == "" {
		p.fail("missing "+listing.ParamCategory, nil)
		return 0
	}

	category, err := catalog.ParseCategory(token)
	if err != nil {
		p.fail("bad "+listing.ParamCategory, err)
	}
	return category
}

func (p *parser) requiredInt(name string) int {
	if strings.TrimSpace(p.params.Get(name)) == "" {
		p.fail("missing "+name, nil)
		return 0
	}
	return p.optionalInt(name)
}

func (p *parser) optionalInt(name string) int {
	value := strings.TrimSpace(p.params.Get(name))
	if value == "" {
		return 0
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		p.fail("bad "+name, err)
		return 0
	}
	if n < 0 {
		p.fail(fmt.Sprintf("negative %s %d", name, n), nil)
		return 0
	}
	return n
}
