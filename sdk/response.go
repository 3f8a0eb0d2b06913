package sdk

import "strings"

type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is one structured record appended to the event log of a successful call.
type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

// NewEvent starts an event of the given type.
// Example payload: sdk.NewEvent("end_round").AddAttribute("round_id", "1")
func NewEvent(typ string) Event {
	return Event{Type: typ}
}

func (e Event) AddAttribute(key, value string) Event {
	e.Attributes = append(e.Attributes, Attribute{Key: key, Value: value})
	return e
}

// Attr returns the value of the first attribute named key.
func (e Event) Attr(key string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// String renders the terse "type|key:value|..." line used for log output.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.Type)
	for _, a := range e.Attributes {
		b.WriteByte('|')
		b.WriteString(a.Key)
		b.WriteByte(':')
		b.WriteString(a.Value)
	}
	return b.String()
}

// BankSend instructs the host to move coins out of the contract account.
type BankSend struct {
	ToAddress Address `json:"to_address"`
	Amount    []Coin  `json:"amount"`
}

// Response is what a successful invocation hands back to the host.
type Response struct {
	Attributes []Attribute `json:"attributes"`
	Events     []Event     `json:"events"`
	Messages   []BankSend  `json:"messages"`
}

func NewResponse() *Response {
	return &Response{}
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

func (r *Response) AddEvent(e Event) *Response {
	r.Events = append(r.Events, e)
	return r
}

func (r *Response) AddMessage(m BankSend) *Response {
	r.Messages = append(r.Messages, m)
	return r
}

// Action returns the top level action attribute.
func (r *Response) Action() string {
	for _, a := range r.Attributes {
		if a.Key == "action" {
			return a.Value
		}
	}
	return ""
}
