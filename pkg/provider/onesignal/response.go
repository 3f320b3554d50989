package onesignal

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Response format:
// https://documentation.onesignal.com/reference/create-notification#results---create-notification
//
// success example:
//
//	{
//	  "id": "458dcec4-cf53-11e3-add2-000c2940e62c",
//	  "recipients": 3,
//	  "external_id": null
//	}
//
// error example:
//
//	{
//	  "errors": ["Message Notifications must have English language content"]
//	}
//
// partial error example:
//
//	{
//	  "id": "",
//	  "recipients": 0,
//	  "errors": {
//	    "invalid_player_ids": ["b186912c-cf25-4688-8218-06cb13e09a4f"]
//	  }
//	}
type Response struct {
	ID         string          `json:"id,omitempty"`
	Recipients int             `json:"recipients,omitempty"`
	ExternalID *string         `json:"external_id,omitempty"`
	StatusCode int             `json:"-"`
	Errors     json.RawMessage `json:"errors,omitempty"`
}

// Ok returns true if the service accepted the notification
func (r *Response) Ok() bool {
	return r != nil && len(r.Errors) == 0 && len(r.ID) > 0
}

// ErrorMessages extracts the human-readable strings from the errors
// payload. The service returns it either as an array of strings or as an
// object keyed by error kind; anything else is surfaced verbatim.
func (r *Response) ErrorMessages() []string {
	if r == nil || len(r.Errors) == 0 {
		return nil
	}

	var list []string
	if err := json.Unmarshal(r.Errors, &list); err == nil {
		return list
	}

	var keyed map[string][]string
	if err := json.Unmarshal(r.Errors, &keyed); err != nil {
		return []string{string(r.Errors)}
	}

	retval := make([]string, 0, len(keyed))
	for kind, values := range keyed {
		retval = append(retval, kind+": "+strings.Join(values, ", "))
	}
	sort.Strings(retval)

	return retval
}

// SendError is a notification the service refused to deliver.
type SendError struct {
	StatusCode int
	Messages   []string
}

// Error is 'error' interface implementation
func (e *SendError) Error() string {

	b := strings.Builder{}
	b.WriteString(strconv.Itoa(e.StatusCode))
	b.WriteByte(' ')
	b.WriteString(strings.Join(e.Messages, "; "))

	return b.String()
}
