package onesignal

import (
	"context"
	"time"
)

// DefaultLanguage is the language tag used by the message and heading
// setters that take no explicit tag.
const DefaultLanguage = "en"

// send_after value format, e.g. "2015-09-24 14:00:00 GMT-0700":
// https://documentation.onesignal.com/reference/push-channel-properties#scheduling
const sendAfterLayout = "2006-01-02 15:04:05 GMT-0700"

// Body is the flat JSON document of a create-notification request.
type Body map[string]interface{}

// AppSource supplies the application identifier for the app_id field.
type AppSource interface {
	AppID() string
}

// Transport delivers a built body to the service.
type Transport interface {
	AppSource
	Send(ctx context.Context, body Body) (*Response, error)
}

// Button format:
// https://documentation.onesignal.com/reference/push-channel-properties#action-buttons
type Button struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
}

// Filter format:
// https://documentation.onesignal.com/reference/push-channel-properties#filters
type Filter map[string]interface{}

// Params accumulates the parameters of a single notification.
//
// The zero value is ready to use. Every setter returns a new value and
// leaves its receiver untouched, so any intermediate value stays a valid
// snapshot and chains built from a shared base never interfere.
type Params struct {
	messages map[string]string
	headings map[string]string

	includedSegments []string
	excludedSegments []string
	includePlayerIDs []string
	excludePlayerIDs []string

	includeIOSTokens     []string
	includeAndroidRegIDs []string

	tags    map[string]string
	data    map[string]interface{}
	filters []Filter
	buttons []Button

	sendAfter      *time.Time
	iosAttachments map[string]string

	// accepted but withheld from the wire body, see Build
	platforms     []string
	iosParams     map[string]interface{}
	androidParams map[string]interface{}
	admParams     map[string]interface{}
	wpParams      map[string]interface{}
	chromeParams  map[string]interface{}
	firefoxParams map[string]interface{}

	extra map[string]interface{}
}

// New returns an empty parameter set.
func New() Params {
	return Params{}
}

// PutMessage sets the message text for the default language.
func (p Params) PutMessage(text string) Params {
	return p.PutLocalizedMessage(DefaultLanguage, text)
}

// PutLocalizedMessage sets the message text for a language tag.
// A previous value for the same tag is overwritten.
func (p Params) PutLocalizedMessage(lang, text string) Params {
	messages := cloneStringMap(p.messages)
	messages[lang] = text
	p.messages = messages
	return p
}

// PutHeading sets the heading text for the default language.
func (p Params) PutHeading(text string) Params {
	return p.PutLocalizedHeading(DefaultLanguage, text)
}

// PutLocalizedHeading sets the heading text for a language tag.
func (p Params) PutLocalizedHeading(lang, text string) Params {
	headings := cloneStringMap(p.headings)
	headings[lang] = text
	p.headings = headings
	return p
}

// PutSegment adds a segment to the target audience. The newest segment
// becomes the head of the list.
func (p Params) PutSegment(name string) Params {
	p.includedSegments = prepend(p.includedSegments, name)
	return p
}

// PutSegments adds every segment of the list in order.
func (p Params) PutSegments(names []string) Params {
	for _, name := range names {
		p = p.PutSegment(name)
	}
	return p
}

// DropSegment removes every occurrence of a segment from the target
// audience. It is a no-op when no segments have been added.
func (p Params) DropSegment(name string) Params {
	if p.includedSegments == nil {
		return p
	}
	p.includedSegments = without(p.includedSegments, name)
	return p
}

// DropSegments removes every segment of the list.
func (p Params) DropSegments(names []string) Params {
	for _, name := range names {
		p = p.DropSegment(name)
	}
	return p
}

// ExcludeSegment excludes a segment from delivery.
func (p Params) ExcludeSegment(name string) Params {
	p.excludedSegments = prepend(p.excludedSegments, name)
	return p
}

// ExcludeSegments excludes every segment of the list in order.
func (p Params) ExcludeSegments(names []string) Params {
	for _, name := range names {
		p = p.ExcludeSegment(name)
	}
	return p
}

// PutPlayerID targets a specific device.
func (p Params) PutPlayerID(id string) Params {
	p.includePlayerIDs = prepend(p.includePlayerIDs, id)
	return p
}

// PutPlayerIDs targets every device of the list in order.
func (p Params) PutPlayerIDs(ids []string) Params {
	for _, id := range ids {
		p = p.PutPlayerID(id)
	}
	return p
}

// ExcludePlayerID excludes a specific device from delivery.
func (p Params) ExcludePlayerID(id string) Params {
	p.excludePlayerIDs = prepend(p.excludePlayerIDs, id)
	return p
}

// ExcludePlayerIDs excludes every device of the list in order.
func (p Params) ExcludePlayerIDs(ids []string) Params {
	for _, id := range ids {
		p = p.ExcludePlayerID(id)
	}
	return p
}

// PutIOSToken records an iOS device token. When player IDs are present the
// token list is rebuilt from the token followed by a snapshot of the
// current player-ID list; otherwise the token accumulates at the head of
// the token list. The branch is taken on the player-ID list, not on the
// token list.
func (p Params) PutIOSToken(token string) Params {
	if p.includePlayerIDs != nil {
		p.includeIOSTokens = prepend(p.includePlayerIDs, token)
	} else {
		p.includeIOSTokens = prepend(p.includeIOSTokens, token)
	}
	return p
}

// PutAndroidRegID records an Android registration ID. Same branch rule as
// PutIOSToken.
func (p Params) PutAndroidRegID(id string) Params {
	if p.includePlayerIDs != nil {
		p.includeAndroidRegIDs = prepend(p.includePlayerIDs, id)
	} else {
		p.includeAndroidRegIDs = prepend(p.includeAndroidRegIDs, id)
	}
	return p
}

// PutTag sets a delivery tag.
func (p Params) PutTag(key, value string) Params {
	tags := cloneStringMap(p.tags)
	tags[key] = value
	p.tags = tags
	return p
}

// PutData sets a key of the custom data payload.
func (p Params) PutData(key string, value interface{}) Params {
	data := cloneMap(p.data)
	data[key] = value
	p.data = data
	return p
}

// PutExtra sets an arbitrary top-level key of the wire body. Extra keys are
// merged last by Build and win over the dedicated optional fields.
func (p Params) PutExtra(key string, value interface{}) Params {
	extra := cloneMap(p.extra)
	extra[key] = value
	p.extra = extra
	return p
}

// PutFilter adds an audience filter. The newest filter becomes the head of
// the list.
func (p Params) PutFilter(filter Filter) Params {
	filters := make([]Filter, 0, len(p.filters)+1)
	filters = append(filters, filter)
	p.filters = append(filters, p.filters...)
	return p
}

// PutButton adds an action button. The newest button becomes the head of
// the list.
func (p Params) PutButton(button Button) Params {
	buttons := make([]Button, 0, len(p.buttons)+1)
	buttons = append(buttons, button)
	p.buttons = append(buttons, p.buttons...)
	return p
}

// PutButtons adds every button of the list in order.
func (p Params) PutButtons(buttons []Button) Params {
	for _, button := range buttons {
		p = p.PutButton(button)
	}
	return p
}

// PutSendAfter schedules the delivery.
func (p Params) PutSendAfter(t time.Time) Params {
	p.sendAfter = &t
	return p
}

// PutIOSAttachments replaces the iOS attachments wholesale. The previous
// value is discarded, it is not merged.
func (p Params) PutIOSAttachments(attachments map[string]string) Params {
	if attachments == nil {
		p.iosAttachments = nil
		return p
	}
	p.iosAttachments = cloneStringMap(attachments)
	return p
}

// PutPlatforms sets the platform selector.
func (p Params) PutPlatforms(platforms []string) Params {
	p.platforms = append([]string(nil), platforms...)
	return p
}

// PutIOSParams sets the iOS payload fragment.
func (p Params) PutIOSParams(fragment map[string]interface{}) Params {
	p.iosParams = cloneMap(fragment)
	return p
}

// PutAndroidParams sets the Android payload fragment.
func (p Params) PutAndroidParams(fragment map[string]interface{}) Params {
	p.androidParams = cloneMap(fragment)
	return p
}

// PutADMParams sets the Amazon Device Messaging payload fragment.
func (p Params) PutADMParams(fragment map[string]interface{}) Params {
	p.admParams = cloneMap(fragment)
	return p
}

// PutWPParams sets the Windows Phone payload fragment.
func (p Params) PutWPParams(fragment map[string]interface{}) Params {
	p.wpParams = cloneMap(fragment)
	return p
}

// PutChromeParams sets the Chrome payload fragment.
func (p Params) PutChromeParams(fragment map[string]interface{}) Params {
	p.chromeParams = cloneMap(fragment)
	return p
}

// PutFirefoxParams sets the Firefox payload fragment.
func (p Params) PutFirefoxParams(fragment map[string]interface{}) Params {
	p.firefoxParams = cloneMap(fragment)
	return p
}

// Build produces the flat wire body of a create-notification request:
// https://documentation.onesignal.com/reference/create-notification
//
// app_id and contents are always present. Optional fields are included only
// when set, extra keys are merged over them, and the platform selector and
// per-platform payload fragments are withheld entirely. The required keys
// are written last so nothing can override them.
func (p Params) Build(app AppSource) Body {
	body := Body{}

	if p.headings != nil {
		body["headings"] = p.headings
	}
	if p.includedSegments != nil {
		body["included_segments"] = p.includedSegments
	}
	if p.excludedSegments != nil {
		body["excluded_segments"] = p.excludedSegments
	}
	if p.includePlayerIDs != nil {
		body["include_player_ids"] = p.includePlayerIDs
	}
	if p.excludePlayerIDs != nil {
		body["exclude_player_ids"] = p.excludePlayerIDs
	}
	if p.includeIOSTokens != nil {
		body["include_ios_tokens"] = p.includeIOSTokens
	}
	if p.includeAndroidRegIDs != nil {
		body["include_android_reg_ids"] = p.includeAndroidRegIDs
	}
	if p.tags != nil {
		body["tags"] = p.tags
	}
	if p.data != nil {
		body["data"] = p.data
	}
	if p.filters != nil {
		body["filters"] = p.filters
	}
	if p.buttons != nil {
		body["buttons"] = p.buttons
	}
	if p.sendAfter != nil {
		body["send_after"] = p.sendAfter.Format(sendAfterLayout)
	}
	if p.iosAttachments != nil {
		body["ios_attachments"] = p.iosAttachments
	}

	for key, value := range p.extra {
		body[key] = value
	}

	body["app_id"] = app.AppID()
	if p.messages != nil {
		body["contents"] = p.messages
	} else {
		body["contents"] = map[string]string{}
	}

	return body
}

// Notify builds the wire body and hands it to the transport. The transport
// result is returned unchanged.
func (p Params) Notify(ctx context.Context, transport Transport) (*Response, error) {
	return transport.Send(ctx, p.Build(transport))
}

func cloneStringMap(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func cloneMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func prepend(list []string, value string) []string {
	out := make([]string, 0, len(list)+1)
	out = append(out, value)
	return append(out, list...)
}

func without(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		if item != value {
			out = append(out, item)
		}
	}
	return out
}
