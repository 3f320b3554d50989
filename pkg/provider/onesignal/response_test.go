package onesignal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResponseOk(t *testing.T) {

	var nilResp *Response
	require.False(t, nilResp.Ok())

	require.False(t, (&Response{}).Ok())
	require.False(t, (&Response{Errors: json.RawMessage(`["e"]`)}).Ok())
	require.False(t, (&Response{ID: "id-1", Errors: json.RawMessage(`{"invalid_player_ids":["p"]}`)}).Ok())

	require.True(t, (&Response{ID: "id-1", Recipients: 1}).Ok())
}

func TestResponseErrorMessages(t *testing.T) {

	require.Nil(t, (&Response{}).ErrorMessages())

	require.Equal(t,
		[]string{"Message Notifications must have English language content"},
		(&Response{
			Errors: json.RawMessage(`["Message Notifications must have English language content"]`),
		}).ErrorMessages())

	require.Equal(t,
		[]string{
			"invalid_external_user_ids: u1",
			"invalid_player_ids: p1, p2",
		},
		(&Response{
			Errors: json.RawMessage(`{"invalid_player_ids":["p1","p2"],"invalid_external_user_ids":["u1"]}`),
		}).ErrorMessages())

	require.Equal(t,
		[]string{`"unexpected shape"`},
		(&Response{
			Errors: json.RawMessage(`"unexpected shape"`),
		}).ErrorMessages())
}

func TestSendError(t *testing.T) {

	err := &SendError{
		StatusCode: 400,
		Messages:   []string{"first", "second"},
	}

	require.Equal(t, "400 first; second", err.Error())
}
