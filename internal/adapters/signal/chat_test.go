package signal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkeye/Duel/internal/core"
)

func serverResponses(t *testing.T, fc *fakeConn) []string {
	t.Helper()
	var out []string
	for _, f := range byType(decodeFrames(t, fc), core.EvServerResponse) {
		var p core.ServerResponsePayload
		require.NoError(t, json.Unmarshal(f.Data, &p))
		out = append(out, p.Message)
	}
	return out
}

func TestHandleChat_AcksSenderAndRelaysToOthers(t *testing.T) {
	ctl := newTestController(testConfig())
	sender, other := &fakeConn{}, &fakeConn{}
	ctl.conns["c1"] = sender
	ctl.conns["c2"] = other

	ctl.handleChat("c1", sender, []byte(`{"message":"hello"}`))

	require.Equal(t, []string{`message received: "hello"`}, serverResponses(t, sender))
	require.Equal(t, []string{`new message: "hello"`}, serverResponses(t, other))
}

func TestHandleChat_RejectsInvalidPayload(t *testing.T) {
	ctl := newTestController(testConfig())
	sender, other := &fakeConn{}, &fakeConn{}
	ctl.conns["c1"] = sender
	ctl.conns["c2"] = other

	// Malformed JSON and an empty message are both answered on the
	// sender's connection only; nothing is relayed.
	ctl.handleChat("c1", sender, []byte(`{`))
	ctl.handleChat("c1", sender, []byte(`{"message":""}`))

	require.Equal(t, []string{
		"error: invalid message format",
		"error: invalid message format",
	}, serverResponses(t, sender))
	require.Empty(t, serverResponses(t, other))
}

func TestHandleChat_EnforcesCharacterLimit(t *testing.T) {
	cfg := testConfig()
	cfg.MaxChatLen = 3
	ctl := newTestController(cfg)
	sender, other := &fakeConn{}, &fakeConn{}
	ctl.conns["c1"] = sender
	ctl.conns["c2"] = other

	// Five characters, fifteen bytes: counted per rune, so rejected for
	// length, not for byte size.
	ctl.handleChat("c1", sender, []byte(`{"message":"ありがとう"}`))
	require.Equal(t, []string{"error: message must be 3 characters or less"}, serverResponses(t, sender))
	require.Empty(t, serverResponses(t, other))

	// Exactly at the limit goes through.
	ctl.handleChat("c1", sender, []byte(`{"message":"ありが"}`))
	require.Equal(t, []string{`new message: "ありが"`}, serverResponses(t, other))
}

func TestHandleChat_RateLimited(t *testing.T) {
	cfg := testConfig()
	cfg.ChatRateLimit = 1
	ctl := newTestController(cfg)
	sender, other := &fakeConn{}, &fakeConn{}
	ctl.conns["c1"] = sender
	ctl.conns["c2"] = other

	ctl.handleChat("c1", sender, []byte(`{"message":"one"}`))
	ctl.handleChat("c1", sender, []byte(`{"message":"two"}`))

	require.Equal(t, []string{
		`message received: "one"`,
		"error: too many messages, slow down",
	}, serverResponses(t, sender))
	require.Equal(t, []string{`new message: "one"`}, serverResponses(t, other))
}
