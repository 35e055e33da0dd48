package supercall_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/superfeelapi/goEngageMeter/foundation/external/supercall"
)

func TestPolling(t *testing.T) {
	var sent []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("sid") == "" {
				io.WriteString(w, `0{"sid":"abc123","upgrades":[],"pingInterval":25000,"pingTimeout":20000}`)
				return
			}
			io.WriteString(w, `2`)

		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			sent = append(sent, string(body))
			io.WriteString(w, `ok`)
		}
	}))
	defer server.Close()

	p := supercall.New(server.URL+"/socket.io/?EIO=4&transport=polling", "token")

	if err := p.SetupConnection(); err != nil {
		t.Fatal(err)
	}
	if p.GetSessionID() != "abc123" {
		t.Fatalf("sid: got %q", p.GetSessionID())
	}

	err := p.SendData(supercall.EngagementEvent, supercall.EngagementData{
		RoomId:    "demo-room",
		SessionId: "s-1",
		State:     "Attentive",
	})
	if err != nil {
		t.Fatal(err)
	}

	last := sent[len(sent)-1]
	if !strings.HasPrefix(last, `42["sendEngagementApi", `) {
		t.Fatalf("payload framing: got %q", last)
	}
	if !strings.Contains(last, `"state":"Attentive"`) {
		t.Fatalf("payload body: got %q", last)
	}
}
