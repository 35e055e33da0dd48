package supercall

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Event string

const (
	apiTimeout = 5

	SessionEvent    Event = "sendSessionData"
	EngagementEvent Event = "sendEngagementApi"
	KeepAliveEvent  Event = "keepAlive"
)

type Polling struct {
	sid         string
	apiEndpoint string
	apiToken    string
}

func New(apiEndpoint string, apiToken string) *Polling {
	return &Polling{
		apiEndpoint: apiEndpoint,
		apiToken:    apiToken,
	}
}

func (p *Polling) GetSessionID() string {
	return p.sid
}

// SetupConnection performs the socket.io polling handshake: obtain a sid,
// upgrade the transport, then probe the connection once.
func (p *Polling) SetupConnection() error {
	if err := p.establishHandshake(); err != nil {
		return err
	}

	if err := p.upgradeConnection(); err != nil {
		return err
	}

	return p.keepConnection()
}

func (p *Polling) SendData(e Event, d interface{}) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}

	_, err = p.request(http.MethodPost, p.sid, strings.NewReader(formatData(b, e)))
	return err
}

func (p *Polling) establishHandshake() error {
	body, err := p.request(http.MethodGet, "", nil)
	if err != nil {
		return err
	}

	// The handshake reply is an engine.io packet: one type digit, then JSON.
	if len(body) < 2 {
		return errors.New("malformed handshake reply")
	}

	var r map[string]interface{}

	if err := json.Unmarshal(body[1:], &r); err != nil {
		return err
	}

	sid, ok := r["sid"].(string)
	if !ok {
		return errors.New("handshake reply carries no sid")
	}
	p.sid = sid

	return nil
}

func (p *Polling) upgradeConnection() error {
	_, err := p.request(http.MethodPost, p.sid, strings.NewReader(`40`))
	return err
}

func (p *Polling) keepConnection() error {
	_, err := p.request(http.MethodGet, p.sid, nil)
	return err
}

func (p *Polling) request(method string, sid string, payload io.Reader) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, addQueryParams(p.apiEndpoint, sid), payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-token", p.apiToken)

	client := http.Client{}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusInternalServerError {
		return nil, errors.New("internal server error 500")
	}

	bytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(string(bytes))
	}

	return bytes, nil
}

// =========================================================================

func getTimestamp() string {
	now := time.Now()
	return strconv.FormatInt(now.Unix(), 10)
}

func addQueryParams(endpoint string, sid string) string {
	u, _ := url.Parse(endpoint)
	q, _ := url.ParseQuery(u.RawQuery)
	q.Add("t", getTimestamp())
	if sid != "" {
		q.Add("sid", sid)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

func formatData(b []byte, e Event) string {
	return `42["` + string(e) + `", ` + string(b) + `]`
}
