package api

import (
	"errors"
	"io"
	"strings"
	"testing"

	http "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"

	apierrors "github.com/diogo/tripchat/internal/errors"
)

// stubHTTPClient implements tls_client.HttpClient for tests by embedding the
// interface and overriding Do. Only Do is ever called by the chat client.
type stubHTTPClient struct {
	tls_client.HttpClient

	status  int
	body    string
	err     error
	lastReq *http.Request
	calls   int
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
	}, nil
}

func newTestClient(t *testing.T, stub *stubHTTPClient) *Client {
	t.Helper()
	client, err := NewClient("http://localhost:5000/api/chat", WithHTTPClient(stub))
	if err != nil {
		t.Fatalf("NewClient() returned error: %v", err)
	}
	return client
}

func TestSendSuccess(t *testing.T) {
	stub := &stubHTTPClient{status: 200, body: `{"response": "Lisbon is lovely in May.", "quit": false}`}
	client := newTestClient(t, stub)

	reply, err := client.Send("Plan my trip to Lisbon")
	if err != nil {
		t.Fatalf("Send() returned error: %v", err)
	}

	if reply.Text != "Lisbon is lovely in May." {
		t.Errorf("reply.Text = %q", reply.Text)
	}
	if reply.Quit {
		t.Error("reply.Quit should be false")
	}

	req := stub.lastReq
	if req.Method != http.MethodPost {
		t.Errorf("request method = %s, want POST", req.Method)
	}
	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}

	body, _ := io.ReadAll(req.Body)
	if string(body) != `{"message":"Plan my trip to Lisbon"}` {
		t.Errorf("request body = %s", body)
	}
}

func TestSendQuitReply(t *testing.T) {
	stub := &stubHTTPClient{status: 200, body: `{"response": "Safe travels! Goodbye!", "quit": true}`}
	client := newTestClient(t, stub)

	reply, err := client.Send("bye")
	if err != nil {
		t.Fatalf("Send() returned error: %v", err)
	}
	if !reply.Quit {
		t.Error("reply.Quit should be true")
	}
	if reply.Text != "Safe travels! Goodbye!" {
		t.Errorf("reply.Text = %q", reply.Text)
	}
}

func TestSendEmptyMessage(t *testing.T) {
	stub := &stubHTTPClient{status: 200, body: `{}`}
	client := newTestClient(t, stub)

	for _, message := range []string{"", "   ", "\n\t"} {
		if _, err := client.Send(message); !errors.Is(err, apierrors.ErrEmptyMessage) {
			t.Errorf("Send(%q) error = %v, want ErrEmptyMessage", message, err)
		}
	}

	if stub.calls != 0 {
		t.Errorf("empty messages must not hit the network; %d requests made", stub.calls)
	}
}

func TestSendServerError(t *testing.T) {
	stub := &stubHTTPClient{status: 400, body: `{"response": "Please enter a message."}`}
	client := newTestClient(t, stub)

	_, err := client.Send("hello")
	if err == nil {
		t.Fatal("Send() should fail on a 400 response")
	}

	if !apierrors.IsAPIError(err) {
		t.Fatalf("error should be an APIError, got %T: %v", err, err)
	}
	if got := apierrors.GetHTTPStatus(err); got != 400 {
		t.Errorf("GetHTTPStatus() = %d, want 400", got)
	}
	if got := apierrors.GetResponseBody(err); got != "Please enter a message." {
		t.Errorf("GetResponseBody() = %q", got)
	}
}

func TestSendServerErrorWithoutJSONBody(t *testing.T) {
	stub := &stubHTTPClient{status: 502, body: "Bad Gateway"}
	client := newTestClient(t, stub)

	_, err := client.Send("hello")
	if got := apierrors.GetHTTPStatus(err); got != 502 {
		t.Errorf("GetHTTPStatus() = %d, want 502", got)
	}
	if got := apierrors.GetResponseBody(err); got != "" {
		t.Errorf("GetResponseBody() = %q, want empty for non-JSON body", got)
	}
}

func TestSendNetworkFailure(t *testing.T) {
	stub := &stubHTTPClient{err: errors.New("connection refused")}
	client := newTestClient(t, stub)

	_, err := client.Send("hello")
	if !apierrors.IsNetworkError(err) {
		t.Fatalf("error should be a NetworkError, got %T: %v", err, err)
	}
}

func TestSendMalformedResponse(t *testing.T) {
	stub := &stubHTTPClient{status: 200, body: "not json at all"}
	client := newTestClient(t, stub)

	_, err := client.Send("hello")
	if !apierrors.IsParseError(err) {
		t.Fatalf("error should be a ParseError, got %T: %v", err, err)
	}
}

func TestParseReply(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantText string
		wantQuit bool
	}{
		{
			name:     "normal reply",
			body:     `{"response": "hi", "quit": false}`,
			wantText: "hi",
			wantQuit: false,
		},
		{
			name:     "quit reply",
			body:     `{"response": "bye", "quit": true}`,
			wantText: "bye",
			wantQuit: true,
		},
		{
			name:     "missing quit defaults to false",
			body:     `{"response": "hi"}`,
			wantText: "hi",
			wantQuit: false,
		},
		{
			name:     "empty reply text is valid",
			body:     `{"response": "", "quit": false}`,
			wantText: "",
		},
		{
			name:     "extra fields are ignored",
			body:     `{"response": "hi", "quit": false, "model": "x"}`,
			wantText: "hi",
		},
		{
			name:    "missing response field",
			body:    `{"quit": false}`,
			wantErr: true,
		},
		{
			name:    "array body",
			body:    `["response", "hi"]`,
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			body:    `{"response": `,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := parseReply([]byte(tt.body))

			if tt.wantErr {
				if err == nil {
					t.Fatal("parseReply() expected error but got none")
				}
				if !apierrors.IsParseError(err) {
					t.Errorf("parseReply() error should be a ParseError, got %T", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseReply() unexpected error: %v", err)
			}
			if reply.Text != tt.wantText {
				t.Errorf("reply.Text = %q, want %q", reply.Text, tt.wantText)
			}
			if reply.Quit != tt.wantQuit {
				t.Errorf("reply.Quit = %v, want %v", reply.Quit, tt.wantQuit)
			}
		})
	}
}
